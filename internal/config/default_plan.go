package config

// DefaultMessage is the commit message payload of the built-in plan
const DefaultMessage = `feat: complete all 12 developer guides - Phase 2 (100%)

✅ NEW GUIDES (5):
- Guide 08: Code Standards & Conventions (18 KB)
- Guide 09: Authentication & Security (22 KB)
- Guide 10: Payment Processing (24 KB)
- Guide 11: Testing Developer Guide (26 KB)
- Guide 12: Debugging & Troubleshooting (28 KB)

✅ PREVIOUSLY CREATED (7):
- Guides 01-07: Foundation to frontend development

📊 SUMMARY:
- All 12 guides: 100% complete
- Total documentation: 290 KB
- Code examples: 150+
- Common issues: 11 critical issues + 30+ edge cases
- Team ready: Production development ready

📝 UPDATED:
- DEVELOPER_GUIDES/README.md (progress 100%)
- PHASE_2_COMPLETION_REPORT.md (new)

Team Impact: 3 developers ready to build immediately`

// defaultDocs are the documentation files staged by the built-in plan
var defaultDocs = []string{
	"knowledge-base/DEVELOPER_GUIDES/08_CODE_STANDARDS_CONVENTIONS.md",
	"knowledge-base/DEVELOPER_GUIDES/09_AUTHENTICATION_SECURITY_GUIDE.md",
	"knowledge-base/DEVELOPER_GUIDES/10_PAYMENT_PROCESSING_GUIDE.md",
	"knowledge-base/DEVELOPER_GUIDES/11_TESTING_DEVELOPER_GUIDE.md",
	"knowledge-base/DEVELOPER_GUIDES/12_DEBUGGING_TROUBLESHOOTING.md",
	"knowledge-base/DEVELOPER_GUIDES/README.md",
	"knowledge-base/PHASE_2_COMPLETION_REPORT.md",
}

// DefaultPlan returns the built-in batch: set the commit identity, stage the
// documentation set, show status, commit with DefaultMessage, and push main.
func DefaultPlan() *Plan {
	steps := []Step{
		{"git", "config", "user.email", "developer@novaa.in"},
		{"git", "config", "user.name", "NOVAA Developer"},
	}
	for _, doc := range defaultDocs {
		steps = append(steps, Step{"git", "add", doc})
	}
	steps = append(steps,
		Step{"git", "status", "--porcelain"},
		Step{"git", "commit", "-m", MessagePlaceholder},
		Step{"git", "push", "origin", "main"},
	)

	return &Plan{
		RawTimeout: DefaultTimeout.String(),
		MaxOutput:  DefaultMaxOutput,
		Message:    DefaultMessage,
		Steps:      steps,
	}
}
