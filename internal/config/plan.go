package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values for plan settings.
const (
	DefaultTimeout   = 30 * time.Second
	DefaultMaxOutput = 200 // characters
)

// PlanFileName is the plan file looked up at the repository root
const PlanFileName = ".gitbatch.yaml"

// MessagePlaceholder is replaced by the plan's message when steps are expanded
const MessagePlaceholder = "{message}"

// ErrInvalidPlan indicates that a plan failed validation
var ErrInvalidPlan = errors.New("invalid plan")

// Step is one argument vector: the executable followed by its arguments
type Step []string

// MarshalYAML writes a step on a single line, e.g. [git, add, README.md]
func (s Step) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, token := range s {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: token})
	}
	return node, nil
}

// Plan describes one batch of commands.
// All fields except Steps are optional; zero values represent defaults.
type Plan struct {
	RepoRoot   string `yaml:"repo_root,omitempty"`
	RawTimeout string `yaml:"timeout,omitempty"`    // e.g. "30s", "2m"; a bare integer is seconds
	MaxOutput  int    `yaml:"max_output,omitempty"` // characters echoed per stream
	Message    string `yaml:"message,omitempty"`
	Steps      []Step `yaml:"steps"`
}

// Timeout returns the configured per-command timeout or the default.
func (p *Plan) Timeout() time.Duration {
	if p.RawTimeout != "" {
		d, err := parseTimeout(p.RawTimeout)
		if err == nil && d > 0 {
			return d
		}
	}
	return DefaultTimeout
}

func parseTimeout(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("expected seconds or a duration such as 30s or 2m: %w", err)
	}
	return d, nil
}

// MaxOutputChars returns the configured output limit or the default.
func (p *Plan) MaxOutputChars() int {
	if p.MaxOutput > 0 {
		return p.MaxOutput
	}
	return DefaultMaxOutput
}

// UsesMessage reports whether any step references the message placeholder
func (p *Plan) UsesMessage() bool {
	for _, step := range p.Steps {
		for _, token := range step {
			if strings.Contains(token, MessagePlaceholder) {
				return true
			}
		}
	}
	return false
}

// Validate checks the plan for steps that can never run
func (p *Plan) Validate() error {
	if p.RawTimeout != "" {
		d, err := parseTimeout(p.RawTimeout)
		if err != nil {
			return fmt.Errorf("%w: timeout %q: %v", ErrInvalidPlan, p.RawTimeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidPlan, p.RawTimeout)
		}
	}
	if p.MaxOutput < 0 {
		return fmt.Errorf("%w: max_output must not be negative, got %d", ErrInvalidPlan, p.MaxOutput)
	}
	for i, step := range p.Steps {
		if len(step) == 0 || strings.TrimSpace(step[0]) == "" {
			return fmt.Errorf("%w: step %d has no executable", ErrInvalidPlan, i+1)
		}
	}
	if p.UsesMessage() && strings.TrimSpace(p.Message) == "" {
		return fmt.Errorf("%w: steps use %s but message is empty", ErrInvalidPlan, MessagePlaceholder)
	}
	return nil
}

// Commands expands the steps into argument vectors, substituting the message placeholder
func (p *Plan) Commands() [][]string {
	commands := make([][]string, 0, len(p.Steps))
	for _, step := range p.Steps {
		argv := make([]string, len(step))
		for i, token := range step {
			argv[i] = strings.ReplaceAll(token, MessagePlaceholder, p.Message)
		}
		commands = append(commands, argv)
	}
	return commands
}

// Select returns a copy of the plan keeping only the steps at the given
// indices. Steps keep their original order whatever the order of indices.
func (p *Plan) Select(indices []int) (*Plan, error) {
	sorted := slices.Clone(indices)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	selected := *p
	selected.Steps = make([]Step, 0, len(sorted))
	for _, i := range sorted {
		if i < 0 || i >= len(p.Steps) {
			return nil, fmt.Errorf("step index %d out of range [0, %d)", i, len(p.Steps))
		}
		selected.Steps = append(selected.Steps, slices.Clone(p.Steps[i]))
	}
	return &selected, nil
}

// LoadPlan reads a plan from a YAML file
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan: %w", err)
	}

	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse plan %s: %w", path, err)
	}
	return &plan, nil
}

// LoadRepoPlan reads the plan file at the repository root.
// Returns DefaultPlan when the file does not exist.
func LoadRepoPlan(repoRoot string) (*Plan, error) {
	plan, err := LoadPlan(RepoPlanPath(repoRoot))
	if errors.Is(err, os.ErrNotExist) {
		return DefaultPlan(), nil
	}
	return plan, err
}

// RepoPlanPath returns the location of the plan file for a repository
func RepoPlanPath(repoRoot string) string {
	return filepath.Join(repoRoot, PlanFileName)
}

// Marshal encodes the plan as YAML
func (p *Plan) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("failed to marshal plan: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal plan: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the plan to path
func (p *Plan) Save(path string) error {
	data, err := p.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
