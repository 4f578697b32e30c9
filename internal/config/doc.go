// Package config manages gitbatch plans.
//
// A plan is the data-driven description of a batch:
//   - the ordered list of argument vectors to run
//   - the commit message payload substituted for {message}
//   - the repository root and per-command limits
//
// Plans are stored as YAML in .gitbatch.yaml at the repository root; when no
// file exists the built-in DefaultPlan is used.
package config
