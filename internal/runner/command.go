package runner

import (
	"slices"
	"strings"
)

// traceTokens is the number of argv tokens shown in a trace line
const traceTokens = 3

// Command is an immutable argument vector: the executable followed by its arguments
type Command struct {
	argv []string
}

// NewCommand creates a Command from a copy of argv
func NewCommand(argv ...string) Command {
	return Command{argv: slices.Clone(argv)}
}

// Commands converts a list of argument vectors into Commands
func Commands(argvs [][]string) []Command {
	commands := make([]Command, 0, len(argvs))
	for _, argv := range argvs {
		commands = append(commands, NewCommand(argv...))
	}
	return commands
}

// Argv returns a copy of the command's tokens
func (c Command) Argv() []string {
	return slices.Clone(c.argv)
}

// Trace returns the short form used in progress lines
func (c Command) Trace() string {
	n := min(traceTokens, len(c.argv))
	return strings.Join(c.argv[:n], " ")
}

func (c Command) String() string {
	return strings.Join(c.argv, " ")
}
