// Package runtime provides the execution context for gitbatch commands.
//
// A Context pairs the resolved repository root with the plan to run and
// owns the logger for the lifetime of one command invocation.
package runtime
