// Package runner executes an ordered batch of external commands.
//
// Commands run one at a time, in declaration order, each with its own time
// bound. A failing command is reported on the console and the batch moves
// on; the loop never stops early. The caller receives a Report and decides
// what a failure means.
package runner
