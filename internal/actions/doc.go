// Package actions provides the business logic behind CLI commands.
//
// Actions accept a runtime.Context, which carries the resolved repository
// root, the loaded plan, and the Splog used for console output. Interactive
// steps go through the tui package and are skipped unless requested.
package actions
