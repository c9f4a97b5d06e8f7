// Package commands wires the fstdb CLI: every subcommand is a thin
// client of the fstdb core primitives.
package commands
