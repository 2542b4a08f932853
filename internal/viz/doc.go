// Package viz renders a sorting run in the terminal.
//
// The package implements a Bubble Tea program on top of [player.Player]:
//
//   - [Model]: polls the player snapshot and draws bars, highlights and stats
//   - [DrawBars]: block-character bar chart for a single step
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Reshuffle and restart
//	A/Tab - Next algorithm
//	1-4   - Bubble, insertion, merge, quick
//	+/-   - Faster/slower
//	T     - Cycle color themes
//	?     - Show help overlay
package viz
