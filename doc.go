// Package vtcore implements the core of a VT102/xterm-compatible terminal
// emulator: UTF-8 decoding, the escape-sequence parser (C0/C1, CSI, OSC,
// DCS/APC/PM, and single-character ESC commands), and the two-dimensional
// grid of styled cells and cursor state that the parser drives.
//
// # Scope
//
// vtcore owns only the state machine: decode bytes arriving from a child
// process's pseudo-terminal, update a [Terminal]'s grid, and produce reply
// bytes the host writes back to the pty (device-attribute replies,
// cursor-position reports, mouse reports). Everything else — spawning the
// child, the pty syscalls, drawing pixels, loading a colour palette from a
// config file — is the host's job, reached through the interfaces in
// callbacks.go.
//
// # Quick start
//
//	term := vtcore.New(vtcore.WithSize(80, 24))
//	term.Feed([]byte("\x1b[31mHello\x1b[0m\n"))
//	fmt.Println(term.LineText(0))
//
// # Architecture
//
//   - [Terminal]: owns both screens, the cursor, and the parser state
//   - [Grid]: rows×cols array of [Cell], dirty-row tracking, tab stops
//   - [Cell]: one glyph, its attribute bitmask, and its fg/bg colour indices
//   - [Cursor]: position, pen, wrap/origin state
//
// # Dual screens
//
// A Terminal keeps a primary and an alternate [Grid]; full-screen programs
// (vim, less, htop) switch to the alternate one via CSI ?1049h and back via
// CSI ?1049l. [Terminal.IsAltScreen] reports which is active.
//
// # Host callbacks
//
// A [HostCallbacks] implementation supplies bell, title, palette, and
// cursor-visibility notifications; [NopCallbacks] is the default. A
// [ScrollbackStore] receives rows pushed off the top of the primary screen,
// letting a host retain history the core itself never re-reads.
//
// # Thread model
//
// Terminal is not reentrant: [Terminal.Feed] must be called from a single
// goroutine (typically the one reading the pty fd). Read accessors take an
// internal mutex so a renderer may call them from a second goroutine between
// Feed calls, matching the single-threaded event-loop model the type is
// designed for.
package vtcore
