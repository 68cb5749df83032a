// Package terminal implements the screen-state engine of a terminal
// emulator: the component that turns interpreter operations (cursor
// moves, character insert/delete, erase, attribute save/restore, color
// table and taskbar updates, hyperlink tagging) into mutations of a
// scrollable, circularly addressed cell buffer behind a movable viewport.
//
// The escape-sequence parser, the renderer, and input handling live
// outside this package. An interpreter calls the engine's operations with
// viewport-relative coordinates; the engine resolves absolute buffer
// positions, mutates cells, and reports side effects through injected
// observers.
//
// # Quick Start
//
//	term := terminal.New(terminal.WithSize(24, 80))
//	term.PrintString("Hello, world")
//	term.SetCursorPosition(0, 0)
//	term.InsertCharacter(2)
//	fmt.Println(term.RowText(0)) // "  Hello, world"
//
// # Coordinates
//
// Every operation accepts and reports coordinates relative to the
// mutable viewport's origin. Internally the cursor is buffer-absolute;
// [Viewport] values do the translation and out-of-range inputs are
// clamped, never rejected.
//
// # Scrollback and erase
//
// The buffer is a circular arena: the visible screen is wherever the
// mutable viewport points. Erasing the display does not zero memory —
// [Terminal.EraseInDisplay] with [EraseAll] relocates the viewport below
// the written content so the old screen becomes scrollback, rotating the
// arena when the window would run off its end. [EraseScrollback] rotates
// the visible rows back to the top and blanks what the rotation left
// behind.
//
// # Observers
//
// Side effects (bell, title, redraw, background color, taskbar progress,
// scroll) are delivered through provider interfaces passed at
// construction:
//
//	term := terminal.New(
//	    terminal.WithBell(myBell),
//	    terminal.WithScroll(myScrollbar),
//	    terminal.WithClipboard(terminal.SystemClipboard{}),
//	)
//
// # Concurrency
//
// The engine is single-threaded and does no locking. It assumes one
// interpreter context per session drives it; every operation runs to
// completion before returning, and observers are called synchronously.
package terminal
