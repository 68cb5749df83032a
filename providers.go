package terminal

import (
	"image/color"

	"github.com/atotto/clipboard"
)

// The engine reports side effects through small observer interfaces
// injected at construction. Firing one is a synchronous call with no
// return value; implementations must not call back into the engine.

// --- Bell Provider ---

// BellProvider handles the warning bell.
type BellProvider interface {
	// Ring is called when the application sounds the bell.
	Ring()
}

// NoopBell ignores all bell events.
type NoopBell struct{}

func (NoopBell) Ring() {}

// --- Title Provider ---

// TitleProvider handles window title changes.
type TitleProvider interface {
	// TitleChanged is called with the new title.
	TitleChanged(title string)
}

// NoopTitle ignores all title changes.
type NoopTitle struct{}

func (NoopTitle) TitleChanged(title string) {}

// --- Clipboard Provider ---

// ClipboardProvider receives text the application copies to the clipboard.
type ClipboardProvider interface {
	// CopyToClipboard is called with the content to store.
	CopyToClipboard(content string)
}

// NoopClipboard ignores all clipboard writes.
type NoopClipboard struct{}

func (NoopClipboard) CopyToClipboard(content string) {}

// SystemClipboard stores copied content on the OS clipboard.
//
// Example:
//
//	term := terminal.New(terminal.WithClipboard(terminal.SystemClipboard{}))
type SystemClipboard struct{}

// CopyToClipboard writes the content to the OS clipboard. Errors from the
// platform clipboard are dropped; a failed copy has no one to report to.
func (SystemClipboard) CopyToClipboard(content string) {
	_ = clipboard.WriteAll(content)
}

// --- Taskbar Provider ---

// TaskbarProvider mirrors taskbar progress updates to an OS-level
// indicator. Called after every transition, even when progress is
// unchanged.
type TaskbarProvider interface {
	TaskbarProgressChanged(state TaskbarState, progress int)
}

// NoopTaskbar ignores all taskbar updates.
type NoopTaskbar struct{}

func (NoopTaskbar) TaskbarProgressChanged(state TaskbarState, progress int) {}

// --- Scroll Provider ---

// ScrollProvider is notified when the viewport moves. Consumers may query
// viewport and cursor state immediately: relocation, including circular
// buffer rotation, completes before the notification fires.
type ScrollProvider interface {
	ScrollPositionChanged(viewTop, viewHeight, bufferHeight int)
}

// NoopScroll ignores all scroll notifications.
type NoopScroll struct{}

func (NoopScroll) ScrollPositionChanged(viewTop, viewHeight, bufferHeight int) {}

// --- Render Provider ---

// RenderProvider receives repaint triggers. TriggerRedrawAll is fired on
// any color table or render-mode change; it is unconditional and
// idempotent, never a diffed update.
type RenderProvider interface {
	TriggerRedrawAll()
	// BackgroundColorChanged fires when the table entry backing the
	// default background alias is rewritten, in addition to the redraw.
	BackgroundColorChanged(c color.RGBA)
}

// NoopRender ignores all repaint triggers.
type NoopRender struct{}

func (NoopRender) TriggerRedrawAll()                    {}
func (NoopRender) BackgroundColorChanged(c color.RGBA) {}

// Ensure implementations satisfy their interfaces
var _ BellProvider = NoopBell{}
var _ TitleProvider = NoopTitle{}
var _ ClipboardProvider = NoopClipboard{}
var _ ClipboardProvider = SystemClipboard{}
var _ TaskbarProvider = NoopTaskbar{}
var _ ScrollProvider = NoopScroll{}
var _ RenderProvider = NoopRender{}
