package terminal

import "image/color"

const (
	// DEFAULT_ROWS is the default number of visible rows.
	DEFAULT_ROWS = 24
	// DEFAULT_COLS is the default number of columns.
	DEFAULT_COLS = 80
	// DEFAULT_SCROLLBACK is the default number of scrollback rows kept in
	// the buffer above the visible screen.
	DEFAULT_SCROLLBACK = 1000
)

// TaskbarState is the taskbar progress indicator state.
type TaskbarState int

const (
	TaskbarClear TaskbarState = iota
	TaskbarSet
	TaskbarIndeterminate
	TaskbarError
	TaskbarPaused
)

// TaskbarMinProgress is the floor applied when entering Error or Paused
// with no prior progress to show.
const TaskbarMinProgress = 10

// Terminal is the screen-state engine for one terminal session. It
// translates interpreter operations into mutations of a circularly
// addressed cell buffer while maintaining the mutable viewport onto it.
//
// All operations are synchronous and run to completion. The engine does
// no locking: the caller's single-threaded dispatch is the concurrency
// contract, one engine instance per session.
type Terminal struct {
	buffer          *ScreenBuffer
	mutableViewport Viewport
	scrollOffset    int

	rows       int
	cols       int
	scrollback int

	renderSettings *RenderSettings
	sgrStack       AttrStack

	taskbarState    TaskbarState
	taskbarProgress int

	title                    string
	suppressApplicationTitle bool
	workingDirectory         string
	bracketedPaste           bool
	defaultCursorShape       CursorShape
	pendingWrap              bool

	bellProvider      BellProvider
	titleProvider     TitleProvider
	clipboardProvider ClipboardProvider
	taskbarProvider   TaskbarProvider
	scrollProvider    ScrollProvider
	renderProvider    RenderProvider
}

// Option configures a Terminal during construction.
type Option func(*Terminal)

// WithSize sets the visible screen dimensions.
// Values <= 0 are replaced with defaults (24x80).
func WithSize(rows, cols int) Option {
	if rows <= 0 {
		rows = DEFAULT_ROWS
	}
	if cols <= 0 {
		cols = DEFAULT_COLS
	}
	return func(t *Terminal) {
		t.rows = rows
		t.cols = cols
	}
}

// WithScrollback sets how many rows of scrollback the buffer holds above
// the visible screen. Negative values are treated as zero.
func WithScrollback(rows int) Option {
	if rows < 0 {
		rows = 0
	}
	return func(t *Terminal) {
		t.scrollback = rows
	}
}

// WithBell sets the handler for bell events. Defaults to a no-op.
func WithBell(p BellProvider) Option {
	return func(t *Terminal) {
		t.bellProvider = p
	}
}

// WithTitle sets the handler for window title changes. Defaults to a no-op.
func WithTitle(p TitleProvider) Option {
	return func(t *Terminal) {
		t.titleProvider = p
	}
}

// WithClipboard sets the handler for clipboard copies. Defaults to a no-op.
func WithClipboard(p ClipboardProvider) Option {
	return func(t *Terminal) {
		t.clipboardProvider = p
	}
}

// WithTaskbar sets the handler for taskbar progress changes. Defaults to a no-op.
func WithTaskbar(p TaskbarProvider) Option {
	return func(t *Terminal) {
		t.taskbarProvider = p
	}
}

// WithScroll sets the handler for viewport relocation events. Defaults to a no-op.
func WithScroll(p ScrollProvider) Option {
	return func(t *Terminal) {
		t.scrollProvider = p
	}
}

// WithRender sets the handler for repaint triggers. Defaults to a no-op.
func WithRender(p RenderProvider) Option {
	return func(t *Terminal) {
		t.renderProvider = p
	}
}

// WithDefaultCursorShape sets the shape the UserDefault cursor style
// resolves to.
func WithDefaultCursorShape(shape CursorShape) Option {
	return func(t *Terminal) {
		t.defaultCursorShape = shape
	}
}

// WithSuppressApplicationTitle makes SetWindowTitle a no-op, pinning
// whatever title the embedder configured.
func WithSuppressApplicationTitle() Option {
	return func(t *Terminal) {
		t.suppressApplicationTitle = true
	}
}

// New creates a terminal with the given options. Defaults to 24x80 with
// 1000 rows of scrollback and the viewport at the top of the buffer.
func New(opts ...Option) *Terminal {
	t := &Terminal{
		rows:               DEFAULT_ROWS,
		cols:               DEFAULT_COLS,
		scrollback:         DEFAULT_SCROLLBACK,
		defaultCursorShape: CursorShapeLegacy,
		bellProvider:       NoopBell{},
		titleProvider:      NoopTitle{},
		clipboardProvider:  NoopClipboard{},
		taskbarProvider:    NoopTaskbar{},
		scrollProvider:     NoopScroll{},
		renderProvider:     NoopRender{},
	}

	for _, opt := range opts {
		opt(t)
	}

	t.buffer = NewScreenBuffer(t.cols, t.rows+t.scrollback)
	t.mutableViewport = ViewportFromDimensions(Coord{}, t.cols, t.rows)
	t.renderSettings = NewRenderSettings()

	return t
}

// Rows returns the visible screen height in rows.
func (t *Terminal) Rows() int { return t.rows }

// Cols returns the screen width in columns.
func (t *Terminal) Cols() int { return t.cols }

// Viewport returns a snapshot of the mutable viewport.
func (t *Terminal) Viewport() Viewport { return t.mutableViewport }

// Buffer returns the underlying screen buffer.
func (t *Terminal) Buffer() *ScreenBuffer { return t.buffer }

// RenderSettings returns the color table and render-mode state.
func (t *Terminal) RenderSettings() *RenderSettings { return t.renderSettings }

// CellAt returns the cell at the given viewport-relative position, or nil
// if outside the viewport.
func (t *Terminal) CellAt(x, y int) *Cell {
	pos := t.mutableViewport.FromOrigin(Coord{X: x, Y: y})
	if !t.mutableViewport.Contains(pos) {
		return nil
	}
	return t.buffer.CellAt(pos)
}

// RowText returns the trimmed text of a viewport-relative row.
func (t *Terminal) RowText(y int) string {
	if y < 0 || y >= t.mutableViewport.Height() {
		return ""
	}
	return t.buffer.RowText(t.mutableViewport.Top() + y)
}

// GetTextAttributes returns the buffer's current pen attributes.
func (t *Terminal) GetTextAttributes() TextAttribute {
	return t.buffer.CurrentAttributes()
}

// SetTextAttributes replaces the buffer's current pen attributes.
func (t *Terminal) SetTextAttributes(attr TextAttribute) {
	t.buffer.SetCurrentAttributes(attr)
}

// --- Session passthroughs ---

// WarningBell fires the bell handler.
func (t *Terminal) WarningBell() {
	t.bellProvider.Ring()
}

// SetWindowTitle stores the new title and notifies the title handler.
// No-op while application title changes are suppressed.
func (t *Terminal) SetWindowTitle(title string) {
	if t.suppressApplicationTitle {
		return
	}
	t.title = title
	t.titleProvider.TitleChanged(title)
}

// Title returns the current window title.
func (t *Terminal) Title() string { return t.title }

// CopyToClipboard forwards content to the clipboard handler.
func (t *Terminal) CopyToClipboard(content string) {
	t.clipboardProvider.CopyToClipboard(content)
}

// SetWorkingDirectory stores the shell-reported working directory.
func (t *Terminal) SetWorkingDirectory(uri string) {
	t.workingDirectory = uri
}

// WorkingDirectory returns the last reported working directory.
func (t *Terminal) WorkingDirectory() string { return t.workingDirectory }

// EnableXtermBracketedPasteMode toggles the bracketed paste flag.
func (t *Terminal) EnableXtermBracketedPasteMode(enabled bool) {
	t.bracketedPaste = enabled
}

// IsXtermBracketedPasteModeEnabled returns the bracketed paste flag.
func (t *Terminal) IsXtermBracketedPasteModeEnabled() bool {
	return t.bracketedPaste
}

// IsVtInputEnabled reports whether VT input mode applies to this engine.
// It never does: the query only makes sense for an interactive input
// context, and reaching it here is a caller-contract violation.
func (t *Terminal) IsVtInputEnabled() bool {
	panic("terminal: IsVtInputEnabled called on a screen-state engine")
}

// --- Color and render-mode state ---

// GetColorTableEntry returns the color at the given table index.
func (t *Terminal) GetColorTableEntry(index int) color.RGBA {
	return t.renderSettings.ColorTableEntry(index)
}

// SetColorTableEntry updates a color table slot and triggers a full
// redraw. Rewriting the entry backing the default background alias also
// fires the background-changed notification.
func (t *Terminal) SetColorTableEntry(index int, c color.RGBA) {
	t.renderSettings.SetColorTableEntry(index, c)

	if index == t.renderSettings.ColorAliasIndex(AliasDefaultBackground) {
		t.renderProvider.BackgroundColorChanged(c)
	}

	// Repaint everything - the colors might have changed
	t.renderProvider.TriggerRedrawAll()
}

// SetColorTableEntryFromSpec parses an OSC-style color specification
// ("rgb:RR/GG/BB", "#RRGGBB", or an X11 name) and applies it via
// SetColorTableEntry. Returns false without mutating on an unparseable
// spec.
func (t *Terminal) SetColorTableEntryFromSpec(index int, spec string) bool {
	c, ok := ParseColorSpec(spec)
	if !ok {
		return false
	}
	t.SetColorTableEntry(index, c)
	return true
}

// SetColorAliasIndex repoints a color alias at a different table slot.
// No redraw is implied; callers pair this with an entry write when needed.
func (t *Terminal) SetColorAliasIndex(alias ColorAlias, index int) {
	t.renderSettings.SetColorAliasIndex(alias, index)
}

// SetRenderMode enables or disables a render-mode flag and triggers a
// full redraw.
func (t *Terminal) SetRenderMode(mode RenderMode, enabled bool) {
	t.renderSettings.SetRenderMode(mode, enabled)

	// Repaint everything - the colors will have changed
	t.renderProvider.TriggerRedrawAll()
}

// --- Cursor presentation ---

// SetCursorStyle maps the style selector to a (shape, blink-allowed)
// pair. UserDefault resolves the shape via the configured default and
// always allows blinking. Unknown styles are ignored.
func (t *Terminal) SetCursorStyle(style CursorStyle) {
	shape := CursorShapeLegacy
	shouldBlink := false

	switch style {
	case CursorStyleUserDefault:
		shape = t.defaultCursorShape
		shouldBlink = true
	case CursorStyleBlinkingBlock:
		shape = CursorShapeFullBox
		shouldBlink = true
	case CursorStyleSteadyBlock:
		shape = CursorShapeFullBox
	case CursorStyleBlinkingUnderline:
		shape = CursorShapeUnderscore
		shouldBlink = true
	case CursorStyleSteadyUnderline:
		shape = CursorShapeUnderscore
	case CursorStyleBlinkingBar:
		shape = CursorShapeVerticalBar
		shouldBlink = true
	case CursorStyleSteadyBar:
		shape = CursorShapeVerticalBar
	default:
		// Invalid argument should be ignored.
		return
	}

	cursor := t.buffer.Cursor()
	cursor.Shape = shape
	cursor.BlinkingAllowed = shouldBlink
}

// SetCursorVisibility shows or hides the cursor.
func (t *Terminal) SetCursorVisibility(visible bool) {
	t.buffer.Cursor().Visible = visible
}

// EnableCursorBlinking toggles blinking. When blinking is disabled the
// cursor stays on; only visibility controls whether the user sees it.
func (t *Terminal) EnableCursorBlinking(enable bool) {
	cursor := t.buffer.Cursor()
	cursor.BlinkingAllowed = enable
	cursor.IsOn = true
}

// --- Hyperlinks ---

// AddHyperlink starts a hyperlink: it resolves a stable id for the
// (uri, params) pair, sets it on the current attributes, and registers
// the mapping for the renderer to dereference.
func (t *Terminal) AddHyperlink(uri, params string) {
	attr := t.buffer.CurrentAttributes()
	id := t.buffer.GetHyperlinkID(uri, params)
	attr.HyperlinkID = id
	t.buffer.SetCurrentAttributes(attr)
	t.buffer.AddHyperlinkToMap(uri, id)
}

// EndHyperlink clears the hyperlink id on the current attributes.
func (t *Terminal) EndHyperlink() {
	attr := t.buffer.CurrentAttributes()
	attr.HyperlinkID = 0
	t.buffer.SetCurrentAttributes(attr)
}

// --- Taskbar progress ---

// SetTaskbarProgress runs the taskbar state machine. The state is always
// overwritten; the progress value depends on the transition:
// Clear forces 0, Set forces the given value, Indeterminate leaves it
// unchanged, and Error/Paused keep the prior value unless there is none,
// in which case a minimum floor is shown. The change notification fires
// after every transition.
func (t *Terminal) SetTaskbarProgress(state TaskbarState, progress int) {
	t.taskbarState = state

	switch state {
	case TaskbarClear:
		t.taskbarProgress = 0
	case TaskbarSet:
		t.taskbarProgress = progress
	case TaskbarIndeterminate:
		// Leave the progress value unchanged.
	case TaskbarError, TaskbarPaused:
		if progress == 0 {
			if t.taskbarProgress == 0 {
				t.taskbarProgress = TaskbarMinProgress
			}
		} else {
			t.taskbarProgress = progress
		}
	}

	t.taskbarProvider.TaskbarProgressChanged(t.taskbarState, t.taskbarProgress)
}

// TaskbarState returns the current taskbar state.
func (t *Terminal) TaskbarState() TaskbarState { return t.taskbarState }

// TaskbarProgress returns the current taskbar progress value.
func (t *Terminal) TaskbarProgress() int { return t.taskbarProgress }

// --- SGR stack ---

// PushGraphicsRendition saves the current attributes, or the selected
// fields of them, to the SGR stack.
func (t *Terminal) PushGraphicsRendition(selector AttrSelector) {
	t.sgrStack.Push(t.buffer.CurrentAttributes(), selector)
}

// PopGraphicsRendition restores attributes from the SGR stack, merging
// partial snapshots onto the current attributes. Popping an empty stack
// leaves the attributes unchanged.
func (t *Terminal) PopGraphicsRendition() {
	current := t.buffer.CurrentAttributes()
	t.buffer.SetCurrentAttributes(t.sgrStack.Pop(current))
}

// --- Scroll offset ---

// ScrollOffset returns the user's scroll distance above the live
// viewport, in rows. Zero means the live screen is visible.
func (t *Terminal) ScrollOffset() int { return t.scrollOffset }

// UserScrollViewport scrolls the user's view so that viewTop is the
// topmost visible buffer row. The offset is clamped so the user cannot
// scroll below the live viewport or above the top of the buffer.
func (t *Terminal) UserScrollViewport(viewTop int) {
	if viewTop < 0 {
		viewTop = 0
	}
	offset := t.mutableViewport.Top() - viewTop
	if offset < 0 {
		offset = 0
	}
	t.scrollOffset = offset
	t.notifyScroll()
}

// notifyScroll fires the scroll handler with the current viewport
// placement. Viewport relocation always completes before this runs so
// consumers can query state immediately.
func (t *Terminal) notifyScroll() {
	t.scrollProvider.ScrollPositionChanged(
		t.mutableViewport.Top(),
		t.mutableViewport.Height(),
		t.buffer.Height(),
	)
}

// --- Provider accessors ---

// SetBellProvider replaces the bell handler at runtime.
func (t *Terminal) SetBellProvider(p BellProvider) { t.bellProvider = p }

// BellProvider returns the current bell handler.
func (t *Terminal) BellProvider() BellProvider { return t.bellProvider }

// SetTitleProvider replaces the title handler at runtime.
func (t *Terminal) SetTitleProvider(p TitleProvider) { t.titleProvider = p }

// TitleProvider returns the current title handler.
func (t *Terminal) TitleProvider() TitleProvider { return t.titleProvider }

// SetClipboardProvider replaces the clipboard handler at runtime.
func (t *Terminal) SetClipboardProvider(p ClipboardProvider) { t.clipboardProvider = p }

// ClipboardProvider returns the current clipboard handler.
func (t *Terminal) ClipboardProvider() ClipboardProvider { return t.clipboardProvider }

// SetTaskbarProvider replaces the taskbar handler at runtime.
func (t *Terminal) SetTaskbarProvider(p TaskbarProvider) { t.taskbarProvider = p }

// TaskbarProvider returns the current taskbar handler.
func (t *Terminal) TaskbarProvider() TaskbarProvider { return t.taskbarProvider }

// SetScrollProvider replaces the scroll handler at runtime.
func (t *Terminal) SetScrollProvider(p ScrollProvider) { t.scrollProvider = p }

// ScrollProvider returns the current scroll handler.
func (t *Terminal) ScrollProvider() ScrollProvider { return t.scrollProvider }

// SetRenderProvider replaces the render handler at runtime.
func (t *Terminal) SetRenderProvider(p RenderProvider) { t.renderProvider = p }

// RenderProvider returns the current render handler.
func (t *Terminal) RenderProvider() RenderProvider { return t.renderProvider }
