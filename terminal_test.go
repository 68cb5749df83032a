package terminal

import (
	"image/color"
	"testing"
)

type bellRecorder struct{ rings int }

func (r *bellRecorder) Ring() { r.rings++ }

type titleRecorder struct{ titles []string }

func (r *titleRecorder) TitleChanged(title string) { r.titles = append(r.titles, title) }

type clipboardRecorder struct{ content string }

func (r *clipboardRecorder) CopyToClipboard(content string) { r.content = content }

type taskbarRecorder struct {
	calls    int
	state    TaskbarState
	progress int
}

func (r *taskbarRecorder) TaskbarProgressChanged(state TaskbarState, progress int) {
	r.calls++
	r.state = state
	r.progress = progress
}

type renderRecorder struct {
	redraws   int
	bgChanges []color.RGBA
}

func (r *renderRecorder) TriggerRedrawAll() { r.redraws++ }

func (r *renderRecorder) BackgroundColorChanged(c color.RGBA) {
	r.bgChanges = append(r.bgChanges, c)
}

func TestNewDefaults(t *testing.T) {
	term := New()

	if term.Rows() != DEFAULT_ROWS || term.Cols() != DEFAULT_COLS {
		t.Errorf("expected %dx%d, got %dx%d", DEFAULT_ROWS, DEFAULT_COLS, term.Rows(), term.Cols())
	}
	if got := term.Buffer().Height(); got != DEFAULT_ROWS+DEFAULT_SCROLLBACK {
		t.Errorf("expected buffer height %d, got %d", DEFAULT_ROWS+DEFAULT_SCROLLBACK, got)
	}
	view := term.Viewport()
	if view.Top() != 0 || view.Height() != DEFAULT_ROWS || view.Width() != DEFAULT_COLS {
		t.Errorf("expected viewport at the top of the buffer, got %+v", view)
	}
	if term.ScrollOffset() != 0 {
		t.Errorf("expected zero scroll offset, got %d", term.ScrollOffset())
	}
	if term.Title() != "" {
		t.Errorf("expected empty title, got %q", term.Title())
	}
}

func TestWithSizeRejectsInvalid(t *testing.T) {
	term := New(WithSize(-1, 0))
	if term.Rows() != DEFAULT_ROWS || term.Cols() != DEFAULT_COLS {
		t.Errorf("expected defaults for invalid size, got %dx%d", term.Rows(), term.Cols())
	}
}

func TestSetTaskbarProgress(t *testing.T) {
	taskbar := &taskbarRecorder{}
	term := New(WithTaskbar(taskbar))

	steps := []struct {
		state        TaskbarState
		arg          int
		wantProgress int
	}{
		{TaskbarSet, 50, 50},
		{TaskbarIndeterminate, 0, 50}, // progress untouched
		{TaskbarClear, 0, 0},
		{TaskbarError, 0, TaskbarMinProgress}, // nothing to show, floor applies
		{TaskbarError, 0, TaskbarMinProgress}, // prior value sticks
		{TaskbarClear, 0, 0},
		{TaskbarPaused, 0, TaskbarMinProgress},
		{TaskbarSet, 30, 30},
		{TaskbarError, 0, 30}, // keep the prior value
		{TaskbarError, 75, 75},
	}

	for i, step := range steps {
		term.SetTaskbarProgress(step.state, step.arg)
		if term.TaskbarState() != step.state {
			t.Errorf("step %d: expected state %v, got %v", i, step.state, term.TaskbarState())
		}
		if term.TaskbarProgress() != step.wantProgress {
			t.Errorf("step %d: expected progress %d, got %d", i, step.wantProgress, term.TaskbarProgress())
		}
		if taskbar.calls != i+1 {
			t.Errorf("step %d: notification should fire on every transition, got %d calls", i, taskbar.calls)
		}
		if taskbar.state != step.state || taskbar.progress != step.wantProgress {
			t.Errorf("step %d: notification saw (%v, %d), expected (%v, %d)",
				i, taskbar.state, taskbar.progress, step.state, step.wantProgress)
		}
	}
}

func TestSetWindowTitle(t *testing.T) {
	title := &titleRecorder{}
	term := New(WithTitle(title))

	term.SetWindowTitle("vim")
	if term.Title() != "vim" {
		t.Errorf("expected title %q, got %q", "vim", term.Title())
	}
	if len(title.titles) != 1 || title.titles[0] != "vim" {
		t.Errorf("expected one notification with %q, got %v", "vim", title.titles)
	}
}

func TestSetWindowTitleSuppressed(t *testing.T) {
	title := &titleRecorder{}
	term := New(WithTitle(title), WithSuppressApplicationTitle())

	term.SetWindowTitle("vim")
	if term.Title() != "" {
		t.Errorf("suppressed title change mutated the title: %q", term.Title())
	}
	if len(title.titles) != 0 {
		t.Errorf("suppressed title change fired a notification: %v", title.titles)
	}
}

func TestWarningBell(t *testing.T) {
	bell := &bellRecorder{}
	term := New(WithBell(bell))

	term.WarningBell()
	term.WarningBell()
	if bell.rings != 2 {
		t.Errorf("expected 2 rings, got %d", bell.rings)
	}
}

func TestCopyToClipboard(t *testing.T) {
	clip := &clipboardRecorder{}
	term := New(WithClipboard(clip))

	term.CopyToClipboard("payload")
	if clip.content != "payload" {
		t.Errorf("expected %q, got %q", "payload", clip.content)
	}
}

func TestBracketedPasteMode(t *testing.T) {
	term := New()

	if term.IsXtermBracketedPasteModeEnabled() {
		t.Errorf("expected bracketed paste off by default")
	}
	term.EnableXtermBracketedPasteMode(true)
	if !term.IsXtermBracketedPasteModeEnabled() {
		t.Errorf("expected bracketed paste enabled")
	}
	term.EnableXtermBracketedPasteMode(false)
	if term.IsXtermBracketedPasteModeEnabled() {
		t.Errorf("expected bracketed paste disabled")
	}
}

func TestWorkingDirectory(t *testing.T) {
	term := New()

	term.SetWorkingDirectory("file://host/home/user")
	if got := term.WorkingDirectory(); got != "file://host/home/user" {
		t.Errorf("expected working directory back, got %q", got)
	}
}

func TestIsVtInputEnabledPanics(t *testing.T) {
	term := New()

	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic")
		}
	}()
	term.IsVtInputEnabled()
}

func TestSetColorTableEntry(t *testing.T) {
	render := &renderRecorder{}
	term := New(WithRender(render))

	red := color.RGBA{R: 255, A: 255}
	term.SetColorTableEntry(3, red)

	if got := term.GetColorTableEntry(3); got != red {
		t.Errorf("expected %v, got %v", red, got)
	}
	if render.redraws != 1 {
		t.Errorf("expected a redraw, got %d", render.redraws)
	}
	if len(render.bgChanges) != 0 {
		t.Errorf("a palette write must not report a background change: %v", render.bgChanges)
	}
}

func TestSetColorTableEntryBackground(t *testing.T) {
	render := &renderRecorder{}
	term := New(WithRender(render))

	blue := color.RGBA{B: 200, A: 255}
	term.SetColorTableEntry(NamedColorBackground, blue)

	if len(render.bgChanges) != 1 || render.bgChanges[0] != blue {
		t.Errorf("expected a background-changed notification with %v, got %v", blue, render.bgChanges)
	}

	// Repoint the alias; writes to the new slot now count as background.
	term.SetColorAliasIndex(AliasDefaultBackground, 5)
	redrawsAfterRepoint := render.redraws

	green := color.RGBA{G: 200, A: 255}
	term.SetColorTableEntry(5, green)

	if len(render.bgChanges) != 2 || render.bgChanges[1] != green {
		t.Errorf("expected a second background-changed notification with %v, got %v", green, render.bgChanges)
	}
	if render.redraws != redrawsAfterRepoint+1 {
		t.Errorf("repointing the alias alone must not redraw")
	}
}

func TestSetColorTableEntryFromSpec(t *testing.T) {
	render := &renderRecorder{}
	term := New(WithRender(render))

	if !term.SetColorTableEntryFromSpec(4, "red") {
		t.Fatalf("expected %q to parse", "red")
	}
	if got := term.GetColorTableEntry(4); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("expected red, got %v", got)
	}
	redraws := render.redraws

	if term.SetColorTableEntryFromSpec(4, "not-a-color") {
		t.Errorf("expected an unparseable spec to be rejected")
	}
	if render.redraws != redraws {
		t.Errorf("a rejected spec must not redraw")
	}
	if got := term.GetColorTableEntry(4); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("a rejected spec mutated the entry: %v", got)
	}
}

func TestSetRenderMode(t *testing.T) {
	render := &renderRecorder{}
	term := New(WithRender(render))

	term.SetRenderMode(RenderModeScreenReversed, true)
	if !term.RenderSettings().HasRenderMode(RenderModeScreenReversed) {
		t.Errorf("expected screen-reversed enabled")
	}
	if render.redraws != 1 {
		t.Errorf("expected a redraw, got %d", render.redraws)
	}
}

func TestSetCursorStyle(t *testing.T) {
	cases := []struct {
		style     CursorStyle
		wantShape CursorShape
		wantBlink bool
	}{
		{CursorStyleUserDefault, CursorShapeLegacy, true},
		{CursorStyleBlinkingBlock, CursorShapeFullBox, true},
		{CursorStyleSteadyBlock, CursorShapeFullBox, false},
		{CursorStyleBlinkingUnderline, CursorShapeUnderscore, true},
		{CursorStyleSteadyUnderline, CursorShapeUnderscore, false},
		{CursorStyleBlinkingBar, CursorShapeVerticalBar, true},
		{CursorStyleSteadyBar, CursorShapeVerticalBar, false},
	}

	for _, c := range cases {
		term := New()
		term.SetCursorStyle(c.style)
		cursor := term.Buffer().Cursor()
		if cursor.Shape != c.wantShape || cursor.BlinkingAllowed != c.wantBlink {
			t.Errorf("style %v: expected (%v, %v), got (%v, %v)",
				c.style, c.wantShape, c.wantBlink, cursor.Shape, cursor.BlinkingAllowed)
		}
	}
}

func TestSetCursorStyleUserDefaultShape(t *testing.T) {
	term := New(WithDefaultCursorShape(CursorShapeUnderscore))
	term.SetCursorStyle(CursorStyleUserDefault)

	cursor := term.Buffer().Cursor()
	if cursor.Shape != CursorShapeUnderscore || !cursor.BlinkingAllowed {
		t.Errorf("expected the configured default shape with blinking, got (%v, %v)",
			cursor.Shape, cursor.BlinkingAllowed)
	}
}

func TestSetCursorStyleIgnoresUnknown(t *testing.T) {
	term := New()
	term.SetCursorStyle(CursorStyleBlinkingBar)

	term.SetCursorStyle(CursorStyle(99))

	cursor := term.Buffer().Cursor()
	if cursor.Shape != CursorShapeVerticalBar || !cursor.BlinkingAllowed {
		t.Errorf("an unknown style must leave the cursor unchanged, got (%v, %v)",
			cursor.Shape, cursor.BlinkingAllowed)
	}
}

func TestSetCursorVisibility(t *testing.T) {
	term := New()

	term.SetCursorVisibility(false)
	if term.Buffer().Cursor().Visible {
		t.Errorf("expected the cursor hidden")
	}
	term.SetCursorVisibility(true)
	if !term.Buffer().Cursor().Visible {
		t.Errorf("expected the cursor visible")
	}
}

func TestEnableCursorBlinking(t *testing.T) {
	term := New()
	term.Buffer().Cursor().IsOn = false

	term.EnableCursorBlinking(false)

	cursor := term.Buffer().Cursor()
	if cursor.BlinkingAllowed {
		t.Errorf("expected blinking disabled")
	}
	if !cursor.IsOn {
		t.Errorf("a non-blinking cursor must be forced on")
	}
}

func TestHyperlinks(t *testing.T) {
	term := New(WithSize(2, 10), WithScrollback(0))

	term.AddHyperlink("https://example.com", "")
	if got := term.GetTextAttributes().HyperlinkID; got != 1 {
		t.Errorf("expected hyperlink id 1, got %d", got)
	}

	term.PrintString("link")
	if got := term.CellAt(0, 0).Attr.HyperlinkID; got != 1 {
		t.Errorf("written cells should carry the hyperlink id, got %d", got)
	}

	term.EndHyperlink()
	if got := term.GetTextAttributes().HyperlinkID; got != 0 {
		t.Errorf("expected hyperlink id cleared, got %d", got)
	}

	term.AddHyperlink("https://example.com", "")
	if got := term.GetTextAttributes().HyperlinkID; got != 1 {
		t.Errorf("the same uri should keep its id, got %d", got)
	}
	term.AddHyperlink("https://other.example", "")
	if got := term.GetTextAttributes().HyperlinkID; got != 2 {
		t.Errorf("a new uri should get the next id, got %d", got)
	}

	if uri := term.Buffer().HyperlinkURIByID(1); uri != "https://example.com" {
		t.Errorf("expected uri back, got %q", uri)
	}
}

func TestPushPopGraphicsRendition(t *testing.T) {
	term := New()

	attr := term.GetTextAttributes()
	attr.Flags = AttrBold
	attr.Foreground = IndexedColor(1)
	term.SetTextAttributes(attr)

	term.PushGraphicsRendition(SelectAll)

	changed := attr
	changed.Flags = AttrItalic
	changed.Foreground = IndexedColor(2)
	term.SetTextAttributes(changed)

	term.PopGraphicsRendition()
	if got := term.GetTextAttributes(); got != attr {
		t.Errorf("full pop should restore wholesale: expected %+v, got %+v", attr, got)
	}
}

func TestPushPopGraphicsRenditionPartial(t *testing.T) {
	term := New()

	attr := term.GetTextAttributes()
	attr.Foreground = IndexedColor(1)
	term.SetTextAttributes(attr)

	term.PushGraphicsRendition(SelectForeground)

	changed := attr
	changed.Foreground = IndexedColor(2)
	changed.Flags = AttrUnderline
	term.SetTextAttributes(changed)

	term.PopGraphicsRendition()
	got := term.GetTextAttributes()
	if got.Foreground != IndexedColor(1) {
		t.Errorf("selected foreground should be restored, got %v", got.Foreground)
	}
	if !got.HasFlag(AttrUnderline) {
		t.Errorf("unselected flags should keep their current values")
	}
}

func TestPopGraphicsRenditionEmptyStack(t *testing.T) {
	term := New()

	attr := term.GetTextAttributes()
	attr.Flags = AttrReverse
	term.SetTextAttributes(attr)

	term.PopGraphicsRendition()
	if got := term.GetTextAttributes(); got != attr {
		t.Errorf("popping an empty stack must leave the attributes unchanged, got %+v", got)
	}
}

func TestProviderAccessors(t *testing.T) {
	term := New()

	bell := &bellRecorder{}
	term.SetBellProvider(bell)
	if term.BellProvider() != bell {
		t.Errorf("expected the replaced bell provider back")
	}
	term.WarningBell()
	if bell.rings != 1 {
		t.Errorf("expected the replaced provider to receive events")
	}

	clip := &clipboardRecorder{}
	term.SetClipboardProvider(clip)
	term.CopyToClipboard("x")
	if clip.content != "x" {
		t.Errorf("expected the replaced clipboard provider to receive events")
	}
}
