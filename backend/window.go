package backend

import "github.com/gogpu/blit"

// Window is the opaque OS-level surface handle a Backend renders into.
// Window-system integration lives in the host application; this core
// only needs the drawable size and, for CPU backends, a place to put
// finished pixels.
type Window interface {
	// Size returns the current drawable size in pixels.
	Size() (width, height int)
}

// PixmapPresenter is an optional Window interface for CPU presentation.
// The software backend hands the fully composited frame to Present;
// a windowed host blits it to the screen, an offscreen host keeps it.
type PixmapPresenter interface {
	// Present delivers one finished frame. The pixmap is owned by the
	// backend and only valid for the duration of the call.
	Present(frame *blit.Pixmap) error
}

// OffscreenWindow is a headless Window: it has a size and retains the
// last presented frame. It is the target for tests, tools and
// server-side rendering.
type OffscreenWindow struct {
	width  int
	height int
	frame  *blit.Pixmap
}

// NewOffscreenWindow creates a headless window of the given size.
func NewOffscreenWindow(width, height int) *OffscreenWindow {
	return &OffscreenWindow{width: width, height: height}
}

// Size returns the current drawable size in pixels.
func (w *OffscreenWindow) Size() (int, int) {
	return w.width, w.height
}

// SetSize changes the drawable size. The owning Backend must be told
// via Backend.Resize; OffscreenWindow does not notify it.
func (w *OffscreenWindow) SetSize(width, height int) {
	w.width = width
	w.height = height
}

// Present retains a copy of the finished frame.
func (w *OffscreenWindow) Present(frame *blit.Pixmap) error {
	if frame == nil {
		return nil
	}
	if w.frame == nil || w.frame.Width() != frame.Width() || w.frame.Height() != frame.Height() {
		w.frame = blit.NewPixmap(frame.Width(), frame.Height())
	}
	copy(w.frame.Data(), frame.Data())
	return nil
}

// Frame returns the last presented frame, or nil if none was presented.
func (w *OffscreenWindow) Frame() *blit.Pixmap {
	return w.frame
}
