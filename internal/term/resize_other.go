//go:build !unix

package term

// ResizeEvent reports a new terminal size in cells.
type ResizeEvent struct {
	Width  int
	Height int
}

// ResizeWatcher is a no-op on platforms without SIGWINCH.
type ResizeWatcher struct {
	eventCh chan ResizeEvent
}

func NewResizeWatcher() *ResizeWatcher {
	return &ResizeWatcher{eventCh: make(chan ResizeEvent)}
}

func (r *ResizeWatcher) Start() {}

func (r *ResizeWatcher) Stop() {}

func (r *ResizeWatcher) Events() <-chan ResizeEvent { return r.eventCh }
