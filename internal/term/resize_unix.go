//go:build unix

package term

import (
	"os"
	"os/signal"
	"syscall"
)

// ResizeEvent reports a new terminal size in cells.
type ResizeEvent struct {
	Width  int
	Height int
}

// ResizeWatcher delivers terminal resize events via SIGWINCH.
type ResizeWatcher struct {
	sigCh   chan os.Signal
	eventCh chan ResizeEvent
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewResizeWatcher creates a watcher; call Start to begin listening.
func NewResizeWatcher() *ResizeWatcher {
	return &ResizeWatcher{
		sigCh:   make(chan os.Signal, 1),
		eventCh: make(chan ResizeEvent, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Start begins listening for SIGWINCH.
func (r *ResizeWatcher) Start() {
	signal.Notify(r.sigCh, syscall.SIGWINCH)
	go r.watch()
}

// Stop unregisters the signal handler and waits for the watch loop to exit.
func (r *ResizeWatcher) Stop() {
	signal.Stop(r.sigCh)
	close(r.stopCh)
	<-r.doneCh
}

// Events returns the resize event channel. Only the most recent unconsumed
// event is retained.
func (r *ResizeWatcher) Events() <-chan ResizeEvent {
	return r.eventCh
}

func (r *ResizeWatcher) watch() {
	defer close(r.doneCh)
	for {
		select {
		case <-r.stopCh:
			return
		case <-r.sigCh:
			w, h := Size()
			ev := ResizeEvent{Width: w, Height: h}
			select {
			case r.eventCh <- ev:
			default:
				// Drop the stale event, keep the newest.
				select {
				case <-r.eventCh:
				default:
				}
				r.eventCh <- ev
			}
		}
	}
}
