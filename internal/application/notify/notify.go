// Package notify implements the single-slot operation banner. One message is
// shown at a time; it stays visible for a configured duration, fades out for
// a short interval and then disappears. Posting while a banner is up
// replaces it and restarts the clock.
package notify

import (
	"sync"
	"time"
)

// Banner lifecycle states.
type State string

const (
	StateHidden    State = "hidden"
	StateVisible   State = "visible"
	StateFadingOut State = "fading_out"
)

// Message kinds.
const (
	KindSuccess = "success"
	KindError   = "error"
)

// Snapshot is the externally visible banner state.
type Snapshot struct {
	State   State  `json:"state"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message,omitempty"`
}

// Notifier runs the banner state machine. All transitions happen under the
// mutex; the generation counter discards timer callbacks that were scheduled
// before a newer message replaced them.
type Notifier struct {
	duration time.Duration
	fade     time.Duration

	mu      sync.Mutex
	state   State
	kind    string
	message string
	gen     uint64
	timer   *time.Timer
	onClose func()
}

func New(duration, fade time.Duration) *Notifier {
	return &Notifier{duration: duration, fade: fade, state: StateHidden}
}

// OnClose registers a callback fired whenever the banner finishes hiding,
// whether the fade ran out or Close was called. It runs on its own goroutine
// so it may call back into the Notifier.
func (n *Notifier) OnClose(fn func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.onClose = fn
}

// Notify shows a message with the default visible duration.
func (n *Notifier) Notify(kind, message string) {
	n.NotifyFor(kind, message, n.duration)
}

// NotifyFor shows a message that stays visible for the given duration before
// fading. An existing banner, whatever its phase, is replaced outright.
func (n *Notifier) NotifyFor(kind, message string, visible time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.stopTimerLocked()
	n.gen++
	n.state = StateVisible
	n.kind = kind
	n.message = message

	gen := n.gen
	n.timer = time.AfterFunc(visible, func() { n.startFade(gen) })
}

// Dismiss skips the remaining visible time and fades the banner now. Hidden
// or already-fading banners are left alone.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.state != StateVisible {
		return
	}
	n.stopTimerLocked()
	n.fadeLocked()
}

// Close hides the banner immediately, skipping the fade.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stopTimerLocked()
	n.gen++
	if n.state != StateHidden {
		n.hideLocked()
	}
}

// Snapshot returns the current banner state.
func (n *Notifier) Snapshot() Snapshot {
	n.mu.Lock()
	defer n.mu.Unlock()
	s := Snapshot{State: n.state}
	if n.state != StateHidden {
		s.Kind = n.kind
		s.Message = n.message
	}
	return s
}

func (n *Notifier) startFade(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if gen != n.gen || n.state != StateVisible {
		return
	}
	n.fadeLocked()
}

// fadeLocked transitions to fading and schedules the final hide.
func (n *Notifier) fadeLocked() {
	n.state = StateFadingOut
	gen := n.gen
	n.timer = time.AfterFunc(n.fade, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if gen != n.gen || n.state != StateFadingOut {
			return
		}
		n.hideLocked()
	})
}

func (n *Notifier) hideLocked() {
	n.state = StateHidden
	n.kind = ""
	n.message = ""
	if n.onClose != nil {
		go n.onClose()
	}
}

func (n *Notifier) stopTimerLocked() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
