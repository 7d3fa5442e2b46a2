// Package host connects the motion and timeline cores to a page: it owns
// the page's event subscriptions and the animation frame loop.
package host

import "errors"

var ErrScopeClosed = errors.New("scope closed")

// Event is a DOM event reduced to the fields the cores read.
type Event struct {
	Type    string
	Key     string
	X, Y    float64
	Matches bool
	// Interactive is set when the event's target is a control that handles
	// keys itself, such as a link or a form field.
	Interactive bool
	// Prevent suppresses the browser's default action and Stop keeps the
	// event from reaching enclosing elements. Either may be nil.
	Prevent func()
	Stop    func()
}

func (e Event) preventDefault() {
	if e.Prevent != nil {
		e.Prevent()
	}
}

func (e Event) stopPropagation() {
	if e.Stop != nil {
		e.Stop()
	}
}

// Listener handles one event.
type Listener func(Event)

// EventTarget is anything listeners can be attached to.
type EventTarget interface {
	Listen(event string, fn Listener) (release func())
}

// Scope collects subscriptions and releases them together.
type Scope struct {
	releases []func()
	closed   bool
}

// Listen subscribes fn to event on t for the lifetime of the scope.
func (s *Scope) Listen(t EventTarget, event string, fn Listener) error {
	if s.closed {
		return ErrScopeClosed
	}
	return s.Defer(t.Listen(event, fn))
}

// Defer registers a release function to run on Close.
func (s *Scope) Defer(release func()) error {
	if s.closed {
		return ErrScopeClosed
	}
	if release != nil {
		s.releases = append(s.releases, release)
	}
	return nil
}

// Len is the number of live subscriptions.
func (s *Scope) Len() int { return len(s.releases) }

// Closed reports whether Close has run.
func (s *Scope) Closed() bool { return s.closed }

// Close releases every subscription in reverse order. Later calls do
// nothing.
func (s *Scope) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for i := len(s.releases) - 1; i >= 0; i-- {
		s.releases[i]()
	}
	s.releases = nil
}
