package form

import (
	"fmt"
	"slices"
	"sync"
	"time"
)

// Form owns the field values, the error set and the submission lifecycle of
// one signup form. Every mutation that changes what a view would display is
// published to subscribers; mutations that leave the snapshot unchanged are
// not.
type Form struct {
	mu sync.Mutex

	values Values
	errors ErrorSet
	state  State

	delay  time.Duration
	clock  Clock
	logger Logger

	subscribers map[int]func(Snapshot)
	nextSubID   int
	onComplete  []func(Completion)

	published  Snapshot
	completion *Completion

	pending    []delivery
	delivering bool
}

// delivery is one published snapshot and the subscribers registered when it
// was committed.
type delivery struct {
	snap Snapshot
	subs []func(Snapshot)
}

// New constructs an Idle form with empty values.
func New(options ...Option) *Form {
	f := &Form{
		values:      EmptyValues(),
		errors:      ErrorSet{},
		state:       StateIdle,
		delay:       DefaultDelay,
		clock:       realClock{},
		logger:      nopLogger{},
		subscribers: make(map[int]func(Snapshot)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	f.published = f.snapshotLocked()
	return f
}

// Subscribe registers fn to receive a snapshot after every visible change.
// The returned function removes the subscription.
func (f *Form) Subscribe(fn func(Snapshot)) func() {
	if fn == nil {
		return func() {}
	}
	f.mu.Lock()
	id := f.nextSubID
	f.nextSubID++
	f.subscribers[id] = fn
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		delete(f.subscribers, id)
		f.mu.Unlock()
	}
}

// OnCompleted registers fn to receive the completion notification.
func (f *Form) OnCompleted(fn func(Completion)) {
	if fn == nil {
		return
	}
	f.mu.Lock()
	f.onComplete = append(f.onComplete, fn)
	f.mu.Unlock()
}

// Snapshot returns the current state of the form.
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

// State returns the current lifecycle state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Delay reports the configured submission delay.
func (f *Form) Delay() time.Duration {
	return f.delay
}

// Completion returns the completion record once the form is submitted.
func (f *Form) Completion() (Completion, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.completion == nil {
		return Completion{}, false
	}
	return *f.completion, true
}

// OnFieldChange merges value into the field set under name and clears any
// error recorded for that field.
func (f *Form) OnFieldChange(name Field, value string) error {
	if !name.Known() {
		return fmt.Errorf("%w: %q", ErrUnknownField, string(name))
	}

	f.mu.Lock()
	if !f.state.Editable() {
		state := f.state
		f.mu.Unlock()
		f.logger.Debug("field change ignored", "field", name, "state", state)
		return ErrInert
	}
	f.values = f.values.With(name, value)
	if f.errors.Has(name) {
		f.errors = f.errors.Without(name)
	}
	f.commitLocked()
	f.mu.Unlock()

	f.drain()
	return nil
}

// OnSubmitRequested validates the form and, when valid, runs the whole
// submission: Submitting, the fixed delay, then Submitted plus the completion
// notification. It blocks for the delay. Invalid values return a
// *ValidationError and leave the form Idle. Requests made while submitting or
// after submission have no effect and return nil.
func (f *Form) OnSubmitRequested() error {
	started, err := f.BeginSubmit()
	if err != nil || !started {
		return err
	}
	<-f.clock.After(f.delay)
	f.CompleteSubmit()
	return nil
}

// BeginSubmit is the first half of OnSubmitRequested for hosts that run their
// own event loop: it validates and enters Submitting. started is false when the
// request was ignored or validation failed; the latter also returns a
// *ValidationError. The host must call CompleteSubmit after Delay elapses.
func (f *Form) BeginSubmit() (started bool, err error) {
	f.mu.Lock()
	if f.state != StateIdle {
		state := f.state
		f.mu.Unlock()
		f.logger.Debug("submit request ignored", "state", state)
		return false, nil
	}

	errs := Validate(f.values)
	if !errs.Empty() {
		f.errors = errs
		f.commitLocked()
		f.mu.Unlock()

		f.logger.Debug("validation failed", "fields", len(errs))
		f.drain()
		return false, &ValidationError{Errors: errs.Clone()}
	}

	f.errors = ErrorSet{}
	f.state = StateSubmitting
	f.commitLocked()
	f.mu.Unlock()

	f.logger.Info("submission started", "delay", f.delay)
	f.drain()
	return true, nil
}

// CompleteSubmit moves a Submitting form to Submitted and emits the completion
// notification. ok is false when the form was not submitting.
func (f *Form) CompleteSubmit() (completion Completion, ok bool) {
	f.mu.Lock()
	if f.state != StateSubmitting {
		state := f.state
		f.mu.Unlock()
		f.logger.Debug("complete ignored", "state", state)
		return Completion{}, false
	}

	f.state = StateSubmitted
	completion = Completion{
		Data:      f.values.Clone(),
		Timestamp: f.clock.Now().UTC(),
	}
	f.completion = &completion
	listeners := slices.Clone(f.onComplete)
	f.commitLocked()
	f.mu.Unlock()

	f.drain()
	f.logger.Info("submission completed", "firstName", completion.Data.Get(FieldFirstName), "timestamp", completion.ISOTimestamp())
	for _, fn := range listeners {
		fn(completion)
	}
	return completion, true
}

func (f *Form) snapshotLocked() Snapshot {
	return Snapshot{
		Values: f.values.Clone(),
		Errors: f.errors.Clone(),
		State:  f.state,
	}
}

// commitLocked compares the current state with the last published snapshot.
// When they differ it records the new snapshot and queues it for the
// subscribers registered now.
func (f *Form) commitLocked() {
	snap := f.snapshotLocked()
	if snap.Equal(f.published) {
		return
	}
	f.published = snap
	subs := make([]func(Snapshot), 0, len(f.subscribers))
	for id := 0; id < f.nextSubID; id++ {
		if fn, ok := f.subscribers[id]; ok {
			subs = append(subs, fn)
		}
	}
	f.pending = append(f.pending, delivery{snap: snap, subs: subs})
}

// drain delivers queued snapshots in commit order without holding the lock.
// Only one goroutine drains at a time; a caller that finds delivery in
// progress leaves its snapshot to that goroutine. A subscriber that mutates
// the form queues the next snapshot instead of recursing.
func (f *Form) drain() {
	f.mu.Lock()
	if f.delivering {
		f.mu.Unlock()
		return
	}
	f.delivering = true
	for len(f.pending) > 0 {
		next := f.pending[0]
		f.pending = f.pending[1:]
		f.mu.Unlock()
		for _, fn := range next.subs {
			fn(next.snap)
		}
		f.mu.Lock()
	}
	f.delivering = false
	f.mu.Unlock()
}
