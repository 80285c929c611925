package testsupport

import (
	"bytes"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/goliatone/go-signup/pkg/form"
)

// Epoch is the fixed instant ManualClock starts from.
var Epoch = time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)

// ValidValues returns the canonical passing submission used across tests.
func ValidValues() form.Values {
	return form.Values{
		form.FieldFirstName: "Jane",
		form.FieldLastName:  "Doe",
		form.FieldEmail:     "jane@doe.com",
		form.FieldPassword:  "secret1",
	}
}

// FillForm forwards every entry of values to f as field changes.
func FillForm(t *testing.T, f *form.Form, values form.Values) {
	t.Helper()
	for _, name := range form.Fields() {
		value, ok := values[name]
		if !ok {
			continue
		}
		if err := f.OnFieldChange(name, value); err != nil {
			t.Fatalf("field change %s: %v", name, err)
		}
	}
}

// ManualClock is a form.Clock whose timers only fire when Advance is called.
type ManualClock struct {
	mu      sync.Mutex
	now     time.Time
	waiters []manualWaiter
}

type manualWaiter struct {
	at time.Time
	ch chan time.Time
}

// NewManualClock starts a clock at Epoch.
func NewManualClock() *ManualClock {
	return &ManualClock{now: Epoch}
}

// Now returns the clock's current instant.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// After returns a channel that receives once the clock advances past d.
func (c *ManualClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch := make(chan time.Time, 1)
	at := c.now.Add(d)
	if d <= 0 {
		ch <- c.now
		return ch
	}
	c.waiters = append(c.waiters, manualWaiter{at: at, ch: ch})
	return ch
}

// Advance moves the clock forward and fires any due timers.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	pending := c.waiters[:0]
	for _, w := range c.waiters {
		if !w.at.After(c.now) {
			w.ch <- c.now
			continue
		}
		pending = append(pending, w)
	}
	c.waiters = pending
}

// Waiters reports how many timers are pending.
func (c *ManualClock) Waiters() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.waiters)
}

// WaitForWaiters polls until n timers are pending or the deadline passes.
func (c *ManualClock) WaitForWaiters(t *testing.T, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if c.Waiters() >= n {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d clock waiters (have %d)", n, c.Waiters())
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents. Tests can assert
// the renderer returns and writes the same payload without duplicating buffer
// setup.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
