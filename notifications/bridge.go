// This file is part of Emucli.
//
// Emucli is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Emucli is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Emucli.  If not, see <https://www.gnu.org/licenses/>.

package notifications

import (
	"sync"
	"sync/atomic"
	"time"
)

// the interval at which a waiting goroutine checks for an interrupt.
const pollInterval = 50 * time.Millisecond

// Bridge is a single-slot rendezvous between the emulation and the debugger.
// It is safe to use from more than one goroutine.
type Bridge struct {
	crit    sync.Mutex
	pending bool
	stopped bool

	// interrupt is set asynchronously, usually from a signal handler
	interrupt atomic.Bool

	// wakes a waiting goroutine. buffered so that Signal() never blocks
	wake chan struct{}
}

// NewBridge is the preferred method of initialisation for the Bridge type.
func NewBridge() *Bridge {
	return &Bridge{
		wake: make(chan struct{}, 1),
	}
}

// ProcessNotification implements the emulation.NotificationListener
// interface.
func (b *Bridge) ProcessNotification(notice Notice) {
	b.Signal(notice)
}

// Signal records a stop condition. Signals sent before a call to
// WaitForStop() collapse into one. Notices other than NotifyCodeBreak and
// NotifyEmulationStopped are ignored.
func (b *Bridge) Signal(notice Notice) {
	b.crit.Lock()
	switch notice {
	case NotifyCodeBreak:
		b.pending = true
	case NotifyEmulationStopped:
		b.pending = true
		b.stopped = true
	default:
		b.crit.Unlock()
		return
	}
	b.crit.Unlock()

	select {
	case b.wake <- struct{}{}:
	default:
	}
}

// Reset clears the pending flag. It does not clear the stopped condition or
// an interrupt. An interrupt is cleared with ClearInterrupt().
func (b *Bridge) Reset() {
	b.crit.Lock()
	b.pending = false
	b.crit.Unlock()

	select {
	case <-b.wake:
	default:
	}
}

// WaitForStop blocks until a stop condition has been signalled or until the
// timeout has elapsed. A timeout of zero waits indefinitely. Returns true if
// a stop was observed, in which case the pending flag is consumed.
//
// The wait also ends, returning false, if Interrupt() is called or if the
// emulation has stopped and there is no pending signal.
func (b *Bridge) WaitForStop(timeout time.Duration) bool {
	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}

	for {
		b.crit.Lock()
		if b.pending {
			b.pending = false
			b.crit.Unlock()
			return true
		}
		stopped := b.stopped
		b.crit.Unlock()

		if stopped || b.interrupt.Load() {
			return false
		}

		wait := pollInterval
		if timeout > 0 {
			remaining := time.Until(deadline)
			if remaining <= 0 {
				return false
			}
			if remaining < wait {
				wait = remaining
			}
		}

		select {
		case <-b.wake:
		case <-time.After(wait):
		}
	}
}

// Issue resets the bridge, calls the trigger function and then waits for the
// stop condition. The trigger function should return immediately.
func (b *Bridge) Issue(trigger func(), timeout time.Duration) bool {
	b.Reset()
	trigger()
	return b.WaitForStop(timeout)
}

// IsStopped returns true if the emulation has fully stopped, as opposed to
// being paused.
func (b *Bridge) IsStopped() bool {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.stopped
}

// Interrupt ends any current wait. The interrupt remains in effect, ending
// every subsequent wait immediately, until ClearInterrupt() is called.
func (b *Bridge) Interrupt() {
	b.interrupt.Store(true)
}

// ClearInterrupt removes the effect of a previous call to Interrupt().
func (b *Bridge) ClearInterrupt() {
	b.interrupt.Store(false)
}

// Interrupted returns true if Interrupt() has been called since the most
// recent ClearInterrupt().
func (b *Bridge) Interrupted() bool {
	return b.interrupt.Load()
}
