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

package debugger

import (
	"time"

	"github.com/jetsetilly/emucli/debugger/terminal"
	"github.com/jetsetilly/emucli/emulation"
)

// how long to wait for the emulation to stop after a request.
const (
	stepTimeout   = 5 * time.Second
	finishTimeout = 30 * time.Second

	// frames are given one second each plus the additional frameTimeout
	frameTimeout = 5 * time.Second

	// how long to wait for a reset to settle before printing the CPU state
	resetSettle = 100 * time.Millisecond
)

// issue the request to the emulation and wait for it to stop. the CPU state
// is printed once the emulation has stopped. a timeout of zero waits
// indefinitely. an interrupt signal breaks the emulation in either case.
func (dbg *Debugger) issue(request func(core emulation.Debugger), timeout time.Duration) {
	core, ok := dbg.core()
	if !ok {
		return
	}

	dbg.bridge.ClearInterrupt()

	// a running emulation can be interrupted by the user. the first signal
	// asks the emulation to break, which will be reported to the bridge in
	// the normal way. a second signal abandons the wait
	done := make(chan struct{})
	go func() {
		select {
		case <-dbg.signal:
			core.Break()
		case <-done:
			return
		}
		select {
		case <-dbg.signal:
			dbg.bridge.Interrupt()
		case <-done:
		}
	}()

	stopped := dbg.bridge.Issue(func() { request(core) }, timeout)
	close(done)

	if dbg.bridge.IsStopped() {
		dbg.printLine(terminal.StyleFeedback, "Emulation has ended.")
		dbg.quit = true
		return
	}

	if !stopped {
		if dbg.bridge.Interrupted() {
			dbg.printLine(terminal.StyleFeedback, "Interrupted.")
		} else {
			dbg.printLine(terminal.StyleError, "Timeout waiting for stop")
		}
		return
	}

	dbg.printState()
}

func (dbg *Debugger) step(count int) {
	dbg.issue(func(core emulation.Debugger) {
		core.Step(dbg.primary, count, emulation.Step)
	}, stepTimeout)
}

func (dbg *Debugger) next() {
	dbg.issue(func(core emulation.Debugger) {
		core.Step(dbg.primary, 1, emulation.StepOver)
	}, stepTimeout)
}

func (dbg *Debugger) finish() {
	dbg.issue(func(core emulation.Debugger) {
		core.Step(dbg.primary, 1, emulation.StepOut)
	}, finishTimeout)
}

func (dbg *Debugger) run() {
	dbg.printLine(terminal.StyleFeedback, "Running... (press Ctrl+C to interrupt)")
	dbg.issue(func(core emulation.Debugger) {
		core.Run()
	}, 0)
}

func (dbg *Debugger) frames(count int) {
	timeout := time.Duration(count)*time.Second + frameTimeout
	dbg.issue(func(core emulation.Debugger) {
		core.Step(dbg.primary, count, emulation.PpuFrame)
	}, timeout)
}

func (dbg *Debugger) reset() {
	dbg.emu.Reset()
	time.Sleep(resetSettle)
	dbg.printState()
}
