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

package batch

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jetsetilly/emucli/curated"
	"github.com/jetsetilly/emucli/emulation"
	"github.com/jetsetilly/emucli/formatter"
	"github.com/jetsetilly/emucli/logger"
	"github.com/jetsetilly/emucli/notifications"
)

// Sentinal errors used by the Runner.
const (
	NotIdle       = "batch: runner is %s"
	Timeout       = "timeout after %dms"
	Interrupted   = "interrupted"
	DumpIOFailure = "could not open %s for writing"
	NoDumpMemory  = "memory type not available for dump to %s"
)

// List of exit codes returned by Run().
const (
	ExitPass  = 0
	ExitFail  = 1
	ExitError = 2
)

// State of the Runner.
type State int

// List of runner states.
const (
	Idle State = iota
	Running
	Stopped
	TimedOut
	Reporting
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	case TimedOut:
		return "timed out"
	case Reporting:
		return "reporting"
	case Done:
		return "done"
	}
	return ""
}

// Result of a single assertion.
type Result struct {
	Assertion Assertion
	Actual    uint16

	// nil if the assertion passed
	Err error
}

// Config for the Runner.
type Config struct {
	JSON bool

	// how long to wait for the emulation to stop. zero waits indefinitely
	Timeout time.Duration

	// normal output and diagnostics. if nil the process' stdout and stderr
	// are used
	Stdout io.Writer
	Stderr io.Writer
}

// Runner is a one-shot, non-interactive state machine.
type Runner struct {
	emu    emulation.Emulator
	bridge *notifications.Bridge
	log    *logger.Logger
	cfg    Config

	state      State
	assertions []Assertion
	dumps      []DumpRequest
	results    []Result
}

// NewRunner is the preferred method of initialisation for the Runner type.
// The bridge should already be registered with the emulator.
func NewRunner(emu emulation.Emulator, bridge *notifications.Bridge, log *logger.Logger, cfg Config) *Runner {
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
	return &Runner{
		emu:    emu,
		bridge: bridge,
		log:    log,
		cfg:    cfg,
	}
}

// State returns the current state of the runner.
func (r *Runner) State() State {
	return r.state
}

// AddAssertion adds an assertion to the runner. Assertions are checked in
// the order in which they were added.
func (r *Runner) AddAssertion(a Assertion) error {
	if r.state != Idle {
		return curated.Errorf(NotIdle, r.state)
	}
	r.assertions = append(r.assertions, a)
	return nil
}

// AddDump adds a memory dump request to the runner. The request is resolved
// against the emulator's console if it has not been resolved already.
func (r *Runner) AddDump(d DumpRequest) error {
	if r.state != Idle {
		return curated.Errorf(NotIdle, r.state)
	}
	if !d.Resolved() {
		if err := d.Resolve(r.emu.Console()); err != nil {
			return err
		}
	}
	r.dumps = append(r.dumps, d)
	return nil
}

// Results returns the result of every assertion. Only valid once Run() has
// returned.
func (r *Runner) Results() []Result {
	return r.results
}

func (r *Runner) errorf(pattern string, args ...any) {
	fmt.Fprintf(r.cfg.Stderr, pattern, args...)
}

// Run the emulation and report. Returns one of the Exit* codes. Run() can
// only be called once.
func (r *Runner) Run() int {
	if r.state != Idle {
		r.errorf("Error: %v\n", curated.Errorf(NotIdle, r.state))
		return ExitError
	}
	r.state = Running
	defer func() {
		r.state = Done
	}()

	dbg, err := r.emu.Debugger()
	if err != nil {
		r.errorf("Error: %v\n", err)
		return ExitError
	}

	if !r.bridge.Issue(dbg.Run, r.cfg.Timeout) {
		r.state = TimedOut
		err := curated.Errorf(Timeout, r.cfg.Timeout.Milliseconds())
		if r.bridge.Interrupted() {
			err = curated.Errorf(Interrupted)
		}
		r.log.Log(logger.Allow, "batch", err)
		r.errorf("Error: %v\n", err)
		return ExitError
	}
	r.state = Stopped

	cpus := r.emu.CPUTypes()
	if len(cpus) == 0 {
		r.errorf("Error: %v\n", curated.Errorf(emulation.DebuggerUnavailable))
		return ExitError
	}
	primary := cpus[0]

	state, err := dbg.CPUState(primary)
	if err != nil {
		r.errorf("Error: %v\n", err)
		return ExitError
	}

	format := formatter.Text
	if r.cfg.JSON {
		format = formatter.JSON
	}
	fmt.Fprintln(r.cfg.Stdout, formatter.Registers(state, format))

	r.state = Reporting

	for _, d := range r.dumps {
		r.dump(dbg, d)
	}

	if len(r.assertions) == 0 {
		return ExitPass
	}

	mem := primary.Memory()
	passed := true

	for _, a := range r.assertions {
		res := Result{Assertion: a}

		switch a.Kind {
		case AssertRegister:
			res.Actual, res.Err = RegisterValue(state, a.Name)
			if res.Err != nil {
				r.errorf("Unknown register: %s\n", a.Name)
				r.results = append(r.results, res)
				passed = false
				continue
			}
		case AssertMemory:
			res.Actual = uint16(dbg.ReadMemory(mem, a.Address))
			if a.Size == 2 {
				res.Actual |= uint16(dbg.ReadMemory(mem, a.Address+1)) << 8
			}
		}

		if res.Actual != a.Expected {
			res.Err = curated.Errorf(AssertionMismatch, a.Label(), res.Actual, a.Expected)
			if r.cfg.JSON {
				r.errorf("{\"assertion_failed\":\"%s\",\"expected\":%d,\"actual\":%d}\n", a.Label(), a.Expected, res.Actual)
			} else {
				r.errorf("FAIL: %v\n", res.Err)
			}
			passed = false
		} else if !r.cfg.JSON {
			fmt.Fprintf(r.cfg.Stdout, "PASS: %s = $%04X\n", a.Label(), res.Actual)
		}

		r.results = append(r.results, res)
	}

	r.log.Logf(logger.Allow, "batch", "%d assertions checked", len(r.results))

	if !passed {
		return ExitFail
	}
	return ExitPass
}

// dump writes the memory region to the requested file. failures are reported
// but are not fatal.
func (r *Runner) dump(dbg emulation.Debugger, d DumpRequest) {
	mem := d.Region().Type

	if dbg.MemorySize(mem) == 0 {
		r.errorf("Warning: %v\n", curated.Errorf(NoDumpMemory, d.Filename))
		return
	}
	data := dbg.MemoryState(mem)

	f, err := os.Create(d.Filename)
	if err != nil {
		r.log.Log(logger.Allow, "batch", err)
		r.errorf("Error: %v\n", curated.Errorf(DumpIOFailure, d.Filename))
		return
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		r.log.Log(logger.Allow, "batch", err)
		r.errorf("Error: %v\n", curated.Errorf(DumpIOFailure, d.Filename))
		return
	}

	if !r.cfg.JSON {
		r.errorf("Dumped %d bytes to %s\n", len(data), d.Filename)
	}
}
