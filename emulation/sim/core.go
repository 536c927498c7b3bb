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

package sim

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/jetsetilly/emucli/console"
	"github.com/jetsetilly/emucli/curated"
	"github.com/jetsetilly/emucli/debugger/govern"
	"github.com/jetsetilly/emucli/emulation"
	"github.com/jetsetilly/emucli/logger"
	"github.com/jetsetilly/emucli/notifications"
)

// Sentinal errors returned by the Core.
const (
	LoadError   = "sim: load: %v"
	NoCPUState  = "sim: no state for %s"
	TraceFailed = "sim: trace: %v"
)

const (
	// the number of instructions in a frame
	frameLength = 10000

	framesPerSecond = 60.0
)

// the result of running the emulation for a frame.
type frameResult int

const (
	frameIdle frameResult = iota
	frameComplete
	framePaused
)

// the stop condition while the emulation is in the Stepping state.
type stepRequest struct {
	kind      emulation.StepType
	remaining int
}

// Core is a simulated emulation core. It implements both the
// emulation.Emulator and emulation.Debugger interfaces.
type Core struct {
	log      *logger.Logger
	headless bool

	// listeners have their own lock so that notifications can be sent without
	// holding the main lock
	listenersCrit sync.Mutex
	listeners     []emulation.NotificationListener

	// wakes the emulation goroutine. buffered so that sending never blocks
	wake chan struct{}

	crit sync.Mutex

	state  govern.State
	loaded bool
	desc   console.Descriptor
	layout layout
	mem    *memory

	// state of the primary CPU
	cpu emulation.CPUState

	bps []emulation.Breakpoint

	step         stepRequest
	breakRequest bool

	// the breakpoint check is skipped for the first instruction after
	// resumption. this allows the emulation to continue from a breakpoint
	skipBreak bool

	// number of instructions executed in the current frame
	frameInstructions int
	frames            int

	trace *trace
}

// NewCore is the preferred method of initialisation for the Core type. The
// emulation is not throttled if headless is true.
func NewCore(log *logger.Logger, headless bool) *Core {
	return &Core{
		log:      log,
		headless: headless,
		wake:     make(chan struct{}, 1),
		state:    govern.EmulatorStart,
	}
}

// setState changes the state of the emulation if the transition is allowed.
// must be called with the lock held.
func (c *Core) setState(to govern.State) bool {
	if !govern.Transition(c.state, to) {
		return false
	}
	c.state = to
	return true
}

func (c *Core) wakeUp() {
	select {
	case c.wake <- struct{}{}:
	default:
	}
}

// RegisterNotificationListener implements the emulation.Emulator interface.
func (c *Core) RegisterNotificationListener(l emulation.NotificationListener) {
	c.listenersCrit.Lock()
	defer c.listenersCrit.Unlock()
	c.listeners = append(c.listeners, l)
}

// UnregisterNotificationListener implements the emulation.Emulator interface.
func (c *Core) UnregisterNotificationListener(l emulation.NotificationListener) {
	c.listenersCrit.Lock()
	defer c.listenersCrit.Unlock()
	for i := range c.listeners {
		if c.listeners[i] == l {
			c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
			return
		}
	}
}

// must not be called with the main lock held.
func (c *Core) notify(notice notifications.Notice) {
	c.listenersCrit.Lock()
	l := make([]emulation.NotificationListener, len(c.listeners))
	copy(l, c.listeners)
	c.listenersCrit.Unlock()

	for _, n := range l {
		n.ProcessNotification(notice)
	}
}

// Load implements the emulation.Emulator interface. The console is chosen by
// the filename extension.
func (c *Core) Load(romPath string) error {
	desc, ok := console.FromFilename(romPath)
	if !ok {
		return curated.Errorf(LoadError, fmt.Sprintf("unrecognised file type: %s", romPath))
	}

	rom, err := os.ReadFile(romPath)
	if err != nil {
		return curated.Errorf(LoadError, err)
	}
	if len(rom) == 0 {
		return curated.Errorf(LoadError, fmt.Sprintf("empty file: %s", romPath))
	}

	err = c.load(desc, rom)
	if err != nil {
		return err
	}

	c.log.Logf(logger.Allow, "sim", "loaded %s (%d bytes) as %s", romPath, len(rom), desc.Name)
	c.notify(notifications.NotifyCodeBreak)

	return nil
}

func (c *Core) load(desc console.Descriptor, rom []byte) error {
	c.crit.Lock()
	defer c.crit.Unlock()

	if !c.setState(govern.Initialising) {
		return curated.Errorf(LoadError, fmt.Sprintf("emulation is %s", c.state))
	}

	c.desc = desc
	c.layout = layouts[desc.Kind]
	c.mem = newMemory(c.layout, desc.CPU.Memory(), rom)
	c.cpu = c.layout.reset()
	c.bps = nil
	c.step = stepRequest{}
	c.breakRequest = false
	c.skipBreak = false
	c.frameInstructions = 0
	c.frames = 0
	c.loaded = true
	c.setState(govern.Paused)

	return nil
}

// Console implements the emulation.Emulator interface.
func (c *Core) Console() console.Descriptor {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.desc
}

// CPUTypes implements the emulation.Emulator interface.
func (c *Core) CPUTypes() []console.Arch {
	c.crit.Lock()
	defer c.crit.Unlock()
	if !c.loaded {
		return nil
	}
	return append([]console.Arch{c.desc.CPU}, c.layout.coprocessors...)
}

// Debugger implements the emulation.Emulator interface.
func (c *Core) Debugger() (emulation.Debugger, error) {
	c.crit.Lock()
	defer c.crit.Unlock()
	if !c.loaded {
		return nil, curated.Errorf(emulation.DebuggerUnavailable)
	}
	return c, nil
}

// Reset implements the emulation.Emulator interface.
func (c *Core) Reset() {
	c.crit.Lock()
	defer c.crit.Unlock()
	if !c.loaded {
		return
	}
	c.cpu = c.layout.reset()
	c.mem.powerOn()
	c.frameInstructions = 0
	c.log.Log(logger.Allow, "sim", "reset")
}

// State implements the emulation.Emulator interface.
func (c *Core) State() govern.State {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.state
}

// Emulate runs the emulation until the context is cancelled. It should be
// run in its own goroutine.
func (c *Core) Emulate(ctx context.Context) error {
	var lmtr *limiter
	if !c.headless {
		lmtr = newLimiter(framesPerSecond)
		defer lmtr.stop()
	}

	for {
		select {
		case <-ctx.Done():
			c.end()
			return nil
		case <-c.wake:
		}

		done := false
		for !done && ctx.Err() == nil {
			switch c.runFrame() {
			case frameIdle:
				done = true
			case framePaused:
				c.notify(notifications.NotifyCodeBreak)
				done = true
			case frameComplete:
				if lmtr != nil {
					lmtr.wait(ctx)
				}
			}
		}
	}
}

func (c *Core) end() {
	c.crit.Lock()
	c.setState(govern.Ending)
	if c.trace != nil {
		_ = c.trace.close()
		c.trace = nil
	}
	c.crit.Unlock()

	c.log.Log(logger.Allow, "sim", "emulation stopped")
	c.notify(notifications.NotifyEmulationStopped)
}

// runFrame runs the emulation until the end of the current frame or until a
// stop condition is met.
func (c *Core) runFrame() frameResult {
	c.crit.Lock()
	defer c.crit.Unlock()

	for {
		if c.state != govern.Running && c.state != govern.Stepping {
			return frameIdle
		}

		if c.breakRequest {
			c.pause()
			return framePaused
		}

		if !c.skipBreak && c.executeBreak() {
			c.pause()
			return framePaused
		}
		c.skipBreak = false

		c.execute()

		boundary := false
		c.frameInstructions++
		if c.frameInstructions >= frameLength {
			c.frameInstructions = 0
			c.frames++
			boundary = true
		}

		if c.state == govern.Stepping && c.stepDone(boundary) {
			c.pause()
			return framePaused
		}

		if boundary {
			return frameComplete
		}
	}
}

// must be called with the lock held.
func (c *Core) pause() {
	c.setState(govern.Paused)
	c.breakRequest = false
}

// executeBreak returns true if there is an execution breakpoint at the
// program counter. must be called with the lock held.
func (c *Core) executeBreak() bool {
	pc := programCounter(c.cpu)
	for _, bp := range c.bps {
		if bp.Matches(c.desc.CPU, pc, emulation.BreakExecute) {
			c.log.Logf(logger.Allow, "sim", "breakpoint %d at $%06X", bp.LogicalID(), pc)
			return true
		}
	}
	return false
}

// watchBreak requests a break if there is a watchpoint for the access. must be
// called with the lock held.
func (c *Core) watchBreak(mem console.MemoryType, address uint32, access emulation.BreakpointType) {
	if c.state != govern.Running && c.state != govern.Stepping {
		return
	}
	for _, bp := range c.bps {
		if bp.Memory() == mem && bp.Matches(bp.CPU(), address, access) {
			c.log.Logf(logger.Allow, "sim", "watchpoint %d at $%06X (%s)", bp.LogicalID(), address, access)
			c.breakRequest = true
			return
		}
	}
}

// must be called with the lock held.
func (c *Core) execute() {
	if c.trace != nil {
		c.trace.write(c.disassemble(programCounter(c.cpu), 1))
	}
	c.cpu = advance(c.cpu)
}

// must be called with the lock held.
func (c *Core) stepDone(boundary bool) bool {
	switch c.step.kind {
	case emulation.Step, emulation.StepOver:
		c.step.remaining--
		return c.step.remaining <= 0
	case emulation.StepOut:
		return boundary
	case emulation.PpuFrame:
		if boundary {
			c.step.remaining--
		}
		return c.step.remaining <= 0
	}
	return true
}
