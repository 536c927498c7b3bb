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
	"github.com/jetsetilly/emucli/console"
	"github.com/jetsetilly/emucli/curated"
	"github.com/jetsetilly/emucli/debugger/govern"
	"github.com/jetsetilly/emucli/emulation"
	"github.com/jetsetilly/emucli/logger"
	"github.com/jetsetilly/emucli/notifications"
)

// Run implements the emulation.Debugger interface.
func (c *Core) Run() {
	c.crit.Lock()
	defer c.crit.Unlock()
	if !c.setState(govern.Running) {
		return
	}
	c.skipBreak = true
	c.wakeUp()
}

// Break implements the emulation.Debugger interface.
func (c *Core) Break() {
	c.crit.Lock()
	defer c.crit.Unlock()
	if c.state == govern.Running || c.state == govern.Stepping {
		c.breakRequest = true
	}
}

// must be called with the lock held.
func (c *Core) hasArch(arch console.Arch) bool {
	if !c.loaded {
		return false
	}
	if arch == c.desc.CPU {
		return true
	}
	for _, a := range c.layout.coprocessors {
		if a == arch {
			return true
		}
	}
	return false
}

// Step implements the emulation.Debugger interface. Only the primary
// architecture is emulated. Stepping a coprocessor steps the primary
// architecture.
func (c *Core) Step(arch console.Arch, count int, step emulation.StepType) {
	c.crit.Lock()

	if !c.hasArch(arch) {
		c.crit.Unlock()
		c.log.Logf(logger.Allow, "sim", "cannot step %s", arch)
		c.notify(notifications.NotifyCodeBreak)
		return
	}

	if !c.setState(govern.Stepping) {
		c.crit.Unlock()
		return
	}

	if count < 1 {
		count = 1
	}
	c.step = stepRequest{kind: step, remaining: count}
	c.skipBreak = true
	c.wakeUp()

	c.crit.Unlock()
}

// IsPaused implements the emulation.Debugger interface.
func (c *Core) IsPaused() bool {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.state == govern.Paused
}

// CPUState implements the emulation.Debugger interface. There is only state
// for the primary architecture.
func (c *Core) CPUState(arch console.Arch) (emulation.CPUState, error) {
	c.crit.Lock()
	defer c.crit.Unlock()
	if !c.loaded || arch != c.desc.CPU {
		return nil, curated.Errorf(NoCPUState, arch)
	}
	return c.cpu, nil
}

// ProgramCounter implements the emulation.Debugger interface.
func (c *Core) ProgramCounter(arch console.Arch) uint32 {
	c.crit.Lock()
	defer c.crit.Unlock()
	if !c.loaded || arch != c.desc.CPU {
		return 0
	}
	return programCounter(c.cpu)
}

// SetBreakpoints implements the emulation.Debugger interface.
func (c *Core) SetBreakpoints(bps []emulation.Breakpoint) {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.bps = make([]emulation.Breakpoint, len(bps))
	copy(c.bps, bps)
	c.log.Logf(logger.Allow, "sim", "%d breakpoints set", len(c.bps))
}

// Breakpoints implements the emulation.Debugger interface.
func (c *Core) Breakpoints() []emulation.Breakpoint {
	c.crit.Lock()
	defer c.crit.Unlock()
	bps := make([]emulation.Breakpoint, len(c.bps))
	copy(bps, c.bps)
	return bps
}

// MemorySize implements the emulation.Debugger interface.
func (c *Core) MemorySize(mem console.MemoryType) int {
	c.crit.Lock()
	defer c.crit.Unlock()
	if !c.loaded {
		return 0
	}
	return c.mem.size(mem)
}

// ReadMemory implements the emulation.Debugger interface.
func (c *Core) ReadMemory(mem console.MemoryType, address uint32) uint8 {
	c.crit.Lock()
	defer c.crit.Unlock()
	if !c.loaded {
		return 0
	}
	c.watchBreak(mem, address, emulation.BreakRead)
	return c.mem.read(mem, address)
}

// WriteMemory implements the emulation.Debugger interface.
func (c *Core) WriteMemory(mem console.MemoryType, address uint32, value uint8) {
	c.crit.Lock()
	defer c.crit.Unlock()
	if !c.loaded {
		return
	}
	c.watchBreak(mem, address, emulation.BreakWrite)
	c.mem.write(mem, address, value)
}

// MemoryState implements the emulation.Debugger interface.
func (c *Core) MemoryState(mem console.MemoryType) []byte {
	c.crit.Lock()
	defer c.crit.Unlock()
	if !c.loaded {
		return []byte{}
	}
	return c.mem.state(mem)
}

// Disassemble implements the emulation.Debugger interface.
func (c *Core) Disassemble(arch console.Arch, address uint32, count int) []emulation.DisassemblyLine {
	c.crit.Lock()
	defer c.crit.Unlock()
	if !c.loaded || arch != c.desc.CPU {
		return nil
	}
	return c.disassemble(address, count)
}

// must be called with the lock held.
func (c *Core) disassemble(address uint32, count int) []emulation.DisassemblyLine {
	if address >= c.layout.space || count <= 0 {
		return nil
	}
	count = int(min(uint64(count), uint64(c.layout.space-address)))

	primary := c.desc.CPU.Memory()
	lines := make([]emulation.DisassemblyLine, 0, count)
	for i := 0; i < count; i++ {
		a := address + uint32(i)
		lines = append(lines, emulation.DisassemblyLine{
			Address:  int32(a),
			ByteCode: []byte{c.mem.read(primary, a)},
			Text:     "NOP",
		})
	}
	return lines
}

// Callstack implements the emulation.Debugger interface. The simulated CPU
// never calls a subroutine so the call stack is always empty.
func (c *Core) Callstack(arch console.Arch) ([]emulation.StackFrame, bool) {
	c.crit.Lock()
	defer c.crit.Unlock()
	if !c.hasArch(arch) {
		return nil, false
	}
	return []emulation.StackFrame{}, true
}

// StartTrace implements the emulation.Debugger interface. Any existing trace
// is stopped.
func (c *Core) StartTrace(filename string) error {
	tr, err := newTrace(filename)
	if err != nil {
		return curated.Errorf(TraceFailed, err)
	}

	c.crit.Lock()
	defer c.crit.Unlock()
	if c.trace != nil {
		_ = c.trace.close()
	}
	c.trace = tr
	c.log.Logf(logger.Allow, "sim", "tracing to %s", filename)

	return nil
}

// StopTrace implements the emulation.Debugger interface.
func (c *Core) StopTrace() {
	c.crit.Lock()
	defer c.crit.Unlock()
	if c.trace == nil {
		return
	}
	if err := c.trace.close(); err != nil {
		c.log.Logf(logger.Allow, "sim", "trace: %v", err)
	}
	c.trace = nil
}
