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

package emulation

import (
	"github.com/jetsetilly/emucli/console"
	"github.com/jetsetilly/emucli/debugger/govern"
	"github.com/jetsetilly/emucli/notifications"
)

// Sentinal error returned by Emulator.Debugger() when the emulation core has
// not been initialised.
const (
	DebuggerUnavailable = "debugger not initialized"
)

// NotificationListener receives notices from the emulation core. Notices are
// sent from the emulation goroutine.
type NotificationListener interface {
	ProcessNotification(notice notifications.Notice)
}

// Emulator is the emulation core as seen by the debugger.
type Emulator interface {
	// Load the ROM file. On success the emulation is paused on the first
	// instruction and a NotifyCodeBreak is sent to all listeners.
	Load(romPath string) error

	// The console identity. Only valid after a successful Load().
	Console() console.Descriptor

	// All architectures active in the loaded console. The primary
	// architecture is always first.
	CPUTypes() []console.Arch

	// Returns an error with the DebuggerUnavailable pattern if there is no
	// debugger for the emulation.
	Debugger() (Debugger, error)

	// Reset the console to its power-on state. The emulation remains paused.
	Reset()

	// The current state of the emulation.
	State() govern.State

	// Listeners should be registered before Load() and unregistered once
	// they are no longer required.
	RegisterNotificationListener(NotificationListener)
	UnregisterNotificationListener(NotificationListener)
}

// Debugger is the control and inspection interface of the emulation core.
// Functions that change the execution of the emulation return immediately.
type Debugger interface {
	// Resume execution.
	Run()

	// Request that execution pause as soon as possible.
	Break()

	// Execute count steps of the specified type on the architecture.
	Step(arch console.Arch, count int, step StepType)

	// Returns true if the emulation is paused.
	IsPaused() bool

	// Snapshot of the CPU state for the architecture. The returned value is
	// a copy and is safe to use after the emulation has resumed.
	CPUState(arch console.Arch) (CPUState, error)

	// The address of the next instruction to execute.
	ProgramCounter(arch console.Arch) uint32

	// Replace the entire set of breakpoints.
	SetBreakpoints(bps []Breakpoint)

	// The current set of breakpoints, in the order they were set.
	Breakpoints() []Breakpoint

	// Size of the memory in bytes. Returns zero if the memory is not
	// available in the loaded console.
	MemorySize(mem console.MemoryType) int

	// Read and write single bytes of memory. Out of range addresses read as
	// zero and writes to them are ignored.
	ReadMemory(mem console.MemoryType, address uint32) uint8
	WriteMemory(mem console.MemoryType, address uint32, value uint8)

	// A copy of the full contents of the memory.
	MemoryState(mem console.MemoryType) []byte

	// Disassemble count instructions starting at the address.
	Disassemble(arch console.Arch, address uint32, count int) []DisassemblyLine

	// The call stack for the architecture. The boolean result is false if
	// the architecture does not maintain a call stack.
	Callstack(arch console.Arch) ([]StackFrame, bool)

	// Write a trace line for every executed instruction to the named file.
	StartTrace(filename string) error
	StopTrace()
}
