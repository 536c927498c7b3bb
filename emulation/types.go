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

// StepType specifies how far a step request should advance the emulation.
type StepType int

// List of step types.
const (
	// a single instruction
	Step StepType = iota

	// a single instruction, with subroutine calls treated as one instruction
	StepOver

	// until the current subroutine returns
	StepOut

	// until the next video frame boundary
	PpuFrame
)

func (s StepType) String() string {
	switch s {
	case Step:
		return "Step"
	case StepOver:
		return "StepOver"
	case StepOut:
		return "StepOut"
	case PpuFrame:
		return "PpuFrame"
	}
	return ""
}

// DisassemblyLine is one line of disassembly. An Address of less than zero
// indicates a line that does not correspond to an address in memory.
type DisassemblyLine struct {
	Address  int32
	ByteCode []byte
	Text     string
	Comment  string
}

// StackFrameFlags indicates how a stack frame was entered.
type StackFrameFlags int

// List of stack frame flags.
const (
	StackFrameNone StackFrameFlags = 0
	StackFrameNmi  StackFrameFlags = 1
	StackFrameIrq  StackFrameFlags = 2
)

// StackFrame is an entry in the call stack.
type StackFrame struct {
	Source uint32
	Target uint32
	Flags  StackFrameFlags
}
