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
	"fmt"

	"github.com/jetsetilly/emucli/console"
	"github.com/jetsetilly/emucli/curated"
)

// Sentinal error returned by NewBreakpoint().
const (
	InvalidBreakpoint = "invalid breakpoint: %v"
)

// BreakpointType is a bit field of the accesses that trigger a breakpoint.
type BreakpointType int

// List of breakpoint types.
const (
	BreakExecute BreakpointType = 1 << iota
	BreakRead
	BreakWrite

	breakMask = BreakExecute | BreakRead | BreakWrite
)

func (t BreakpointType) String() string {
	switch t {
	case BreakExecute:
		return "exec"
	case BreakRead:
		return "read"
	case BreakWrite:
		return "write"
	case BreakRead | BreakWrite:
		return "rw"
	}
	return fmt.Sprintf("type(%d)", int(t))
}

// BreakpointSpec is the specification of a breakpoint given to
// NewBreakpoint().
type BreakpointSpec struct {
	// the native identity of the breakpoint
	NativeID int

	// the identity assigned by the debugger
	LogicalID int

	CPU    console.Arch
	Memory console.MemoryType

	// inclusive address range
	Start uint32
	End   uint32

	Type        BreakpointType
	Enabled     bool
	MarkEvent   bool
	IgnoreDummy bool

	// opaque to the emulation core
	Condition string
}

// Breakpoint is the emulation core's native representation of a breakpoint.
// Breakpoints can only be created with NewBreakpoint() and cannot be changed
// once created.
type Breakpoint struct {
	spec BreakpointSpec
}

// NewBreakpoint creates a native breakpoint from the specification.
func NewBreakpoint(spec BreakpointSpec) (Breakpoint, error) {
	if _, ok := spec.CPU.Descriptor(); !ok {
		return Breakpoint{}, curated.Errorf(InvalidBreakpoint, "unknown architecture")
	}
	if spec.Memory == console.MemoryNone {
		return Breakpoint{}, curated.Errorf(InvalidBreakpoint, "no memory type")
	}
	if spec.Start > spec.End {
		return Breakpoint{}, curated.Errorf(InvalidBreakpoint,
			fmt.Sprintf("start address $%06X is after end address $%06X", spec.Start, spec.End))
	}
	if spec.Type == 0 || spec.Type&^breakMask != 0 {
		return Breakpoint{}, curated.Errorf(InvalidBreakpoint, spec.Type)
	}
	return Breakpoint{spec: spec}, nil
}

// NativeID returns the identity of the breakpoint in the emulation core.
func (bp Breakpoint) NativeID() int { return bp.spec.NativeID }

// LogicalID returns the identity assigned by the debugger.
func (bp Breakpoint) LogicalID() int { return bp.spec.LogicalID }

// CPU returns the architecture the breakpoint applies to.
func (bp Breakpoint) CPU() console.Arch { return bp.spec.CPU }

// Memory returns the memory space the breakpoint applies to.
func (bp Breakpoint) Memory() console.MemoryType { return bp.spec.Memory }

// Start returns the first address of the range.
func (bp Breakpoint) Start() uint32 { return bp.spec.Start }

// End returns the last address of the range.
func (bp Breakpoint) End() uint32 { return bp.spec.End }

// Type returns the accesses that trigger the breakpoint.
func (bp Breakpoint) Type() BreakpointType { return bp.spec.Type }

// Enabled returns true if the breakpoint is enabled.
func (bp Breakpoint) Enabled() bool { return bp.spec.Enabled }

// MarkEvent returns true if a hit should be recorded as an event.
func (bp Breakpoint) MarkEvent() bool { return bp.spec.MarkEvent }

// IgnoreDummy returns true if dummy memory accesses should not trigger the
// breakpoint.
func (bp Breakpoint) IgnoreDummy() bool { return bp.spec.IgnoreDummy }

// Condition returns the condition text.
func (bp Breakpoint) Condition() string { return bp.spec.Condition }

// Matches returns true if the enabled breakpoint is triggered by the access
// at the address.
func (bp Breakpoint) Matches(cpu console.Arch, address uint32, access BreakpointType) bool {
	return bp.spec.Enabled && bp.spec.CPU == cpu &&
		bp.spec.Type&access != 0 &&
		address >= bp.spec.Start && address <= bp.spec.End
}

func (bp Breakpoint) String() string {
	if bp.spec.Start == bp.spec.End {
		return fmt.Sprintf("#%d (%d) %s $%06X %s", bp.spec.NativeID, bp.spec.LogicalID,
			bp.spec.Type, bp.spec.Start, bp.spec.Memory)
	}
	return fmt.Sprintf("#%d (%d) %s $%06X-$%06X %s", bp.spec.NativeID, bp.spec.LogicalID,
		bp.spec.Type, bp.spec.Start, bp.spec.End, bp.spec.Memory)
}
