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

package breakpoints

import (
	"fmt"

	"github.com/jetsetilly/emucli/console"
	"github.com/jetsetilly/emucli/emulation"
)

// Breakpoint is a single breakpoint or watchpoint. A breakpoint with the
// BreakExecute type is a breakpoint. Any other type is a watchpoint.
type Breakpoint struct {
	// assigned by the List. do not set
	ID int

	CPU    console.Arch
	Memory console.MemoryType

	// inclusive address range
	Start uint32
	End   uint32

	Type    emulation.BreakpointType
	Enabled bool

	// passed to the emulation without interpretation
	Condition string

	MarkEvent   bool
	IgnoreDummy bool
}

// NewExecute returns an enabled execution breakpoint for the architecture.
func NewExecute(cpu console.Arch, start uint32, end uint32) Breakpoint {
	return Breakpoint{
		CPU:     cpu,
		Memory:  cpu.Memory(),
		Start:   start,
		End:     end,
		Type:    emulation.BreakExecute,
		Enabled: true,
	}
}

// NewWatch returns an enabled watchpoint for the architecture. The type
// should be a combination of BreakRead and BreakWrite.
func NewWatch(cpu console.Arch, start uint32, end uint32, typ emulation.BreakpointType) Breakpoint {
	return Breakpoint{
		CPU:     cpu,
		Memory:  cpu.Memory(),
		Start:   start,
		End:     end,
		Type:    typ,
		Enabled: true,
	}
}

// IsWatch returns true if the breakpoint is a watchpoint.
func (bp Breakpoint) IsWatch() bool {
	return bp.Type&emulation.BreakExecute == 0
}

// Kind returns "break" or "watch".
func (bp Breakpoint) Kind() string {
	if bp.IsWatch() {
		return "watch"
	}
	return "break"
}

func (bp Breakpoint) String() string {
	s := fmt.Sprintf("%s %d $%06X", bp.Kind(), bp.ID, bp.Start)
	if bp.End != bp.Start {
		s = fmt.Sprintf("%s-$%06X", s, bp.End)
	}
	if bp.IsWatch() {
		s = fmt.Sprintf("%s (%s)", s, bp.Type)
	}
	if bp.Condition != "" {
		s = fmt.Sprintf("%s if %s", s, bp.Condition)
	}
	if !bp.Enabled {
		s = fmt.Sprintf("%s [disabled]", s)
	}
	return s
}
