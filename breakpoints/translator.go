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
	"github.com/jetsetilly/emucli/curated"
	"github.com/jetsetilly/emucli/emulation"
)

// Core is the part of the emulation that accepts breakpoints.
type Core interface {
	SetBreakpoints(bps []emulation.Breakpoint)
}

// Translator converts the breakpoints in a List to the emulation's native
// representation.
type Translator struct {
	core Core
}

// NewTranslator is the preferred method of initialisation for the Translator
// type.
func NewTranslator(core Core) *Translator {
	return &Translator{
		core: core,
	}
}

// Translate the enabled breakpoints in the list. Native IDs are assigned
// from one, in list order. Disabled breakpoints are skipped.
func Translate(l *List) ([]emulation.Breakpoint, error) {
	var native []emulation.Breakpoint

	for _, bp := range l.entries {
		if !bp.Enabled {
			continue
		}

		mem := bp.Memory
		if mem == "" {
			mem = bp.CPU.Memory()
		}

		n, err := emulation.NewBreakpoint(emulation.BreakpointSpec{
			NativeID:    len(native) + 1,
			LogicalID:   bp.ID,
			CPU:         bp.CPU,
			Memory:      mem,
			Start:       bp.Start,
			End:         bp.End,
			Type:        bp.Type,
			Enabled:     true,
			MarkEvent:   bp.MarkEvent,
			IgnoreDummy: bp.IgnoreDummy,
			Condition:   bp.Condition,
		})
		if err != nil {
			return nil, curated.Errorf("breakpoints: %v", err)
		}

		native = append(native, n)
	}

	return native, nil
}

// Push replaces the emulation's entire set of breakpoints with the
// translated contents of the List. The emulation's breakpoints are unchanged
// if translation fails.
func (t *Translator) Push(l *List) error {
	native, err := Translate(l)
	if err != nil {
		return err
	}
	t.core.SetBreakpoints(native)
	return nil
}
