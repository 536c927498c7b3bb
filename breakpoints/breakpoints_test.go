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

package breakpoints_test

import (
	"testing"

	"github.com/jetsetilly/emucli/breakpoints"
	"github.com/jetsetilly/emucli/console"
	"github.com/jetsetilly/emucli/curated"
	"github.com/jetsetilly/emucli/emulation"
	"github.com/jetsetilly/emucli/test"
)

func TestParseAddress(t *testing.T) {
	for _, s := range []string{"1234", "$1234", "0x1234", "0X1234", "00:1234", " 1234 "} {
		v, err := breakpoints.ParseAddress(s)
		test.ExpectSuccess(t, err, s)
		test.ExpectEquality(t, v, uint32(0x1234), s)
	}

	v, err := breakpoints.ParseAddress("01:1234")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x11234))

	v, err = breakpoints.ParseAddress("7e:12345")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x7e2345))

	for _, s := range []string{"", "$", "0x", "zz", "12:", ":12", "$-1", "123456789"} {
		_, err := breakpoints.ParseAddress(s)
		test.ExpectSuccess(t, curated.Is(err, breakpoints.InvalidAddress), s)
	}
}

func TestParseRange(t *testing.T) {
	s, e, err := breakpoints.ParseRange("$8000")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, uint32(0x8000))
	test.ExpectEquality(t, e, uint32(0x8000))

	s, e, err = breakpoints.ParseRange("$8000-$80ff")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, uint32(0x8000))
	test.ExpectEquality(t, e, uint32(0x80ff))

	_, _, err = breakpoints.ParseRange("$80ff-$8000")
	test.ExpectFailure(t, err)

	_, _, err = breakpoints.ParseRange("$8000-")
	test.ExpectFailure(t, err)
}

func TestList(t *testing.T) {
	l := breakpoints.NewList()
	test.ExpectEquality(t, l.Len(), 0)

	id := l.Add(breakpoints.NewExecute(console.CPUNes, 0x8100, 0x8100))
	test.ExpectEquality(t, id, 1)

	e := l.Entries()
	test.DemandEquality(t, len(e), 1)
	test.ExpectEquality(t, e[0].ID, 1)
	test.ExpectEquality(t, e[0].Start, uint32(0x8100))
	test.ExpectSuccess(t, e[0].Enabled)
	test.ExpectEquality(t, e[0].Kind(), "break")

	test.ExpectSuccess(t, l.Delete(1))
	test.ExpectFailure(t, l.Delete(1))
	test.ExpectEquality(t, l.Len(), 0)

	// ids are never reused
	id = l.Add(breakpoints.NewWatch(console.CPUNes, 0x0200, 0x0200, emulation.BreakWrite))
	test.ExpectEquality(t, id, 2)

	bp, ok := l.Get(2)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, bp.Kind(), "watch")
	test.ExpectEquality(t, bp.String(), "watch 2 $000200 (write)")

	test.ExpectSuccess(t, l.Disable(2))
	bp, _ = l.Get(2)
	test.ExpectFailure(t, bp.Enabled)
	test.ExpectEquality(t, bp.String(), "watch 2 $000200 (write) [disabled]")

	test.ExpectSuccess(t, l.Enable(2))
	test.ExpectFailure(t, l.Enable(3))

	_, ok = l.Get(3)
	test.ExpectFailure(t, ok)
}

type mockCore struct {
	pushes int
	bps    []emulation.Breakpoint
}

func (c *mockCore) SetBreakpoints(bps []emulation.Breakpoint) {
	c.pushes++
	c.bps = bps
}

func TestTranslator(t *testing.T) {
	core := &mockCore{}
	tr := breakpoints.NewTranslator(core)

	l := breakpoints.NewList()
	l.Add(breakpoints.NewExecute(console.CPUSnes, 0x008000, 0x008000))
	l.Add(breakpoints.NewWatch(console.CPUSnes, 0x7e0000, 0x7e00ff, emulation.BreakRead|emulation.BreakWrite))
	bp := breakpoints.NewExecute(console.CPUSnes, 0x00c000, 0x00c000)
	bp.Condition = "a == $10"
	l.Add(bp)
	l.Disable(2)

	test.DemandSuccess(t, tr.Push(l))
	test.ExpectEquality(t, core.pushes, 1)
	test.DemandEquality(t, len(core.bps), 2)

	test.ExpectEquality(t, core.bps[0].NativeID(), 1)
	test.ExpectEquality(t, core.bps[0].LogicalID(), 1)
	test.ExpectEquality(t, core.bps[0].Memory(), console.SnesMemory)
	test.ExpectEquality(t, core.bps[1].NativeID(), 2)
	test.ExpectEquality(t, core.bps[1].LogicalID(), 3)
	test.ExpectEquality(t, core.bps[1].Condition(), "a == $10")

	// translating an unchanged list has no observable difference
	first := core.bps
	test.DemandSuccess(t, tr.Push(l))
	test.ExpectEquality(t, core.pushes, 2)
	test.DemandEquality(t, len(core.bps), len(first))
	for i := range first {
		test.ExpectEquality(t, core.bps[i], first[i])
	}

	// an empty list clears the emulation's breakpoints
	l.Delete(1)
	l.Delete(3)
	test.DemandSuccess(t, tr.Push(l))
	test.ExpectEquality(t, len(core.bps), 0)
}

func TestTranslatorFailure(t *testing.T) {
	core := &mockCore{}
	tr := breakpoints.NewTranslator(core)

	l := breakpoints.NewList()
	l.Add(breakpoints.Breakpoint{CPU: console.CPUNes, Start: 0x10, End: 0x01, Type: emulation.BreakExecute, Enabled: true})
	err := tr.Push(l)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, emulation.InvalidBreakpoint))
	test.ExpectEquality(t, core.pushes, 0)
}
