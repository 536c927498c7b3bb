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

package console_test

import (
	"testing"

	"github.com/jetsetilly/emucli/console"
	"github.com/jetsetilly/emucli/curated"
	"github.com/jetsetilly/emucli/test"
)

func TestArchitectures(t *testing.T) {
	test.ExpectEquality(t, console.CPUNes.String(), "NES 6502")
	test.ExpectEquality(t, console.CPUSa1.String(), "SNES SA-1")
	test.ExpectEquality(t, console.CPUWs.String(), "WS V30MZ")
	test.ExpectEquality(t, console.Arch(100).String(), "Unknown")

	test.ExpectEquality(t, console.CPUGba.Memory(), console.GbaMemory)
	test.ExpectEquality(t, console.Arch(-1).Memory(), console.MemoryNone)

	d, ok := console.CPUGameboy.Descriptor()
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, d.Flag, console.GbDebuggerEnabled)

	// every architecture has a debugger flag and a memory space
	for _, a := range console.Architectures() {
		test.ExpectInequality(t, a.Flag, "", a.Name)
		test.ExpectInequality(t, a.Memory, console.MemoryNone, a.Name)
	}
}

func TestDescriptors(t *testing.T) {
	d, ok := console.Lookup(console.NES)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, d.Name, "Nintendo Entertainment System")
	test.ExpectEquality(t, d.CPU, console.CPUNes)
	test.ExpectEquality(t, len(d.Regions), 9)
	test.ExpectEquality(t, d.Regions[0].Alias, "ram")
	test.ExpectEquality(t, d.Regions[8].Alias, "nt")

	counts := map[console.Kind]int{
		console.SNES:           6,
		console.GameBoy:        6,
		console.GameBoyAdvance: 7,
		console.PCEngine:       8,
		console.MasterSystem:   5,
		console.WonderSwan:     5,
	}
	for k, n := range counts {
		d, ok := console.Lookup(k)
		test.DemandSuccess(t, ok)
		test.ExpectEquality(t, len(d.Regions), n, d.Name)
	}

	test.ExpectEquality(t, console.PCEngine.String(), "PC Engine")
	test.ExpectEquality(t, console.Kind(99).String(), "Unknown")
}

func TestFromFilename(t *testing.T) {
	d, ok := console.FromFilename("roms/game.SFC")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, d.Kind, console.SNES)

	d, ok = console.FromFilename("game.gbc")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, d.Kind, console.GameBoy)

	_, ok = console.FromFilename("game.bin")
	test.ExpectFailure(t, ok)

	_, ok = console.FromFilename("game")
	test.ExpectFailure(t, ok)
}

func TestRegion(t *testing.T) {
	d, _ := console.Lookup(console.GameBoyAdvance)

	r, err := d.Region("ewram")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.Type, console.GbaExtWorkRam)
	test.ExpectEquality(t, r.Name, "External Work RAM")

	_, err = d.Region("chr")
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, console.UnknownMemoryAlias))
	test.ExpectEquality(t, err.Error(),
		"unknown memory type 'chr' for Game Boy Advance (valid types: iwram ewram vram oam pal rom sram)")
}
