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

package formatter

import (
	"fmt"

	"github.com/jetsetilly/emucli/emulation"
)

type snesFlagsJSON struct {
	N bool `json:"n"`
	V bool `json:"v"`
	M bool `json:"m"`
	X bool `json:"x"`
	D bool `json:"d"`
	I bool `json:"i"`
	Z bool `json:"z"`
	C bool `json:"c"`
}

type snesRegistersJSON struct {
	PC    string        `json:"pc"`
	A     string        `json:"a"`
	X     string        `json:"x"`
	Y     string        `json:"y"`
	SP    string        `json:"sp"`
	D     string        `json:"d"`
	DBR   string        `json:"dbr"`
	PS    string        `json:"ps"`
	Flags snesFlagsJSON `json:"flags"`
}

type snesJSONState struct {
	Registers snesRegistersJSON `json:"registers"`
	Cycles    uint64            `json:"cycles"`
	StopState int               `json:"stop_state"`
}

func snesText(state emulation.CPUState) (string, bool) {
	s, ok := state.(emulation.SnesCPUState)
	if !ok {
		return "", false
	}

	f := flags(s.PS, "NVMXDIZC",
		emulation.SnesFlagNegative, emulation.SnesFlagOverflow, emulation.SnesFlagMemoryMode8,
		emulation.SnesFlagIndexMode8, emulation.SnesFlagDecimal, emulation.SnesFlagIrqDisable,
		emulation.SnesFlagZero, emulation.SnesFlagCarry)

	m := "m16"
	if s.PS&emulation.SnesFlagMemoryMode8 != 0 {
		m = "m8"
	}
	x := "x16"
	if s.PS&emulation.SnesFlagIndexMode8 != 0 {
		x = "x8"
	}

	return fmt.Sprintf("PC=$%02X:%04X  A=$%04X  X=$%04X  Y=$%04X  SP=$%04X  D=$%04X  DBR=$%02X\nFlags: %s  [%s %s]  Cycles: %d",
		s.K, s.PC, s.A, s.X, s.Y, s.SP, s.D, s.DBR, f, m, x, s.CycleCount), true
}

func snesJSON(state emulation.CPUState) (any, bool) {
	s, ok := state.(emulation.SnesCPUState)
	if !ok {
		return nil, false
	}
	return snesJSONState{
		Registers: snesRegistersJSON{
			PC:  fmt.Sprintf("%02x%04x", s.K, s.PC),
			A:   fmt.Sprintf("%04x", s.A),
			X:   fmt.Sprintf("%04x", s.X),
			Y:   fmt.Sprintf("%04x", s.Y),
			SP:  fmt.Sprintf("%04x", s.SP),
			D:   fmt.Sprintf("%04x", s.D),
			DBR: fmt.Sprintf("%02x", s.DBR),
			PS:  fmt.Sprintf("%02x", s.PS),
			Flags: snesFlagsJSON{
				N: s.PS&emulation.SnesFlagNegative != 0,
				V: s.PS&emulation.SnesFlagOverflow != 0,
				M: s.PS&emulation.SnesFlagMemoryMode8 != 0,
				X: s.PS&emulation.SnesFlagIndexMode8 != 0,
				D: s.PS&emulation.SnesFlagDecimal != 0,
				I: s.PS&emulation.SnesFlagIrqDisable != 0,
				Z: s.PS&emulation.SnesFlagZero != 0,
				C: s.PS&emulation.SnesFlagCarry != 0,
			},
		},
		Cycles:    s.CycleCount,
		StopState: int(s.StopState),
	}, true
}
