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

type nesFlagsJSON struct {
	N bool `json:"n"`
	V bool `json:"v"`
	D bool `json:"d"`
	I bool `json:"i"`
	Z bool `json:"z"`
	C bool `json:"c"`
}

type nesRegistersJSON struct {
	PC    string       `json:"pc"`
	A     string       `json:"a"`
	X     string       `json:"x"`
	Y     string       `json:"y"`
	SP    string       `json:"sp"`
	PS    string       `json:"ps"`
	Flags nesFlagsJSON `json:"flags"`
}

type nesJSONState struct {
	Registers nesRegistersJSON `json:"registers"`
	Cycles    uint64           `json:"cycles"`
}

func nesFlags(ps uint8) string {
	b := []byte(flags(ps, "NVRBDIZC",
		emulation.NesFlagNegative, emulation.NesFlagOverflow, emulation.NesFlagReserved,
		emulation.NesFlagBreak, emulation.NesFlagDecimal, emulation.NesFlagInterrupt,
		emulation.NesFlagZero, emulation.NesFlagCarry))

	// the reserved bit is shown as a digit
	b[2] = flag(ps&emulation.NesFlagReserved != 0, '1', '0')

	return string(b)
}

func nesText(state emulation.CPUState) (string, bool) {
	s, ok := state.(emulation.NesCPUState)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("PC=$%04X  A=$%02X  X=$%02X  Y=$%02X  SP=$%02X\nFlags: %s  Cycles: %d",
		s.PC, s.A, s.X, s.Y, s.SP, nesFlags(s.PS), s.CycleCount), true
}

func nesJSON(state emulation.CPUState) (any, bool) {
	s, ok := state.(emulation.NesCPUState)
	if !ok {
		return nil, false
	}
	return nesJSONState{
		Registers: nesRegistersJSON{
			PC: fmt.Sprintf("%04x", s.PC),
			A:  fmt.Sprintf("%02x", s.A),
			X:  fmt.Sprintf("%02x", s.X),
			Y:  fmt.Sprintf("%02x", s.Y),
			SP: fmt.Sprintf("%02x", s.SP),
			PS: fmt.Sprintf("%02x", s.PS),
			Flags: nesFlagsJSON{
				N: s.PS&emulation.NesFlagNegative != 0,
				V: s.PS&emulation.NesFlagOverflow != 0,
				D: s.PS&emulation.NesFlagDecimal != 0,
				I: s.PS&emulation.NesFlagInterrupt != 0,
				Z: s.PS&emulation.NesFlagZero != 0,
				C: s.PS&emulation.NesFlagCarry != 0,
			},
		},
		Cycles: s.CycleCount,
	}, true
}

type pceFlagsJSON struct {
	N bool `json:"n"`
	V bool `json:"v"`
	T bool `json:"t"`
	D bool `json:"d"`
	I bool `json:"i"`
	Z bool `json:"z"`
	C bool `json:"c"`
}

type pceRegistersJSON struct {
	PC    string       `json:"pc"`
	A     string       `json:"a"`
	X     string       `json:"x"`
	Y     string       `json:"y"`
	SP    string       `json:"sp"`
	PS    string       `json:"ps"`
	Flags pceFlagsJSON `json:"flags"`
}

type pceJSONState struct {
	Registers pceRegistersJSON `json:"registers"`
	Cycles    uint64           `json:"cycles"`
}

func pceText(state emulation.CPUState) (string, bool) {
	s, ok := state.(emulation.PceCPUState)
	if !ok {
		return "", false
	}
	f := flags(s.PS, "NVTBDIZC",
		emulation.PceFlagNegative, emulation.PceFlagOverflow, emulation.PceFlagMemory,
		emulation.PceFlagBreak, emulation.PceFlagDecimal, emulation.PceFlagInterrupt,
		emulation.PceFlagZero, emulation.PceFlagCarry)
	return fmt.Sprintf("PC=$%04X  A=$%02X  X=$%02X  Y=$%02X  SP=$%02X\nFlags: %s  Cycles: %d",
		s.PC, s.A, s.X, s.Y, s.SP, f, s.CycleCount), true
}

func pceJSON(state emulation.CPUState) (any, bool) {
	s, ok := state.(emulation.PceCPUState)
	if !ok {
		return nil, false
	}
	return pceJSONState{
		Registers: pceRegistersJSON{
			PC: fmt.Sprintf("%04x", s.PC),
			A:  fmt.Sprintf("%02x", s.A),
			X:  fmt.Sprintf("%02x", s.X),
			Y:  fmt.Sprintf("%02x", s.Y),
			SP: fmt.Sprintf("%02x", s.SP),
			PS: fmt.Sprintf("%02x", s.PS),
			Flags: pceFlagsJSON{
				N: s.PS&emulation.PceFlagNegative != 0,
				V: s.PS&emulation.PceFlagOverflow != 0,
				T: s.PS&emulation.PceFlagMemory != 0,
				D: s.PS&emulation.PceFlagDecimal != 0,
				I: s.PS&emulation.PceFlagInterrupt != 0,
				Z: s.PS&emulation.PceFlagZero != 0,
				C: s.PS&emulation.PceFlagCarry != 0,
			},
		},
		Cycles: s.CycleCount,
	}, true
}
