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

type gbFlagsJSON struct {
	Z bool `json:"z"`
	N bool `json:"n"`
	H bool `json:"h"`
	C bool `json:"c"`
}

type gbRegistersJSON struct {
	PC    string      `json:"pc"`
	SP    string      `json:"sp"`
	A     string      `json:"a"`
	F     string      `json:"f"`
	B     string      `json:"b"`
	C     string      `json:"c"`
	D     string      `json:"d"`
	E     string      `json:"e"`
	H     string      `json:"h"`
	L     string      `json:"l"`
	Flags gbFlagsJSON `json:"flags"`
}

type gbJSONState struct {
	Registers gbRegistersJSON `json:"registers"`
	Cycles    uint64          `json:"cycles"`
}

// the main register line is the same for the Game Boy and the Master System.
const z80Line = "PC=$%04X  SP=$%04X  A=$%02X  F=$%02X  B=$%02X  C=$%02X  D=$%02X  E=$%02X  H=$%02X  L=$%02X\n"

func gbText(state emulation.CPUState) (string, bool) {
	s, ok := state.(emulation.GbCPUState)
	if !ok {
		return "", false
	}
	f := flags(s.Flags, "ZNHC",
		emulation.GbFlagZero, emulation.GbFlagAddSub, emulation.GbFlagHalfCarry, emulation.GbFlagCarry)
	return fmt.Sprintf(z80Line+"Flags: %s  Cycles: %d",
		s.PC, s.SP, s.A, s.Flags, s.B, s.C, s.D, s.E, s.H, s.L, f, s.CycleCount), true
}

func gbJSON(state emulation.CPUState) (any, bool) {
	s, ok := state.(emulation.GbCPUState)
	if !ok {
		return nil, false
	}
	return gbJSONState{
		Registers: gbRegistersJSON{
			PC: fmt.Sprintf("%04x", s.PC),
			SP: fmt.Sprintf("%04x", s.SP),
			A:  fmt.Sprintf("%02x", s.A),
			F:  fmt.Sprintf("%02x", s.Flags),
			B:  fmt.Sprintf("%02x", s.B),
			C:  fmt.Sprintf("%02x", s.C),
			D:  fmt.Sprintf("%02x", s.D),
			E:  fmt.Sprintf("%02x", s.E),
			H:  fmt.Sprintf("%02x", s.H),
			L:  fmt.Sprintf("%02x", s.L),
			Flags: gbFlagsJSON{
				Z: s.Flags&emulation.GbFlagZero != 0,
				N: s.Flags&emulation.GbFlagAddSub != 0,
				H: s.Flags&emulation.GbFlagHalfCarry != 0,
				C: s.Flags&emulation.GbFlagCarry != 0,
			},
		},
		Cycles: s.CycleCount,
	}, true
}

type smsFlagsJSON struct {
	S bool `json:"s"`
	Z bool `json:"z"`
	H bool `json:"h"`
	P bool `json:"p"`
	N bool `json:"n"`
	C bool `json:"c"`
}

type smsRegistersJSON struct {
	PC    string       `json:"pc"`
	SP    string       `json:"sp"`
	A     string       `json:"a"`
	F     string       `json:"f"`
	B     string       `json:"b"`
	C     string       `json:"c"`
	D     string       `json:"d"`
	E     string       `json:"e"`
	H     string       `json:"h"`
	L     string       `json:"l"`
	IX    string       `json:"ix"`
	IY    string       `json:"iy"`
	I     string       `json:"i"`
	R     string       `json:"r"`
	Flags smsFlagsJSON `json:"flags"`
}

type smsJSONState struct {
	Registers smsRegistersJSON `json:"registers"`
	Cycles    uint64           `json:"cycles"`
}

func smsFlags(f uint8) string {
	b := []byte(flags(f, "SZ5H3PNC",
		emulation.SmsFlagSign, emulation.SmsFlagZero, emulation.SmsFlagF5,
		emulation.SmsFlagHalfCarry, emulation.SmsFlagF3, emulation.SmsFlagParity,
		emulation.SmsFlagAddSub, emulation.SmsFlagCarry))

	// the undocumented bits are shown as a digit or a dot
	b[2] = flag(f&emulation.SmsFlagF5 != 0, '5', '.')
	b[4] = flag(f&emulation.SmsFlagF3 != 0, '3', '.')

	return string(b)
}

func smsText(state emulation.CPUState) (string, bool) {
	s, ok := state.(emulation.SmsCPUState)
	if !ok {
		return "", false
	}
	return fmt.Sprintf(z80Line+"IX=$%02X%02X  IY=$%02X%02X  I=$%02X  R=$%02X\nFlags: %s  Cycles: %d",
		s.PC, s.SP, s.A, s.Flags, s.B, s.C, s.D, s.E, s.H, s.L,
		s.IXH, s.IXL, s.IYH, s.IYL, s.I, s.R,
		smsFlags(s.Flags), s.CycleCount), true
}

func smsJSON(state emulation.CPUState) (any, bool) {
	s, ok := state.(emulation.SmsCPUState)
	if !ok {
		return nil, false
	}
	return smsJSONState{
		Registers: smsRegistersJSON{
			PC: fmt.Sprintf("%04x", s.PC),
			SP: fmt.Sprintf("%04x", s.SP),
			A:  fmt.Sprintf("%02x", s.A),
			F:  fmt.Sprintf("%02x", s.Flags),
			B:  fmt.Sprintf("%02x", s.B),
			C:  fmt.Sprintf("%02x", s.C),
			D:  fmt.Sprintf("%02x", s.D),
			E:  fmt.Sprintf("%02x", s.E),
			H:  fmt.Sprintf("%02x", s.H),
			L:  fmt.Sprintf("%02x", s.L),
			IX: fmt.Sprintf("%04x", s.IX()),
			IY: fmt.Sprintf("%04x", s.IY()),
			I:  fmt.Sprintf("%02x", s.I),
			R:  fmt.Sprintf("%02x", s.R),
			Flags: smsFlagsJSON{
				S: s.Flags&emulation.SmsFlagSign != 0,
				Z: s.Flags&emulation.SmsFlagZero != 0,
				H: s.Flags&emulation.SmsFlagHalfCarry != 0,
				P: s.Flags&emulation.SmsFlagParity != 0,
				N: s.Flags&emulation.SmsFlagAddSub != 0,
				C: s.Flags&emulation.SmsFlagCarry != 0,
			},
		},
		Cycles: s.CycleCount,
	}, true
}
