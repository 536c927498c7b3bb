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

type wsFlagBitsJSON struct {
	O bool `json:"o"`
	D bool `json:"d"`
	I bool `json:"i"`
	T bool `json:"t"`
	S bool `json:"s"`
	Z bool `json:"z"`
	A bool `json:"a"`
	P bool `json:"p"`
	C bool `json:"c"`
}

type wsRegistersJSON struct {
	CS       string         `json:"cs"`
	IP       string         `json:"ip"`
	AX       string         `json:"ax"`
	BX       string         `json:"bx"`
	CX       string         `json:"cx"`
	DX       string         `json:"dx"`
	SP       string         `json:"sp"`
	BP       string         `json:"bp"`
	SI       string         `json:"si"`
	DI       string         `json:"di"`
	DS       string         `json:"ds"`
	ES       string         `json:"es"`
	SS       string         `json:"ss"`
	Flags    string         `json:"flags"`
	FlagBits wsFlagBitsJSON `json:"flag_bits"`
}

type wsJSONState struct {
	Registers wsRegistersJSON `json:"registers"`
	Cycles    uint64          `json:"cycles"`
}

func wsText(state emulation.CPUState) (string, bool) {
	s, ok := state.(emulation.WsCPUState)
	if !ok {
		return "", false
	}
	f := s.Flags
	return fmt.Sprintf("CS:IP=$%04X:%04X  AX=$%04X  BX=$%04X  CX=$%04X  DX=$%04X\n"+
		"SP=$%04X  BP=$%04X  SI=$%04X  DI=$%04X  DS=$%04X  ES=$%04X  SS=$%04X\n"+
		"Flags=$%04X [%c%c%c%c%c%c%c%c%c]  Cycles: %d",
		s.CS, s.IP, s.AX, s.BX, s.CX, s.DX,
		s.SP, s.BP, s.SI, s.DI, s.DS, s.ES, s.SS,
		f.Value(),
		flag(f.Overflow, 'O', 'o'),
		flag(f.Direction, 'D', 'd'),
		flag(f.Irq, 'I', 'i'),
		flag(f.Trap, 'T', 't'),
		flag(f.Sign, 'S', 's'),
		flag(f.Zero, 'Z', 'z'),
		flag(f.AuxCarry, 'A', 'a'),
		flag(f.Parity, 'P', 'p'),
		flag(f.Carry, 'C', 'c'),
		s.CycleCount), true
}

func wsJSON(state emulation.CPUState) (any, bool) {
	s, ok := state.(emulation.WsCPUState)
	if !ok {
		return nil, false
	}
	return wsJSONState{
		Registers: wsRegistersJSON{
			CS:    fmt.Sprintf("%04x", s.CS),
			IP:    fmt.Sprintf("%04x", s.IP),
			AX:    fmt.Sprintf("%04x", s.AX),
			BX:    fmt.Sprintf("%04x", s.BX),
			CX:    fmt.Sprintf("%04x", s.CX),
			DX:    fmt.Sprintf("%04x", s.DX),
			SP:    fmt.Sprintf("%04x", s.SP),
			BP:    fmt.Sprintf("%04x", s.BP),
			SI:    fmt.Sprintf("%04x", s.SI),
			DI:    fmt.Sprintf("%04x", s.DI),
			DS:    fmt.Sprintf("%04x", s.DS),
			ES:    fmt.Sprintf("%04x", s.ES),
			SS:    fmt.Sprintf("%04x", s.SS),
			Flags: fmt.Sprintf("%04x", s.Flags.Value()),
			FlagBits: wsFlagBitsJSON{
				O: s.Flags.Overflow,
				D: s.Flags.Direction,
				I: s.Flags.Irq,
				T: s.Flags.Trap,
				S: s.Flags.Sign,
				Z: s.Flags.Zero,
				A: s.Flags.AuxCarry,
				P: s.Flags.Parity,
				C: s.Flags.Carry,
			},
		},
		Cycles: s.CycleCount,
	}, true
}
