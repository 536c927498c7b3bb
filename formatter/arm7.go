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
	"strings"

	"github.com/jetsetilly/emucli/emulation"
)

type gbaFlagsJSON struct {
	N     bool   `json:"n"`
	Z     bool   `json:"z"`
	C     bool   `json:"c"`
	V     bool   `json:"v"`
	Thumb bool   `json:"thumb"`
	Mode  string `json:"mode"`
}

type gbaRegistersJSON struct {
	R0    string       `json:"r0"`
	R1    string       `json:"r1"`
	R2    string       `json:"r2"`
	R3    string       `json:"r3"`
	R4    string       `json:"r4"`
	R5    string       `json:"r5"`
	R6    string       `json:"r6"`
	R7    string       `json:"r7"`
	R8    string       `json:"r8"`
	R9    string       `json:"r9"`
	R10   string       `json:"r10"`
	R11   string       `json:"r11"`
	R12   string       `json:"r12"`
	R13   string       `json:"r13"`
	R14   string       `json:"r14"`
	R15   string       `json:"r15"`
	CPSR  string       `json:"cpsr"`
	Flags gbaFlagsJSON `json:"flags"`
}

type gbaJSONState struct {
	Registers gbaRegistersJSON `json:"registers"`
	Cycles    uint64           `json:"cycles"`
}

func gbaText(state emulation.CPUState) (string, bool) {
	s, ok := state.(emulation.GbaCPUState)
	if !ok {
		return "", false
	}

	var b strings.Builder
	for i, r := range s.R {
		switch i {
		case 13:
			b.WriteString("SP=")
		case 14:
			b.WriteString("LR=")
		case 15:
			b.WriteString("PC=")
		default:
			b.WriteString(fmt.Sprintf("R%d=", i))
		}
		b.WriteString(fmt.Sprintf("$%08X  ", r))
		if i == 3 || i == 7 || i == 11 {
			b.WriteString("\n")
		}
	}

	mode := "ARM"
	if s.CPSR.Thumb {
		mode = "THUMB"
	}

	b.WriteString(fmt.Sprintf("\nCPSR=$%08X  [%c%c%c%c %s %s]  Cycles: %d",
		s.CPSR.Value(),
		flag(s.CPSR.Negative, 'N', 'n'),
		flag(s.CPSR.Zero, 'Z', 'z'),
		flag(s.CPSR.Carry, 'C', 'c'),
		flag(s.CPSR.Overflow, 'V', 'v'),
		mode, s.CPSR.Mode, s.CycleCount))

	return b.String(), true
}

func gbaJSON(state emulation.CPUState) (any, bool) {
	s, ok := state.(emulation.GbaCPUState)
	if !ok {
		return nil, false
	}

	var r [16]string
	for i := range s.R {
		r[i] = fmt.Sprintf("%08x", s.R[i])
	}

	return gbaJSONState{
		Registers: gbaRegistersJSON{
			R0: r[0], R1: r[1], R2: r[2], R3: r[3],
			R4: r[4], R5: r[5], R6: r[6], R7: r[7],
			R8: r[8], R9: r[9], R10: r[10], R11: r[11],
			R12: r[12], R13: r[13], R14: r[14], R15: r[15],
			CPSR: fmt.Sprintf("%08x", s.CPSR.Value()),
			Flags: gbaFlagsJSON{
				N:     s.CPSR.Negative,
				Z:     s.CPSR.Zero,
				C:     s.CPSR.Carry,
				V:     s.CPSR.Overflow,
				Thumb: s.CPSR.Thumb,
				Mode:  s.CPSR.Mode.String(),
			},
		},
		Cycles: s.CycleCount,
	}, true
}
