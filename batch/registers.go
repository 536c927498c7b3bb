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

package batch

import (
	"strconv"
	"strings"

	"github.com/jetsetilly/emucli/console"
	"github.com/jetsetilly/emucli/curated"
	"github.com/jetsetilly/emucli/emulation"
)

// Sentinal error returned by RegisterValue().
const (
	UnknownRegister = "unknown register: %s"
)

// register lookup for an architecture. the name is always in uppercase.
type registerLookup func(state emulation.CPUState, name string) (uint16, bool)

var registerTables = map[console.Arch]registerLookup{
	console.CPUNes:     nesRegister,
	console.CPUSnes:    snesRegister,
	console.CPUSa1:     snesRegister,
	console.CPUGameboy: gbRegister,
	console.CPUGba:     gbaRegister,
	console.CPUPce:     pceRegister,
	console.CPUSms:     smsRegister,
	console.CPUWs:      wsRegister,
}

// RegisterValue returns the value of the named register. Register names are
// not case sensitive. Registers wider than sixteen bits are truncated.
func RegisterValue(state emulation.CPUState, name string) (uint16, error) {
	if state != nil {
		if lookup, ok := registerTables[state.Arch()]; ok {
			if v, ok := lookup(state, strings.ToUpper(name)); ok {
				return v, nil
			}
		}
	}
	return 0, curated.Errorf(UnknownRegister, name)
}

func nesRegister(state emulation.CPUState, name string) (uint16, bool) {
	s, ok := state.(emulation.NesCPUState)
	if !ok {
		return 0, false
	}
	switch name {
	case "A":
		return uint16(s.A), true
	case "X":
		return uint16(s.X), true
	case "Y":
		return uint16(s.Y), true
	case "SP":
		return uint16(s.SP), true
	case "PC":
		return s.PC, true
	case "PS":
		return uint16(s.PS), true
	}
	return 0, false
}

func snesRegister(state emulation.CPUState, name string) (uint16, bool) {
	s, ok := state.(emulation.SnesCPUState)
	if !ok {
		return 0, false
	}
	switch name {
	case "A":
		return s.A, true
	case "X":
		return s.X, true
	case "Y":
		return s.Y, true
	case "SP":
		return s.SP, true
	case "D":
		return s.D, true
	case "DBR":
		return uint16(s.DBR), true
	case "PS":
		return uint16(s.PS), true
	case "PC":
		return s.PC, true
	case "K":
		return uint16(s.K), true
	}
	return 0, false
}

func gbRegister(state emulation.CPUState, name string) (uint16, bool) {
	s, ok := state.(emulation.GbCPUState)
	if !ok {
		return 0, false
	}
	switch name {
	case "A":
		return uint16(s.A), true
	case "F":
		return uint16(s.Flags), true
	case "B":
		return uint16(s.B), true
	case "C":
		return uint16(s.C), true
	case "D":
		return uint16(s.D), true
	case "E":
		return uint16(s.E), true
	case "H":
		return uint16(s.H), true
	case "L":
		return uint16(s.L), true
	case "SP":
		return s.SP, true
	case "PC":
		return s.PC, true
	}
	return 0, false
}

func gbaRegister(state emulation.CPUState, name string) (uint16, bool) {
	s, ok := state.(emulation.GbaCPUState)
	if !ok {
		return 0, false
	}
	switch name {
	case "SP":
		return uint16(s.R[13]), true
	case "LR":
		return uint16(s.R[14]), true
	case "PC":
		return uint16(s.R[15]), true
	}
	if n, ok := strings.CutPrefix(name, "R"); ok {
		i, err := strconv.Atoi(n)
		if err == nil && i >= 0 && i < len(s.R) {
			return uint16(s.R[i]), true
		}
	}
	return 0, false
}

func pceRegister(state emulation.CPUState, name string) (uint16, bool) {
	s, ok := state.(emulation.PceCPUState)
	if !ok {
		return 0, false
	}
	switch name {
	case "A":
		return uint16(s.A), true
	case "X":
		return uint16(s.X), true
	case "Y":
		return uint16(s.Y), true
	case "SP":
		return uint16(s.SP), true
	case "PC":
		return s.PC, true
	case "PS":
		return uint16(s.PS), true
	}
	return 0, false
}

func smsRegister(state emulation.CPUState, name string) (uint16, bool) {
	s, ok := state.(emulation.SmsCPUState)
	if !ok {
		return 0, false
	}
	switch name {
	case "A":
		return uint16(s.A), true
	case "F":
		return uint16(s.Flags), true
	case "B":
		return uint16(s.B), true
	case "C":
		return uint16(s.C), true
	case "D":
		return uint16(s.D), true
	case "E":
		return uint16(s.E), true
	case "H":
		return uint16(s.H), true
	case "L":
		return uint16(s.L), true
	case "SP":
		return s.SP, true
	case "PC":
		return s.PC, true
	case "IX":
		return s.IX(), true
	case "IY":
		return s.IY(), true
	}
	return 0, false
}

func wsRegister(state emulation.CPUState, name string) (uint16, bool) {
	s, ok := state.(emulation.WsCPUState)
	if !ok {
		return 0, false
	}
	switch name {
	case "AX":
		return s.AX, true
	case "BX":
		return s.BX, true
	case "CX":
		return s.CX, true
	case "DX":
		return s.DX, true
	case "SP":
		return s.SP, true
	case "BP":
		return s.BP, true
	case "SI":
		return s.SI, true
	case "DI":
		return s.DI, true
	case "CS":
		return s.CS, true
	case "IP":
		return s.IP, true
	case "DS":
		return s.DS, true
	case "ES":
		return s.ES, true
	case "SS":
		return s.SS, true
	}
	return 0, false
}
