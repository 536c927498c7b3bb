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
	"encoding/json"

	"github.com/jetsetilly/emucli/console"
	"github.com/jetsetilly/emucli/emulation"
)

// Format specifies the output format.
type Format int

// List of valid output formats.
const (
	Text Format = iota
	JSON
)

// placeholder output for architectures without renderers.
const (
	unsupportedText = "[Register display not implemented for this CPU type]"
	unsupportedJSON = `{"error":"unsupported cpu type"}`
)

type renderers struct {
	text func(emulation.CPUState) (string, bool)
	json func(emulation.CPUState) (any, bool)
}

// dispatch table of renderers. both the SNES and the SA-1 are 65816 CPUs.
var dispatch = map[console.Arch]renderers{
	console.CPUNes:     {text: nesText, json: nesJSON},
	console.CPUSnes:    {text: snesText, json: snesJSON},
	console.CPUSa1:     {text: snesText, json: snesJSON},
	console.CPUGameboy: {text: gbText, json: gbJSON},
	console.CPUGba:     {text: gbaText, json: gbaJSON},
	console.CPUPce:     {text: pceText, json: pceJSON},
	console.CPUSms:     {text: smsText, json: smsJSON},
	console.CPUWs:      {text: wsText, json: wsJSON},
}

// Supported returns true if the architecture has renderers.
func Supported(arch console.Arch) bool {
	_, ok := dispatch[arch]
	return ok
}

// Registers renders the CPU state in the specified format.
func Registers(state emulation.CPUState, format Format) string {
	if format == JSON {
		return RegistersJSON(state)
	}
	return RegistersText(state)
}

// RegistersText renders the CPU state as text. The text has more than one
// line but there is no trailing newline.
func RegistersText(state emulation.CPUState) string {
	if state == nil {
		return unsupportedText
	}
	r, ok := dispatch[state.Arch()]
	if !ok {
		return unsupportedText
	}
	s, ok := r.text(state)
	if !ok {
		return unsupportedText
	}
	return s
}

// RegistersJSON renders the CPU state as a JSON object.
func RegistersJSON(state emulation.CPUState) string {
	if state == nil {
		return unsupportedJSON
	}
	r, ok := dispatch[state.Arch()]
	if !ok {
		return unsupportedJSON
	}
	v, ok := r.json(state)
	if !ok {
		return unsupportedJSON
	}
	b, err := json.Marshal(v)
	if err != nil {
		return unsupportedJSON
	}
	return string(b)
}

// flag returns one of two characters depending on whether the flag is set.
func flag(set bool, on byte, off byte) byte {
	if set {
		return on
	}
	return off
}

// flags returns a string with one character per flag in the letters
// string. the character is uppercase if the corresponding bit in the mask is
// set and lowercase otherwise. bits are listed most significant first.
func flags(value uint8, letters string, bits ...uint8) string {
	b := make([]byte, len(bits))
	for i, m := range bits {
		c := letters[i]
		b[i] = flag(value&m == m, c, c+('a'-'A'))
	}
	return string(b)
}
