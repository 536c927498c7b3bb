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

// MemoryHex renders data as rows of sixteen bytes. Each row starts with the
// address of the first byte in the row, the first row having the address
// specified. Bytes are shown in hexadecimal followed by their printable
// ASCII equivalents.
func MemoryHex(data []byte, address uint32) string {
	var b strings.Builder
	for i := 0; i < len(data); i += 16 {
		row := data[i:min(i+16, len(data))]

		b.WriteString(fmt.Sprintf("%06X: ", address+uint32(i)))
		for _, v := range row {
			b.WriteString(fmt.Sprintf("%02X ", v))
		}

		b.WriteString(" ")
		for _, v := range row {
			if v >= 0x20 && v <= 0x7e {
				b.WriteByte(v)
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// the maximum number of bytes shown for each line of disassembly
const maxByteCode = 4

// Disassembly renders each line of disassembly on its own line. Lines with
// a negative address are skipped.
func Disassembly(lines []emulation.DisassemblyLine) string {
	var b strings.Builder
	for _, l := range lines {
		if l.Address < 0 {
			continue
		}

		b.WriteString(fmt.Sprintf("%06X: ", l.Address))
		for i := 0; i < maxByteCode; i++ {
			if i < len(l.ByteCode) {
				b.WriteString(fmt.Sprintf("%02X ", l.ByteCode[i]))
			} else {
				b.WriteString("   ")
			}
		}

		b.WriteString(l.Text)
		if l.Comment != "" {
			b.WriteString("  ; ")
			b.WriteString(l.Comment)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Callstack renders each frame of the call stack on its own line.
func Callstack(frames []emulation.StackFrame) string {
	var b strings.Builder
	for i, f := range frames {
		var tag string
		if f.Flags&emulation.StackFrameNmi != 0 {
			tag = " [NMI]"
		} else if f.Flags&emulation.StackFrameIrq != 0 {
			tag = " [IRQ]"
		}
		b.WriteString(fmt.Sprintf("#%d  $%06X -> $%06X%s\n", i, f.Source, f.Target, tag))
	}
	return b.String()
}
