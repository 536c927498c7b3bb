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

package sim

import (
	"bufio"
	"os"

	"github.com/jetsetilly/emucli/emulation"
	"github.com/jetsetilly/emucli/formatter"
)

// trace writes a line of disassembly for every executed instruction.
type trace struct {
	f *os.File
	w *bufio.Writer
}

func newTrace(filename string) (*trace, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	return &trace{
		f: f,
		w: bufio.NewWriter(f),
	}, nil
}

func (tr *trace) write(lines []emulation.DisassemblyLine) {
	_, _ = tr.w.WriteString(formatter.Disassembly(lines))
}

func (tr *trace) close() error {
	err := tr.w.Flush()
	if cerr := tr.f.Close(); err == nil {
		err = cerr
	}
	return err
}
