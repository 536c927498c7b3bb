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

package debugger

import (
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/emucli/debugger/terminal"
)

// memviz <file>
//
// writes the breakpoint list and the breakpoints as they have been received
// by the emulation as a graphviz dot file.
func (dbg *Debugger) cmdMemviz(tk *tokens) error {
	if tk.remaining() == 0 {
		dbg.printLine(terminal.StyleFeedback, "Usage: memviz <file>")
		return nil
	}
	filename := tk.remainder()

	core, ok := dbg.core()
	if !ok {
		return nil
	}

	entries := dbg.breakpoints.Entries()
	native := core.Breakpoints()

	f, err := os.Create(filename)
	if err != nil {
		dbg.printLine(terminal.StyleError, "Failed to open %s for writing.", filename)
		return nil
	}
	defer f.Close()

	memviz.Map(f, &entries, &native)

	dbg.printLine(terminal.StyleFeedback, "Breakpoint graph written to %s", filename)

	return nil
}
