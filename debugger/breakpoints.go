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
	"fmt"

	"github.com/jetsetilly/emucli/breakpoints"
	"github.com/jetsetilly/emucli/debugger/terminal"
	"github.com/jetsetilly/emucli/emulation"
)

// arguments to the watch command that select the type of access.
var watchTypes = map[string]emulation.BreakpointType{
	"read":  emulation.BreakRead,
	"write": emulation.BreakWrite,
	"rw":    emulation.BreakRead | emulation.BreakWrite,
}

// add the breakpoint to the list and push the list to the emulation. the
// breakpoint is removed from the list again if the push fails.
func (dbg *Debugger) addBreakpoint(bp breakpoints.Breakpoint) (int, error) {
	id := dbg.breakpoints.Add(bp)
	if err := dbg.pushBreakpoints(); err != nil {
		dbg.breakpoints.Delete(id)
		return 0, err
	}
	return id, nil
}

func addressText(bp breakpoints.Breakpoint) string {
	if bp.End != bp.Start {
		return fmt.Sprintf("$%06X-$%06X", bp.Start, bp.End)
	}
	return fmt.Sprintf("$%06X", bp.Start)
}

// break <addr> [if <condition>]
func (dbg *Debugger) cmdBreak(tk *tokens) error {
	arg, ok := tk.get()
	if !ok {
		dbg.printLine(terminal.StyleFeedback, "Usage: break <addr>")
		return nil
	}

	start, end, err := breakpoints.ParseRange(arg)
	if err != nil {
		return err
	}

	bp := breakpoints.NewExecute(dbg.primary, start, end)

	if kw, ok := tk.get(); ok {
		if kw != "if" || tk.remaining() == 0 {
			dbg.printLine(terminal.StyleFeedback, "Usage: break <addr> [if <condition>]")
			return nil
		}
		bp.Condition = tk.remainder()
	}

	id, err := dbg.addBreakpoint(bp)
	if err != nil {
		return err
	}

	dbg.printLine(terminal.StyleFeedback, "Breakpoint %d at %s", id, addressText(bp))

	return nil
}

// watch <addr> [read|write|rw]
func (dbg *Debugger) cmdWatch(tk *tokens) error {
	arg, ok := tk.get()
	if !ok {
		dbg.printLine(terminal.StyleFeedback, "Usage: watch <addr> [read|write|rw]")
		return nil
	}

	start, end, err := breakpoints.ParseRange(arg)
	if err != nil {
		return err
	}

	typ := emulation.BreakWrite
	if kw, ok := tk.get(); ok {
		t, ok := watchTypes[kw]
		if !ok {
			dbg.printLine(terminal.StyleFeedback, "Usage: watch <addr> [read|write|rw]")
			return nil
		}
		typ = t
	}

	bp := breakpoints.NewWatch(dbg.primary, start, end, typ)

	id, err := dbg.addBreakpoint(bp)
	if err != nil {
		return err
	}

	dbg.printLine(terminal.StyleFeedback, "Watchpoint %d at %s (%s)", id, addressText(bp), typ)

	return nil
}

// delete <id>
func (dbg *Debugger) cmdDelete(tk *tokens) error {
	arg, ok := tk.get()
	if !ok {
		dbg.printLine(terminal.StyleFeedback, "Usage: delete <id>")
		return nil
	}

	id, err := parseID(arg)
	if err != nil {
		return err
	}

	if !dbg.breakpoints.Delete(id) {
		dbg.printLine(terminal.StyleFeedback, "No breakpoint %d", id)
		return nil
	}

	if err := dbg.pushBreakpoints(); err != nil {
		return err
	}

	dbg.printLine(terminal.StyleFeedback, "Deleted breakpoint %d", id)

	return nil
}

// enable <id> and disable <id>
func (dbg *Debugger) cmdEnable(tk *tokens, enable bool) error {
	arg, ok := tk.get()
	if !ok {
		if enable {
			dbg.printLine(terminal.StyleFeedback, "Usage: enable <id>")
		} else {
			dbg.printLine(terminal.StyleFeedback, "Usage: disable <id>")
		}
		return nil
	}

	id, err := parseID(arg)
	if err != nil {
		return err
	}

	if enable {
		ok = dbg.breakpoints.Enable(id)
	} else {
		ok = dbg.breakpoints.Disable(id)
	}
	if !ok {
		dbg.printLine(terminal.StyleFeedback, "No breakpoint %d", id)
		return nil
	}

	if err := dbg.pushBreakpoints(); err != nil {
		return err
	}

	if enable {
		dbg.printLine(terminal.StyleFeedback, "Enabled breakpoint %d", id)
	} else {
		dbg.printLine(terminal.StyleFeedback, "Disabled breakpoint %d", id)
	}

	return nil
}

func (dbg *Debugger) infoBreak() {
	if dbg.breakpoints.Len() == 0 {
		dbg.printLine(terminal.StyleFeedback, "No breakpoints.")
		return
	}

	dbg.printLine(terminal.StyleFeedback, "%-4s %-6s %-8s %s", "ID", "Type", "Address", "Enabled")
	for _, bp := range dbg.breakpoints.Entries() {
		enabled := "yes"
		if !bp.Enabled {
			enabled = "no"
		}
		s := fmt.Sprintf("%-4d %-6s $%06X  %s", bp.ID, bp.Kind(), bp.Start, enabled)
		if bp.End != bp.Start {
			s = fmt.Sprintf("%s  (to $%06X)", s, bp.End)
		}
		if bp.IsWatch() {
			s = fmt.Sprintf("%s  %s", s, bp.Type)
		}
		if bp.Condition != "" {
			s = fmt.Sprintf("%s  if %s", s, bp.Condition)
		}
		dbg.printLine(terminal.StyleFeedback, s)
	}
}
