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
	"strings"

	"github.com/jetsetilly/emucli/breakpoints"
	"github.com/jetsetilly/emucli/console"
	"github.com/jetsetilly/emucli/curated"
	"github.com/jetsetilly/emucli/debugger/terminal"
	"github.com/jetsetilly/emucli/formatter"
	"github.com/jetsetilly/emucli/logger"
)

func (dbg *Debugger) infoRegions() {
	dbg.printLine(terminal.StyleFeedback, "Memory regions for %s:", dbg.console.Name)
	dbg.printLine(terminal.StyleFeedback, "%-12s %-24s %s", "Command", "Name", "Type")
	for _, r := range dbg.console.Regions {
		dbg.printLine(terminal.StyleFeedback, "%-12s %-24s %s", r.Alias, r.Name, r.Type)
	}
}

func (dbg *Debugger) infoCPU() {
	dbg.printLine(terminal.StyleFeedback, "Console: %s", dbg.console.Name)
	dbg.printLine(terminal.StyleFeedback, "Primary CPU: %s", dbg.primary)

	cpus := dbg.emu.CPUTypes()
	if len(cpus) > 1 {
		dbg.printLine(terminal.StyleFeedback, "Active CPUs:")
		for _, cpu := range cpus {
			primary := ""
			if cpu == dbg.primary {
				primary = " (primary)"
			}
			dbg.printLine(terminal.StyleFeedback, "  %s%s", cpu, primary)
		}
	}
}

// parse the optional length argument of the memory commands.
func memLength(tk *tokens) (int, error) {
	arg, ok := tk.get()
	if !ok {
		return defaultMemLength, nil
	}
	return parseCount(arg)
}

// mem <addr> [len]
func (dbg *Debugger) cmdMem(tk *tokens) error {
	arg, ok := tk.get()
	if !ok {
		dbg.printLine(terminal.StyleFeedback, "Usage: mem <addr> [len]")
		return nil
	}

	addr, err := breakpoints.ParseAddress(arg)
	if err != nil {
		return err
	}

	n, err := memLength(tk)
	if err != nil {
		return err
	}

	core, ok := dbg.core()
	if !ok {
		return nil
	}

	mem := dbg.primary.Memory()
	size := core.MemorySize(mem)
	if int(addr) >= size {
		dbg.printLine(terminal.StyleFeedback, "Address $%04X out of range (size: $%X / %d bytes)", addr, size, size)
		return nil
	}
	n = min(n, size-int(addr), maxMemLength)

	data := make([]byte, n)
	for i := range data {
		data[i] = core.ReadMemory(mem, addr+uint32(i))
	}
	dbg.printLine(terminal.StyleMemory, formatter.MemoryHex(data, addr))

	return nil
}

// <region> [addr] [len]
func (dbg *Debugger) cmdRegion(r console.MemoryRegion, tk *tokens) error {
	var addr uint32
	if arg, ok := tk.get(); ok {
		var err error
		addr, err = breakpoints.ParseAddress(arg)
		if err != nil {
			return err
		}
	}

	n, err := memLength(tk)
	if err != nil {
		return err
	}

	core, ok := dbg.core()
	if !ok {
		return nil
	}

	size := core.MemorySize(r.Type)
	if size == 0 {
		dbg.printLine(terminal.StyleFeedback, "%s not available.", r.Name)
		return nil
	}
	if int(addr) >= size {
		dbg.printLine(terminal.StyleFeedback, "Address $%04X out of range (size: $%X / %d bytes)", addr, size, size)
		return nil
	}
	n = min(n, size-int(addr), maxMemLength)

	data := make([]byte, n)
	for i := range data {
		data[i] = core.ReadMemory(r.Type, addr+uint32(i))
	}
	dbg.printLine(terminal.StyleMemory, formatter.MemoryHex(data, addr))

	return nil
}

// dump <type> <file>
func (dbg *Debugger) cmdDump(tk *tokens) error {
	alias, ok := tk.get()
	if !ok || tk.remaining() == 0 {
		dbg.printLine(terminal.StyleFeedback, "Usage: dump <type> <file>")
		dbg.printLine(terminal.StyleFeedback, "Types: %s", strings.Join(dbg.console.Aliases(), " "))
		return nil
	}
	filename := tk.remainder()

	r, err := dbg.console.Region(alias)
	if err != nil {
		dbg.printLine(terminal.StyleFeedback, "Unknown memory type: %s", alias)
		dbg.printLine(terminal.StyleFeedback, "Valid types for %s: %s", dbg.console.Name, strings.Join(dbg.console.Aliases(), " "))
		return nil
	}

	core, ok := dbg.core()
	if !ok {
		return nil
	}

	if core.MemorySize(r.Type) == 0 {
		dbg.printLine(terminal.StyleFeedback, "%s not available.", r.Name)
		return nil
	}
	data := core.MemoryState(r.Type)

	f, err := os.Create(filename)
	if err != nil {
		dbg.log.Log(logger.Allow, "debugger", err)
		dbg.printLine(terminal.StyleError, "Failed to open %s for writing.", filename)
		return nil
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return err
	}

	dbg.printLine(terminal.StyleFeedback, "Dumped %d bytes of %s to %s", len(data), r.Name, filename)

	return nil
}

// set <addr> <val>
func (dbg *Debugger) cmdSet(tk *tokens) error {
	if tk.remaining() < 2 {
		dbg.printLine(terminal.StyleFeedback, "Usage: set <addr> <val>")
		return nil
	}

	arg, _ := tk.get()
	addr, err := breakpoints.ParseAddress(arg)
	if err != nil {
		return err
	}

	// the value is parsed in the same way as an address but must fit in
	// a byte
	arg, _ = tk.get()
	v, err := breakpoints.ParseAddress(arg)
	if err != nil || v > 0xff {
		return curated.Errorf(InvalidValue, arg)
	}

	core, ok := dbg.core()
	if !ok {
		return nil
	}

	core.WriteMemory(dbg.primary.Memory(), addr, uint8(v))
	dbg.printLine(terminal.StyleFeedback, "[$%06X] = $%02X", addr, v)

	return nil
}

// disasm [addr] [n]
func (dbg *Debugger) cmdDisasm(tk *tokens) error {
	core, ok := dbg.core()
	if !ok {
		return nil
	}

	addr := core.ProgramCounter(dbg.primary)
	if arg, ok := tk.get(); ok {
		var err error
		addr, err = breakpoints.ParseAddress(arg)
		if err != nil {
			return err
		}
	}

	n := defaultDisasmLines
	if arg, ok := tk.get(); ok {
		var err error
		n, err = parseCount(arg)
		if err != nil {
			return err
		}
		n = min(n, maxDisasmLines)
	}

	dbg.printLine(terminal.StyleDisassembly, formatter.Disassembly(core.Disassemble(dbg.primary, addr, n)))

	return nil
}

func (dbg *Debugger) backtrace() {
	core, ok := dbg.core()
	if !ok {
		return
	}

	frames, ok := core.Callstack(dbg.primary)
	if !ok {
		dbg.printLine(terminal.StyleFeedback, "Callstack not available.")
		return
	}
	if len(frames) == 0 {
		dbg.printLine(terminal.StyleFeedback, "Empty callstack.")
		return
	}

	dbg.printLine(terminal.StyleDisassembly, formatter.Callstack(frames))
}

// trace <file|off>
func (dbg *Debugger) cmdTrace(tk *tokens) error {
	if tk.remaining() == 0 {
		dbg.printLine(terminal.StyleFeedback, "Usage: trace <file|off>")
		return nil
	}
	arg := tk.remainder()

	core, ok := dbg.core()
	if !ok {
		return nil
	}

	if arg == "off" {
		core.StopTrace()
		dbg.printLine(terminal.StyleFeedback, "Trace logging stopped.")
		return nil
	}

	if err := core.StartTrace(arg); err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, "Tracing to: %s", arg)

	return nil
}
