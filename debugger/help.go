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
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/beevik/prefixtree/v2"
	"github.com/jetsetilly/emucli/debugger/terminal"
)

type helpEntry struct {
	verb  string
	usage string
	text  string
}

// help for every command verb in the order they are listed by the help
// command. the memory region commands are added to the listing separately.
var helps = []helpEntry{
	{verb: cmdStep, usage: "step [N]", text: "Step N instructions (default 1)"},
	{verb: cmdNext, usage: "next", text: "Step over (skip calls)"},
	{verb: cmdFinish, usage: "finish", text: "Step out (run to return)"},
	{verb: cmdRun, usage: "run", text: "Resume execution until breakpoint"},
	{verb: cmdBreak, usage: "break <addr>", text: "Set execution breakpoint (addr may be a range: start-end)"},
	{verb: cmdWatch, usage: "watch <addr> [rw]", text: "Set watchpoint (read, write or rw. default write)"},
	{verb: cmdDelete, usage: "delete <id>", text: "Delete breakpoint by ID"},
	{verb: cmdEnable, usage: "enable <id>", text: "Enable breakpoint by ID"},
	{verb: cmdDisable, usage: "disable <id>", text: "Disable breakpoint by ID"},
	{verb: cmdInfo, usage: "info break", text: "List all breakpoints"},
	{verb: cmdInfo, usage: "info regions", text: "List available memory regions"},
	{verb: cmdInfo, usage: "info cpu", text: "Show console/CPU info"},
	{verb: cmdRegs, usage: "regs", text: "Show CPU registers"},
	{verb: cmdMem, usage: "mem <addr> [len]", text: "Show CPU memory (default 256 bytes)"},
	{verb: cmdDump, usage: "dump <type> <file>", text: "Dump memory to file"},
	{verb: cmdSet, usage: "set <addr> <val>", text: "Set CPU memory byte"},
	{verb: cmdDisasm, usage: "disasm [addr] [n]", text: "Disassemble (default: at PC, 10 lines)"},
	{verb: cmdBt, usage: "bt", text: "Show callstack"},
	{verb: cmdFrames, usage: "frames <N>", text: "Run N PPU frames"},
	{verb: cmdReset, usage: "reset", text: "Reset emulator"},
	{verb: cmdTrace, usage: "trace <file|off>", text: "Start/stop trace logging"},
	{verb: cmdLog, usage: "log [n]", text: "Show the last n log entries (default 10)"},
	{verb: cmdMemviz, usage: "memviz <file>", text: "Write breakpoint structures to file as a graphviz graph"},
	{verb: cmdHelp, usage: "help [topic]", text: "Show this help or help for one command"},
	{verb: cmdQuit, usage: "quit", text: "Exit debugger"},
}

// help topics by command verb. topics can be found with any unambiguous
// prefix of the verb.
var helpTopics = prefixtree.New[string]()

func init() {
	for _, h := range helps {
		helpTopics.Add(h.verb, h.verb)
	}
}

func helpLine(usage string, text string) string {
	return fmt.Sprintf("  %-17s %s", usage, text)
}

// aliases returns the abbreviations for the command verb.
func aliases(verb string) []string {
	var a []string
	for k, v := range commandAliases {
		if v == verb {
			a = append(a, k)
		}
	}
	sort.Strings(a)
	return a
}

func (dbg *Debugger) help() {
	dbg.printLine(terminal.StyleHelp, "Commands:")
	for _, h := range helps {
		dbg.printLine(terminal.StyleHelp, helpLine(h.usage, h.text))
		if h.verb == cmdMem {
			for _, r := range dbg.console.Regions {
				dbg.printLine(terminal.StyleHelp, "  %-8s <addr> [len] Show %s", r.Alias, r.Name)
			}
		}
	}
	dbg.printLine(terminal.StyleHelp, "Memory types: %s", strings.Join(dbg.console.Aliases(), ", "))
	dbg.printLine(terminal.StyleHelp, "Address formats: $1234, 0x1234, 1234, 00:8000")
}

func (dbg *Debugger) helpTopic(topic string) {
	verb := topic
	if v, ok := commandAliases[topic]; ok {
		verb = v
	} else if r, err := dbg.console.Region(topic); err == nil {
		dbg.printLine(terminal.StyleHelp, "  %-8s <addr> [len] Show %s", r.Alias, r.Name)
		return
	} else if !isVerb(topic) {
		v, err := helpTopics.FindValue(topic)
		if err != nil {
			if errors.Is(err, prefixtree.ErrPrefixAmbiguous) {
				dbg.printLine(terminal.StyleFeedback, "Ambiguous help topic: %s", topic)
			} else {
				dbg.printLine(terminal.StyleFeedback, "No help for %s", topic)
			}
			return
		}
		verb = v
	}

	for _, h := range helps {
		if h.verb == verb {
			dbg.printLine(terminal.StyleHelp, helpLine(h.usage, h.text))
		}
	}
	if a := aliases(verb); len(a) > 0 {
		dbg.printLine(terminal.StyleHelp, "  aliases: %s", strings.Join(a, " "))
	}
}

func isVerb(s string) bool {
	for _, h := range helps {
		if h.verb == s {
			return true
		}
	}
	return false
}
