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
	"strconv"
	"strings"

	"github.com/jetsetilly/emucli/curated"
	"github.com/jetsetilly/emucli/debugger/terminal"
)

// Sentinal errors raised by the command parser.
const (
	UnknownCommand = "Unknown command: %s. Type 'help' for commands."
	InvalidCount   = "invalid count: %s"
	InvalidID      = "invalid breakpoint id: %s"
	InvalidValue   = "invalid value: %s"
)

// debugger command verbs.
const (
	cmdStep    = "step"
	cmdNext    = "next"
	cmdFinish  = "finish"
	cmdRun     = "run"
	cmdBreak   = "break"
	cmdWatch   = "watch"
	cmdDelete  = "delete"
	cmdEnable  = "enable"
	cmdDisable = "disable"
	cmdInfo    = "info"
	cmdRegs    = "regs"
	cmdMem     = "mem"
	cmdDump    = "dump"
	cmdSet     = "set"
	cmdDisasm  = "disasm"
	cmdBt      = "bt"
	cmdFrames  = "frames"
	cmdReset   = "reset"
	cmdTrace   = "trace"
	cmdLog     = "log"
	cmdMemviz  = "memviz"
	cmdHelp    = "help"
	cmdQuit    = "quit"
)

// abbreviations and alternative names for the command verbs.
var commandAliases = map[string]string{
	"s":         cmdStep,
	"n":         cmdNext,
	"c":         cmdRun,
	"continue":  cmdRun,
	"b":         cmdBreak,
	"del":       cmdDelete,
	"r":         cmdRegs,
	"x":         cmdMem,
	"d":         cmdDisasm,
	"backtrace": cmdBt,
	"h":         cmdHelp,
	"?":         cmdHelp,
	"q":         cmdQuit,
	"exit":      cmdQuit,
}

// arguments to the info command.
const (
	infoBreak   = "break"
	infoRegions = "regions"
	infoCPU     = "cpu"
)

// the number of lines of disassembly printed with the CPU state and the
// default for the disasm command.
const (
	stateDisasmLines   = 3
	defaultDisasmLines = 10
)

// the default number of bytes shown by the mem command and the memory region
// commands.
const defaultMemLength = 256

// upper limits of the lengths accepted by the mem, region and disasm
// commands. larger regions can be written to a file with the dump command.
const (
	maxMemLength   = 0x10000
	maxDisasmLines = 0x1000
)

// the largest number of frames accepted by the frames command.
const maxFrames = 10000

func (dbg *Debugger) parseInput(input string) error {
	tk := tokeniseInput(input)

	verb, ok := tk.get()
	if !ok {
		return nil
	}

	if v, ok := commandAliases[verb]; ok {
		verb = v
	}

	switch verb {
	case cmdStep:
		count := 1
		if arg, ok := tk.get(); ok {
			n, err := parseCount(arg)
			if err != nil {
				return err
			}
			count = n
		}
		dbg.step(count)

	case cmdNext:
		dbg.next()

	case cmdFinish:
		dbg.finish()

	case cmdRun:
		dbg.run()

	case cmdBreak:
		return dbg.cmdBreak(tk)

	case cmdWatch:
		return dbg.cmdWatch(tk)

	case cmdDelete:
		return dbg.cmdDelete(tk)

	case cmdEnable:
		return dbg.cmdEnable(tk, true)

	case cmdDisable:
		return dbg.cmdEnable(tk, false)

	case cmdInfo:
		arg, _ := tk.get()
		switch arg {
		case infoBreak:
			dbg.infoBreak()
		case infoRegions:
			dbg.infoRegions()
		case infoCPU:
			dbg.infoCPU()
		default:
			dbg.printLine(terminal.StyleFeedback, "Usage: info break|regions|cpu")
		}

	case cmdRegs:
		dbg.printState()

	case cmdMem:
		return dbg.cmdMem(tk)

	case cmdDump:
		return dbg.cmdDump(tk)

	case cmdSet:
		return dbg.cmdSet(tk)

	case cmdDisasm:
		return dbg.cmdDisasm(tk)

	case cmdBt:
		dbg.backtrace()

	case cmdFrames:
		arg, ok := tk.get()
		if !ok {
			dbg.printLine(terminal.StyleFeedback, "Usage: frames <N>")
			return nil
		}
		n, err := parseCount(arg)
		if err != nil {
			return err
		}
		if n > maxFrames {
			return curated.Errorf(InvalidCount, arg)
		}
		dbg.frames(n)

	case cmdReset:
		dbg.reset()

	case cmdTrace:
		return dbg.cmdTrace(tk)

	case cmdLog:
		n := defaultLogLines
		if arg, ok := tk.get(); ok {
			v, err := parseCount(arg)
			if err != nil {
				return err
			}
			n = v
		}
		dbg.log.Tail(dbg.printStyle(terminal.StyleLog), n)

	case cmdMemviz:
		return dbg.cmdMemviz(tk)

	case cmdHelp:
		if topic, ok := tk.get(); ok {
			dbg.helpTopic(topic)
		} else {
			dbg.help()
		}

	case cmdQuit:
		dbg.quit = true

	default:
		// every memory region of the console is also a command
		if r, err := dbg.console.Region(verb); err == nil {
			return dbg.cmdRegion(r, tk)
		}
		return curated.Errorf(UnknownCommand, verb)
	}

	return nil
}

// the number of log entries printed by the log command if no number is given.
const defaultLogLines = 10

// parseCount parses a decimal count. negative values are not allowed.
func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, curated.Errorf(InvalidCount, s)
	}
	return n, nil
}

// parseID parses a breakpoint id.
func parseID(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(s, "#"))
	if err != nil {
		return 0, curated.Errorf(InvalidID, s)
	}
	return n, nil
}
