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
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/emucli/breakpoints"
	"github.com/jetsetilly/emucli/console"
	"github.com/jetsetilly/emucli/curated"
	"github.com/jetsetilly/emucli/debugger/terminal"
	"github.com/jetsetilly/emucli/emulation"
	"github.com/jetsetilly/emucli/formatter"
	"github.com/jetsetilly/emucli/logger"
	"github.com/jetsetilly/emucli/notifications"
)

// Options for the debugger that are not part of the emulation.
type Options struct {
	// print CPU state as JSON rather than as text
	JSON bool

	// breakpoints seeded from the command line. these should already have
	// been pushed to the emulation. if nil the debugger starts with no
	// breakpoints
	Breakpoints *breakpoints.List
}

// Debugger is the interactive frontend for the emulation. It runs on the
// control goroutine and never emulates directly. All requests to the
// emulation are triggered through the bridge, which reports when the
// emulation has stopped.
type Debugger struct {
	emu    emulation.Emulator
	bridge *notifications.Bridge
	term   terminal.Terminal
	log    *logger.Logger
	opts   Options

	// the identity of the loaded console. the console does not change once
	// the debugger has started
	console console.Descriptor
	primary console.Arch

	// breakpoints and watchpoints owned by the debugger. the emulation only
	// ever receives a translated copy of the entire list
	breakpoints *breakpoints.List

	// interrupt signals from the operating system. while the emulation is
	// running the signal breaks the emulation, otherwise it is forwarded to
	// the terminal through events
	signal chan os.Signal
	events *terminal.ReadEvents

	// set by the quit command or when the emulation has ended
	quit bool
}

// NewDebugger is the preferred method of initialisation for the Debugger type.
//
// The emulator should already have a ROM loaded and the bridge should be
// registered with the emulator.
func NewDebugger(emu emulation.Emulator, bridge *notifications.Bridge, term terminal.Terminal, log *logger.Logger, opts Options) *Debugger {
	dbg := &Debugger{
		emu:         emu,
		bridge:      bridge,
		term:        term,
		log:         log,
		opts:        opts,
		console:     emu.Console(),
		breakpoints: opts.Breakpoints,
		signal:      make(chan os.Signal, 1),
	}

	if dbg.breakpoints == nil {
		dbg.breakpoints = breakpoints.NewList()
	}

	if cpus := emu.CPUTypes(); len(cpus) > 0 {
		dbg.primary = cpus[0]
	} else {
		dbg.primary = dbg.console.CPU
	}

	dbg.events = &terminal.ReadEvents{
		Signal: dbg.signal,
		SignalHandler: func(_ os.Signal) error {
			return curated.Errorf(terminal.UserInterrupt)
		},
	}

	return dbg
}

// Start the debugger's input loop. Returns when the user quits, when the
// terminal reaches the end of its input or when the emulation ends.
func (dbg *Debugger) Start() error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(newTabCompletion(dbg.completions()))

	signal.Notify(dbg.signal, os.Interrupt)
	defer signal.Stop(dbg.signal)

	dbg.printLine(terminal.StyleFeedback, "Emucli CLI Debugger [%s / %s]. Type 'help' for commands.",
		dbg.console.Name, dbg.primary)
	dbg.printState()

	return dbg.inputLoop()
}

func (dbg *Debugger) inputLoop() error {
	for !dbg.quit {
		input, err := dbg.term.TermRead(terminal.DefaultPrompt, dbg.events)
		if err != nil {
			if errors.Is(err, io.EOF) || curated.Is(err, terminal.UserAbort) {
				return nil
			}
			if curated.Is(err, terminal.UserInterrupt) {
				continue
			}
			return curated.Errorf("debugger: %v", err)
		}

		dbg.printLine(terminal.StyleEcho, input)

		err = dbg.parseInput(input)
		if err != nil {
			if curated.Is(err, UnknownCommand) {
				dbg.printLine(terminal.StyleFeedback, "%v", err)
			} else {
				dbg.printError(err)
			}
		}
	}

	return nil
}

// core returns the emulation's debugger. the error is printed to the
// terminal and the boolean result is false if the debugger is not
// available.
func (dbg *Debugger) core() (emulation.Debugger, bool) {
	core, err := dbg.emu.Debugger()
	if err != nil {
		dbg.printError(err)
		return nil, false
	}
	return core, true
}

// printState prints the registers of the primary CPU. in text mode the next
// few instructions are also printed.
func (dbg *Debugger) printState() {
	core, ok := dbg.core()
	if !ok {
		return
	}

	state, err := core.CPUState(dbg.primary)
	if err != nil {
		dbg.printError(err)
		return
	}

	if dbg.opts.JSON {
		dbg.printLine(terminal.StyleCPUState, formatter.Registers(state, formatter.JSON))
		return
	}

	dbg.printLine(terminal.StyleCPUState, formatter.Registers(state, formatter.Text))

	pc := core.ProgramCounter(dbg.primary)
	dbg.printLine(terminal.StyleDisassembly, formatter.Disassembly(core.Disassemble(dbg.primary, pc, stateDisasmLines)))
}

// pushBreakpoints sends the translated breakpoint list to the emulation.
func (dbg *Debugger) pushBreakpoints() error {
	core, err := dbg.emu.Debugger()
	if err != nil {
		return err
	}
	return breakpoints.NewTranslator(core).Push(dbg.breakpoints)
}
