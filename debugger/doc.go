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

// Package debugger implements the interactive command line debugger. Features
// include:
//
//	- instruction, step-over, step-out and frame stepping
//	- breakpoints and watchpoints
//	- memory display, modification and dumping
//	- disassembly and call stack display
//	- execution tracing
//
// Initialisation of the debugger is done with the NewDebugger() function
//
//	dbg, _ := debugger.NewDebugger(emulator, bridge, term, log, json)
//
// The emulator must already have a ROM loaded and the bridge must have been
// registered with the emulator as a notification listener. The bridge is the
// only way the debugger learns that the emulation has stopped.
//
// Interaction with the debugger is through a terminal. The Terminal interface
// is defined in the terminal package. The colorterm and plainterm
// sub-packages provide the implementations.
//
// Once initialised, the debugger can be started with the Start() function,
// which returns when the user quits or when the terminal has no more input.
//
//	err := dbg.Start()
//
// Commands are tokenised on whitespace. The first token is the command verb
// and is matched exactly (abbreviations are separate verbs, not prefixes). In
// addition to the fixed command set, every memory region of the loaded
// console is available as a command by its short name.
package debugger
