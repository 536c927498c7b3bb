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

// Package sim is a deterministic stand-in for an emulation core. It
// implements the emulation.Emulator and emulation.Debugger interfaces and is
// used by the command line tool and by tests.
//
// Every byte fetched by the simulated CPU executes as a one byte no-op. The
// program counter advances by one and the cycle counter by two. A frame is a
// fixed number of instructions. Execution is throttled to sixty frames per
// second unless the core is headless.
//
// The simulated machine for each console has a fixed memory layout. The ROM
// is mapped into the CPU's address space at a console specific base address
// and some RAM regions are mapped at their usual addresses. All other
// addresses in the CPU's address space are backed by sparse RAM.
//
// The emulation runs in its own goroutine, started by Run(). The Core is
// paused after Load() and sends a NotifyCodeBreak notification to all
// registered listeners whenever it pauses. NotifyEmulationStopped is sent
// when the context given to Run() is cancelled.
package sim
