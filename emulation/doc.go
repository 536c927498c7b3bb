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

// Package emulation defines the contract between the debugger and an
// emulation core. The debugger never emulates directly, it issues requests
// through the Debugger interface that return immediately, and observes the
// completion of those requests through a NotificationListener.
//
// The types in this package are the values that pass between the debugger and
// the emulation core: snapshots of CPU state, breakpoints in the core's native
// representation, disassembly lines and call stack frames.
package emulation
