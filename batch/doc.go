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

// Package batch runs the emulation once, non-interactively, and reports on
// the state of the emulation when it stops.
//
// A Runner is created in the Idle state. Assertions and memory dumps are
// added while in the Idle state and the Run() function is then called. Run()
// resumes the emulation and waits for it to stop, either because of a
// breakpoint or because the emulation has ended. The state of the primary
// CPU is then printed, memory dumps are written and assertions are checked.
//
// The value returned by Run() is suitable for use as a process exit code:
//
//	0	all assertions passed, or there were no assertions
//	1	one or more assertions failed
//	2	the emulation could not be run or did not stop in time
//
// All assertions are checked even if an earlier assertion has failed.
package batch
