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

// Package notifications allow communication from the emulation core to the
// debugger. The emulation core sends a Notice whenever execution stops, either
// because a breakpoint was hit, a step completed, or because the emulation has
// ended entirely.
//
// The Bridge type is the rendezvous between the emulation goroutine and the
// goroutine driving the debugger. Notices are collapsed into a single pending
// flag, there is no queue of events. The correct pattern for issuing a
// request to the emulation and waiting for it to complete is to Reset() the
// bridge, issue the request, and then WaitForStop(). The Issue() function
// performs all three steps in the correct order and should be preferred.
package notifications
