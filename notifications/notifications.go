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

package notifications

// Notice describes events that stop the emulation.
type Notice string

// List of defined notifications.
const (
	// no event. ignored by the Bridge
	NotifyNone Notice = ""

	// execution has paused. the emulation can be resumed
	NotifyCodeBreak Notice = "NotifyCodeBreak"

	// the emulation loop has ended and will not resume
	NotifyEmulationStopped Notice = "NotifyEmulationStopped"
)
