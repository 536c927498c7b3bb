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

package govern

// State indicates the emulation's state.
type State int

// List of possible emulation states.
//
// EmulatorStart is the default state and should never be entered once the
// emulator has begun.
//
// Initialising is the state while a ROM is being loaded.
//
// Ending is a terminal state. The emulation cannot leave the Ending state.
const (
	EmulatorStart State = iota
	Initialising
	Paused
	Stepping
	Running
	Ending
)

func (s State) String() string {
	switch s {
	case EmulatorStart:
		return "EmulatorStart"
	case Initialising:
		return "Initialising"
	case Paused:
		return "Paused"
	case Stepping:
		return "Stepping"
	case Running:
		return "Running"
	case Ending:
		return "Ending"
	}

	return ""
}

// Transition checks whether a change from one state to another is allowed.
//
// Rules:
//
//  1. no state can transition to EmulatorStart
//
//  2. Ending cannot transition to any other state
//
//  3. Stepping and Running can only be entered from Paused, Stepping or
//     Running
func Transition(from State, to State) bool {
	if to == EmulatorStart || from == Ending {
		return false
	}
	switch to {
	case Stepping, Running:
		return from == Paused || from == Stepping || from == Running
	}
	return true
}
