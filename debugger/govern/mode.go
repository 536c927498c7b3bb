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

// Mode indicates how the emulation is being driven.
type Mode int

func (m Mode) String() string {
	switch m {
	case ModeInteractive:
		return "Interactive"
	case ModeBatch:
		return "Batch"
	case ModeAdapter:
		return "Adapter"
	}

	return ""
}

// List of defined modes.
const (
	ModeNone Mode = iota
	ModeInteractive
	ModeBatch
	ModeAdapter
)
