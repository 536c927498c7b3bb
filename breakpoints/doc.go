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

// Package breakpoints holds the debugger's own view of breakpoints and
// watchpoints. Breakpoints are kept in a List, in the order they were
// created, and are pushed to the emulation as a complete set by the
// Translator whenever the List changes.
//
// Addresses given as text are parsed by ParseAddress(). The following forms
// are accepted, all of which are hexadecimal:
//
//	1234
//	$1234
//	0x1234
//	00:8000
//
// The last form is a bank and offset pair and is packed as (bank << 16) |
// offset.
package breakpoints
