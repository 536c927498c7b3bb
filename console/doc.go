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

// Package console is the registry of supported consoles and CPU
// architectures. Each console is described by a Descriptor which names the
// primary CPU and the memory regions that can be inspected by the debugger.
// Each architecture is described by an Architecture, which names the
// debugger flag that enables it and the memory space used for its address
// space.
//
// The descriptor tables are built once, when the package is initialised, and
// are never changed.
package console
