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

// Package formatter renders CPU state, memory, disassembly and call stacks
// as text or JSON.
//
// The output of every function in the package is consumed by other tools
// and must not change between releases. Text output is fixed width and
// suitable for display in a terminal. JSON output is a single object with
// no whitespace. Register values in JSON output are lowercase hexadecimal
// strings, the width of which matches the size of the register.
//
// Each architecture has its own pair of renderers, found in the dispatch
// table by the CPUState's Arch() value. Architectures without renderers
// produce placeholder output.
package formatter
