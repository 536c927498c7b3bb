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

package terminal

// Prompt specifies the prompt text.
type Prompt struct {
	Content string
}

// DefaultPrompt is the prompt used by the debugger.
var DefaultPrompt = Prompt{Content: "emucli"}

// String returns the prompt with "standard" decoration.
func (p Prompt) String() string {
	return "(" + p.Content + ") "
}
