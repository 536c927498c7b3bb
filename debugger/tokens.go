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

package debugger

import (
	"strings"
)

// tokens is the result of dividing user input on whitespace.
type tokens struct {
	tokens []string
	curr   int
}

// remainder returns the remaining tokens as a string.
func (tk tokens) remainder() string {
	return strings.Join(tk.tokens[tk.curr:], " ")
}

// remaining returns the count of remaining tokens in the token list.
func (tk tokens) remaining() int {
	return len(tk.tokens) - tk.curr
}

// get returns the next token in the list, and a success boolean. if the end
// of the token list has been reached, the function returns false instead of
// true.
func (tk *tokens) get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

func tokeniseInput(input string) *tokens {
	return &tokens{
		tokens: strings.Fields(input),
	}
}
