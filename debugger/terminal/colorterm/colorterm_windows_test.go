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


//go:build windows

package colorterm_test

import (
	"io"
	"testing"

	"github.com/jetsetilly/emucli/debugger/terminal"
	"github.com/jetsetilly/emucli/debugger/terminal/colorterm"
	"github.com/jetsetilly/emucli/test"
)

func TestReadEndsInput(t *testing.T) {
	ct := colorterm.NewColorTerminal("")
	test.ExpectFailure(t, ct.Initialise())

	_, err := ct.TermRead(terminal.DefaultPrompt, &terminal.ReadEvents{})
	test.ExpectEquality(t, err, io.EOF)
}
