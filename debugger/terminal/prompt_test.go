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

package terminal_test

import (
	"testing"

	"github.com/jetsetilly/emucli/debugger/terminal"
	"github.com/jetsetilly/emucli/test"
)

func TestPrompt(t *testing.T) {
	test.ExpectEquality(t, terminal.DefaultPrompt.String(), "(emucli) ")
	test.ExpectEquality(t, terminal.Prompt{Content: "batch"}.String(), "(batch) ")
}
