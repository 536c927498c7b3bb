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

package ansi_test

import (
	"testing"

	"github.com/jetsetilly/emucli/debugger/terminal/colorterm/easyterm/ansi"
	"github.com/jetsetilly/emucli/test"
)

func TestColorBuild(t *testing.T) {
	s, err := ansi.ColorBuild("red", "normal", "", true, false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s, "\033[91;49m")

	s, err = ansi.ColorBuild("", "", "bold", false, false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s, "\033[1m")

	s, err = ansi.ColorBuild("", "", "", false, false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s, "\033[m")
	test.ExpectEquality(t, ansi.NormalPen, s)

	_, err = ansi.ColorBuild("puce", "", "", false, false)
	test.ExpectFailure(t, err)

	_, err = ansi.ColorBuild("", "", "blink", false, false)
	test.ExpectFailure(t, err)
}

func TestPens(t *testing.T) {
	test.ExpectEquality(t, ansi.Pens["green"], "\033[92;49m")
	test.ExpectEquality(t, ansi.DimPens["green"], "\033[32;49m")
	test.ExpectEquality(t, ansi.PenStyles["underline"], "\033[4m")
}

func TestCursorMove(t *testing.T) {
	test.ExpectEquality(t, ansi.CursorMove(3), "\033[3C")
	test.ExpectEquality(t, ansi.CursorMove(-2), "\033[2D")
	test.ExpectEquality(t, ansi.CursorMove(0), "")
}
