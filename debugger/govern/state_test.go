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

package govern_test

import (
	"testing"

	"github.com/jetsetilly/emucli/debugger/govern"
	"github.com/jetsetilly/emucli/test"
)

func TestTransition(t *testing.T) {
	test.ExpectSuccess(t, govern.Transition(govern.EmulatorStart, govern.Initialising))
	test.ExpectSuccess(t, govern.Transition(govern.Initialising, govern.Paused))
	test.ExpectSuccess(t, govern.Transition(govern.Paused, govern.Running))
	test.ExpectSuccess(t, govern.Transition(govern.Running, govern.Paused))
	test.ExpectSuccess(t, govern.Transition(govern.Stepping, govern.Ending))

	test.ExpectFailure(t, govern.Transition(govern.Initialising, govern.Running))
	test.ExpectFailure(t, govern.Transition(govern.Ending, govern.Paused))
	test.ExpectFailure(t, govern.Transition(govern.Paused, govern.EmulatorStart))
}

func TestStrings(t *testing.T) {
	test.ExpectEquality(t, govern.Paused.String(), "Paused")
	test.ExpectEquality(t, govern.ModeBatch.String(), "Batch")
	test.ExpectEquality(t, govern.Mode(99).String(), "")
}
