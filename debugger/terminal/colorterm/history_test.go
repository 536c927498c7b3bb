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

//go:build !windows

package colorterm

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/emucli/test"
)

func TestHistoryFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sub", "history")

	// missing file is an empty history
	h := loadHistory(fn)
	test.ExpectEquality(t, len(h), 0)

	err := saveHistory(fn, []string{"step", "regs", "break $8000"})
	test.DemandSuccess(t, err)

	h = loadHistory(fn)
	test.DemandEquality(t, len(h), 3)
	test.ExpectEquality(t, h[0], "step")
	test.ExpectEquality(t, h[2], "break $8000")

	// no filename means no persistence
	test.ExpectSuccess(t, saveHistory("", h))
	test.ExpectEquality(t, len(loadHistory("")), 0)
}

func TestHistoryLimit(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "history")

	h := make([]string, 0, maxHistory+10)
	for i := 0; i < maxHistory+10; i++ {
		h = append(h, fmt.Sprintf("mem %d", i))
	}
	test.DemandSuccess(t, saveHistory(fn, h))

	h = loadHistory(fn)
	test.DemandEquality(t, len(h), maxHistory)
	test.ExpectEquality(t, h[0], "mem 10")
}
