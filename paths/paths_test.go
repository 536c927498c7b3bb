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

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/emucli/paths"
	"github.com/jetsetilly/emucli/test"
)

func TestResourcePath(t *testing.T) {
	home := filepath.Join(t.TempDir(), "emucli")
	t.Setenv(paths.EnvironmentVariable, home)

	pth, err := paths.ResourcePath("history")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(home, "history"))

	// base directory has been created
	_, err = os.Stat(home)
	test.ExpectSuccess(t, err)

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(home, "foo", "bar"))

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(home, "baz"))

	pth, err = paths.ResourcePath()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, home)
}
