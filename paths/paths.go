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

package paths

import (
	"os"
	"path/filepath"
)

// EnvironmentVariable names the environment variable that overrides the
// resource directory.
const EnvironmentVariable = "EMUCLI_HOME"

// the base path for all resources. note that we don't use this value directly
// except in the getBasePath() function. that function should be used instead.
const baseResourcePath = ".emucli"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the resource directory. Empty resource strings are
// ignored.
func ResourcePath(resource ...string) (string, error) {
	base, err := getBasePath()
	if err != nil {
		return "", err
	}

	p := make([]string, 0, len(resource)+1)
	p = append(p, base)
	for _, r := range resource {
		if r != "" {
			p = append(p, r)
		}
	}

	return filepath.Join(p...), nil
}

// getBasePath() returns the resource directory, creating it if necessary.
func getBasePath() (string, error) {
	pth := os.Getenv(EnvironmentVariable)

	if pth == "" {
		if _, err := os.Stat(baseResourcePath); err == nil {
			return baseResourcePath, nil
		}

		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		pth = filepath.Join(home, baseResourcePath)
	}

	if _, err := os.Stat(pth); err == nil {
		return pth, nil
	}

	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return pth, nil
}
