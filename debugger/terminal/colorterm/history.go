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
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// loadHistory returns the entries in the history file. a missing or
// unreadable file results in an empty history.
func loadHistory(filename string) []string {
	history := make([]string, 0, maxHistory)
	if filename == "" {
		return history
	}

	f, err := os.Open(filename)
	if err != nil {
		return history
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		if s != "" {
			history = append(history, s)
		}
	}

	if len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}

	return history
}

// saveHistory writes the history entries to the history file, one entry per
// line. the directory containing the file is created if necessary.
func saveHistory(filename string, history []string) error {
	if filename == "" {
		return nil
	}

	err := os.MkdirAll(filepath.Dir(filename), 0o700)
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, s := range history {
		_, _ = w.WriteString(s)
		_ = w.WriteByte('\n')
	}

	return w.Flush()
}
