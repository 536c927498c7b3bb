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

package breakpoints

import (
	"strconv"
	"strings"

	"github.com/jetsetilly/emucli/curated"
)

// Sentinal error returned when address text cannot be parsed.
const (
	InvalidAddress = "invalid address: %s"
)

func parseHex(s string, bitSize int) (uint64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 16, bitSize)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseAddress parses address text. See the package documentation for the
// accepted forms.
func ParseAddress(s string) (uint32, error) {
	s = strings.TrimSpace(s)

	if bank, offset, ok := strings.Cut(s, ":"); ok {
		b, ok := parseHex(bank, 16)
		if !ok {
			return 0, curated.Errorf(InvalidAddress, s)
		}
		o, ok := parseHex(offset, 32)
		if !ok {
			return 0, curated.Errorf(InvalidAddress, s)
		}
		return uint32(b<<16) | uint32(o&0xffff), nil
	}

	h := s
	if strings.HasPrefix(h, "$") {
		h = h[1:]
	} else if strings.HasPrefix(h, "0x") || strings.HasPrefix(h, "0X") {
		h = h[2:]
	}

	v, ok := parseHex(h, 32)
	if !ok {
		return 0, curated.Errorf(InvalidAddress, s)
	}
	return uint32(v), nil
}

// ParseRange parses either a single address or an address range of the form
// "start-end". Both ends of the range are inclusive. For a single address the
// start and end values are the same.
func ParseRange(s string) (uint32, uint32, error) {
	first, last, ok := strings.Cut(s, "-")
	start, err := ParseAddress(first)
	if err != nil {
		return 0, 0, err
	}
	if !ok {
		return start, start, nil
	}
	end, err := ParseAddress(last)
	if err != nil {
		return 0, 0, err
	}
	if end < start {
		return 0, 0, curated.Errorf(InvalidAddress, s)
	}
	return start, end, nil
}
