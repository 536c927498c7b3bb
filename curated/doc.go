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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. The pattern string
// given to Errorf() identifies the error and can be tested for with the Is()
// and Has() functions:
//
//	e := curated.Errorf(breakpoints.InvalidAddress, "zz")
//
//	if curated.Is(e, breakpoints.InvalidAddress) {
//		fmt.Println("true")
//	}
//
// Has() is similar but checks if the pattern occurs somewhere in the error
// chain. An error is part of the chain if it was given as one of the values
// to Errorf().
//
//	f := curated.Errorf("batch: %v", e)
//
//	curated.Has(f, breakpoints.InvalidAddress) // true
//	curated.Is(f, breakpoints.InvalidAddress)  // false
//
// The Error() implementation normalises the error chain by removing
// duplicate adjacent parts. For example, if an error "dump: dump: no file"
// is created by wrapping then it will print as "dump: no file".
//
// Curated errors also implement Unwrap() so that the standard errors.Is() and
// errors.As() functions can see uncurated errors wrapped inside them (an
// os.PathError for example).
package curated
