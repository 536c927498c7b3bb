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

// Package logger is the logging context for the application. Unlike the
// fmt or log packages, entries are kept in memory and only written out on
// request, with the Write() and Tail() functions, or as they happen if an echo
// writer has been set with SetEcho().
//
// A Logger instance is created with NewLogger() and should be passed by
// reference to the parts of the application that need it. There is no
// package level logger. When the application is finished with the logger
// Close() should be called. Logging after a call to Close() is silently
// ignored.
//
// Entries are made up of a tag and a detail. Consecutive entries with the
// same tag and detail are collapsed into one entry and a repeat count is
// shown.
//
//	log := logger.NewLogger(256)
//	log.Log(logger.Allow, "sim", "rom loaded")
//	log.Logf(logger.Allow, "breakpoints", "pushed %d breakpoints", 3)
//
// The detail argument of the Log() function can be any type. Errors and types
// that implement fmt.Stringer are handled as expected.
//
// The first argument to the logging functions is a Permission. Callers can
// use logger.Allow or their own implementation of the Permission interface
// to prevent log entries being created in some situations.
package logger
