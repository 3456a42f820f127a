// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is what distinguishes one kind of curated error from another.
// Packages that create curated errors should export the patterns they use as
// const strings. For example, the bus package:
//
//	const AccessViolation = "bus: %s region is not implemented (%#04x)"
//
// A caller can then check for that kind of error with the Is() function:
//
//	v, err := mem.Read(0x2002)
//	if curated.Is(err, bus.AccessViolation) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain:
//
//	err := curated.Errorf("run: %v", curated.Errorf(bus.AccessViolation, "PPU", 0x2002))
//
//	curated.Has(err, bus.AccessViolation) // true
//	curated.Is(err, bus.AccessViolation)  // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. We can think of uncurated errors as 'unexpected'
// errors.
//
// The Error() function ensures that the error chain is normalised.
// Specifically, that the chain does not contain duplicate adjacent parts. A
// chain is made of parts separated by the sub-string ": ". So this:
//
//	curated.Errorf("cpu: %v", curated.Errorf("cpu: unexpected opcode"))
//
// will print as:
//
//	cpu: unexpected opcode
//
// and not:
//
//	cpu: cpu: unexpected opcode
//
// Curated errors also implement the multiple error form of Unwrap() so any
// plain error values used in the construction of a curated error can be found
// with errors.Is() and errors.As() from the standard library.
package curated
