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

// Package execution holds the information produced by the two phases of
// instruction execution on the CPU.
//
// The Decoded type is the result of the decode phase. It records the
// addresses and values resolved by the addressing mode of the instruction.
// Not every addressing mode resolves every field so the fields use the
// optional Address and Value types. Reading an unresolved field is detectable
// through the second return value of the Get() function.
//
// The Result type is the result of a complete instruction. The
// Result.IsValid() function can be used to check whether results are
// consistent with the instruction definition. The CPU package doesn't call
// this function because it would introduce unwanted performance penalties, but
// it's probably okay to use in a debugging or testing context.
package execution
