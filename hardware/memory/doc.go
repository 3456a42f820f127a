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

// Package memory collects the packages that describe the address space seen by
// the NES CPU.
//
//	CPU ---- cpubus.Memory ---- bus.Bus
//	                               |
//	                               +-- RAM            $0000 to $1fff
//	                               +-- PPU            $2000 to $3fff
//	                               +-- APU and IO     $4000 to $401f
//	                               +-- cartridge      $4020 to $ffff
//
// The cpubus package defines the interface the CPU uses to access memory.
// The bus package is the implementation of that interface. Only the RAM and
// cartridge regions are backed by storage. Accessing the PPU or APU regions
// results in an error.
package memory
