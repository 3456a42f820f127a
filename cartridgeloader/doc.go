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

// Package cartridgeloader is used to specify the data that is to be attached
// to the emulated NES.
//
// When the cartridge is ready to be loaded into the emulator, the Load()
// function should be used. The Load() function handles loading of data from a
// different sources. Currently on local-file and data over HTTP is supported.
//
// The simplest instance of the Loader type:
//
//	cl := cartridgeloader.Loader{
//		Filename: "roms/nestest.nes",
//	}
//
// Once loaded, the data can be parsed as an iNES file with the ParseINES()
// function. The Image() function of the resulting INES type returns the 64KB
// memory image with the PRG banks at the standard addresses. The Install()
// function copies the PRG banks directly to a bus.
//
// Only the NROM layout is understood. One or two PRG banks are placed at
// $8000 and $C000. A single bank is mirrored at both addresses. CHR data is
// ignored.
package cartridgeloader
