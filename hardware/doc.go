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

// Package hardware is the base package for the NES emulation. It and its
// sub-packages contain everything required for a headless emulation of the
// 2A03 CPU and the address space it sees.
//
// The NES type is the root of the emulation and contains external references
// to all the sub-components. Only the CPU and the flat address bus are
// emulated. The picture and audio processing units are absent and any access
// to their address ranges results in an error from the bus.
//
//	nes, err := hardware.NewNES(prefs)
//	...
//	err = nes.AttachCartridge(cartridgeloader.NewLoader("nestest.nes"))
//	...
//	err = nes.Run(ctx, 0, nil)
package hardware
