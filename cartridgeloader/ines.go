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

package cartridgeloader

import (
	"bytes"
	"fmt"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/memory/bus"
	"github.com/jetsetilly/gophernes/logger"
)

// Sentinal error patterns.
const (
	FormatError = "cartridgeloader: ines: %v"
)

// sizes of the iNES data areas
const (
	headerSize  = 16
	trainerSize = 512
	PRGBankSize = 0x4000
	CHRBankSize = 0x2000
)

// addresses of the two PRG banks in the NES address space
const (
	PRGOrigin0 = 0x8000
	PRGOrigin1 = 0xc000
)

// flags6 bits
const (
	flagMirroring = 0x01
	flagBattery   = 0x02
	flagTrainer   = 0x04
)

var magic = []byte{'N', 'E', 'S', 0x1a}

// INES is a parsed iNES file.
type INES struct {
	// number of 16KB PRG banks
	PRGBanks int

	// number of 8KB CHR banks
	CHRBanks int

	// the mapper number from the high nibbles of flags 6 and 7
	Mapper int

	// nametable mirroring. true for vertical mirroring
	VerticalMirroring bool

	// cartridge contains battery backed RAM
	Battery bool

	// the program data. the length is always a multiple of PRGBankSize
	PRG []byte

	// the character data. not used by the emulation
	CHR []byte
}

func (ines INES) String() string {
	return fmt.Sprintf("iNES: %d PRG bank(s), %d CHR bank(s), mapper %d", ines.PRGBanks, ines.CHRBanks, ines.Mapper)
}

// ParseINES checks the iNES header and extracts the PRG and CHR data.
//
// Header versions other than the original iNES are not supported. Nor are
// files that contain trainer data.
func ParseINES(data []byte) (INES, error) {
	var ines INES

	if len(data) < headerSize {
		return ines, curated.Errorf(FormatError, "file is smaller than the header")
	}

	if !bytes.Equal(data[:len(magic)], magic) {
		return ines, curated.Errorf(FormatError, "did not find header identifier")
	}

	flags6 := data[6]
	flags7 := data[7]

	if flags7 != 0 {
		return ines, curated.Errorf(FormatError, "this version of the header is not supported")
	}

	if flags6&flagTrainer == flagTrainer {
		return ines, curated.Errorf(FormatError, "loading trainers is not supported")
	}

	ines.PRGBanks = int(data[4])
	ines.CHRBanks = int(data[5])
	ines.Mapper = int(flags6>>4) | int(flags7&0xf0)
	ines.VerticalMirroring = flags6&flagMirroring == flagMirroring
	ines.Battery = flags6&flagBattery == flagBattery

	if ines.PRGBanks == 0 {
		return ines, curated.Errorf(FormatError, "no PRG data")
	}
	if ines.PRGBanks > 2 {
		return ines, curated.Errorf(FormatError, fmt.Sprintf("too many PRG banks (%d)", ines.PRGBanks))
	}

	prgEnd := headerSize + ines.PRGBanks*PRGBankSize
	if len(data) < prgEnd {
		return ines, curated.Errorf(FormatError, fmt.Sprintf("PRG data is truncated (%d bytes missing)", prgEnd-len(data)))
	}
	ines.PRG = data[headerSize:prgEnd]

	// missing CHR data is not fatal because it is not used
	chrEnd := prgEnd + ines.CHRBanks*CHRBankSize
	if len(data) < chrEnd {
		logger.Logf(logger.Allow, "cartridgeloader", "CHR data is truncated (%d bytes missing)", chrEnd-len(data))
		chrEnd = len(data)
	}
	ines.CHR = data[prgEnd:chrEnd]

	if ines.Mapper != 0 {
		logger.Logf(logger.Allow, "cartridgeloader", "mapper %d is not supported. treating as NROM", ines.Mapper)
	}

	return ines, nil
}

// bank returns the PRG bank that is mapped into the upper half of the address
// space. single bank cartridges are mirrored
func (ines INES) bank(n int) []byte {
	if n >= ines.PRGBanks {
		n = 0
	}
	return ines.PRG[n*PRGBankSize : (n+1)*PRGBankSize]
}

// Image returns the 64KB address space with the PRG banks in place. All other
// addresses are zero.
func (ines INES) Image() [bus.Size]byte {
	var img [bus.Size]byte
	copy(img[PRGOrigin0:], ines.bank(0))
	copy(img[PRGOrigin1:], ines.bank(1))
	return img
}

// Install copies the PRG banks to the bus.
func (ines INES) Install(b *bus.Bus) error {
	if err := b.Load(PRGOrigin0, ines.bank(0)); err != nil {
		return err
	}
	return b.Load(PRGOrigin1, ines.bank(1))
}
