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

package instructions

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/gophernes/curated"
)

// LoadError is returned by Load() for all errors in the opcode definitions.
// The values are the line number and the detail of the error.
const LoadError = "instructions: line %d: %v"

// number of fields in each record
const numFields = 7

// the first field of the optional header record
const headerField = "opcode"

// Load instruction definitions from CSV data. Returns the instruction table
// and a parallel table of debugging information.
//
// Every opcode must be defined exactly once.
func Load(r io.Reader) (*Table, *DebugTable, error) {
	csvr := csv.NewReader(r)
	csvr.Comment = '#'
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = numFields

	tab := &Table{}
	dbg := &DebugTable{}
	count := 0

	for {
		rec, err := csvr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			var line int
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				line = perr.Line
				err = perr.Err
			}
			return nil, nil, curated.Errorf(LoadError, line, err)
		}

		line, _ := csvr.FieldPos(0)

		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}

		if strings.EqualFold(rec[0], headerField) {
			continue // for loop
		}

		defn, info, err := parseRecord(rec)
		if err != nil {
			return nil, nil, curated.Errorf(LoadError, line, err)
		}

		if tab[defn.OpCode] != nil {
			return nil, nil, curated.Errorf(LoadError, line, "duplicate definition for opcode 0x"+strconv.FormatUint(uint64(defn.OpCode), 16))
		}

		tab[defn.OpCode] = defn
		dbg[defn.OpCode] = info
		count++
	}

	if count != len(tab) {
		for opcode, defn := range tab {
			if defn == nil {
				return nil, nil, curated.Errorf(LoadError, 0, "missing definition for opcode 0x"+strconv.FormatUint(uint64(opcode), 16))
			}
		}
	}

	return tab, dbg, nil
}

func parseRecord(rec []string) (*Definition, DebugInfo, error) {
	defn := &Definition{}
	info := DebugInfo{}

	// field: opcode
	opcode, ok := strings.CutPrefix(strings.ToLower(rec[0]), "0x")
	if !ok {
		return nil, info, errors.New("opcode must be a hexadecimal number with the 0x prefix")
	}
	n, err := strconv.ParseUint(opcode, 16, 8)
	if err != nil {
		return nil, info, errors.New("invalid opcode (" + rec[0] + ")")
	}
	defn.OpCode = uint8(n)

	// field: mnemonic
	mnemonic := strings.ToUpper(rec[1])
	mnemonic, defn.Undocumented = strings.CutPrefix(mnemonic, "*")
	defn.Operator, ok = OperatorFromMnemonic(mnemonic)
	if !ok {
		return nil, info, errors.New("unknown mnemonic (" + rec[1] + ")")
	}
	if defn.Operator.IsUndocumented() && !defn.Undocumented {
		return nil, info, errors.New("undocumented mnemonic without asterisk (" + rec[1] + ")")
	}
	info.Mnemonic = mnemonic

	// field: addressing mode
	defn.AddressingMode, ok = AddressingModeFromName(rec[2])
	if !ok {
		return nil, info, errors.New("unknown addressing mode (" + rec[2] + ")")
	}
	info.Mode = rec[2]
	if !defn.Operator.Supports(defn.AddressingMode) {
		return nil, info, errors.New("addressing mode (" + rec[2] + ") cannot be used with " + mnemonic)
	}

	// fields: length, cycles and page cycles
	defn.Bytes, err = strconv.Atoi(rec[3])
	if err != nil {
		return nil, info, errors.New("invalid length (" + rec[3] + ")")
	}
	if defn.Bytes != defn.AddressingMode.Bytes() {
		return nil, info, errors.New("length (" + rec[3] + ") does not match addressing mode (" + rec[2] + ")")
	}
	defn.Cycles, err = strconv.Atoi(rec[4])
	if err != nil || defn.Cycles < 0 {
		return nil, info, errors.New("invalid cycle count (" + rec[4] + ")")
	}
	defn.PageCycles, err = strconv.Atoi(rec[5])
	if err != nil || defn.PageCycles < 0 {
		return nil, info, errors.New("invalid page cycle count (" + rec[5] + ")")
	}

	// field: notes
	info.Notes = rec[6]

	return defn, info, nil
}
