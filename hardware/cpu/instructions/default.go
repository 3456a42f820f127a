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
	"bytes"
	_ "embed"
	"sync"
)

//go:embed opcodes.csv
var defaultCSV []byte

var defaultTables = sync.OnceValues(func() (tables, error) {
	tab, dbg, err := Load(bytes.NewReader(defaultCSV))
	return tables{tab: tab, dbg: dbg}, err
})

type tables struct {
	tab *Table
	dbg *DebugTable
}

// Default returns the instruction table for the NES CPU. The table is loaded
// on first use and shared between all callers. The tables must not be
// modified.
func Default() (*Table, *DebugTable, error) {
	t, err := defaultTables()
	if err != nil {
		return nil, nil, err
	}
	return t.tab, t.dbg, nil
}
