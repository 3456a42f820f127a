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

package performance

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/debugger/govern"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/cpu/execution"
)

// Check the performance of the emulator by running the attached cartridge
// for the specified number of instructions. The NES should have been reset
// before calling the function.
//
// The run also ends early if the context is cancelled or if an instruction
// fails. In both cases the measurement so far is still reported and the error
// is returned.
func Check(ctx context.Context, output io.Writer, profile Profile, nes *hardware.NES, steps int) error {
	if steps <= 0 {
		return fmt.Errorf("performance: number of instructions must be greater than zero")
	}

	var executed int
	var cycles int
	var dur time.Duration

	runner := func() error {
		startCycles := nes.CPU.Cycles
		startTime := time.Now()

		err := nes.Run(ctx, steps, func(_ execution.Result) (govern.State, error) {
			executed++
			return govern.Running, nil
		})

		dur = time.Since(startTime)
		cycles = nes.CPU.Cycles - startCycles

		if curated.Is(err, hardware.StepLimitReached) {
			return nil
		}
		return err
	}

	// launch runner directly or through the CPU profiler, depending on
	// supplied arguments
	err := RunProfiler(profile, "performance", runner)

	ips := CalcIPS(executed, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.0f instructions/s (%d instructions, %d cycles in %.2f seconds)\n",
		ips, executed, cycles, dur.Seconds())))

	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	return nil
}
