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

package hardware

import (
	"context"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/debugger/govern"
	"github.com/jetsetilly/gophernes/hardware/cpu/execution"
)

// sentinal error patterns
const (
	StepLimitReached = "nes: step limit reached (%d instructions)"
	UnsupportedState = "nes: unsupported emulation state (%s) in Run() function"
)

// The continueCheck() function passed to Run() is called after every
// instruction and so it can be expensive to do a full check every time.
//
// The PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The run ends when the
// continueCheck function returns the Ending state or an error, when the
// context is cancelled, or when an instruction fails.
//
// A limit greater than zero stops the run with the StepLimitReached error once
// that many instructions have been executed.
func (nes *NES) Run(ctx context.Context, limit int, continueCheck func(execution.Result) (govern.State, error)) error {
	return nes.RunWithDecode(ctx, limit, nil, continueCheck)
}

// RunWithDecode is the same as Run() except that the onDecode function is
// called for every instruction after it has been decoded and before it is
// executed. The function is the same as the onDecode argument to
// StepWithDecode().
func (nes *NES) RunWithDecode(ctx context.Context, limit int, onDecode func(execution.Decoded), continueCheck func(execution.Result) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(_ execution.Result) (govern.State, error) { return govern.Running, nil }
	}

	var res execution.Result
	var err error
	var steps int

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch state {
		case govern.Running, govern.Stepping:
			if limit > 0 && steps >= limit {
				return curated.Errorf(StepLimitReached, steps)
			}
			res, err = nes.StepWithDecode(onDecode)
			if err != nil {
				return err
			}
			steps++
		case govern.Paused:
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		state, err = continueCheck(res)
		if err != nil {
			return err
		}
	}

	return nil
}
