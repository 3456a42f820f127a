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

package conditions

import (
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/cpu"
)

// sentinal error patterns
const (
	CompileError    = "conditions: compile: %v"
	EvaluationError = "conditions: evaluate '%s': %v"
)

// Peeker is the view of memory required by the peek() function.
type Peeker interface {
	Peek(address uint16) (uint8, bool)
}

// Condition is a compiled Lua expression.
type Condition struct {
	src string

	state *lua.LState
	fn    *lua.LFunction

	// the memory used by peek(). set for the duration of Check()
	mem Peeker
}

// NewCondition compiles the expression. The Close() function should be called
// when the condition is no longer required.
func NewCondition(expression string) (*Condition, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, curated.Errorf(CompileError, "empty expression")
	}

	cnd := &Condition{
		src: expression,
		state: lua.NewState(lua.Options{
			SkipOpenLibs: true,
		}),
	}

	// io and os are not opened
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		err := cnd.state.CallByParam(lua.P{
			Fn:      cnd.state.NewFunction(lib.fn),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name))
		if err != nil {
			cnd.state.Close()
			return nil, curated.Errorf(CompileError, err)
		}
	}

	cnd.state.SetGlobal("peek", cnd.state.NewFunction(cnd.peek))

	var err error
	cnd.fn, err = cnd.state.LoadString("return " + expression)
	if err != nil {
		cnd.state.Close()
		return nil, curated.Errorf(CompileError, err)
	}

	return cnd, nil
}

func (cnd *Condition) String() string {
	return cnd.src
}

// Close releases the Lua state.
func (cnd *Condition) Close() {
	cnd.state.Close()
}

func (cnd *Condition) peek(L *lua.LState) int {
	address := L.CheckInt(1)
	if cnd.mem == nil || address < 0 || address > 0xffff {
		L.Push(lua.LNil)
		return 1
	}
	v, ok := cnd.mem.Peek(uint16(address))
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (cnd *Condition) setGlobals(mc *cpu.CPU) {
	L := cnd.state
	L.SetGlobal("A", lua.LNumber(mc.A.Value()))
	L.SetGlobal("X", lua.LNumber(mc.X.Value()))
	L.SetGlobal("Y", lua.LNumber(mc.Y.Value()))
	L.SetGlobal("SP", lua.LNumber(mc.SP.Value()))
	L.SetGlobal("PC", lua.LNumber(mc.PC.Address()))
	L.SetGlobal("P", lua.LNumber(mc.Status.Value()))
	L.SetGlobal("C", lua.LBool(mc.Status.Carry))
	L.SetGlobal("Z", lua.LBool(mc.Status.Zero))
	L.SetGlobal("I", lua.LBool(mc.Status.InterruptDisable))
	L.SetGlobal("D", lua.LBool(mc.Status.DecimalMode))
	L.SetGlobal("B", lua.LBool(mc.Status.Break))
	L.SetGlobal("V", lua.LBool(mc.Status.Overflow))
	L.SetGlobal("S", lua.LBool(mc.Status.Sign))
	L.SetGlobal("cycles", lua.LNumber(mc.Cycles))
}

// Check evaluates the condition for the current state of the CPU and memory.
// The result follows the Lua rules for truth: only nil and false are false.
func (cnd *Condition) Check(mc *cpu.CPU, mem Peeker) (bool, error) {
	cnd.mem = mem
	defer func() {
		cnd.mem = nil
	}()

	cnd.setGlobals(mc)

	err := cnd.state.CallByParam(lua.P{
		Fn:      cnd.fn,
		NRet:    1,
		Protect: true,
	})
	if err != nil {
		return false, curated.Errorf(EvaluationError, cnd.src, err)
	}

	ret := cnd.state.Get(-1)
	cnd.state.Pop(1)

	return lua.LVAsBool(ret), nil
}
