package isa

import (
	"fmt"
	"strconv"
)

// Register is a general purpose register index, 0 to 31.
type Register uint8

const (
	REG_ZERO = Register(0)  // $zero
	REG_AT   = Register(1)  // $at
	REG_V0   = Register(2)  // $v0
	REG_A0   = Register(4)  // $a0
	REG_T0   = Register(8)  // $t0
	REG_S0   = Register(16) // $s0
	REG_T8   = Register(24) // $t8
	REG_K0   = Register(26) // $k0
	REG_GP   = Register(28) // $gp
	REG_SP   = Register(29) // $sp
	REG_FP   = Register(30) // $fp
	REG_RA   = Register(31) // $ra

	REGISTER_COUNT = 32
)

// registerNames holds the conventional name of each register.
var registerNames = [REGISTER_COUNT]string{
	"zero", "at", "v0", "v1", "a0", "a1", "a2", "a3",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7",
	"t8", "t9", "k0", "k1", "gp", "sp", "fp", "ra",
}

// registerMap maps both '$name' and '$N' spellings to a register.
var registerMap = func() map[string]Register {
	regs := make(map[string]Register, 2*REGISTER_COUNT)
	for n, name := range registerNames {
		regs["$"+name] = Register(n)
		regs["$"+strconv.Itoa(n)] = Register(n)
	}
	return regs
}()

// RegisterOf returns the register named by word, either by its conventional
// name ('$t0') or its number ('$8').
func RegisterOf(word string) (reg Register, ok bool) {
	reg, ok = registerMap[word]
	return
}

// String returns the conventional name of the register.
func (reg Register) String() string {
	if int(reg) >= REGISTER_COUNT {
		return fmt.Sprintf("Register(%d)", uint8(reg))
	}
	return "$" + registerNames[reg]
}
