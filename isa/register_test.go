package isa

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterOf(t *testing.T) {
	assert := assert.New(t)

	for n := range REGISTER_COUNT {
		reg, ok := RegisterOf(fmt.Sprintf("$%d", n))
		assert.True(ok)
		assert.Equal(Register(n), reg)

		named, ok := RegisterOf(reg.String())
		assert.True(ok)
		assert.Equal(reg, named)
	}

	named := map[string]Register{
		"$zero": REG_ZERO,
		"$at":   REG_AT,
		"$v0":   REG_V0,
		"$a0":   REG_A0,
		"$t0":   REG_T0,
		"$t7":   Register(15),
		"$s0":   REG_S0,
		"$s7":   Register(23),
		"$t8":   REG_T8,
		"$t9":   Register(25),
		"$k0":   REG_K0,
		"$gp":   REG_GP,
		"$sp":   REG_SP,
		"$fp":   REG_FP,
		"$ra":   REG_RA,
	}
	for name, expected := range named {
		reg, ok := RegisterOf(name)
		assert.True(ok, name)
		assert.Equal(expected, reg, name)
	}

	t0, _ := RegisterOf("$t0")
	r8, _ := RegisterOf("$8")
	assert.Equal(t0, r8)
}

func TestRegisterOf_Invalid(t *testing.T) {
	assert := assert.New(t)

	for _, name := range []string{"", "$", "$32", "$-1", "t0", "$T0", "$t10", "$s8", "zero", "$08"} {
		_, ok := RegisterOf(name)
		assert.False(ok, name)
	}
}

func TestRegister_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("$zero", REG_ZERO.String())
	assert.Equal("$t0", REG_T0.String())
	assert.Equal("$ra", REG_RA.String())
	assert.Equal("Register(32)", Register(32).String())
}
