package isa

import (
	"fmt"
)

// Format is an instruction word layout.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_R = Format(0) // R
	FORMAT_I = Format(1) // I
	FORMAT_J = Format(2) // J
)

// Primary opcodes, bits 31:26.
const (
	OPCODE_SPECIAL = uint8(0x00) // All R format instructions.
	OPCODE_J       = uint8(0x02)
	OPCODE_BEQ     = uint8(0x04)
	OPCODE_ADDI    = uint8(0x08)
	OPCODE_LW      = uint8(0x23)
	OPCODE_SW      = uint8(0x2b)
)

// Function codes of OPCODE_SPECIAL, bits 5:0.
const (
	FUNCT_SLL  = uint8(0x00)
	FUNCT_SRL  = uint8(0x02)
	FUNCT_SRA  = uint8(0x03)
	FUNCT_SLLV = uint8(0x04)
	FUNCT_SRLV = uint8(0x06)
	FUNCT_SRAV = uint8(0x07)
	FUNCT_MUL  = uint8(0x18)
	FUNCT_ROL  = uint8(0x1c)
	FUNCT_ROR  = uint8(0x1d)
	FUNCT_ROLV = uint8(0x1e)
	FUNCT_RORV = uint8(0x1f)
	FUNCT_ADD  = uint8(0x20)
	FUNCT_SUB  = uint8(0x22)
	FUNCT_AND  = uint8(0x24)
	FUNCT_OR   = uint8(0x25)
	FUNCT_XOR  = uint8(0x26)
	FUNCT_ENC  = uint8(0x30)
	FUNCT_DEC  = uint8(0x31)
)

// Field masks, after shifting down.
const (
	MASK_OPCODE    = 0x3f
	MASK_REGISTER  = 0x1f
	MASK_SHAMT     = 0x1f
	MASK_FUNCT     = 0x3f
	MASK_IMMEDIATE = 0xffff
	MASK_TARGET    = 0x3ff_ffff
)

// Code is a single encoded 32-bit instruction word.
type Code uint32

// MakeCodeR creates a register format instruction. The shift amount is
// truncated to 5 bits.
func MakeCodeR(rs, rt, rd Register, shamt int64, funct uint8) Code {
	return Code((uint32(OPCODE_SPECIAL) << 26) |
		((uint32(rs) & MASK_REGISTER) << 21) |
		((uint32(rt) & MASK_REGISTER) << 16) |
		((uint32(rd) & MASK_REGISTER) << 11) |
		((uint32(shamt) & MASK_SHAMT) << 6) |
		(uint32(funct) & MASK_FUNCT))
}

// MakeCodeI creates an immediate format instruction. The immediate is
// truncated to its low 16 bits, two's complement.
func MakeCodeI(opcode uint8, rs, rt Register, immediate int64) Code {
	return Code(((uint32(opcode) & MASK_OPCODE) << 26) |
		((uint32(rs) & MASK_REGISTER) << 21) |
		((uint32(rt) & MASK_REGISTER) << 16) |
		(uint32(immediate) & MASK_IMMEDIATE))
}

// MakeCodeJ creates a jump format instruction to a byte address.
func MakeCodeJ(opcode uint8, address int64) Code {
	return Code(((uint32(opcode) & MASK_OPCODE) << 26) |
		(uint32(address>>2) & MASK_TARGET))
}

// Opcode returns bits 31:26.
func (code Code) Opcode() uint8 {
	return uint8((code >> 26) & MASK_OPCODE)
}

// Rs returns bits 25:21.
func (code Code) Rs() Register {
	return Register((code >> 21) & MASK_REGISTER)
}

// Rt returns bits 20:16.
func (code Code) Rt() Register {
	return Register((code >> 16) & MASK_REGISTER)
}

// Rd returns bits 15:11.
func (code Code) Rd() Register {
	return Register((code >> 11) & MASK_REGISTER)
}

// Shamt returns bits 10:6.
func (code Code) Shamt() uint8 {
	return uint8((code >> 6) & MASK_SHAMT)
}

// Funct returns bits 5:0.
func (code Code) Funct() uint8 {
	return uint8(code & MASK_FUNCT)
}

// Immediate returns bits 15:0.
func (code Code) Immediate() uint16 {
	return uint16(code & MASK_IMMEDIATE)
}

// Offset returns bits 15:0, sign extended.
func (code Code) Offset() int16 {
	return int16(code.Immediate())
}

// Target returns bits 25:0, the word address of a jump.
func (code Code) Target() uint32 {
	return uint32(code & MASK_TARGET)
}

// Format returns the layout implied by the opcode.
func (code Code) Format() Format {
	switch code.Opcode() {
	case OPCODE_SPECIAL:
		return FORMAT_R
	case OPCODE_J:
		return FORMAT_J
	default:
		return FORMAT_I
	}
}

// Decode recovers the typed instruction of a code, using the canonical
// mnemonic for aliased encodings. ok is false for unknown encodings.
func (code Code) Decode() (ins Instruction, ok bool) {
	var mn Mnemonic
	switch code.Format() {
	case FORMAT_R:
		mn, ok = functIndex[code.Funct()]
	default:
		mn, ok = opcodeIndex[code.Opcode()]
	}
	if !ok {
		return
	}

	ins.Mnemonic = mn
	switch mn.Shape {
	case SHAPE_RD_RS_RT, SHAPE_RD_RT_RS:
		ins.Rd, ins.Rs, ins.Rt = code.Rd(), code.Rs(), code.Rt()
		if code.Shamt() != 0 {
			ok = false
		}
	case SHAPE_RD_RT_SHAMT:
		ins.Rd, ins.Rt = code.Rd(), code.Rt()
		ins.Shamt = int64(code.Shamt())
		if code.Rs() != REG_ZERO {
			ok = false
		}
	case SHAPE_RT_RS_IMM, SHAPE_RT_MEM, SHAPE_RS_RT_BRANCH:
		ins.Rs, ins.Rt = code.Rs(), code.Rt()
		ins.Immediate = int64(code.Offset())
	case SHAPE_TARGET:
		ins.Address = int64(code.Target()) << 2
	}

	return
}

// String returns the disassembly of the code.
func (code Code) String() string {
	ins, ok := code.Decode()
	if !ok {
		return fmt.Sprintf(".word 0x%08x", uint32(code))
	}
	return ins.String()
}
