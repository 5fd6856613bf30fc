package isa

import (
	"fmt"
	"strings"
)

// Shape is the operand layout of a mnemonic in assembly text.
type Shape int

//go:generate go tool stringer -linecomment -type=Shape
const (
	SHAPE_RD_RS_RT     = Shape(0) // rd, rs, rt
	SHAPE_RD_RT_SHAMT  = Shape(1) // rd, rt, shamt
	SHAPE_RD_RT_RS     = Shape(2) // rd, rt, rs
	SHAPE_RT_RS_IMM    = Shape(3) // rt, rs, imm
	SHAPE_RT_MEM       = Shape(4) // rt, offset(rs)
	SHAPE_RS_RT_BRANCH = Shape(5) // rs, rt, label
	SHAPE_TARGET       = Shape(6) // label
)

// Arity returns the number of operands the shape takes.
func (shape Shape) Arity() int {
	switch shape {
	case SHAPE_RT_MEM:
		return 2
	case SHAPE_TARGET:
		return 1
	default:
		return 3
	}
}

// Format returns the word layout used by the shape.
func (shape Shape) Format() Format {
	switch shape {
	case SHAPE_RD_RS_RT, SHAPE_RD_RT_SHAMT, SHAPE_RD_RT_RS:
		return FORMAT_R
	case SHAPE_TARGET:
		return FORMAT_J
	default:
		return FORMAT_I
	}
}

// Mnemonic is an entry of the instruction table.
type Mnemonic struct {
	Name   string // Lowercase mnemonic.
	Shape  Shape  // Operand layout.
	Opcode uint8  // Primary opcode; OPCODE_SPECIAL for R format.
	Funct  uint8  // Function code, R format only.
	Negate bool   // Negate the immediate before encoding.
	Alias  bool   // Not used for disassembly.
}

// mnemonicTable is the complete instruction set.
var mnemonicTable = []Mnemonic{
	{Name: "add", Shape: SHAPE_RD_RS_RT, Funct: FUNCT_ADD},
	{Name: "sub", Shape: SHAPE_RD_RS_RT, Funct: FUNCT_SUB},
	{Name: "mul", Shape: SHAPE_RD_RS_RT, Funct: FUNCT_MUL},
	{Name: "and", Shape: SHAPE_RD_RS_RT, Funct: FUNCT_AND},
	{Name: "or", Shape: SHAPE_RD_RS_RT, Funct: FUNCT_OR},
	{Name: "xor", Shape: SHAPE_RD_RS_RT, Funct: FUNCT_XOR},
	{Name: "sll", Shape: SHAPE_RD_RT_SHAMT, Funct: FUNCT_SLL},
	{Name: "srl", Shape: SHAPE_RD_RT_SHAMT, Funct: FUNCT_SRL},
	{Name: "sra", Shape: SHAPE_RD_RT_SHAMT, Funct: FUNCT_SRA},
	{Name: "rol", Shape: SHAPE_RD_RT_SHAMT, Funct: FUNCT_ROL},
	{Name: "ror", Shape: SHAPE_RD_RT_SHAMT, Funct: FUNCT_ROR},
	{Name: "sllv", Shape: SHAPE_RD_RT_RS, Funct: FUNCT_SLLV},
	{Name: "srlv", Shape: SHAPE_RD_RT_RS, Funct: FUNCT_SRLV},
	{Name: "srav", Shape: SHAPE_RD_RT_RS, Funct: FUNCT_SRAV},
	{Name: "rolv", Shape: SHAPE_RD_RT_RS, Funct: FUNCT_ROLV},
	{Name: "rorv", Shape: SHAPE_RD_RT_RS, Funct: FUNCT_RORV},
	{Name: "enc", Shape: SHAPE_RD_RS_RT, Funct: FUNCT_ENC},
	{Name: "dec", Shape: SHAPE_RD_RS_RT, Funct: FUNCT_DEC},
	{Name: "addi", Shape: SHAPE_RT_RS_IMM, Opcode: OPCODE_ADDI},
	{Name: "subi", Shape: SHAPE_RT_RS_IMM, Opcode: OPCODE_ADDI, Negate: true, Alias: true},
	{Name: "lw", Shape: SHAPE_RT_MEM, Opcode: OPCODE_LW},
	{Name: "sw", Shape: SHAPE_RT_MEM, Opcode: OPCODE_SW},
	{Name: "beq", Shape: SHAPE_RS_RT_BRANCH, Opcode: OPCODE_BEQ},
	{Name: "j", Shape: SHAPE_TARGET, Opcode: OPCODE_J},
	{Name: "jmp", Shape: SHAPE_TARGET, Opcode: OPCODE_J, Alias: true},
}

var (
	mnemonicIndex = map[string]Mnemonic{} // By name.
	functIndex    = map[uint8]Mnemonic{}  // R format, by function code.
	opcodeIndex   = map[uint8]Mnemonic{}  // I and J format, by opcode.
)

func init() {
	for _, mn := range mnemonicTable {
		mnemonicIndex[mn.Name] = mn
		if mn.Alias {
			continue
		}
		if mn.Shape.Format() == FORMAT_R {
			functIndex[mn.Funct] = mn
		} else {
			opcodeIndex[mn.Opcode] = mn
		}
	}
}

// Lookup finds a mnemonic by name, ignoring case.
func Lookup(name string) (mn Mnemonic, ok bool) {
	mn, ok = mnemonicIndex[strings.ToLower(name)]
	return
}

// Mnemonics returns the instruction table, in table order.
func Mnemonics() []Mnemonic {
	return append([]Mnemonic(nil), mnemonicTable...)
}

// Instruction is a mnemonic with its operands resolved to typed slots.
type Instruction struct {
	Mnemonic
	Rs, Rt, Rd Register
	Shamt      int64 // Shift amount, R format.
	Immediate  int64 // Immediate, memory offset or branch word offset, I format.
	Address    int64 // Byte address, J format.
}

// Encode packs the instruction into its word layout.
func (ins *Instruction) Encode() Code {
	switch ins.Shape.Format() {
	case FORMAT_R:
		shamt := ins.Shamt
		if ins.Shape != SHAPE_RD_RT_SHAMT {
			shamt = 0
		}
		rs := ins.Rs
		if ins.Shape == SHAPE_RD_RT_SHAMT {
			rs = REG_ZERO
		}
		return MakeCodeR(rs, ins.Rt, ins.Rd, shamt, ins.Funct)
	case FORMAT_J:
		return MakeCodeJ(ins.Opcode, ins.Address)
	default:
		imm := ins.Immediate
		if ins.Negate {
			imm = -imm
		}
		return MakeCodeI(ins.Opcode, ins.Rs, ins.Rt, imm)
	}
}

// String returns the canonical assembly text of the instruction.
func (ins *Instruction) String() string {
	switch ins.Shape {
	case SHAPE_RD_RS_RT:
		return fmt.Sprintf("%v %v, %v, %v", ins.Name, ins.Rd, ins.Rs, ins.Rt)
	case SHAPE_RD_RT_SHAMT:
		return fmt.Sprintf("%v %v, %v, %v", ins.Name, ins.Rd, ins.Rt, ins.Shamt)
	case SHAPE_RD_RT_RS:
		return fmt.Sprintf("%v %v, %v, %v", ins.Name, ins.Rd, ins.Rt, ins.Rs)
	case SHAPE_RT_RS_IMM:
		return fmt.Sprintf("%v %v, %v, %v", ins.Name, ins.Rt, ins.Rs, ins.Immediate)
	case SHAPE_RT_MEM:
		return fmt.Sprintf("%v %v, %v(%v)", ins.Name, ins.Rt, ins.Immediate, ins.Rs)
	case SHAPE_RS_RT_BRANCH:
		return fmt.Sprintf("%v %v, %v, %v", ins.Name, ins.Rs, ins.Rt, ins.Immediate)
	case SHAPE_TARGET:
		return fmt.Sprintf("%v %#x", ins.Name, ins.Address)
	}
	return ins.Name
}
