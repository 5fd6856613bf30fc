// Package isa describes the 32-bit MIPS-like instruction set targeted by the
// assembler.
//
// Every instruction is a single 32-bit word in one of three formats:
//
//	R: opcode[31:26] rs[25:21] rt[20:16] rd[15:11] shamt[10:6] funct[5:0]
//	I: opcode[31:26] rs[25:21] rt[20:16] immediate[15:0]
//	J: opcode[31:26] target[25:0]
//
// The mnemonic table is data: each Mnemonic names its operand Shape, opcode
// and function code, and an Instruction carries typed operand slots that
// encode to a Code word.
package isa
