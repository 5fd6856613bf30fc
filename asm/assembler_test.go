package asm

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/mipsasm/isa"
)

func assemble(t *testing.T, program ...string) *Program {
	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}

	return prog
}

func assembleError(program ...string) error {
	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	if prog != nil {
		return errors.New("unexpected program")
	}

	return err
}

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Opcodes))
	assert.Equal(0, asm.Label.Len())
}

func TestAssemblerEndToEnd(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t,
		"addi $t0,$zero,5",
		"add $t2,$t0,$t1",
	)

	expected := []Opcode{
		{1, 0, []string{"addi", "$t0", "$zero", "5"}, 0x20080005},
		{2, 4, []string{"add", "$t2", "$t0", "$t1"}, 0x01095020},
	}

	assert.Equal(expected, prog.Opcodes)
	assert.Equal([]uint32{0x20080005, 0x01095020}, prog.Binary())
	assert.Equal("addi $t0, $zero, 5", prog.Opcodes[0].Text())
	assert.Equal("add $t2, $t0, $t1", prog.Opcodes[1].Text())
}

func TestAssemblerFormats(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"add $t2, $t0, $t1",   // 0x00
		"sub $t2, $t0, $t1",   // 0x04
		"mul $t2, $t0, $t1",   // 0x08
		"and $t2, $t0, $t1",   // 0x0c
		"or $t2, $t0, $t1",    // 0x10
		"xor $t2, $t0, $t1",   // 0x14
		"sll $t2, $t1, 4",     // 0x18
		"srl $t2, $t1, 0x1f",  // 0x1c
		"sra $t2, $t1, 1",     // 0x20
		"rol $t2, $t1, 8",     // 0x24
		"ror $t2, $t1, 8",     // 0x28
		"sllv $t2, $t1, $t0",  // 0x2c
		"srlv $t2, $t1, $t0",  // 0x30
		"srav $t2, $t1, $t0",  // 0x34
		"rolv $t2, $t1, $t0",  // 0x38
		"rorv $t2, $t1, $t0",  // 0x3c
		"enc $t2, $t0, $t1",   // 0x40
		"dec $t2, $t0, $t1",   // 0x44
		"addi $t0, $sp, -1",   // 0x48
		"subi $t0, $sp, 1",    // 0x4c
		"lw $t0, 8($sp)",      // 0x50
		"sw $t0, -4($sp)",     // 0x54
		"lw $t0, ($a0)",       // 0x58
		"beq $t0, $t1, 2",     // 0x5c
		"j 0x400",             // 0x60
		"jmp 0x400",           // 0x64
		"ADD $T2, $t0, $t1",   // Invalid register.
	}

	prog := assemble(t, program[:len(program)-1]...)

	expected := []uint32{
		0x01095020,
		0x01095022,
		0x01095018,
		0x01095024,
		0x01095025,
		0x01095026,
		0x00095100,
		0x000957c2,
		0x00095043,
		0x0009521c,
		0x0009521d,
		0x01095004,
		0x01095006,
		0x01095007,
		0x0109501e,
		0x0109501f,
		0x01095030,
		0x01095031,
		0x23a8ffff,
		0x23a8ffff,
		0x8fa80008,
		0xafa8fffc,
		0x8c880000,
		0x11090002,
		0x08000100,
		0x08000100,
	}
	assert.Equal(expected, prog.Binary())

	for n, op := range prog.Opcodes {
		assert.Equal(uint32(n*4), op.Pc)
		assert.Equal(n+1, op.LineNo)
	}

	err := assembleError(program...)
	assert.True(errors.Is(err, ErrRegisterInvalid("")))
}

func TestAssemblerSubi(t *testing.T) {
	assert := assert.New(t)

	for _, imm := range []string{"0", "1", "5", "-5", "0x7fff", "-0x8000", "0x10000"} {
		subi := assemble(t, "subi $t0, $t1, "+imm)
		neg := "-" + imm
		if strings.HasPrefix(imm, "-") {
			neg = imm[1:]
		}
		addi := assemble(t, "addi $t0, $t1, "+neg)
		assert.Equal(addi.Binary(), subi.Binary(), imm)
	}
}

func TestAssemblerImmediateTruncation(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t,
		"addi $t0, $zero, -1",
		"addi $t0, $zero, 0x10000",
		"addi $t0, $zero, 0x12345",
	)

	assert.Equal(uint16(0xffff), prog.Opcodes[0].Code.Immediate())
	assert.Equal(uint16(0x0000), prog.Opcodes[1].Code.Immediate())
	assert.Equal(uint16(0x2345), prog.Opcodes[2].Code.Immediate())
}

func TestAssemblerLabels(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"# counting loop",
		"",
		"start:",
		"    addi $t0, $zero, 5   // counter",
		"loop: beq $t0, $zero, done",
		"    subi $t0, $t0, 1",
		"    jmp loop",
		"done:",
		"    j start",
	}

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	expected := []Opcode{
		{4, 0x00, []string{"addi", "$t0", "$zero", "5"}, 0x20080005},
		{5, 0x04, []string{"beq", "$t0", "$zero", "done"}, 0x11000002},
		{6, 0x08, []string{"subi", "$t0", "$t0", "1"}, 0x2108ffff},
		{7, 0x0c, []string{"jmp", "loop"}, 0x08000001},
		{9, 0x10, []string{"j", "start"}, 0x08000000},
	}
	assert.Equal(expected, prog.Opcodes)

	address, ok := asm.Label.Resolve("start")
	assert.True(ok)
	assert.Equal(uint32(0x00), address)
	address, ok = asm.Label.Resolve("loop")
	assert.True(ok)
	assert.Equal(uint32(0x04), address)
	address, ok = asm.Label.Resolve("done")
	assert.True(ok)
	assert.Equal(uint32(0x10), address)

	op, ok := prog.Lookup(0x0c)
	assert.True(ok)
	assert.Equal(7, op.LineNo)
	_, ok = prog.Lookup(0x14)
	assert.False(ok)
}

func TestAssemblerBackwardBranch(t *testing.T) {
	assert := assert.New(t)

	prog := assemble(t, "loop: beq $t0,$t1,loop")

	assert.Equal([]uint32{0x1109ffff}, prog.Binary())
	assert.Equal(int16(-1), prog.Opcodes[0].Code.Offset())
}

func TestAssemblerForwardJump(t *testing.T) {
	assert := assert.New(t)

	program := []string{"jmp end"}
	for range 7 {
		program = append(program, "add $t0, $t0, $t1")
	}
	program = append(program, "end:", "add $t0, $t0, $t1")

	prog := assemble(t, program...)

	assert.Equal(9, len(prog.Opcodes))
	assert.Equal(isa.Code(0x08000008), prog.Opcodes[0].Code)
	assert.Equal(uint32(0x08), prog.Opcodes[0].Code.Target())
	assert.Equal(uint32(0x20), prog.Opcodes[8].Pc)
}

func TestAssemblerBranchRange(t *testing.T) {
	assert := assert.New(t)

	// Label targets, just in range and just out of range.
	for fill, valid := range map[int]bool{32767: true, 32768: false} {
		program := []string{"beq $t0, $t1, far"}
		for range fill {
			program = append(program, "add $t0, $t0, $t0")
		}
		program = append(program, "far: add $t0, $t0, $t0")

		if valid {
			prog := assemble(t, program...)
			assert.Equal(int16(0x7fff), prog.Opcodes[0].Code.Offset())
			continue
		}

		err := assembleError(program...)
		var errRange *ErrBranchRange
		assert.True(errors.As(err, &errRange))
		if errRange != nil {
			assert.Equal("far", errRange.Target)
			assert.Equal(int64(32768), errRange.Offset)
		}
	}

	// Numeric targets are word offsets.
	prog := assemble(t, "beq $t0, $t1, -32768", "beq $t0, $t1, 32767")
	assert.Equal(uint16(0x8000), prog.Opcodes[0].Code.Immediate())
	assert.Equal(uint16(0x7fff), prog.Opcodes[1].Code.Immediate())

	var errRange *ErrBranchRange
	assert.True(errors.As(assembleError("beq $t0, $t1, 32768"), &errRange))
	assert.True(errors.As(assembleError("beq $t0, $t1, -32769"), &errRange))
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	table := map[string]error{
		"add $t0, $t1, $bad":     ErrRegisterInvalid(""),
		"addi $t0, $t1, five":    ErrImmediateInvalid(""),
		"sll $t0, $t1, 0xz":      ErrImmediateInvalid(""),
		"lw $t0, 4$sp":           ErrMemoryInvalid(""),
		"sw $t0, 4(sp)":          ErrRegisterInvalid(""),
		"nop":                    ErrMnemonicUnknown(""),
		"beq $t0, $t1, nowhere":  ErrTargetUndefined(""),
		"j nowhere":              ErrTargetUndefined(""),
		"a b: add $t0, $t1, $t2": ErrLabelInvalid(""),
		": add $t0, $t1, $t2":    ErrLabelInvalid(""),
	}

	for line, expected := range table {
		err := assembleError("add $t0, $t1, $t2", line)
		assert.Error(err, line)
		assert.True(errors.Is(err, expected), "%v: %v", line, err)
	}

	for _, line := range []string{"add $t0, $t1", "add $t0, $t1, $t2, $t3", "lw $t0", "j", "jmp a, b", "beq $t0, loop"} {
		err := assembleError(line)
		var errCount *ErrOperandCount
		assert.True(errors.As(err, &errCount), "%v: %v", line, err)
	}
}

func TestAssemblerErrorLocation(t *testing.T) {
	assert := assert.New(t)

	err := assembleError(
		"add $t0, $t1, $t2",
		"",
		"oops $t0, $t1",
	)

	var errIns *ErrInstruction
	assert.True(errors.As(err, &errIns))
	if errIns != nil {
		assert.Equal(3, errIns.LineNo)
		assert.Equal(uint32(4), errIns.Pc)
		assert.Equal([]string{"oops", "$t0", "$t1"}, errIns.Words)
		assert.Equal(ErrMnemonicUnknown("oops"), errIns.Err)
	}

	err = assembleError(
		"loop: add $t0, $t1, $t2",
		"loop: add $t0, $t1, $t2",
	)

	var errSyntax *ErrSyntax
	assert.True(errors.As(err, &errSyntax))
	if errSyntax != nil {
		assert.Equal(2, errSyntax.LineNo)
		assert.Equal(ErrLabelDuplicate("loop"), errSyntax.Err)
	}

	err = assembleError(",,")
	assert.True(errors.Is(err, ErrInstructionEmpty))
}

func TestAssemblerAllowRedefine(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"here: add $t0, $t1, $t2",
		"here: add $t0, $t1, $t2",
		"j here",
	}

	asm := &Assembler{AllowRedefine: true}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	assert.Equal(isa.Code(0x08000001), prog.Opcodes[2].Code)
}

func TestAssemblerMultipleLabels(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader("a: b: add $t0, $t1, $t2\nc:\nd: j b"))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	for name, expected := range map[string]uint32{"a": 0, "b": 0, "c": 4, "d": 4} {
		address, ok := asm.Label.Resolve(name)
		assert.True(ok, name)
		assert.Equal(expected, address, name)
	}
	assert.Equal(2, len(prog.Opcodes))
}

func TestAssemblerIdempotent(t *testing.T) {
	assert := assert.New(t)

	program := strings.Join([]string{
		"start: addi $t0, $zero, 3",
		"loop: beq $t0, $zero, end",
		"subi $t0, $t0, 1",
		"j loop",
		"end: jmp start",
	}, "\n")

	asm := &Assembler{}

	first, err := asm.Parse(strings.NewReader(program))
	assert.NoError(err)

	second, err := asm.Parse(strings.NewReader(program))
	assert.NoError(err)

	assert.Equal(first, second)
	assert.Equal(3, asm.Label.Len())
}

func TestAssemblerExpression(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("STACK", "0x100")
	asm.Predefine("WORD", "4")

	program := []string{
		"start: addi $sp, $zero, $(STACK - WORD)",
		"lw $t0, $(WORD * 2)($sp)",
		"addi $t1, $zero, $(end - start)",
		"sll $t1, $t1, $(WORD >> 1)",
		"addi $t2, $zero, $(PC)",
		"end: beq $zero, $zero, $(-1)",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	assert.Equal(uint16(0xfc), prog.Opcodes[0].Code.Immediate())
	assert.Equal(uint16(0x08), prog.Opcodes[1].Code.Immediate())
	assert.Equal(uint16(0x14), prog.Opcodes[2].Code.Immediate())
	assert.Equal(uint8(2), prog.Opcodes[3].Code.Shamt())
	assert.Equal(uint16(0x10), prog.Opcodes[4].Code.Immediate())
	assert.Equal(int16(-1), prog.Opcodes[5].Code.Offset())
}

func TestAssemblerExpressionErrors(t *testing.T) {
	assert := assert.New(t)

	var errExpr *ErrExpression

	err := assembleError("addi $t0, $zero, $(missing + 1)")
	assert.True(errors.As(err, &errExpr))
	assert.Error(errors.Unwrap(errExpr))

	err = assembleError("addi $t0, $zero, $('text')")
	assert.True(errors.As(err, &errExpr))
	assert.Equal("'text'", errExpr.Expr)

	err = assembleError("j $(1 << 80)")
	assert.True(errors.As(err, &errExpr))

	asm := &Assembler{}
	asm.Predefine("BAD", "0xq")
	prog, err := asm.Parse(strings.NewReader("add $t0, $t1, $t2"))
	assert.Nil(prog)
	var errPredefine *ErrPredefine
	assert.True(errors.As(err, &errPredefine))
	assert.True(errors.Is(err, ErrImmediateInvalid("")))
}
