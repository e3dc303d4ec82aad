package cpu

// PrefixCB is the extended-opcode marker. A fetched 0xCB means the
// following byte selects from the extended table.
const PrefixCB = 0xCB

// InstructionSet holds the standard opcode table. Entries left at the
// zero value have no implemented encoding; Decode reports them as an
// OpcodeError.
var InstructionSet [256]Instruction

// InstructionSetCB holds the extended (0xCB-prefixed) opcode table.
var InstructionSetCB [256]Instruction

// Decode maps an opcode byte to its Instruction. It is a pure lookup
// with no side effects; a byte with no table entry yields an
// OpcodeError so callers can react without terminating.
func Decode(opcode uint8, extended bool) (Instruction, error) {
	var instr Instruction
	if extended {
		instr = InstructionSetCB[opcode]
	} else {
		instr = InstructionSet[opcode]
	}
	if instr.Op == OpInvalid {
		return Instruction{}, OpcodeError{Opcode: opcode, Extended: extended}
	}
	return instr, nil
}

// byteOperands is the register ordering shared by most encodings:
// the low three bits of an opcode select from it.
var byteOperands = [8]Operand{RegB, RegC, RegD, RegE, RegH, RegL, IndHL, RegA}

// wordOperands is the register pair ordering used by the 16-bit
// arithmetic and load encodings.
var wordOperands = [4]Operand{PairBC, PairDE, PairHL, SP}

// stackOperands is the register pair ordering used by PUSH and POP.
var stackOperands = [4]Operand{PairBC, PairDE, PairHL, PairAF}

// conditions is the condition ordering used by conditional jumps,
// calls and returns.
var conditions = [4]Condition{CondNotZero, CondZero, CondNotCarry, CondCarry}

func define(opcode uint8, instr Instruction) {
	InstructionSet[opcode] = instr
}

func init() {
	// 0x00 - 0x3F
	define(0x00, Instruction{Op: OpNop, Length: 1})
	for i := 0; i < 4; i++ {
		define(uint8(0x01+i*16), Instruction{Op: OpLd16, Dst: wordOperands[i], Src: Imm16, Length: 3})
		define(uint8(0x03+i*16), Instruction{Op: OpInc16, Dst: wordOperands[i], Length: 1})
		define(uint8(0x09+i*16), Instruction{Op: OpAddHL, Src: wordOperands[i], Length: 1})
		define(uint8(0x0B+i*16), Instruction{Op: OpDec16, Dst: wordOperands[i], Length: 1})
	}
	for i, op := range []Operand{IndBC, IndDE, IndHLInc, IndHLDec} {
		define(uint8(0x02+i*16), Instruction{Op: OpLd, Dst: op, Src: RegA, Length: 1})
		define(uint8(0x0A+i*16), Instruction{Op: OpLd, Dst: RegA, Src: op, Length: 1})
	}
	for i, op := range byteOperands {
		define(uint8(0x04+i*8), Instruction{Op: OpInc, Dst: op, Length: 1})
		define(uint8(0x05+i*8), Instruction{Op: OpDec, Dst: op, Length: 1})
		define(uint8(0x06+i*8), Instruction{Op: OpLd, Dst: op, Src: Imm8, Length: 2})
	}
	define(0x07, Instruction{Op: OpRlca, Length: 1})
	define(0x0F, Instruction{Op: OpRrca, Length: 1})
	define(0x17, Instruction{Op: OpRla, Length: 1})
	define(0x1F, Instruction{Op: OpRra, Length: 1})
	define(0x27, Instruction{Op: OpDaa, Length: 1})
	define(0x2F, Instruction{Op: OpCpl, Length: 1})
	define(0x37, Instruction{Op: OpScf, Length: 1})
	define(0x3F, Instruction{Op: OpCcf, Length: 1})
	define(0x08, Instruction{Op: OpLd16, Dst: Abs16, Src: SP, Length: 3})
	define(0x18, Instruction{Op: OpJr, Cond: CondAlways, Length: 2})
	for i, cond := range conditions {
		define(uint8(0x20+i*8), Instruction{Op: OpJr, Cond: cond, Length: 2})
	}

	// 0x40 - 0x7F: LD r, r'. 0x76 (the would-be LD (HL), (HL) slot)
	// encodes HALT, which belongs to the interrupt machinery and is
	// left undefined here.
	for d, dst := range byteOperands {
		for s, src := range byteOperands {
			if d == 6 && s == 6 {
				continue
			}
			define(uint8(0x40+d*8+s), Instruction{Op: OpLd, Dst: dst, Src: src, Length: 1})
		}
	}

	// 0x80 - 0xBF, plus the d8 forms in the 0xC0 - 0xFF block
	for i, op := range []Op{OpAdd, OpAdc, OpSub, OpSbc, OpAnd, OpXor, OpOr, OpCp} {
		for s, src := range byteOperands {
			define(uint8(0x80+i*8+s), Instruction{Op: op, Src: src, Length: 1})
		}
		define(uint8(0xC6+i*8), Instruction{Op: op, Src: Imm8, Length: 2})
	}

	// 0xC0 - 0xFF
	for i, cond := range conditions {
		define(uint8(0xC0+i*8), Instruction{Op: OpRet, Cond: cond, Length: 1})
		define(uint8(0xC2+i*8), Instruction{Op: OpJp, Cond: cond, Length: 3})
		define(uint8(0xC4+i*8), Instruction{Op: OpCall, Cond: cond, Length: 3})
	}
	for i, pair := range stackOperands {
		define(uint8(0xC1+i*16), Instruction{Op: OpPop, Dst: pair, Length: 1})
		define(uint8(0xC5+i*16), Instruction{Op: OpPush, Src: pair, Length: 1})
	}
	for i := 0; i < 8; i++ {
		define(uint8(0xC7+i*8), Instruction{Op: OpRst, Bit: uint8(i * 8), Length: 1})
	}
	define(0xC3, Instruction{Op: OpJp, Cond: CondAlways, Length: 3})
	define(0xC9, Instruction{Op: OpRet, Cond: CondAlways, Length: 1})
	define(0xCD, Instruction{Op: OpCall, Cond: CondAlways, Length: 3})
	define(0xE0, Instruction{Op: OpLd, Dst: HighImm8, Src: RegA, Length: 2})
	define(0xF0, Instruction{Op: OpLd, Dst: RegA, Src: HighImm8, Length: 2})
	define(0xE2, Instruction{Op: OpLd, Dst: HighC, Src: RegA, Length: 1})
	define(0xF2, Instruction{Op: OpLd, Dst: RegA, Src: HighC, Length: 1})
	define(0xE8, Instruction{Op: OpAddSP, Src: Imm8, Length: 2})
	define(0xE9, Instruction{Op: OpJpHL, Length: 1})
	define(0xEA, Instruction{Op: OpLd, Dst: Abs16, Src: RegA, Length: 3})
	define(0xFA, Instruction{Op: OpLd, Dst: RegA, Src: Abs16, Length: 3})
	define(0xF8, Instruction{Op: OpLd16, Dst: PairHL, Src: SPRel8, Length: 2})
	define(0xF9, Instruction{Op: OpLd16, Dst: SP, Src: PairHL, Length: 1})

	// HALT, STOP, DI, EI and RETI are operations of the interrupt and
	// timer controllers, which live outside this core; their opcodes
	// stay undefined. 0xCB is the prefix, consumed before decode. The
	// remaining holes have no encoding on hardware.

	// extended table: rotates, shifts and SWAP over every target
	for i, op := range []Op{OpRlc, OpRrc, OpRl, OpRr, OpSla, OpSra, OpSwap, OpSrl} {
		for s, target := range byteOperands {
			InstructionSetCB[uint8(i*8+s)] = Instruction{Op: op, Dst: target, Length: 2}
		}
	}
	// extended table: BIT, RES and SET over every bit and target
	for i, op := range []Op{OpBit, OpRes, OpSet} {
		for bit := 0; bit < 8; bit++ {
			for s, target := range byteOperands {
				InstructionSetCB[uint8(0x40+i*0x40+bit*8+s)] = Instruction{Op: op, Dst: target, Bit: uint8(bit), Length: 2}
			}
		}
	}
}
