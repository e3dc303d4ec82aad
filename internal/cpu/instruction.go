package cpu

import (
	"fmt"
	"strings"
)

// Op identifies the family of a decoded Instruction. The execution
// engine dispatches exhaustively on it.
type Op uint8

const (
	OpInvalid Op = iota // unpopulated table entry

	OpNop
	OpLd   // 8-bit load, including the HL auto inc/dec forms
	OpLd16 // 16-bit load
	OpPush
	OpPop

	OpAdd
	OpAdc
	OpSub
	OpSbc
	OpAnd
	OpXor
	OpOr
	OpCp
	OpInc
	OpDec
	OpInc16
	OpDec16
	OpAddHL
	OpAddSP
	OpDaa
	OpCpl
	OpScf
	OpCcf

	OpRlca
	OpRrca
	OpRla
	OpRra

	OpJp
	OpJr
	OpJpHL
	OpCall
	OpRet
	OpRst

	// extended (0xCB-prefixed) table
	OpRlc
	OpRrc
	OpRl
	OpRr
	OpSla
	OpSra
	OpSwap
	OpSrl
	OpBit
	OpRes
	OpSet
)

var opNames = map[Op]string{
	OpNop: "NOP", OpLd: "LD", OpLd16: "LD", OpPush: "PUSH", OpPop: "POP",
	OpAdd: "ADD", OpAdc: "ADC", OpSub: "SUB", OpSbc: "SBC",
	OpAnd: "AND", OpXor: "XOR", OpOr: "OR", OpCp: "CP",
	OpInc: "INC", OpDec: "DEC", OpInc16: "INC", OpDec16: "DEC",
	OpAddHL: "ADD HL,", OpAddSP: "ADD SP,", OpDaa: "DAA", OpCpl: "CPL",
	OpScf: "SCF", OpCcf: "CCF",
	OpRlca: "RLCA", OpRrca: "RRCA", OpRla: "RLA", OpRra: "RRA",
	OpJp: "JP", OpJr: "JR", OpJpHL: "JP HL", OpCall: "CALL", OpRet: "RET", OpRst: "RST",
	OpRlc: "RLC", OpRrc: "RRC", OpRl: "RL", OpRr: "RR",
	OpSla: "SLA", OpSra: "SRA", OpSwap: "SWAP", OpSrl: "SRL",
	OpBit: "BIT", OpRes: "RES", OpSet: "SET",
}

// Operand describes where an instruction reads or writes. Byte
// operands and word operands form disjoint sets; each instruction
// family consumes only one of the two.
type Operand uint8

const (
	OperandNone Operand = iota

	// byte operands
	RegA
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL
	IndBC    // memory at BC
	IndDE    // memory at DE
	IndHL    // memory at HL
	IndHLInc // memory at HL, HL incremented after the transfer
	IndHLDec // memory at HL, HL decremented after the transfer
	Imm8     // 8-bit immediate
	HighImm8 // memory at 0xFF00 + 8-bit immediate
	HighC    // memory at 0xFF00 + C

	// word operands
	PairBC
	PairDE
	PairHL
	PairAF
	SP
	Imm16  // 16-bit immediate
	Abs16  // memory at 16-bit immediate address
	SPRel8 // SP + signed 8-bit immediate
)

var operandNames = map[Operand]string{
	OperandNone: "",
	RegA:        "A", RegB: "B", RegC: "C", RegD: "D", RegE: "E", RegH: "H", RegL: "L",
	IndBC: "(BC)", IndDE: "(DE)", IndHL: "(HL)", IndHLInc: "(HL+)", IndHLDec: "(HL-)",
	Imm8: "d8", HighImm8: "(a8)", HighC: "(C)",
	PairBC: "BC", PairDE: "DE", PairHL: "HL", PairAF: "AF",
	SP: "SP", Imm16: "d16", Abs16: "(a16)", SPRel8: "SP+r8",
}

func (o Operand) String() string {
	if s, ok := operandNames[o]; ok {
		return s
	}
	return fmt.Sprintf("operand(%d)", uint8(o))
}

// Condition is the jump condition of a control flow instruction,
// evaluated against the current flags.
type Condition uint8

const (
	CondAlways Condition = iota
	CondNotZero
	CondZero
	CondNotCarry
	CondCarry
)

var condNames = map[Condition]string{
	CondAlways: "", CondNotZero: "NZ", CondZero: "Z", CondNotCarry: "NC", CondCarry: "C",
}

func (c Condition) String() string {
	return condNames[c]
}

// Instruction is one decoded opcode together with its operand
// descriptors. It is produced by Decode and consumed immediately by
// the execution engine; the zero value is not a valid instruction.
type Instruction struct {
	Op   Op
	Dst  Operand
	Src  Operand
	Cond Condition

	// Bit is the bit index for BIT/RES/SET, and the target address
	// for RST.
	Bit uint8

	// Length is the encoded length in bytes, including the 0xCB
	// prefix for extended instructions.
	Length uint8
}

// String returns the mnemonic of the instruction, e.g. "LD (HL+), A".
func (i Instruction) String() string {
	if i.Op == OpInvalid {
		return "??"
	}
	parts := []string{opNames[i.Op]}
	switch i.Op {
	case OpBit, OpRes, OpSet:
		parts = append(parts, fmt.Sprintf("%d,", i.Bit), i.Dst.String())
	case OpRst:
		parts = append(parts, fmt.Sprintf("%02XH", i.Bit))
	case OpJp, OpJr, OpCall, OpRet:
		if i.Cond != CondAlways {
			parts = append(parts, i.Cond.String()+",")
		}
		switch i.Op {
		case OpJp, OpCall:
			parts = append(parts, "a16")
		case OpJr:
			parts = append(parts, "r8")
		}
	default:
		if i.Dst != OperandNone {
			dst := i.Dst.String()
			if i.Src != OperandNone {
				dst += ","
			}
			parts = append(parts, dst)
		}
		if i.Src != OperandNone {
			parts = append(parts, i.Src.String())
		}
	}
	return strings.Join(parts, " ")
}
