package cpu

import "fmt"

// OpcodeError is returned when a fetched opcode has no entry in its
// table, either because the opcode has no encoding on hardware or
// because it is not implemented. The machine state is left exactly as
// it was before the attempted step; the caller decides whether to
// halt, skip or report.
type OpcodeError struct {
	Opcode   uint8
	Extended bool
}

func (e OpcodeError) Error() string {
	if e.Extended {
		return fmt.Sprintf("unimplemented opcode 0xCB%02X", e.Opcode)
	}
	return fmt.Sprintf("unimplemented opcode 0x%02X", e.Opcode)
}

// OperandError is returned when an instruction carries an operand
// that is not valid for its family. Instructions produced by the
// decode tables can never trigger it; it guards hand-built
// Instruction values from tests and debuggers.
type OperandError struct {
	Instruction Instruction
	Operand     Operand
}

func (e OperandError) Error() string {
	return fmt.Sprintf("operand %s is not valid for %s", e.Operand, e.Instruction)
}
