package cpu

// execute performs the decoded instruction against the register file
// and the bus, and returns the next program counter: the current one
// advanced past the encoded instruction, except where control flow
// overrides it.
func (c *CPU) execute(instr Instruction) (uint16, error) {
	next := c.PC + uint16(instr.Length)

	switch instr.Op {
	case OpNop:

	case OpLd:
		value, err := c.readByteOperand(instr, instr.Src)
		if err != nil {
			return 0, err
		}
		if err := c.writeByteOperand(instr, instr.Dst, value); err != nil {
			return 0, err
		}
	case OpLd16:
		value, err := c.readWordOperand(instr, instr.Src)
		if err != nil {
			return 0, err
		}
		if err := c.writeWordOperand(instr, instr.Dst, value); err != nil {
			return 0, err
		}
	case OpPush:
		value, err := c.readWordOperand(instr, instr.Src)
		if err != nil {
			return 0, err
		}
		c.push(value)
	case OpPop:
		if err := c.writeWordOperand(instr, instr.Dst, c.pop()); err != nil {
			return 0, err
		}

	case OpAdd, OpAdc:
		value, err := c.readByteOperand(instr, instr.Src)
		if err != nil {
			return 0, err
		}
		c.add(value, instr.Op == OpAdc)
	case OpSub, OpSbc:
		value, err := c.readByteOperand(instr, instr.Src)
		if err != nil {
			return 0, err
		}
		c.sub(value, instr.Op == OpSbc)
	case OpAnd:
		value, err := c.readByteOperand(instr, instr.Src)
		if err != nil {
			return 0, err
		}
		c.and(value)
	case OpXor:
		value, err := c.readByteOperand(instr, instr.Src)
		if err != nil {
			return 0, err
		}
		c.xor(value)
	case OpOr:
		value, err := c.readByteOperand(instr, instr.Src)
		if err != nil {
			return 0, err
		}
		c.or(value)
	case OpCp:
		value, err := c.readByteOperand(instr, instr.Src)
		if err != nil {
			return 0, err
		}
		c.compare(value)
	case OpInc:
		value, err := c.readByteOperand(instr, instr.Dst)
		if err != nil {
			return 0, err
		}
		if err := c.writeByteOperand(instr, instr.Dst, c.increment(value)); err != nil {
			return 0, err
		}
	case OpDec:
		value, err := c.readByteOperand(instr, instr.Dst)
		if err != nil {
			return 0, err
		}
		if err := c.writeByteOperand(instr, instr.Dst, c.decrement(value)); err != nil {
			return 0, err
		}
	case OpInc16:
		value, err := c.readWordOperand(instr, instr.Dst)
		if err != nil {
			return 0, err
		}
		// no flags are touched by the 16-bit increment
		if err := c.writeWordOperand(instr, instr.Dst, value+1); err != nil {
			return 0, err
		}
	case OpDec16:
		value, err := c.readWordOperand(instr, instr.Dst)
		if err != nil {
			return 0, err
		}
		if err := c.writeWordOperand(instr, instr.Dst, value-1); err != nil {
			return 0, err
		}
	case OpAddHL:
		value, err := c.readWordOperand(instr, instr.Src)
		if err != nil {
			return 0, err
		}
		c.HL.SetUint16(c.addUint16(c.HL.Uint16(), value))
	case OpAddSP:
		c.SP = c.addSPSigned()
	case OpDaa:
		c.daa()
	case OpCpl:
		c.A = 0xFF ^ c.A
		c.setFlags(c.isFlagSet(flagZero), true, true, c.isFlagSet(flagCarry))
	case OpScf:
		c.setFlags(c.isFlagSet(flagZero), false, false, true)
	case OpCcf:
		c.setFlags(c.isFlagSet(flagZero), false, false, !c.isFlagSet(flagCarry))

	case OpRlca:
		c.rotateLeftCarryAccumulator()
	case OpRrca:
		c.rotateRightCarryAccumulator()
	case OpRla:
		c.rotateLeftAccumulatorThroughCarry()
	case OpRra:
		c.rotateRightAccumulatorThroughCarry()

	case OpJp:
		if c.checkCondition(instr.Cond) {
			next = c.readImm16()
		}
	case OpJr:
		if c.checkCondition(instr.Cond) {
			next = uint16(int32(c.PC) + 2 + int32(int8(c.readImm8())))
		}
	case OpJpHL:
		next = c.HL.Uint16()
	case OpCall:
		if c.checkCondition(instr.Cond) {
			c.push(next)
			next = c.readImm16()
		}
	case OpRet:
		if c.checkCondition(instr.Cond) {
			next = c.pop()
		}
	case OpRst:
		c.push(next)
		next = uint16(instr.Bit)

	case OpRlc, OpRrc, OpRl, OpRr, OpSla, OpSra, OpSwap, OpSrl:
		value, err := c.readByteOperand(instr, instr.Dst)
		if err != nil {
			return 0, err
		}
		var computed uint8
		switch instr.Op {
		case OpRlc:
			computed = c.rotateLeftCarry(value)
		case OpRrc:
			computed = c.rotateRightCarry(value)
		case OpRl:
			computed = c.rotateLeftThroughCarry(value)
		case OpRr:
			computed = c.rotateRightThroughCarry(value)
		case OpSla:
			computed = c.shiftLeftArithmetic(value)
		case OpSra:
			computed = c.shiftRightArithmetic(value)
		case OpSwap:
			computed = c.swap(value)
		case OpSrl:
			computed = c.shiftRightLogical(value)
		}
		if err := c.writeByteOperand(instr, instr.Dst, computed); err != nil {
			return 0, err
		}
	case OpBit:
		value, err := c.readByteOperand(instr, instr.Dst)
		if err != nil {
			return 0, err
		}
		c.testBit(value, instr.Bit)
	case OpRes:
		value, err := c.readByteOperand(instr, instr.Dst)
		if err != nil {
			return 0, err
		}
		// no flags are touched by RES or SET
		if err := c.writeByteOperand(instr, instr.Dst, value&^(1<<instr.Bit)); err != nil {
			return 0, err
		}
	case OpSet:
		value, err := c.readByteOperand(instr, instr.Dst)
		if err != nil {
			return 0, err
		}
		if err := c.writeByteOperand(instr, instr.Dst, value|1<<instr.Bit); err != nil {
			return 0, err
		}

	default:
		return 0, OperandError{Instruction: instr, Operand: OperandNone}
	}

	return next, nil
}

// readByteOperand resolves a byte operand to its current value. The
// HL auto increment/decrement forms adjust HL after the read.
func (c *CPU) readByteOperand(instr Instruction, op Operand) (uint8, error) {
	switch op {
	case RegA:
		return c.A, nil
	case RegB:
		return c.B, nil
	case RegC:
		return c.C, nil
	case RegD:
		return c.D, nil
	case RegE:
		return c.E, nil
	case RegH:
		return c.H, nil
	case RegL:
		return c.L, nil
	case IndBC:
		return c.b.Read(c.BC.Uint16()), nil
	case IndDE:
		return c.b.Read(c.DE.Uint16()), nil
	case IndHL:
		return c.b.Read(c.HL.Uint16()), nil
	case IndHLInc:
		value := c.b.Read(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
		return value, nil
	case IndHLDec:
		value := c.b.Read(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
		return value, nil
	case Imm8:
		return c.readImm8(), nil
	case HighImm8:
		return c.b.Read(0xFF00 + uint16(c.readImm8())), nil
	case HighC:
		return c.b.Read(0xFF00 + uint16(c.C)), nil
	case Abs16:
		return c.b.Read(c.readImm16()), nil
	}
	return 0, OperandError{Instruction: instr, Operand: op}
}

// writeByteOperand stores a byte into the given operand. The HL auto
// increment/decrement forms adjust HL after the write.
func (c *CPU) writeByteOperand(instr Instruction, op Operand, value uint8) error {
	switch op {
	case RegA:
		c.A = value
	case RegB:
		c.B = value
	case RegC:
		c.C = value
	case RegD:
		c.D = value
	case RegE:
		c.E = value
	case RegH:
		c.H = value
	case RegL:
		c.L = value
	case IndBC:
		c.b.Write(c.BC.Uint16(), value)
	case IndDE:
		c.b.Write(c.DE.Uint16(), value)
	case IndHL:
		c.b.Write(c.HL.Uint16(), value)
	case IndHLInc:
		c.b.Write(c.HL.Uint16(), value)
		c.HL.SetUint16(c.HL.Uint16() + 1)
	case IndHLDec:
		c.b.Write(c.HL.Uint16(), value)
		c.HL.SetUint16(c.HL.Uint16() - 1)
	case HighImm8:
		c.b.Write(0xFF00+uint16(c.readImm8()), value)
	case HighC:
		c.b.Write(0xFF00+uint16(c.C), value)
	case Abs16:
		c.b.Write(c.readImm16(), value)
	default:
		return OperandError{Instruction: instr, Operand: op}
	}
	return nil
}

// readWordOperand resolves a word operand to its current value.
func (c *CPU) readWordOperand(instr Instruction, op Operand) (uint16, error) {
	switch op {
	case PairBC:
		return c.BC.Uint16(), nil
	case PairDE:
		return c.DE.Uint16(), nil
	case PairHL:
		return c.HL.Uint16(), nil
	case PairAF:
		return c.AF.Uint16(), nil
	case SP:
		return c.SP, nil
	case Imm16:
		return c.readImm16(), nil
	case SPRel8:
		return c.addSPSigned(), nil
	}
	return 0, OperandError{Instruction: instr, Operand: op}
}

// writeWordOperand stores a word into the given operand. Writes
// through the AF pair re-clamp the low nibble of the flags to zero.
func (c *CPU) writeWordOperand(instr Instruction, op Operand, value uint16) error {
	switch op {
	case PairBC:
		c.BC.SetUint16(value)
	case PairDE:
		c.DE.SetUint16(value)
	case PairHL:
		c.HL.SetUint16(value)
	case PairAF:
		c.AF.SetUint16(value)
	case SP:
		c.SP = value
	case Abs16:
		c.b.WriteWord(c.readImm16(), value)
	default:
		return OperandError{Instruction: instr, Operand: op}
	}
	return nil
}
