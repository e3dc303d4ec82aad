package cpu

// checkCondition evaluates a jump condition against the current
// flags.
func (c *CPU) checkCondition(cond Condition) bool {
	switch cond {
	case CondAlways:
		return true
	case CondNotZero:
		return !c.isFlagSet(flagZero)
	case CondZero:
		return c.isFlagSet(flagZero)
	case CondNotCarry:
		return !c.isFlagSet(flagCarry)
	case CondCarry:
		return c.isFlagSet(flagCarry)
	}
	return false
}
