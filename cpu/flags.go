package cpu

import (
	"fmt"
)

// Flags holds the condition state of the last arithmetic or logic result.
type Flags struct {
	Zero     bool
	Overflow bool
	Sign     bool
}

// setFlags replaces all flags from a width-typed result.
func setFlags[T Unsigned](flags *Flags, result T, overflow bool) {
	flags.Zero = result == 0
	flags.Overflow = overflow
	flags.Sign = (result >> (bitsOf[T]() - 1)) != 0
}

// Check returns true if the condition holds for the current flags.
func (flags Flags) Check(cond CodeCond) bool {
	switch cond {
	case COND_ALWAYS:
		return true
	case COND_ZERO:
		return flags.Zero
	case COND_NOT_ZERO:
		return !flags.Zero
	case COND_OVERFLOW:
		return flags.Overflow
	case COND_NOT_OVERFLOW:
		return !flags.Overflow
	case COND_SIGN:
		return flags.Sign
	case COND_NOT_SIGN:
		return !flags.Sign
	}

	return false
}

func (flags Flags) String() string {
	bit := func(name string, set bool) string {
		if set {
			return name
		}
		return "-"
	}
	return fmt.Sprintf("%v%v%v", bit("Z", flags.Zero), bit("O", flags.Overflow), bit("S", flags.Sign))
}
