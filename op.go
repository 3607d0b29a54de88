package tally

import (
	"fmt"
	"math"
)

// Op identifies one operation from the closed operation set.
// The set is fixed at compile time; string symbols are parsed into an Op
// at the API boundary with ParseOp.
type Op int

const (
	OpAdd Op = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpPower
	OpSqrt
	OpLog
)

// opSymbols maps each operation symbol to its Op value.
var opSymbols = map[string]Op{
	"+":    OpAdd,
	"-":    OpSubtract,
	"*":    OpMultiply,
	"/":    OpDivide,
	"**":   OpPower,
	"sqrt": OpSqrt,
	"log":  OpLog,
}

// ParseOp parses an operation symbol into its Op value.
// Returns an error wrapping ErrUnknownOperation if the symbol is not in the
// closed operation set.
func ParseOp(symbol string) (Op, error) {
	op, ok := opSymbols[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, symbol)
	}
	return op, nil
}

// String returns the operation symbol.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	case OpPower:
		return "**"
	case OpSqrt:
		return "sqrt"
	case OpLog:
		return "log"
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// checkArity validates the operand count for the operation.
// sqrt takes exactly one operand, log takes one or two (the second being the
// base), and the binary operations take at least two. Operands beyond the
// first two of a binary operation are evaluated-ignored but still recorded.
func (o Op) checkArity(n int) error {
	switch o {
	case OpSqrt:
		if n != 1 {
			return fmt.Errorf("%w: operation %q requires exactly 1 operand, got %d", ErrInvalidArgument, o, n)
		}
	case OpLog:
		if n < 1 || n > 2 {
			return fmt.Errorf("%w: operation %q requires 1 or 2 operands, got %d", ErrInvalidArgument, o, n)
		}
	default:
		if n < 2 {
			return fmt.Errorf("%w: operation %q requires at least 2 operands, got %d", ErrInvalidArgument, o, n)
		}
	}
	return nil
}

// eval computes the operation over validated-arity operands.
// With accumulate set, all operand violations are collected into an
// ArgumentError instead of returning on the first one.
func (o Op) eval(operands []float64, accumulate bool) (float64, error) {
	switch o {
	case OpAdd:
		return operands[0] + operands[1], nil
	case OpSubtract:
		return operands[0] - operands[1], nil
	case OpMultiply:
		return operands[0] * operands[1], nil
	case OpDivide:
		if operands[1] == 0 {
			return 0, fmt.Errorf("%w: division by zero", ErrInvalidArgument)
		}
		return operands[0] / operands[1], nil
	case OpPower:
		return math.Pow(operands[0], operands[1]), nil
	case OpSqrt:
		if operands[0] < 0 {
			return 0, fmt.Errorf("%w: square root of negative number %v", ErrInvalidArgument, operands[0])
		}
		return math.Sqrt(operands[0]), nil
	case OpLog:
		base := 10.0
		if len(operands) == 2 {
			base = operands[1]
		}

		var errs []error
		if operands[0] <= 0 {
			err := fmt.Errorf("%w: logarithm of non-positive number %v", ErrInvalidArgument, operands[0])
			if !accumulate {
				return 0, err
			}
			errs = append(errs, err)
		}
		if base <= 0 {
			err := fmt.Errorf("%w: logarithm base must be positive, got %v", ErrInvalidArgument, base)
			if !accumulate {
				return 0, err
			}
			errs = append(errs, err)
		}
		if len(errs) > 0 {
			return 0, newArgumentError(errs)
		}

		if base == 10 {
			return math.Log10(operands[0]), nil
		}
		return math.Log(operands[0]) / math.Log(base), nil
	}
	panic(fmt.Sprintf("unhandled operation: %d", int(o)))
}
