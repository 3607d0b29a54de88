package tally

import (
	"fmt"
	"time"
)

// Calculation represents one successful evaluation.
// It is immutable once created: the Calculator appends a record inside
// Calculate and never modifies it afterward.
type Calculation struct {
	Operation string    `json:"operation"` // Operation symbol ("+", "sqrt", ...)
	Operands  []float64 `json:"operands"`  // Exact operand sequence passed by the caller
	Result    float64   `json:"result"`    // Computed result
	Timestamp time.Time `json:"timestamp"` // When the calculation was performed
	Key       string    `json:"key"`       // Fingerprint of (operation, operands)
}

// String returns a compact human-readable form, e.g. "sqrt([16]) = 4".
func (c Calculation) String() string {
	return fmt.Sprintf("%s(%v) = %v", c.Operation, c.Operands, c.Result)
}

// clone returns a copy with its own operand slice, so callers can hold the
// record without aliasing the Calculator's history.
func (c Calculation) clone() Calculation {
	out := c
	out.Operands = append([]float64(nil), c.Operands...)
	return out
}
