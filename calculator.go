package tally

import (
	"sync"
	"time"

	"github.com/spf13/afero"
)

// Calculator evaluates operations from the closed operation set and records
// every successful evaluation in an ordered, append-only history.
type Calculator struct {
	history          []Calculation
	historyLimit     int // 0 means unbounded
	hashFunc         HashFunc
	nowFunc          NowFunc
	mu               sync.RWMutex
	fs               afero.Fs
	accumulateErrors bool // If true, accumulate all operand errors; if false, fail-fast
}

// Option defines a function that configures a Calculator.
type Option func(*Calculator)

// New creates a new Calculator.
// Defaults: OS filesystem, time.Now for timestamps, xxHash64 fingerprints,
// fail-fast validation, unbounded history.
func New(options ...Option) *Calculator {
	calc := &Calculator{
		fs:       afero.NewOsFs(),
		nowFunc:  time.Now,
		hashFunc: defaultHashFunc,
	}

	// Apply options
	for _, option := range options {
		option(calc)
	}

	return calc
}

// Calculate parses the operation symbol, validates the operands, evaluates
// the operation, and appends one Calculation record to the history.
//
// Returns an error wrapping ErrUnknownOperation if the symbol is not in the
// closed set, or wrapping ErrInvalidArgument on a wrong operand count,
// division by zero, negative square-root argument, or non-positive logarithm
// argument or base. On any error the history is left untouched.
func (c *Calculator) Calculate(symbol string, operands ...float64) (float64, error) {
	op, err := ParseOp(symbol)
	if err != nil {
		return 0, err
	}

	if err := op.checkArity(len(operands)); err != nil {
		return 0, err
	}

	result, err := op.eval(operands, c.accumulateErrors)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	rec := Calculation{
		Operation: op.String(),
		Operands:  append([]float64(nil), operands...),
		Result:    result,
		Timestamp: c.nowFunc(),
		Key:       fingerprint(c.hashFunc(), op.String(), operands),
	}
	c.history = append(c.history, rec)

	// Drop the oldest entries when a history limit is set
	if c.historyLimit > 0 && len(c.history) > c.historyLimit {
		c.history = append([]Calculation(nil), c.history[len(c.history)-c.historyLimit:]...)
	}

	return result, nil
}

// History returns the ordered sequence of past successful calculations,
// oldest first. The returned slice and its records are defensive copies;
// mutating them has no effect on the Calculator.
func (c *Calculator) History() []Calculation {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Calculation, len(c.history))
	for i, rec := range c.history {
		out[i] = rec.clone()
	}
	return out
}

// Len returns the current number of history records.
func (c *Calculator) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.history)
}

// ClearHistory empties the history. Irreversible; the operation set and
// configuration are unaffected.
func (c *Calculator) ClearHistory() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = nil
}

// Lookup returns the most recent history record whose operation and operands
// match the given ones, without re-evaluating. The match is made on the
// fingerprint key. Reports false for an unknown symbol or when no record
// matches.
func (c *Calculator) Lookup(symbol string, operands ...float64) (Calculation, bool) {
	op, err := ParseOp(symbol)
	if err != nil {
		return Calculation{}, false
	}
	key := fingerprint(c.hashFunc(), op.String(), operands)

	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := len(c.history) - 1; i >= 0; i-- {
		if c.history[i].Key == key {
			return c.history[i].clone(), true
		}
	}
	return Calculation{}, false
}
