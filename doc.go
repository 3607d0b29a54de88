/*
	Package tally provides a small calculation engine with a recorded history for Go applications.

It evaluates a closed set of arithmetic operations and keeps an ordered,
append-only journal of every successful calculation.

# Overview

tally is a lightweight library built around a single Calculator type. The
Calculator validates operands, evaluates one of seven fixed operations, and
records each successful evaluation as an immutable Calculation. The operation
set is closed and compiler-checked: string symbols are parsed into a tagged
Op value at the API boundary, and a single evaluation switch handles all
seven cases.

# Operations

The closed operation set:

	+     addition (2 operands)
	-     subtraction (2 operands)
	*     multiplication (2 operands)
	/     division (2 operands, divisor must be non-zero)
	**    exponentiation (2 operands)
	sqrt  square root (1 operand, must be non-negative)
	log   logarithm (1 or 2 operands; the second is the base, default 10)

# Basic Usage

Creating a calculator and evaluating operations:

	calc := tally.New()

	sum, err := calc.Calculate("+", 2, 3)
	if err != nil {
	    log.Fatalf("Calculation failed: %v", err)
	}
	fmt.Println(sum) // 5

Reading the history:

	for i, rec := range calc.History() {
	    fmt.Printf("%d. %s(%v) = %v\n", i+1, rec.Operation, rec.Operands, rec.Result)
	}

Clearing it:

	calc.ClearHistory()

# History Records

Every successful Calculate call appends exactly one Calculation holding the
operation symbol, the full operand sequence as supplied by the caller, the
result, a wall-clock timestamp, and a content-addressed key. Failed calls
never touch the history. Records are immutable once created; History returns
defensive copies.

The key is a hex fingerprint of the operation and its operands (xxHash64 by
default), which lets Lookup find a previous result for the same inputs
without re-evaluating:

	if rec, ok := calc.Lookup("sqrt", 16); ok {
	    fmt.Printf("already computed: %v\n", rec.Result)
	}

# Persistence

The history can be saved to and loaded from a JSON journal through an
afero filesystem, which defaults to the OS filesystem and can be swapped
for an in-memory one in tests:

	if err := calc.SaveHistory("history.json"); err != nil {
	    log.Fatalf("Failed to save history: %v", err)
	}

# Configuration Options

tally can be configured with various options:

	calc := tally.New(
	    tally.WithNowFunc(myClock),
	    tally.WithHashFunc(myHashFunc),
	    tally.WithFs(afero.NewMemMapFs()),
	    tally.WithHistoryLimit(1000),
	)

# Error Handling

The package defines two sentinel errors:

  - ErrUnknownOperation: the symbol is not in the closed operation set
  - ErrInvalidArgument: wrong operand count, division by zero, negative
    square-root argument, or non-positive logarithm argument or base

Every error returned by Calculate wraps one of the two:

	_, err := calc.Calculate("/", 1, 0)
	if errors.Is(err, tally.ErrInvalidArgument) {
	    // Handle the precondition violation
	}

By default validation is fail-fast. With WithAccumulateErrors the Calculator
collects all operand violations and returns them together as an
ArgumentError.
*/
package tally
