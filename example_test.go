package tally_test

import (
	"fmt"
	"log"

	"github.com/gophersatwork/tally"
)

// Example mirrors a small driver program: it evaluates one calculation per
// operation, prints each result, then prints the numbered history.
func Example() {
	calc := tally.New()

	examples := []struct {
		label    string
		symbol   string
		operands []float64
	}{
		{"2 + 3", "+", []float64{2, 3}},
		{"10 - 4", "-", []float64{10, 4}},
		{"5 * 6", "*", []float64{5, 6}},
		{"15 / 3", "/", []float64{15, 3}},
		{"2 ** 8", "**", []float64{2, 8}},
		{"sqrt(16)", "sqrt", []float64{16}},
		{"log(100)", "log", []float64{100}},
	}

	for _, ex := range examples {
		result, err := calc.Calculate(ex.symbol, ex.operands...)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		fmt.Printf("%s = %.6g\n", ex.label, result)
	}

	fmt.Println()
	fmt.Println("Calculation History:")
	for i, rec := range calc.History() {
		fmt.Printf("%d. %s(%v) = %.6g\n", i+1, rec.Operation, rec.Operands, rec.Result)
	}

	// Output:
	// 2 + 3 = 5
	// 10 - 4 = 6
	// 5 * 6 = 30
	// 15 / 3 = 5
	// 2 ** 8 = 256
	// sqrt(16) = 4
	// log(100) = 2
	//
	// Calculation History:
	// 1. +([2 3]) = 5
	// 2. -([10 4]) = 6
	// 3. *([5 6]) = 30
	// 4. /([15 3]) = 5
	// 5. **([2 8]) = 256
	// 6. sqrt([16]) = 4
	// 7. log([100]) = 2
}

// ExampleCalculator_Lookup shows finding a previous result for the same
// operation and operands without re-evaluating.
func ExampleCalculator_Lookup() {
	calc := tally.New()

	if _, err := calc.Calculate("sqrt", 16); err != nil {
		log.Fatalf("Calculation failed: %v", err)
	}

	if rec, ok := calc.Lookup("sqrt", 16); ok {
		fmt.Printf("already computed: %.6g\n", rec.Result)
	}

	// Output:
	// already computed: 4
}

// ExampleCalculator_Calculate_errors shows the two error kinds.
func ExampleCalculator_Calculate_errors() {
	calc := tally.New()

	if _, err := calc.Calculate("foo", 1, 2); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
	if _, err := calc.Calculate("/", 1, 0); err != nil {
		fmt.Printf("Error: %v\n", err)
	}

	// Output:
	// Error: unknown operation: "foo"
	// Error: invalid argument: division by zero
}
