// Command demo walks the tally calculator through one calculation per
// operation, prints each result, and finishes with the numbered history.
// Errors from individual calculations are printed and the program moves on.
package main

import (
	"fmt"
	"strings"

	"github.com/gophersatwork/tally"
)

func main() {
	fmt.Println("Welcome to the tally calculator!")
	fmt.Println(strings.Repeat("=", 40))

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

	stats := calc.Stats()
	fmt.Printf("\nPerformed %d calculations across %d operations\n",
		stats.Calculations, len(stats.PerOperation))
}
