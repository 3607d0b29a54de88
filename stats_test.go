package tally

import (
	"testing"
	"time"
)

func TestStatsEmpty(t *testing.T) {
	calc := New()

	stats := calc.Stats()
	if stats.Calculations != 0 {
		t.Errorf("Calculations = %d, want 0", stats.Calculations)
	}
	if len(stats.PerOperation) != 0 {
		t.Errorf("PerOperation = %v, want empty", stats.PerOperation)
	}
	if stats.OldestEntry != 0 || stats.NewestEntry != 0 {
		t.Errorf("entry ages = %v/%v, want 0/0", stats.OldestEntry, stats.NewestEntry)
	}
}

func TestStats(t *testing.T) {
	// The clock advances one second per reading: the three calculations land
	// at t+0s, t+1s, t+2s and Stats reads the clock at t+3s.
	calc := New(WithNowFunc(stepNowFunc(fixedNowFunc(), time.Second)))

	for _, step := range []struct {
		symbol   string
		operands []float64
	}{
		{"+", []float64{1, 2}},
		{"+", []float64{3, 4}},
		{"sqrt", []float64{9}},
	} {
		if _, err := calc.Calculate(step.symbol, step.operands...); err != nil {
			t.Fatalf("Calculate failed: %v", err)
		}
	}

	stats := calc.Stats()
	if stats.Calculations != 3 {
		t.Errorf("Calculations = %d, want 3", stats.Calculations)
	}
	if stats.PerOperation["+"] != 2 {
		t.Errorf("PerOperation[+] = %d, want 2", stats.PerOperation["+"])
	}
	if stats.PerOperation["sqrt"] != 1 {
		t.Errorf("PerOperation[sqrt] = %d, want 1", stats.PerOperation["sqrt"])
	}
	if stats.OldestEntry != 3*time.Second {
		t.Errorf("OldestEntry = %v, want 3s", stats.OldestEntry)
	}
	if stats.NewestEntry != time.Second {
		t.Errorf("NewestEntry = %v, want 1s", stats.NewestEntry)
	}
}

func TestStatsAfterClear(t *testing.T) {
	calc := New()

	if _, err := calc.Calculate("*", 6, 7); err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	calc.ClearHistory()

	stats := calc.Stats()
	if stats.Calculations != 0 {
		t.Errorf("Calculations = %d after clear, want 0", stats.Calculations)
	}
}
