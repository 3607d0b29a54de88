package tally

import (
	"github.com/spf13/afero"
)

// WithFs sets a custom filesystem for history persistence.
// This is primarily useful for testing with in-memory filesystems.
//
// Example:
//
//	calc := tally.New(tally.WithFs(afero.NewMemMapFs()))
func WithFs(fs afero.Fs) Option {
	return func(c *Calculator) {
		c.fs = fs
	}
}

// WithHashFunc sets a custom hash function for calculation fingerprints.
// The default is xxHash64, which provides excellent performance.
// Only change this if you have specific requirements.
//
// Note: Changing the hash function changes the keys of new records, so
// Lookup will not match records fingerprinted with a different function.
func WithHashFunc(hashFunc HashFunc) Option {
	return func(c *Calculator) {
		c.hashFunc = hashFunc
	}
}

// WithNowFunc sets a custom time function for record timestamps.
// This is primarily useful for testing with deterministic timestamps.
func WithNowFunc(nowFunc NowFunc) Option {
	return func(c *Calculator) {
		c.nowFunc = nowFunc
	}
}

// WithAccumulateErrors configures the Calculator to accumulate all operand
// validation errors instead of stopping at the first error (fail-fast).
//
// By default, validation stops after the first violated precondition. With
// this option enabled, all operands are validated and all errors are
// collected and returned together as an ArgumentError.
//
// This is useful during development to see all argument problems at once.
//
// Example:
//
//	calc := tally.New(tally.WithAccumulateErrors())
func WithAccumulateErrors() Option {
	return func(c *Calculator) {
		c.accumulateErrors = true
	}
}

// WithHistoryLimit bounds the history to the given number of records.
// When a successful calculation would exceed the limit, the oldest records
// are dropped. A limit of 0 (the default) keeps the history unbounded.
func WithHistoryLimit(n int) Option {
	return func(c *Calculator) {
		c.historyLimit = n
	}
}
