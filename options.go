package seqlist

import (
	"time"

	"golang.org/x/exp/rand"
)

//go:generate mockgen -destination internal/mocks/rand.go -package mocks github.com/mgnsk/seqlist Rand

// Rand is a source of uniformly distributed random integers.
type Rand interface {
	// Intn returns a random number in [0, n).
	Intn(n int) int
}

// Option is a list configuration option.
type Option interface {
	apply(*listOptions)
}

type listOptions struct {
	rand Rand
}

func newDefaultListOptions() listOptions {
	return listOptions{
		rand: rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

// WithRand option configures the random source used by RandomPermutation and Shuffle.
func WithRand(r Rand) Option {
	if r == nil {
		panic("seqlist: nil random source")
	}

	return funcOption(func(opts *listOptions) {
		opts.rand = r
	})
}

// WithSeed option configures a deterministic random source seeded with seed.
func WithSeed(seed uint64) Option {
	return funcOption(func(opts *listOptions) {
		opts.rand = rand.New(rand.NewSource(seed))
	})
}

type funcOption func(*listOptions)

func (o funcOption) apply(opts *listOptions) {
	o(opts)
}
