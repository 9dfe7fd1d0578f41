package sim

import (
	"math"
	"math/rand"
)

// Source supplies the uniform draws every sampling site consumes. A single
// source is threaded through arrival, departure and policy sampling in a
// fixed call order, so one seed fully determines a run.
type Source interface {
	Float64() float64
	IntN(n int) int
}

type randSource struct {
	r *rand.Rand
}

// NewSource returns a seeded Source backed by math/rand.
func NewSource(seed int64) Source {
	return &randSource{r: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Float64() float64 { return s.r.Float64() }
func (s *randSource) IntN(n int) int   { return s.r.Intn(n) }

// Bernoulli draws a single trial with success probability p.
func Bernoulli(src Source, p float64) bool {
	return src.Float64() < p
}

// Poisson draws a count with rate lambda using Knuth's product method.
func Poisson(src Source, lambda float64) int {
	limit := math.Exp(-lambda)
	count := 0
	product := 1.0
	for {
		product *= src.Float64()
		if product <= limit {
			return count
		}
		count++
	}
}
