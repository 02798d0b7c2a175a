package rng

import "math"

// Sampler layers the statistical distributions the generators need on top of
// a Stream. A sampler owns its stream; fork a sampler rather than sharing one
// across logical branches.
type Sampler struct {
	stream *Stream

	// Box–Muller produces samples in pairs; the spare is cached here and
	// consumed by the next Normal call.
	hasSpare bool
	spare    float64
}

// NewSampler wraps a stream in a sampler.
func NewSampler(stream *Stream) *Sampler {
	return &Sampler{stream: stream}
}

// Fork derives an independent labelled child sampler. The spare normal
// sample is not inherited.
func (s *Sampler) Fork(label string) *Sampler {
	return NewSampler(s.stream.Fork(label))
}

// Float64 returns a uniform float in [0,1).
func (s *Sampler) Float64() float64 { return s.stream.Float64() }

// Intn returns a uniform int in [0,n).
func (s *Sampler) Intn(n int) int { return s.stream.Intn(n) }

// Uint64 returns the next raw 64-bit value from the underlying stream.
func (s *Sampler) Uint64() uint64 { return s.stream.Uint64() }

// UniformFloat returns a uniform float in [lo,hi).
func (s *Sampler) UniformFloat(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.stream.Float64()*(hi-lo)
}

// UniformInt returns a uniform int in [lo,hi], inclusive on both ends.
func (s *Sampler) UniformInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.stream.Intn(hi-lo+1)
}

// Bool returns true with probability p.
func (s *Sampler) Bool(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.stream.Float64() < p
}

// Normal returns a normally distributed sample via the Box–Muller transform.
// Each transform consumes two uniforms and yields two samples; the second is
// cached and returned by the next call.
func (s *Sampler) Normal(mean, sigma float64) float64 {
	if s.hasSpare {
		s.hasSpare = false
		return mean + sigma*s.spare
	}

	var u1 float64
	for u1 == 0 {
		u1 = s.stream.Float64()
	}
	u2 := s.stream.Float64()

	r := math.Sqrt(-2 * math.Log(u1))
	theta := 2 * math.Pi * u2

	s.spare = r * math.Sin(theta)
	s.hasSpare = true

	return mean + sigma*r*math.Cos(theta)
}

// LogNormal returns exp(Normal(mu, sigma)).
func (s *Sampler) LogNormal(mu, sigma float64) float64 {
	return math.Exp(s.Normal(mu, sigma))
}

// GeometricCount returns the number of failures before the first success for
// success probability p, clamped to [min,max]. p outside (0,1] yields max.
func (s *Sampler) GeometricCount(p float64, min, max int) int {
	if max < min {
		max = min
	}
	n := 0
	if p <= 0 || p > 1 {
		n = max
	} else {
		for n < max && s.stream.Float64() >= p {
			n++
		}
	}
	if n < min {
		n = min
	}
	return n
}

// WeightedIndex picks an index with probability proportional to its weight.
// Non-positive weights are never picked. Returns -1 when no weight is
// positive.
func (s *Sampler) WeightedIndex(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}

	roll := s.stream.Float64() * total
	acc := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		acc += w
		if roll < acc {
			return i
		}
	}
	// Floating point edge: fall back to the last positive weight.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return -1
}

// Choice returns a uniformly picked index in [0,n).
func (s *Sampler) Choice(n int) int { return s.stream.Intn(n) }
