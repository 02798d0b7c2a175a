package rng

import (
	"math"
	"testing"
)

func TestUniformIntInclusive(t *testing.T) {
	s := NewSampler(NewStream("uniform-int"))

	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := s.UniformInt(2, 5)
		if v < 2 || v > 5 {
			t.Fatalf("UniformInt(2,5) out of range: %d", v)
		}
		seen[v] = true
	}
	for v := 2; v <= 5; v++ {
		if !seen[v] {
			t.Errorf("UniformInt(2,5) never produced %d over 1000 draws", v)
		}
	}

	if got := s.UniformInt(4, 4); got != 4 {
		t.Fatalf("UniformInt(4,4) = %d, want 4", got)
	}
	if got := s.UniformInt(9, 3); got != 9 {
		t.Fatalf("UniformInt with inverted bounds = %d, want lo", got)
	}
}

func TestUniformFloatBounds(t *testing.T) {
	s := NewSampler(NewStream("uniform-float"))
	for i := 0; i < 1000; i++ {
		v := s.UniformFloat(1.5, 2.5)
		if v < 1.5 || v >= 2.5 {
			t.Fatalf("UniformFloat(1.5,2.5) out of range: %v", v)
		}
	}
	if got := s.UniformFloat(3, 3); got != 3 {
		t.Fatalf("UniformFloat(3,3) = %v, want 3", got)
	}
}

func TestBoolEdges(t *testing.T) {
	s := NewSampler(NewStream("bool"))
	for i := 0; i < 100; i++ {
		if s.Bool(0) {
			t.Fatal("Bool(0) returned true")
		}
		if !s.Bool(1) {
			t.Fatal("Bool(1) returned false")
		}
	}

	trues := 0
	for i := 0; i < 10000; i++ {
		if s.Bool(0.3) {
			trues++
		}
	}
	ratio := float64(trues) / 10000
	if math.Abs(ratio-0.3) > 0.03 {
		t.Fatalf("Bool(0.3) hit rate %v, want ~0.3", ratio)
	}
}

func TestNormalMoments(t *testing.T) {
	s := NewSampler(NewStream("normal"))

	const n = 20000
	sum, sumSq := 0.0, 0.0
	for i := 0; i < n; i++ {
		v := s.Normal(2, 3)
		sum += v
		sumSq += v * v
	}
	mean := sum / n
	variance := sumSq/n - mean*mean

	if math.Abs(mean-2) > 0.1 {
		t.Errorf("sample mean %v, want ~2", mean)
	}
	if math.Abs(variance-9) > 0.5 {
		t.Errorf("sample variance %v, want ~9", variance)
	}
}

func TestGeometricCountMean(t *testing.T) {
	s := NewSampler(NewStream("geometric"))

	const p = 0.25
	const n = 10000
	sum := 0
	for i := 0; i < n; i++ {
		sum += s.GeometricCount(p, 0, 1000)
	}
	mean := float64(sum) / n
	want := (1 - p) / p
	if math.Abs(mean-want)/want > 0.05 {
		t.Fatalf("geometric mean %v, want within 5%% of %v", mean, want)
	}
}

func TestGeometricCountClamps(t *testing.T) {
	s := NewSampler(NewStream("geometric-clamp"))

	for i := 0; i < 100; i++ {
		if got := s.GeometricCount(0.9, 2, 5); got < 2 || got > 5 {
			t.Fatalf("GeometricCount out of [2,5]: %d", got)
		}
	}
	if got := s.GeometricCount(0, 1, 4); got != 4 {
		t.Fatalf("GeometricCount with p=0 = %d, want max", got)
	}
	if got := s.GeometricCount(1.5, 1, 4); got != 4 {
		t.Fatalf("GeometricCount with p>1 = %d, want max", got)
	}
}

func TestWeightedIndex(t *testing.T) {
	s := NewSampler(NewStream("weighted"))

	if got := s.WeightedIndex([]float64{0, 0, 0}); got != -1 {
		t.Fatalf("WeightedIndex with no positive weights = %d, want -1", got)
	}
	if got := s.WeightedIndex(nil); got != -1 {
		t.Fatalf("WeightedIndex(nil) = %d, want -1", got)
	}

	for i := 0; i < 100; i++ {
		if got := s.WeightedIndex([]float64{0, 1, 0}); got != 1 {
			t.Fatalf("WeightedIndex with single positive weight = %d, want 1", got)
		}
	}

	counts := [3]int{}
	for i := 0; i < 10000; i++ {
		idx := s.WeightedIndex([]float64{0.7, 0, 0.3})
		if idx == 1 {
			t.Fatal("WeightedIndex picked a zero weight")
		}
		counts[idx]++
	}
	ratio := float64(counts[0]) / 10000
	if math.Abs(ratio-0.7) > 0.03 {
		t.Fatalf("weight 0.7 picked at rate %v", ratio)
	}
}

func TestSamplerForkIndependence(t *testing.T) {
	s := NewSampler(NewStream("fork-independence"))

	a1 := s.Fork("a").Float64()
	s.Fork("b").Float64()
	for i := 0; i < 10; i++ {
		s.Float64()
	}
	a2 := s.Fork("a").Float64()

	if a1 != a2 {
		t.Fatal("fork output changed after unrelated draws")
	}
}

func TestLogNormalPositive(t *testing.T) {
	s := NewSampler(NewStream("lognormal"))
	for i := 0; i < 1000; i++ {
		if v := s.LogNormal(0, 1); v <= 0 {
			t.Fatalf("LogNormal produced non-positive %v", v)
		}
	}
}
