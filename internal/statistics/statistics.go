// Package statistics accumulates score samples and derives the summary
// measures the leaderboard reports.
package statistics

import (
	"math"
	"sort"
)

// Sample tracks a running score distribution. Add is O(1); Median and
// Percentile sort a copy on demand.
type Sample struct {
	Count  int
	Sum    float64
	Sum2   float64 // sum of squares for variance
	Values []float64
}

// Add incorporates a new observation
func (s *Sample) Add(v float64) {
	s.Count++
	s.Sum += v
	s.Sum2 += v * v
	s.Values = append(s.Values, v)
}

// Mean returns the arithmetic mean of all observations
func (s *Sample) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}

// Variance returns the sample variance
func (s *Sample) Variance() float64 {
	if s.Count < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Count)*mean*mean) / float64(s.Count-1)
}

// StdDev returns the sample standard deviation
func (s *Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Sample) StdError() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Count))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Sample) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median observation
func (s *Sample) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the linearly interpolated value at p (0.0 to 1.0)
func (s *Sample) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()
	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

func (s *Sample) sorted() []float64 {
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)
	return sorted
}
