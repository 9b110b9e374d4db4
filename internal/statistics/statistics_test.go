package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleOf(values ...float64) *Sample {
	s := &Sample{}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func TestSampleEmpty(t *testing.T) {
	s := &Sample{}
	assert.Equal(t, 0.0, s.Mean())
	assert.Equal(t, 0.0, s.Variance())
	assert.Equal(t, 0.0, s.StdError())
	assert.Equal(t, 0.0, s.Median())
	assert.Equal(t, 0.0, s.Percentile(0.5))
}

func TestSampleMeanAndVariance(t *testing.T) {
	s := sampleOf(2, 4, 4, 4, 5, 5, 7, 9)
	assert.InDelta(t, 5.0, s.Mean(), 1e-9)
	assert.InDelta(t, 4.571428571, s.Variance(), 1e-6)
	assert.InDelta(t, 2.138089935, s.StdDev(), 1e-6)
}

func TestSampleMedian(t *testing.T) {
	assert.InDelta(t, 3.0, sampleOf(1, 3, 5).Median(), 1e-9)
	assert.InDelta(t, 2.5, sampleOf(1, 2, 3, 4).Median(), 1e-9)
}

func TestSamplePercentile(t *testing.T) {
	s := sampleOf(10, 20, 30, 40, 50)
	assert.InDelta(t, 10.0, s.Percentile(0), 1e-9)
	assert.InDelta(t, 30.0, s.Percentile(0.5), 1e-9)
	assert.InDelta(t, 50.0, s.Percentile(1.0), 1e-9)
	assert.InDelta(t, 25.0, s.Percentile(0.375), 1e-9)
}

func TestSampleConfidenceInterval(t *testing.T) {
	s := sampleOf(5, 5, 5, 5)
	low, high := s.ConfidenceInterval95()
	assert.InDelta(t, 5.0, low, 1e-9)
	assert.InDelta(t, 5.0, high, 1e-9)

	s = sampleOf(0, 10)
	low, high = s.ConfidenceInterval95()
	assert.Less(t, low, 5.0)
	assert.Greater(t, high, 5.0)
}
