package recapture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		m, c, r int
		want    int
	}{
		{50, 30, 10, 150},
		{100, 80, 1, 8000},
		{10, 10, 30, 3}, // 3.33
		{10, 15, 4, 38}, // 37.5 rounds up
		{0, 30, 10, 0},
	}
	for _, tt := range tests {
		got, err := Estimate(tt.m, tt.c, tt.r)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Estimate(%d, %d, %d)", tt.m, tt.c, tt.r)
	}
}

func TestEstimate_ZeroRecaptured(t *testing.T) {
	n, err := Estimate(50, 30, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	assert.Zero(t, n)
}

func TestFormula(t *testing.T) {
	f := Formula{Marked: 50, Caught: 30, Recaptured: 10}
	assert.Equal(t, 1500, f.Numerator())
	assert.Equal(t, 10, f.Denominator())
	assert.Equal(t, "N = (50 × 30) / 10 = 1500 / 10", f.String())

	n, err := f.Estimate()
	require.NoError(t, err)
	assert.Equal(t, 150, n)
}

func TestCountUp(t *testing.T) {
	assert.Equal(t, 0, CountUp(150, 0, 10))
	assert.Equal(t, 75, CountUp(150, 5, 10))
	assert.Equal(t, 150, CountUp(150, 10, 10))
	assert.Equal(t, 150, CountUp(150, 12, 10))
	assert.Equal(t, 150, CountUp(150, 3, 0))
}

func TestProperty_ZeroRecapturedAlwaysFails(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := rapid.Int().Draw(t, "m")
		c := rapid.Int().Draw(t, "c")
		if _, err := Estimate(m, c, 0); err != ErrDivisionByZero {
			t.Fatalf("Estimate(%d, %d, 0) err = %v", m, c, err)
		}
	})
}

func TestProperty_CountUpMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		target := rapid.IntRange(0, 10000).Draw(t, "target")
		steps := rapid.IntRange(1, 60).Draw(t, "steps")
		prev := 0
		for i := 0; i <= steps; i++ {
			v := CountUp(target, i, steps)
			if v < prev || v > target {
				t.Fatalf("frame %d: %d after %d (target %d)", i, v, prev, target)
			}
			prev = v
		}
		if prev != target {
			t.Fatalf("ended at %d, want %d", prev, target)
		}
	})
}
