package analysis

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncrements_Example(t *testing.T) {
	got := Increments([]float64{1.0, 1.5, 2.5, 3.0})
	require.Len(t, got, 4)
	for i, want := range []float64{1.0, 0.5, 1.0, 0.5} {
		assert.InDelta(t, want, got[i], 1e-12, "index %d", i)
	}
	assert.Nil(t, Increments(nil))
}

func TestIncrements_SumToLast(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 1; n < 40; n++ {
		vs := make([]float64, n)
		for i := range vs {
			vs[i] = rng.Float64()*8 - 4
		}
		inc := Increments(vs)
		sum := inc[0]
		for _, d := range inc[1:] {
			sum += d
		}
		if math.Abs(sum-vs[n-1]) > 1e-9 {
			t.Fatalf("n=%d: base+sum(increments)=%v, last=%v", n, sum, vs[n-1])
		}
	}
}

func TestWaterfall_FloatingBars(t *testing.T) {
	steps := Waterfall([]string{"base", "fert"}, []float64{1.0, 1.5, 1.2})
	require.Len(t, steps, 3)
	assert.Equal(t, WaterfallStep{Label: "base", Bottom: 0, Height: 1.0, Top: 1.0}, steps[0])
	assert.Equal(t, "fert", steps[1].Label)
	assert.Equal(t, 1.0, steps[1].Bottom)
	assert.Equal(t, "", steps[2].Label)
	assert.Equal(t, 1.5, steps[2].Bottom)
	assert.InDelta(t, -0.3, steps[2].Height, 1e-12)
	for _, s := range steps {
		assert.InDelta(t, s.Top, s.Bottom+s.Height, 1e-12)
	}
}
