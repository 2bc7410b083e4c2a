package vector

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCosine_Identical(t *testing.T) {
	v := Sparse{{0, 2}, {3, 1}, {7, 4}}
	require.InDelta(t, 1.0, Cosine(v, v), 1e-12)
}

func TestCosine_Orthogonal(t *testing.T) {
	a := Sparse{{0, 1}, {1, 1}}
	b := Sparse{{2, 1}, {3, 1}}
	require.Equal(t, 0.0, Cosine(a, b))
}

func TestCosine_Partial(t *testing.T) {
	a := Sparse{{0, 1}, {1, 1}}
	b := Sparse{{0, 1}, {2, 1}}
	// dot = 1, |a| = |b| = sqrt(2)
	require.InDelta(t, 0.5, Cosine(a, b), 1e-12)
}

func TestCosine_KnownValue(t *testing.T) {
	// a = [3,4,0], b = [0,4,3]: dot 16, norms 5 and 5.
	a := Sparse{{0, 3}, {1, 4}}
	b := Sparse{{1, 4}, {2, 3}}
	require.InDelta(t, 0.64, Cosine(a, b), 1e-12)
}

func TestCosine_ZeroNorm(t *testing.T) {
	a := Sparse{{0, 1}}
	require.Equal(t, 0.0, Cosine(a, nil))
	require.Equal(t, 0.0, Cosine(nil, a))
	require.Equal(t, 0.0, Cosine(nil, nil))
	require.Equal(t, 0.0, Cosine(Sparse{{0, 0}}, a))
}

func TestCosine_BoundsAndSymmetry(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	randomVector := func() Sparse {
		var v Sparse
		for idx := 0; idx < 30; idx++ {
			if rng.IntN(3) == 0 {
				v = append(v, Entry{Index: idx, Value: float64(1 + rng.IntN(5))})
			}
		}
		if len(v) == 0 {
			v = Sparse{{Index: rng.IntN(30), Value: 1}}
		}
		return v
	}
	for i := 0; i < 200; i++ {
		a, b := randomVector(), randomVector()
		ab, ba := Cosine(a, b), Cosine(b, a)
		require.InDelta(t, ab, ba, 1e-12)
		require.GreaterOrEqual(t, ab, 0.0)
		require.LessOrEqual(t, ab, 1.0+1e-12)
		require.InDelta(t, 1.0, Cosine(a, a), 1e-12)
	}
}

func TestCosine_ProbeScenario(t *testing.T) {
	// sun:2 moon:1 against sun:1 moon:1 star:1
	probe := Sparse{{0, 2}, {1, 1}}
	beta := Sparse{{0, 1}, {1, 1}, {2, 1}}
	require.InDelta(t, 3/math.Sqrt(15), Cosine(probe, beta), 1e-12)
}
