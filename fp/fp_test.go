package fp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"lockstep.dev/fixgeom/fp"
)

func TestConversions(t *testing.T) {
	require.Equal(t, fp.One+fp.One, fp.FromInt(2))
	require.Equal(t, fp.NegOne, fp.FromInt(-1))
	require.Equal(t, fp.Half, fp.FromFloat(0.5))
	require.Equal(t, 1.5, fp.FromFloat(1.5).Float())

	require.Equal(t, 2, fp.FromInt(2).Int())
	require.Equal(t, -3, fp.FromFloat(-2.5).Int(), "Int rounds toward negative infinity")

	require.True(t, fp.Zero.IsZero())
	require.False(t, fp.One.IsZero())
}

func TestMulDiv(t *testing.T) {
	require.Equal(t, fp.FromInt(12), fp.FromInt(3).Mul(fp.FromInt(4)))
	require.Equal(t, fp.FromFloat(-0.75), fp.FromFloat(1.5).Mul(fp.FromFloat(-0.5)))
	require.Equal(t, fp.FromFloat(2.5), fp.FromInt(10).Div(fp.FromInt(4)))
	require.Equal(t, fp.FromInt(-5), fp.FromInt(10).Div(fp.FromInt(-2)))

	require.Panics(t, func() { fp.One.Div(fp.Zero) })
}

func TestAbsMinMax(t *testing.T) {
	require.Equal(t, fp.One, fp.NegOne.Abs())
	require.Equal(t, fp.One, fp.One.Abs())
	require.Equal(t, fp.Zero, fp.Zero.Abs())

	require.Equal(t, fp.One, fp.Min(fp.One, fp.FromInt(2)))
	require.Equal(t, fp.FromInt(2), fp.Max(fp.One, fp.FromInt(2)))
	require.Equal(t, fp.NegOne, fp.Min(fp.NegOne, fp.Zero))
}

func TestSqrt(t *testing.T) {
	require.Equal(t, fp.FromInt(5), fp.FromInt(25).Sqrt())
	require.Equal(t, fp.Zero, fp.Zero.Sqrt())
	require.InDelta(t, math.Sqrt2, fp.FromInt(2).Sqrt().Float(), 1e-4)

	require.Panics(t, func() { fp.NegOne.Sqrt() })
}

func TestSinCosCardinals(t *testing.T) {
	require.Equal(t, fp.Zero, fp.Zero.Sin())
	require.Equal(t, fp.One, fp.FracPi2.Sin())
	require.Equal(t, fp.Zero, fp.Pi.Sin())
	require.Equal(t, fp.NegOne, (fp.Pi + fp.FracPi2).Sin())
	require.Equal(t, fp.Zero, fp.Tau.Sin())

	require.Equal(t, fp.One, fp.Zero.Cos())
	require.Equal(t, fp.Zero, fp.FracPi2.Cos())
	require.Equal(t, fp.NegOne, fp.Pi.Cos())

	// 4*FracPi2 reduces a couple of raw units past Tau, so it goes
	// through the approximation: near zero, but not exactly Zero.
	require.NotEqual(t, fp.Zero, (4 * fp.FracPi2).Sin())
	require.InDelta(t, 0, (4*fp.FracPi2).Sin().Float(), 1e-4)
}

func TestSinCosApprox(t *testing.T) {
	angles := []float64{0.3, math.Pi / 6, math.Pi / 4, 1, 2.5, -1, -math.Pi / 2, 7}
	for _, a := range angles {
		x := fp.FromFloat(a)
		require.InDelta(t, math.Sin(a), x.Sin().Float(), 5e-3, "sin(%v)", a)
		require.InDelta(t, math.Cos(a), x.Cos().Float(), 5e-3, "cos(%v)", a)
	}
}

func TestString(t *testing.T) {
	require.Equal(t, "2", fp.FromInt(2).String())
	require.Equal(t, "0.5", fp.Half.String())
	require.Equal(t, "-1.25", fp.FromFloat(-1.25).String())
}
