package rational

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func r(num, den int32) Rational { return Rational{Num: num, Den: den} }

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b int64
		want int64
	}{
		{12, 18, 6},
		{-12, 18, 6},
		{7, 0, 7},
		{0, 0, 0},
		{17, 5, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GCD(tt.a, tt.b), "GCD(%d, %d)", tt.a, tt.b)
	}
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		name string
		in   Rational
		want Rational
	}{
		{"lowest terms", r(6, 8), r(3, 4)},
		{"sign moves to the numerator", r(3, -9), r(-1, 3)},
		{"both negative", r(-4, -2), r(2, 1)},
		{"zero", r(0, 5), r(0, 1)},
		{"min int over itself", r(math.MinInt32, math.MinInt32), r(1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Simplify(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Simplify(r(1, 0))
	require.ErrorIs(t, err, ErrZeroDenominator)
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		op   func(a, b Rational) (Rational, error)
		a, b Rational
		want Rational
	}{
		{"add", Add, r(1, 2), r(1, 3), r(5, 6)},
		{"add equal denominators", Add, r(1, 4), r(1, 4), r(1, 2)},
		{"subtract", Subtract, r(1, 2), r(1, 3), r(1, 6)},
		{"subtract to negative", Subtract, r(1, 3), r(1, 2), r(-1, 6)},
		{"multiply", Multiply, r(2, 3), r(3, 4), r(1, 2)},
		{"divide", Divide, r(1, 2), r(1, 4), r(2, 1)},
		{"divide by negative", Divide, r(1, 2), r(-1, 4), r(-2, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArithmeticErrors(t *testing.T) {
	_, err := Divide(r(1, 2), r(0, 3))
	require.ErrorIs(t, err, ErrDivideByZero)

	_, err = Add(r(1, 0), r(1, 2))
	require.ErrorIs(t, err, ErrZeroDenominator)

	_, err = Multiply(r(1, 2), r(1, 0))
	require.ErrorIs(t, err, ErrZeroDenominator)

	_, err = New(1, 0)
	require.ErrorIs(t, err, ErrZeroDenominator)

	// a whole number beyond 32 bits can not be approximated
	_, err = Multiply(r(math.MaxInt32, 1), r(4, 1))
	require.ErrorIs(t, err, ErrOverflow)
}

func TestOverflowLosesPrecisionInsteadOfWrapping(t *testing.T) {
	// the exact sum has a denominator well beyond 32 bits
	a := r(1, math.MaxInt32)
	b := r(1, math.MaxInt32-1)

	got, err := Add(a, b)
	require.NoError(t, err)
	assert.Positive(t, got.Num)
	assert.Positive(t, got.Den)
	assert.InEpsilon(t, a.Float64()+b.Float64(), got.Float64(), 1e-6)

	big := r(math.MaxInt32, 3)
	got, err = Add(big, r(math.MaxInt32, 7))
	require.NoError(t, err)
	assert.InEpsilon(t, big.Float64()+float64(math.MaxInt32)/7, got.Float64(), 1e-6)
}

func TestApproximate(t *testing.T) {
	tests := []struct {
		name         string
		p, q, bound  int64
		wantH, wantK int64
	}{
		{name: "exact fit", p: 3, q: 4, bound: 10, wantH: 3, wantK: 4},
		{name: "whole number at bound", p: 7, q: 1, bound: 7, wantH: 7, wantK: 1},
		{name: "convergent", p: 314159, q: 100000, bound: 1000, wantH: 355, wantK: 113},
		{name: "half semiconvergent nearer", p: 355, q: 113, bound: 200, wantH: 179, wantK: 57},
		{name: "half semiconvergent nearer small", p: 5, q: 7, bound: 2, wantH: 1, wantK: 2},
		{name: "half semiconvergent tie keeps convergent", p: 3, q: 2, bound: 2, wantH: 1, wantK: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, k, ok := approximate(tt.p, tt.q, tt.bound)
			require.True(t, ok)
			assert.Equal(t, tt.wantH, h)
			assert.Equal(t, tt.wantK, k)
		})
	}

	_, _, ok := approximate(15, 2, 6)
	assert.False(t, ok)
}

func TestSumAndAverage(t *testing.T) {
	values := []Rational{r(1, 2), r(2, 4), r(3, 6), r(-1, 2)}

	sum, err := Sum(values)
	require.NoError(t, err)
	assert.Equal(t, r(1, 1), sum)

	avg, err := Average(values)
	require.NoError(t, err)
	assert.Equal(t, r(1, 4), avg)

	sum, err = Sum(nil)
	require.NoError(t, err)
	assert.Equal(t, Zero, sum)

	_, err = Average(nil)
	require.ErrorIs(t, err, ErrNoValues)

	_, err = Sum([]Rational{r(1, 2), r(1, 0)})
	require.ErrorIs(t, err, ErrZeroDenominator)
}

func TestString(t *testing.T) {
	assert.Equal(t, "-3/4", r(-3, 4).String())
}
