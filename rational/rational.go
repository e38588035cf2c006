package rational

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

var (
	ErrZeroDenominator = errors.New("rational: zero denominator")
	ErrDivideByZero    = errors.New("rational: divide by zero")
	ErrOverflow        = errors.New("rational: value can not be represented with 32 bit terms")
	ErrNoValues        = errors.New("rational: no values")
)

// Rational is a fraction with 32 bit terms. The zero value is not valid, use
// Zero or New.
type Rational struct {
	Num int32
	Den int32
}

// Zero is 0/1, the start of a sum.
var Zero = Rational{Num: 0, Den: 1}

func New(num, den int32) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrZeroDenominator
	}
	return Rational{Num: num, Den: den}, nil
}

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// Float64 returns the nearest float64 to r.
func (r Rational) Float64() float64 {
	return float64(r.Num) / float64(r.Den)
}

// GCD returns the greatest common divisor of |a| and |b|. GCD(0, 0) is 0.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Simplify reduces r to lowest terms with a positive denominator.
func Simplify(r Rational) (Rational, error) {
	if r.Den == 0 {
		return Rational{}, ErrZeroDenominator
	}
	return reduce(int64(r.Num), int64(r.Den))
}

// reduce brings num/den to lowest terms with the sign on the numerator. When
// either term does not fit in 32 bits the closest fraction that does is
// returned instead, so precision is lost rather than the terms wrapping. Only
// magnitudes beyond math.MaxInt32 fail, with ErrOverflow.
func reduce(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrZeroDenominator
	}
	if g := GCD(num, den); g > 1 {
		num /= g
		den /= g
	}
	if den < 0 {
		num, den = -num, -den
	}
	if fits32(num) && fits32(den) {
		return Rational{Num: int32(num), Den: int32(den)}, nil
	}

	neg := num < 0
	if neg {
		num = -num
	}
	h, k, ok := approximate(num, den, math.MaxInt32)
	if !ok {
		return Rational{}, ErrOverflow
	}
	if h == 0 {
		return Zero, nil
	}
	if neg {
		h = -h
	}
	return Rational{Num: int32(h), Den: int32(k)}, nil
}

// approximate returns the best fraction h/k to p/q with h, k <= bound, taken
// from the continued fraction convergents of p/q and the final semiconvergent.
// p >= 0 and q > 0. ok is false if the integer part of p/q exceeds bound.
func approximate(p, q, bound int64) (h, k int64, ok bool) {
	if p/q > bound {
		return 0, 0, false
	}
	p0, q0 := p, q

	h0, h1 := int64(0), int64(1)
	k0, k1 := int64(1), int64(0)
	for q != 0 {
		a := p / q

		// largest t <= a keeping both terms within bound
		t := a
		if h1 != 0 {
			t = min(t, (bound-h0)/h1)
		}
		if k1 != 0 {
			t = min(t, (bound-k0)/k1)
		}
		if t < a {
			// the semiconvergent beats the last convergent past a/2, and
			// may at exactly a/2
			hs, ks := t*h1+h0, t*k1+k0
			if 2*t > a || (2*t == a && t > 0 && closer(p0, q0, hs, ks, h1, k1)) {
				return hs, ks, true
			}
			return h1, k1, true
		}

		h0, h1 = h1, a*h1+h0
		k0, k1 = k1, a*k1+k0
		p, q = q, p-a*q
	}
	return h1, k1, true
}

func fits32(v int64) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}

func Add(a, b Rational) (Rational, error) {
	if a.Den == 0 || b.Den == 0 {
		return Rational{}, ErrZeroDenominator
	}
	if a.Den == b.Den {
		return reduce(int64(a.Num)+int64(b.Num), int64(a.Den))
	}
	// with equal denominators handled above, the cross products and their sum
	// fit in 64 bits
	num := int64(a.Num)*int64(b.Den) + int64(b.Num)*int64(a.Den)
	return reduce(num, int64(a.Den)*int64(b.Den))
}

func Subtract(a, b Rational) (Rational, error) {
	if a.Den == 0 || b.Den == 0 {
		return Rational{}, ErrZeroDenominator
	}
	num := int64(a.Num)*int64(b.Den) - int64(b.Num)*int64(a.Den)
	return reduce(num, int64(a.Den)*int64(b.Den))
}

func Multiply(a, b Rational) (Rational, error) {
	if a.Den == 0 || b.Den == 0 {
		return Rational{}, ErrZeroDenominator
	}
	return reduce(int64(a.Num)*int64(b.Num), int64(a.Den)*int64(b.Den))
}

func Divide(a, b Rational) (Rational, error) {
	if a.Den == 0 || b.Den == 0 {
		return Rational{}, ErrZeroDenominator
	}
	if b.Num == 0 {
		return Rational{}, ErrDivideByZero
	}
	return reduce(int64(a.Num)*int64(b.Den), int64(a.Den)*int64(b.Num))
}

// Sum adds values, simplifying each term first, starting from Zero.
func Sum(values []Rational) (Rational, error) {
	sum := Zero
	for i, v := range values {
		term, err := Simplify(v)
		if err != nil {
			return Rational{}, fmt.Errorf("value %d: %w", i, err)
		}
		if sum, err = Add(sum, term); err != nil {
			return Rational{}, fmt.Errorf("value %d: %w", i, err)
		}
	}
	return sum, nil
}

// Average is Sum divided by the number of values.
func Average(values []Rational) (Rational, error) {
	if len(values) == 0 {
		return Rational{}, ErrNoValues
	}
	if len(values) > math.MaxInt32 {
		return Rational{}, fmt.Errorf("%w: %d values", ErrOverflow, len(values))
	}
	sum, err := Sum(values)
	if err != nil {
		return Rational{}, err
	}
	return Divide(sum, Rational{Num: int32(len(values)), Den: 1})
}

// closer reports whether h/k is strictly nearer to p/q than h1/k1.
func closer(p, q, h, k, h1, k1 int64) bool {
	x := big.NewRat(p, q)
	d := new(big.Rat).Sub(x, big.NewRat(h, k))
	d1 := new(big.Rat).Sub(x, big.NewRat(h1, k1))
	return d.Abs(d).Cmp(d1.Abs(d1)) < 0
}
