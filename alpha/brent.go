package alpha

import "math"

// brentFindRoot finds a root of f on [lo,hi] using Brent's method
// (bisection, secant, and inverse quadratic interpolation, falling back
// to bisection whenever the faster step would leave the bracket or fails
// to make sufficient progress). Returns ErrNoRoot if f(lo) and f(hi) have
// the same sign, and the best estimate reached if maxIter is exhausted
// without the residual falling within eps.
func brentFindRoot(f func(float64) float64, lo, hi, eps float64, maxIter int) (float64, error) {
	a, b := lo, hi
	fa, fb := f(a), f(b)
	if sameSign(fa, fb) {
		return 0, ErrNoRoot
	}

	if math.Abs(fa) < math.Abs(fb) {
		a, b = b, a
		fa, fb = fb, fa
	}
	c, fc := a, fa
	mflag := true
	var d float64

	for i := 0; i < maxIter; i++ {
		if math.Abs(fb) <= eps || math.Abs(b-a) <= eps {
			return b, nil
		}

		var s float64
		if fa != fc && fb != fc {
			// Inverse quadratic interpolation.
			s = a*fb*fc/((fa-fb)*(fa-fc)) +
				b*fa*fc/((fb-fa)*(fb-fc)) +
				c*fa*fb/((fc-fa)*(fc-fb))
		} else {
			// Secant method.
			s = b - fb*(b-a)/(fb-fa)
		}

		lowBound := (3*a + b) / 4
		needsBisection := (s < math.Min(lowBound, b) || s > math.Max(lowBound, b)) ||
			(mflag && math.Abs(s-b) >= math.Abs(b-c)/2) ||
			(!mflag && math.Abs(s-b) >= math.Abs(c-d)/2) ||
			(mflag && math.Abs(b-c) < eps) ||
			(!mflag && math.Abs(c-d) < eps)

		if needsBisection {
			s = (a + b) / 2
			mflag = true
		} else {
			mflag = false
		}

		fs := f(s)
		d = c
		c, fc = b, fb

		if sameSign(fa, fs) {
			a, fa = s, fs
		} else {
			b, fb = s, fs
		}

		if math.Abs(fa) < math.Abs(fb) {
			a, b = b, a
			fa, fb = fb, fa
		}
	}

	return b, nil
}

// sameSign reports whether x and y are both strictly positive or both
// strictly negative (zero is treated as its own sign, never matching).
func sameSign(x, y float64) bool {
	return x*y > 0
}
