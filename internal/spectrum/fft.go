package spectrum

import "math"

// cpx is a minimal in-place complex sample used by the FFT so
// the package has no dependency on the standard complex128 type's
// allocation behavior when building twiddle tables ahead of time.
type cpx struct{ re, im float64 }

func (a cpx) add(b cpx) cpx { return cpx{a.re + b.re, a.im + b.im} }
func (a cpx) sub(b cpx) cpx { return cpx{a.re - b.re, a.im - b.im} }
func (a cpx) mul(b cpx) cpx {
	return cpx{a.re*b.re - a.im*b.im, a.re*b.im + a.im*b.re}
}
func (a cpx) abs() float64 { return math.Hypot(a.re, a.im) }

// FFT computes an in-place radix-2 decimation-in-time FFT of a Hann-
// windowed real input. n must be a power of two.
func FFT(samples []float64) []float64 {
	n := len(samples)
	if n == 0 || n&(n-1) != 0 {
		return nil
	}
	win := hannWindow(n)
	buf := make([]cpx, n)
	for i, x := range samples {
		buf[i] = cpx{re: x * win[i]}
	}

	bitReverse(buf)
	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		angleStep := -2 * math.Pi / float64(size)
		for start := 0; start < n; start += size {
			for k := 0; k < half; k++ {
				s, c := math.Sincos(angleStep * float64(k))
				w := cpx{re: c, im: s}
				even := buf[start+k]
				odd := buf[start+k+half].mul(w)
				buf[start+k] = even.add(odd)
				buf[start+k+half] = even.sub(odd)
			}
		}
	}

	mags := make([]float64, n/2+1)
	for i := range mags {
		mags[i] = buf[i].abs()
	}
	return mags
}

func bitReverse(buf []cpx) {
	n := len(buf)
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j &^= bit
		}
		j |= bit
		if i < j {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}
}
