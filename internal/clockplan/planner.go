// Package clockplan solves the fractional-N PLL x multisynth x R-divider
// search that drives an Si5351-style clock synthesizer to a target LO (or
// a quadrature LO pair) from a crystal reference, under the chip's hard
// VCO-band and register-width constraints.
package clockplan

import "math"

// PllParams is the PLL's feedback multiplier F_VCO = Fxtal*(A + B/C).
type PllParams struct {
	A, B, C int64
}

// MsParams is the multisynth divider Fout = Fvco/(A + B/C)/2^RDiv.
type MsParams struct {
	A, B, C int64
	RDiv    int
}

// Plan is a complete, feasible synthesizer configuration.
type Plan struct {
	Pll      PllParams
	Ms       MsParams
	VcoHz    float64
	ActualHz float64
	ErrorHz  float64
}

const (
	vcoMinHz = 6e8
	vcoMaxHz = 9e8

	pllAMin = 15
	pllAMax = 90
	pllCMax = (1 << 20) - 1

	msAMin     = 6
	msAMaxGen  = 1800
	msADivBy4  = 4

	maxRDiv = 7

	sternBrocotMaxIter = 64
	sternBrocotEps     = 1e-12
)

// Solve searches for the (PLL, MS, RDiv) tuple closest to targetHz given a
// crystal reference xtalHz, following the greedy, deterministic policy in
// §4.4. It never panics; an infeasible target yields ok=false.
func Solve(xtalHz, targetHz float64) (Plan, bool) {
	if xtalHz <= 0 || targetHz <= 0 {
		return Plan{}, false
	}

	if best, ok := searchAtRDiv(xtalHz, targetHz, 0); ok {
		return best, true
	}

	for rDiv := 1; rDiv <= maxRDiv; rDiv++ {
		if best, ok := searchAtRDiv(xtalHz, targetHz, rDiv); ok {
			return best, true
		}
	}
	return Plan{}, false
}

// searchAtRDiv runs step 1-3 of the documented policy for a fixed R
// divider, searching multisynth integer part ms_a over the valid range
// and keeping the candidate with smallest absolute error.
func searchAtRDiv(xtalHz, targetHz float64, rDiv int) (Plan, bool) {
	effTarget := targetHz * math.Pow(2, float64(rDiv))

	msMin := math.Max(vcoMinHz/effTarget, msAMin)
	msMax := math.Min(vcoMaxHz/effTarget, msAMaxGen)
	if msMin > msAMaxGen {
		return Plan{}, false
	}

	aLow := int64(math.Ceil(msMin))
	aHigh := int64(math.Floor(msMax))
	if aLow > aHigh {
		return Plan{}, false
	}

	var best Plan
	found := false

	tryA := func(msA int64) {
		vco := effTarget * float64(msA)
		if vco < vcoMinHz || vco > vcoMaxHz {
			return
		}
		pllA := int64(math.Floor(vco / xtalHz))
		if pllA < pllAMin || pllA > pllAMax {
			return
		}
		remainder := vco/xtalHz - float64(pllA)

		var pllB, pllC int64
		if remainder == 0 {
			pllB, pllC = 0, 1
		} else {
			pllB, pllC = sternBrocotApprox(remainder, pllCMax)
		}

		actualVco := xtalHz * (float64(pllA) + float64(pllB)/float64(pllC))
		actual := actualVco / float64(msA) / math.Pow(2, float64(rDiv))
		errHz := actual - targetHz

		if !found || math.Abs(errHz) < math.Abs(best.ErrorHz) {
			best = Plan{
				Pll:      PllParams{A: pllA, B: pllB, C: pllC},
				Ms:       MsParams{A: msA, B: 0, C: 1, RDiv: rDiv},
				VcoHz:    actualVco,
				ActualHz: actual,
				ErrorHz:  errHz,
			}
			found = true
		}
	}

	for msA := aLow; msA <= aHigh; msA++ {
		tryA(msA)
		if found && best.ErrorHz == 0 {
			break
		}
	}

	return best, found
}

// sternBrocotApprox finds b/c approximating target in [0,1) by mediant
// search, capping c at maxC and terminating after sternBrocotMaxIter
// iterations or once the error drops below sternBrocotEps.
func sternBrocotApprox(target float64, maxC int64) (b, c int64) {
	// Left = 0/1, Right = 1/1; mediant search for the fraction nearest target.
	var lb, lc int64 = 0, 1
	var rb, rc int64 = 1, 1

	bestB, bestC := int64(0), int64(1)
	bestErr := math.Abs(target - 0)

	consider := func(nb, nc int64) {
		err := math.Abs(target - float64(nb)/float64(nc))
		if err < bestErr {
			bestErr = err
			bestB, bestC = nb, nc
		}
	}

	for i := 0; i < sternBrocotMaxIter; i++ {
		mb := lb + rb
		mc := lc + rc
		if mc > maxC {
			break
		}
		consider(mb, mc)
		if bestErr < sternBrocotEps {
			break
		}
		mediant := float64(mb) / float64(mc)
		if mediant < target {
			lb, lc = mb, mc
		} else if mediant > target {
			rb, rc = mb, mc
		} else {
			break
		}
	}
	return bestB, bestC
}

// EncodeRegisters packs (a,b,c) into the Si5351-style P1/P2/P3 triple:
// P1 = 128*a + floor(128*b/c) - 512
// P2 = 128*b - c*floor(128*b/c)
// P3 = c
func EncodeRegisters(a, b, c int64) (p1, p2, p3 int64) {
	if c == 0 {
		c = 1
	}
	floorTerm := (128 * b) / c
	p1 = 128*a + floorTerm - 512
	p2 = 128*b - c*floorTerm
	p3 = c
	return
}
