package clockplan

import "math"

// QuadPlan extends Plan with the companion output's phase-offset register,
// which realizes a 90-degree offset at the target frequency.
type QuadPlan struct {
	Plan
	PhaseReg int64
}

// SolveQuadrature searches for a quadrature-LO plan at targetHz: per §4.4,
// the search runs against 4*targetHz restricted to even multisynth
// divisors (the QSD/QSE requirement), and the companion phase register is
// ms.A/4.
func SolveQuadrature(xtalHz, targetHz float64) (QuadPlan, bool) {
	if xtalHz <= 0 || targetHz <= 0 {
		return QuadPlan{}, false
	}

	quadTarget := targetHz * 4
	plan, ok := searchAtRDivEven(xtalHz, quadTarget, 0)
	if !ok {
		return QuadPlan{}, false
	}

	actual := plan.VcoHz / float64(plan.Ms.A) / 4
	plan.ActualHz = actual
	plan.ErrorHz = actual - targetHz

	return QuadPlan{Plan: plan, PhaseReg: plan.Ms.A / msADivBy4}, true
}

// searchAtRDivEven is searchAtRDiv restricted to even integer ms.A values.
func searchAtRDivEven(xtalHz, effTarget float64, rDiv int) (Plan, bool) {
	msMin := math.Max(vcoMinHz/effTarget, msAMin)
	msMax := math.Min(vcoMaxHz/effTarget, msAMaxGen)
	if msMin > msAMaxGen {
		return Plan{}, false
	}

	aLow := int64(math.Ceil(msMin))
	if aLow%2 != 0 {
		aLow++
	}
	aHigh := int64(math.Floor(msMax))
	if aLow > aHigh {
		return Plan{}, false
	}

	var best Plan
	found := false

	for msA := aLow; msA <= aHigh; msA += 2 {
		vco := effTarget * float64(msA)
		if vco < vcoMinHz || vco > vcoMaxHz {
			continue
		}
		pllA := int64(math.Floor(vco / xtalHz))
		if pllA < pllAMin || pllA > pllAMax {
			continue
		}
		remainder := vco/xtalHz - float64(pllA)

		var pllB, pllC int64
		if remainder == 0 {
			pllB, pllC = 0, 1
		} else {
			pllB, pllC = sternBrocotApprox(remainder, pllCMax)
		}

		actualVco := xtalHz * (float64(pllA) + float64(pllB)/float64(pllC))
		actual := actualVco / float64(msA)
		errHz := actual - effTarget

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
		if found && best.ErrorHz == 0 {
			break
		}
	}

	return best, found
}
