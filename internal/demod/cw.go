package demod

// CwDemod reuses the SSB phasing chain with the sideband appropriate for
// CW/CW-R, per §4.3: CW and CW-R are SSB-method demodulation with no
// additional algorithm of their own (the narrow peaking bandpass that
// shapes the CW tone lives in rxchain.Chain, downstream of this stage).
type CwDemod struct {
	*SsbDemod
}

// NewCwDemod builds a CW demodulator. CW uses the upper-sideband sense;
// CW-R inverts it, matching Mode.InvertedSideband for ModeCWR.
func NewCwDemod(fs, lowHz, highHz float64, inverted bool) *CwDemod {
	sb := Usb
	if inverted {
		sb = Lsb
	}
	return &CwDemod{SsbDemod: NewSsbDemod(fs, lowHz, highHz, sb)}
}
