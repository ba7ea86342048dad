package clockplan

// MultisynthRegisterBytes packs an 8-byte register write for a multisynth
// block: [P3_hi, P3_lo, (rDiv<<4)|P1[17:16], P1_hi, P1_lo,
// (P3[19:16]<<4)|P2[19:16], P2_hi, P2_lo].
func MultisynthRegisterBytes(p1, p2, p3 int64, rDiv int) [8]byte {
	return [8]byte{
		byte((p3 >> 8) & 0xFF),
		byte(p3 & 0xFF),
		byte((rDiv&0x7)<<4) | byte((p1>>16)&0x3),
		byte((p1 >> 8) & 0xFF),
		byte(p1 & 0xFF),
		byte((p3>>16)&0xF)<<4 | byte((p2>>16)&0xF),
		byte((p2 >> 8) & 0xFF),
		byte(p2 & 0xFF),
	}
}

// PllRegisterBytes packs an 8-byte register write for a PLL block. The
// r_div nibble only applies to the multisynth block, so it is left zero
// here.
func PllRegisterBytes(p1, p2, p3 int64) [8]byte {
	return MultisynthRegisterBytes(p1, p2, p3, 0)
}

// PllSoftResetByte selects the soft-reset value for register 177: 0x20
// resets PLLA only, 0xA0 resets both PLLA and PLLB.
func PllSoftResetByte(bothPlls bool) byte {
	if bothPlls {
		return 0xA0
	}
	return 0x20
}
