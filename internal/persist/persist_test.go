package persist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kf7sdr/radiocore/internal/ptype"
	"github.com/kf7sdr/radiocore/internal/radio"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	freqA, _ := ptype.NewFrequency(14_070_000)
	freqB, _ := ptype.NewFrequency(7_074_000)

	bank := radio.NewBank()
	bank.Store(0, freqA, ptype.ModeUSB, "20M SSB")
	bank.Store(1, freqB, ptype.ModeLSB, "40M SSB")

	s := radio.State{
		Frequency: freqA,
		Mode:      ptype.ModeUSB,
		Band:      ptype.Band20m,
		VfoSelect: radio.VfoA,
		OtherVfo:  radio.VfoSettings{Frequency: freqB, Mode: ptype.ModeLSB},
		Split:     true,
		AgcMode:   radio.AgcModeFast,
		NbOn:      true,
	}

	captured := FromRadioAndBank(s, bank)
	encoded := Encode(captured)
	decoded, err := Decode(encoded)
	require.NoError(t, err)

	assert.Equal(t, captured.VfoA, decoded.VfoA)
	assert.Equal(t, captured.VfoB, decoded.VfoB)
	assert.Equal(t, captured.Split, decoded.Split)
	assert.Equal(t, captured.AgcMode, decoded.AgcMode)
	assert.True(t, decoded.NbOn)
	assert.Equal(t, "20M SSB", decoded.Memories[0].Label)
	assert.False(t, decoded.Memories[0].Empty)
	assert.True(t, decoded.Memories[2].Empty)
}

func TestDecode_RejectsCorruptChecksum(t *testing.T) {
	s := FromRadioAndBank(radio.State{}, radio.NewBank())
	encoded := Encode(s)
	encoded[0] ^= 0xFF

	_, err := Decode(encoded)
	assert.Error(t, err)
}

func TestDecode_RejectsShortBuffer(t *testing.T) {
	_, err := Decode([]byte{1, 2, 3})
	assert.Error(t, err)
}
