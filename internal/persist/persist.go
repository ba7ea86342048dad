// Package persist implements §6's packed persisted-state layout: a
// fixed-width binary snapshot of the two VFOs, radio toggles, and the
// 100-entry memory bank, adapted from the teacher's own fixed-width
// binary save-file conventions (save_audio_config_p in tq.go/xmit.go
// wrote fixed-size C structs straight to disk). The spec leaves
// checksumming/versioning to "the shell"; this module supplies a
// reference CRC-32 and version byte so cmd/ harnesses can round-trip
// state without depending on a host application.
package persist

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/kf7sdr/radiocore/internal/ptype"
	"github.com/kf7sdr/radiocore/internal/radio"
)

// FormatVersion is bumped whenever the wire layout changes.
const FormatVersion = 1

const nameLen = 8

// StationState mirrors §6's persisted layout: both VFOs, the selection
// and toggle bits, the last-tuned band, and the full memory bank.
type StationState struct {
	VfoA       radio.VfoSettings
	VfoB       radio.VfoSettings
	Selected   radio.VfoID
	Split      bool
	AgcMode    radio.AgcMode
	NbOn       bool
	PreampOn   bool
	AttOn      bool
	LastBand   ptype.Band
	Memories   [radio.MemoryChannels]radio.MemoryChannel
}

// FromRadioAndBank captures a StationState from a live State and Bank.
func FromRadioAndBank(s radio.State, bank *radio.Bank) StationState {
	st := StationState{
		VfoA:     radio.VfoSettings{Frequency: s.Frequency, Mode: s.Mode},
		VfoB:     s.OtherVfo,
		Selected: s.VfoSelect,
		Split:    s.Split,
		AgcMode:  s.AgcMode,
		NbOn:     s.NbOn,
		PreampOn: s.PreampOn,
		AttOn:    s.AttOn,
		LastBand: s.Band,
	}
	if s.VfoSelect == radio.VfoB {
		st.VfoA, st.VfoB = st.VfoB, st.VfoA
	}
	for i := 0; i < radio.MemoryChannels; i++ {
		ch, _ := bank.Recall(i)
		st.Memories[i] = ch
	}
	return st
}

// Encode serializes s to the packed binary layout, little-endian
// fixed-width fields, trailed with a CRC-32 checksum over everything
// that precedes it.
func Encode(s StationState) []byte {
	var buf bytes.Buffer
	buf.WriteByte(FormatVersion)
	writeVfo(&buf, s.VfoA)
	writeVfo(&buf, s.VfoB)
	buf.WriteByte(byte(s.Selected))
	buf.WriteByte(boolByte(s.Split))
	buf.WriteByte(byte(s.AgcMode))
	buf.WriteByte(boolByte(s.NbOn))
	buf.WriteByte(boolByte(s.PreampOn))
	buf.WriteByte(boolByte(s.AttOn))
	buf.WriteByte(byte(s.LastBand))
	for _, m := range s.Memories {
		writeMemory(&buf, m)
	}

	payload := buf.Bytes()
	sum := crc32.ChecksumIEEE(payload)
	out := make([]byte, len(payload)+4)
	copy(out, payload)
	binary.LittleEndian.PutUint32(out[len(payload):], sum)
	return out
}

// Decode parses a buffer produced by Encode, verifying the trailing
// checksum and the format version.
func Decode(data []byte) (StationState, error) {
	if len(data) < 5 {
		return StationState{}, fmt.Errorf("persist: buffer too short (%d bytes)", len(data))
	}
	payload, wantSum := data[:len(data)-4], data[len(data)-4:]
	if crc32.ChecksumIEEE(payload) != binary.LittleEndian.Uint32(wantSum) {
		return StationState{}, fmt.Errorf("persist: checksum mismatch")
	}

	r := bytes.NewReader(payload)
	version, _ := r.ReadByte()
	if version != FormatVersion {
		return StationState{}, fmt.Errorf("persist: unsupported format version %d", version)
	}

	var s StationState
	var err error
	if s.VfoA, err = readVfo(r); err != nil {
		return StationState{}, err
	}
	if s.VfoB, err = readVfo(r); err != nil {
		return StationState{}, err
	}
	selected, _ := r.ReadByte()
	s.Selected = radio.VfoID(selected)
	split, _ := r.ReadByte()
	s.Split = split != 0
	agc, _ := r.ReadByte()
	s.AgcMode = radio.AgcMode(agc)
	nb, _ := r.ReadByte()
	s.NbOn = nb != 0
	preamp, _ := r.ReadByte()
	s.PreampOn = preamp != 0
	att, _ := r.ReadByte()
	s.AttOn = att != 0
	band, _ := r.ReadByte()
	s.LastBand = ptype.Band(band)

	for i := 0; i < radio.MemoryChannels; i++ {
		m, err := readMemory(r)
		if err != nil {
			return StationState{}, err
		}
		s.Memories[i] = m
	}
	return s, nil
}

func writeVfo(buf *bytes.Buffer, v radio.VfoSettings) {
	var hz uint32
	if v.Frequency.Hz() > 0 {
		hz = uint32(v.Frequency.Hz())
	}
	binary.Write(buf, binary.LittleEndian, hz)
	buf.WriteByte(byte(v.Mode))
}

func readVfo(r *bytes.Reader) (radio.VfoSettings, error) {
	var hz uint32
	if err := binary.Read(r, binary.LittleEndian, &hz); err != nil {
		return radio.VfoSettings{}, err
	}
	mode, err := r.ReadByte()
	if err != nil {
		return radio.VfoSettings{}, err
	}
	freq, _ := ptype.NewFrequency(int64(hz))
	return radio.VfoSettings{Frequency: freq, Mode: ptype.Mode(mode)}, nil
}

func writeMemory(buf *bytes.Buffer, m radio.MemoryChannel) {
	var hz uint32
	if m.Frequency.Hz() > 0 {
		hz = uint32(m.Frequency.Hz())
	}
	binary.Write(buf, binary.LittleEndian, hz)
	buf.WriteByte(byte(m.Mode))
	var name [nameLen]byte
	copy(name[:], m.Label)
	buf.Write(name[:])
	buf.WriteByte(boolByte(!m.Empty))
}

func readMemory(r *bytes.Reader) (radio.MemoryChannel, error) {
	var hz uint32
	if err := binary.Read(r, binary.LittleEndian, &hz); err != nil {
		return radio.MemoryChannel{}, err
	}
	mode, err := r.ReadByte()
	if err != nil {
		return radio.MemoryChannel{}, err
	}
	var name [nameLen]byte
	if _, err := r.Read(name[:]); err != nil {
		return radio.MemoryChannel{}, err
	}
	active, err := r.ReadByte()
	if err != nil {
		return radio.MemoryChannel{}, err
	}
	freq, _ := ptype.NewFrequency(int64(hz))
	return radio.MemoryChannel{
		Frequency: freq,
		Mode:      ptype.Mode(mode),
		Label:     string(bytes.TrimRight(name[:], "\x00")),
		Empty:     active == 0,
	}, nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
