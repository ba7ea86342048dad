package radio

import "github.com/kf7sdr/radiocore/internal/ptype"

// MemoryChannels is the fixed number of channels in a Bank.
const MemoryChannels = 100

// MemoryChannel is one stored channel slot. Empty reports whether the
// slot has ever been written; an empty slot is skipped by Recall.
type MemoryChannel struct {
	Frequency ptype.Frequency
	Mode      ptype.Mode
	Label     string
	Empty     bool
}

// Bank is the radio's fixed 100-channel memory store.
type Bank struct {
	channels [MemoryChannels]MemoryChannel
}

// NewBank returns a bank with every channel marked empty.
func NewBank() *Bank {
	b := &Bank{}
	for i := range b.channels {
		b.channels[i].Empty = true
	}
	return b
}

// Store writes the given settings into channel index (0-based).
// Out-of-range indices are ignored.
func (b *Bank) Store(index int, freq ptype.Frequency, mode ptype.Mode, label string) {
	if index < 0 || index >= MemoryChannels {
		return
	}
	b.channels[index] = MemoryChannel{Frequency: freq, Mode: mode, Label: label, Empty: false}
}

// Recall returns channel index's contents and whether it holds data.
func (b *Bank) Recall(index int) (MemoryChannel, bool) {
	if index < 0 || index >= MemoryChannels {
		return MemoryChannel{}, false
	}
	ch := b.channels[index]
	return ch, !ch.Empty
}

// Clear marks channel index empty.
func (b *Bank) Clear(index int) {
	if index < 0 || index >= MemoryChannels {
		return
	}
	b.channels[index] = MemoryChannel{Empty: true}
}

// RecallToState returns a copy of s with Frequency/Mode/Band replaced by
// channel index's contents. If the channel is empty or out of range, s
// is returned unchanged.
func RecallToState(s State, b *Bank, index int) State {
	ch, ok := b.Recall(index)
	if !ok {
		return s
	}
	s.Frequency = ch.Frequency
	s.Mode = ch.Mode
	s.Band = ptype.FromFrequency(ch.Frequency)
	return s
}
