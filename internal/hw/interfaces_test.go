package hw

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeTrRelay struct{ energized bool }

func (f *fakeTrRelay) EnableTr() error  { f.energized = true; return nil }
func (f *fakeTrRelay) DisableTr() error { f.energized = false; return nil }

func TestTrRelay_InterfaceSatisfiedByFake(t *testing.T) {
	var r TrRelay = &fakeTrRelay{}
	assert.NoError(t, r.EnableTr())
	assert.NoError(t, r.DisableTr())
}

type fakeRotaryEvents struct{ events []RotaryEvent }

func (f *fakeRotaryEvents) Poll(now time.Time) []RotaryEvent { return f.events }

func TestRotaryEvents_InterfaceSatisfiedByFake(t *testing.T) {
	var r RotaryEvents = &fakeRotaryEvents{events: []RotaryEvent{{Kind: EvRotate, Steps: 3}}}
	events := r.Poll(time.Now())
	assert.Len(t, events, 1)
	assert.Equal(t, 3, events[0].Steps)
}

type fakeSerialLink struct{ buf []byte }

func (f *fakeSerialLink) Read(p []byte) (int, error)  { n := copy(p, f.buf); return n, nil }
func (f *fakeSerialLink) Write(p []byte) (int, error) { f.buf = append(f.buf, p...); return len(p), nil }
func (f *fakeSerialLink) Close() error                { return nil }

func TestSerialLink_InterfaceSatisfiedByFake(t *testing.T) {
	var s SerialLink = &fakeSerialLink{}
	n, err := s.Write([]byte("FA;"))
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.NoError(t, s.Close())
}
