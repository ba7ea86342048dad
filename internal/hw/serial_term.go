//go:build linux

package hw

import "github.com/pkg/term"

// TermSerialLink is a SerialLink backed by a real host serial device,
// adapted from the teacher's serial_port_open/write/get1/close flow in
// serial_port.go onto the idiomatic io.ReadWriteCloser shape.
type TermSerialLink struct {
	t *term.Term
}

// OpenTermSerialLink opens device at the given baud rate in raw mode.
func OpenTermSerialLink(device string, baud int) (*TermSerialLink, error) {
	t, err := term.Open(device, term.RawMode)
	if err != nil {
		return nil, err
	}
	if baud > 0 {
		if err := t.SetSpeed(baud); err != nil {
			t.Close()
			return nil, err
		}
	}
	return &TermSerialLink{t: t}, nil
}

func (s *TermSerialLink) Read(p []byte) (int, error)  { return s.t.Read(p) }
func (s *TermSerialLink) Write(p []byte) (int, error) { return s.t.Write(p) }
func (s *TermSerialLink) Close() error                { return s.t.Close() }
