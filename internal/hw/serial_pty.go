//go:build linux

package hw

import (
	"os"

	"github.com/creack/pty"
)

// PtySerialLink is a SerialLink backed by a pseudo-terminal pair,
// adapted from the teacher's kisspt_open_pt (kiss.go) for host-side CAT
// integration tests that need a byte-stream endpoint without real
// hardware: the master end is handed to the radio core, the slave
// device path is handed to a test client (e.g. a fake CAT controller).
type PtySerialLink struct {
	master *os.File
	slave  *os.File
}

// OpenPtySerialLink creates a fresh pty pair.
func OpenPtySerialLink() (*PtySerialLink, error) {
	master, slave, err := pty.Open()
	if err != nil {
		return nil, err
	}
	return &PtySerialLink{master: master, slave: slave}, nil
}

// SlaveName returns the slave device's path (e.g. /dev/pts/4) so a test
// client can open it independently.
func (p *PtySerialLink) SlaveName() string { return p.slave.Name() }

func (p *PtySerialLink) Read(b []byte) (int, error)  { return p.master.Read(b) }
func (p *PtySerialLink) Write(b []byte) (int, error) { return p.master.Write(b) }

// Close closes both ends of the pty pair.
func (p *PtySerialLink) Close() error {
	slaveErr := p.slave.Close()
	masterErr := p.master.Close()
	if masterErr != nil {
		return masterErr
	}
	return slaveErr
}
