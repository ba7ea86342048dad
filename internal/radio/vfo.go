package radio

import "github.com/kf7sdr/radiocore/internal/ptype"

// VfoID selects VFO A or B.
type VfoID int

const (
	VfoA VfoID = iota
	VfoB
)

// VfoSettings is one VFO's tunable state: frequency and mode.
type VfoSettings struct {
	Frequency ptype.Frequency
	Mode      ptype.Mode
}
