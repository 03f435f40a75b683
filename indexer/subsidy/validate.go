package subsidy

import (
	"github.com/pkg/errors"
	"github.com/sat20-labs/ordinals/common"
)

type Mismatch struct {
	Height   uint32 `json:"height" yaml:"height"`
	Table    uint64 `json:"table" yaml:"table"`
	Schedule uint64 `json:"schedule" yaml:"schedule"`
}

type Report struct {
	From       uint32     `json:"from" yaml:"from"`
	To         uint32     `json:"to" yaml:"to"`
	Checked    int        `json:"checked" yaml:"checked"`
	Holes      int        `json:"holes" yaml:"holes"`
	Mismatches []Mismatch `json:"mismatches" yaml:"mismatches"`
}

func (r *Report) OK() bool {
	return len(r.Mismatches) == 0
}

// Validate compares the table's per-block subsidy with the schedule over
// heights [from, to). to is clamped to the last height with a known subsidy.
func Validate(t *Table, s *Schedule, from, to uint32) (*Report, error) {
	if t.Len() < 2 {
		return nil, errors.New("subsidy table too short to validate")
	}
	if to > t.LastHeight() {
		to = t.LastHeight()
	}
	report := &Report{From: from, To: to}

	for h := from; h < to; h++ {
		got, err := t.Subsidy(h)
		if err != nil {
			if t.IsHole(h) || t.IsHole(h+1) {
				report.Holes++
				continue
			}
			return nil, err
		}
		report.Checked++
		want := s.Subsidy(h)
		if got != want {
			report.Mismatches = append(report.Mismatches, Mismatch{Height: h, Table: got, Schedule: want})
		}
	}

	log := common.GetLoggerEntry("subsidy")
	if report.OK() {
		log.Infof("subsidy table matches %s schedule for heights [%d, %d), checked %d, holes %d",
			s.Chain(), from, to, report.Checked, report.Holes)
	} else {
		first := report.Mismatches[0]
		log.Warnf("subsidy table differs from %s schedule at %d heights in [%d, %d), first at %d: table %d schedule %d",
			s.Chain(), len(report.Mismatches), from, to, first.Height, first.Table, first.Schedule)
	}
	return report, nil
}
