package ordinals

import "github.com/sat20-labs/ordinals/indexer/subsidy"

// SubsidyTable is the read-only cumulative issuance oracle every
// table-dependent operation takes explicitly.
type SubsidyTable interface {
	CumulativeAt(height uint32) (uint64, error)
	Subsidy(height uint32) (uint64, error)
	HeightFromCumulative(sat uint64) uint32
	LastHeight() uint32
}

var _ SubsidyTable = (*subsidy.Table)(nil)

// ErrOutOfRange is returned for heights and ordinals the table does not
// cover. It is the same value as subsidy.ErrOutOfRange.
var ErrOutOfRange = subsidy.ErrOutOfRange
