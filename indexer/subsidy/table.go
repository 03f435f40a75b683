package subsidy

import (
	"bufio"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sat20-labs/ordinals/common"
)

// MaxHeight bounds the height search when inverting a loaded table.
// Extended tables search up to their last height.
const MaxHeight uint32 = 800_000

// Table is the cumulative issuance table. Entry h holds the number of whole
// coins minted before height h, so it is also the first ordinal of block h
// once scaled by COIN_VALUE. A Table is immutable.
type Table struct {
	cumulative  []uint64
	holes       map[uint32]struct{}
	// highest height HeightFromCumulative may return
	searchLimit uint32
}

func NewTable(values []uint64) *Table {
	cumulative := make([]uint64, len(values))
	copy(cumulative, values)
	return &Table{cumulative: cumulative, searchLimit: MaxHeight}
}

// ParseTable reads one unsigned integer per line; the line index is the
// height. A line that does not parse leaves a hole at its height, the
// previous value is carried over it so the search stays monotonic.
func ParseTable(r io.Reader) (*Table, error) {
	var (
		cumulative []uint64
		holes      map[uint32]struct{}
		prev       uint64
		valid      int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		value, err := strconv.ParseUint(line, 10, 64)
		if err != nil {
			if holes == nil {
				holes = make(map[uint32]struct{})
			}
			height := uint32(len(cumulative))
			holes[height] = struct{}{}
			common.Log.Debugf("subsidy table: skip line %d: %v", height, err)
			cumulative = append(cumulative, prev)
			continue
		}
		cumulative = append(cumulative, value)
		prev = value
		valid++
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read subsidy table")
	}
	if valid == 0 {
		return nil, errors.New("subsidy table has no entries")
	}

	return &Table{cumulative: cumulative, holes: holes, searchLimit: MaxHeight}, nil
}

func (t *Table) Len() int {
	return len(t.cumulative)
}

func (t *Table) LastHeight() uint32 {
	if len(t.cumulative) == 0 {
		return 0
	}
	return uint32(len(t.cumulative) - 1)
}

// Holes returns the number of heights that had unparsable entries.
func (t *Table) Holes() int {
	return len(t.holes)
}

func (t *Table) IsHole(height uint32) bool {
	_, ok := t.holes[height]
	return ok
}

// CumulativeAt returns the units minted before height.
func (t *Table) CumulativeAt(height uint32) (uint64, error) {
	if int(height) >= len(t.cumulative) {
		return 0, &RangeError{Height: height, Last: t.LastHeight()}
	}
	if t.IsHole(height) {
		return 0, &RangeError{Height: height, Last: t.LastHeight(), Hole: true}
	}
	return t.cumulative[height] * common.COIN_VALUE, nil
}

// Subsidy returns the units minted in block height. The last recorded
// height has no successor and therefore no known subsidy.
func (t *Table) Subsidy(height uint32) (uint64, error) {
	start, err := t.CumulativeAt(height)
	if err != nil {
		return 0, err
	}
	if height == ^uint32(0) {
		return 0, &RangeError{Height: height, Last: t.LastHeight()}
	}
	end, err := t.CumulativeAt(height + 1)
	if err != nil {
		return 0, err
	}
	return end - start, nil
}

// HeightFromCumulative returns the greatest height whose starting ordinal
// is not above sat. Sats below the first entry map to 0, sats past the
// last entry map to the last searchable height.
func (t *Table) HeightFromCumulative(sat uint64) uint32 {
	if len(t.cumulative) == 0 {
		return 0
	}
	high := t.LastHeight()
	if high > t.searchLimit {
		high = t.searchLimit
	}

	// first height whose starting ordinal is above sat
	above := sort.Search(int(high)+1, func(i int) bool {
		return t.cumulative[i]*common.COIN_VALUE > sat
	})
	if above == 0 {
		return 0
	}
	return uint32(above - 1)
}

// RecordedSupply is the first ordinal the table cannot attribute to a block.
func (t *Table) RecordedSupply() uint64 {
	if len(t.cumulative) == 0 {
		return 0
	}
	return t.cumulative[len(t.cumulative)-1] * common.COIN_VALUE
}

// Extend returns a table recording heights up to through, filling the new
// entries from the schedule. The receiver is returned when it already
// covers through.
func (t *Table) Extend(s *Schedule, through uint32) *Table {
	if len(t.cumulative) == 0 || through <= t.LastHeight() {
		return t
	}

	cumulative := make([]uint64, len(t.cumulative), int(through)+1)
	copy(cumulative, t.cumulative)
	for h := t.LastHeight(); h < through; h++ {
		cumulative = append(cumulative, cumulative[h]+s.Reward(h))
	}

	limit := t.searchLimit
	if through > limit {
		limit = through
	}
	return &Table{cumulative: cumulative, holes: t.holes, searchLimit: limit}
}
