package ordinals

import "strconv"

// Height represents the block height.
type Height uint32

func (h Height) N() uint32 {
	return uint32(h)
}

// Subsidy returns the units minted in this block according to the table.
func (h Height) Subsidy(t SubsidyTable) (uint64, error) {
	return t.Subsidy(uint32(h))
}

// StartingSat returns the first ordinal minted in this block.
func (h Height) StartingSat(t SubsidyTable) (Sat, error) {
	start, err := t.CumulativeAt(uint32(h))
	if err != nil {
		return 0, err
	}
	return Sat(start), nil
}

func (h Height) Epoch() Epoch {
	return EpochFromHeight(h)
}

func (h Height) Add(n uint32) Height {
	return h + Height(n)
}

// Sub saturates at zero.
func (h Height) Sub(n uint32) Height {
	if Height(n) > h {
		return 0
	}
	return h - Height(n)
}

func (h Height) String() string {
	return strconv.FormatUint(uint64(h), 10)
}

func ParseHeight(s string) (Height, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return Height(n), nil
}
