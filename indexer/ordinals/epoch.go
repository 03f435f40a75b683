package ordinals

import "fmt"

// Epoch is an issuance era, numbered from 1.
type Epoch uint32

// STARTING_SATS holds the first ordinal of epochs 1 through 5 followed by
// the SUPPLY sentinel. Each entry is the cumulative issuance at the
// matching STARTING_HEIGHTS entry.
var STARTING_SATS = [...]Sat{
	0,
	28_800_000_000,
	3_806_491_300_000_000,
	5_638_371_800_000_000,
	6_065_034_500_000_000,
	Sat(SUPPLY),
}

// STARTING_HEIGHTS holds the first height of epochs 1 through 5.
var STARTING_HEIGHTS = [...]Height{0, 101, 129_601, 259_201, 518_401}

// FIRST_POST_SUBSIDY is the era past the last tabulated boundary.
const FIRST_POST_SUBSIDY Epoch = 6

// finalEpoch is the last era a sat or height can belong to.
const finalEpoch Epoch = Epoch(len(STARTING_HEIGHTS))

func (e Epoch) N() uint32 {
	return uint32(e)
}

// StartingSat never fails: Epoch(0) maps to the first entry and epochs
// past the table to the SUPPLY sentinel.
func (e Epoch) StartingSat() Sat {
	if e == 0 {
		return STARTING_SATS[0]
	}
	if int(e-1) < len(STARTING_SATS) {
		return STARTING_SATS[e-1]
	}
	return STARTING_SATS[len(STARTING_SATS)-1]
}

// StartingHeight panics outside epochs 1 through 5.
func (e Epoch) StartingHeight() Height {
	if e == 0 || e > finalEpoch {
		panic(fmt.Sprintf("epoch %d has no starting height", e))
	}
	return STARTING_HEIGHTS[e-1]
}

func (e Epoch) String() string {
	return fmt.Sprintf("%d", uint32(e))
}

// EpochFromSat returns the smallest epoch i with sat < STARTING_SATS[i],
// so an epoch's starting sat belongs to that epoch.
func EpochFromSat(sat Sat) Epoch {
	for i := 1; i < len(STARTING_SATS); i++ {
		if sat < STARTING_SATS[i] {
			return Epoch(i)
		}
	}
	return finalEpoch
}

func EpochFromHeight(height Height) Epoch {
	for i := 1; i < len(STARTING_HEIGHTS); i++ {
		if height < STARTING_HEIGHTS[i] {
			return Epoch(i)
		}
	}
	return finalEpoch
}
