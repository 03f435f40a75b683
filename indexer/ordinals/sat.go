package ordinals

import (
	"fmt"
	"strconv"
)

// Sat is the ordinal number of one unit of currency in mint order.
type Sat uint64

func (s Sat) N() uint64 {
	return uint64(s)
}

func (s Sat) Epoch() Epoch {
	return EpochFromSat(s)
}

func (s Sat) Cycle() uint32 {
	return uint32(s.Epoch()) / CYCLE_EPOCHS
}

// EpochPosition is the distance from the first sat of the epoch.
func (s Sat) EpochPosition() uint64 {
	return uint64(s - s.Epoch().StartingSat())
}

// block resolves the block that minted s, its first sat and its subsidy.
func (s Sat) block(t SubsidyTable) (Height, Sat, uint64, error) {
	height := t.HeightFromCumulative(uint64(s))
	start, err := t.CumulativeAt(height)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("sat %d: %w", s, err)
	}
	subsidy, err := t.Subsidy(height)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("sat %d: %w", s, err)
	}
	if uint64(s) < start || uint64(s)-start >= subsidy {
		return 0, 0, 0, fmt.Errorf("sat %d not minted in block %d: %w", s, height, ErrOutOfRange)
	}
	return Height(height), Sat(start), subsidy, nil
}

func (s Sat) Height(t SubsidyTable) (Height, error) {
	height, _, _, err := s.block(t)
	return height, err
}

// Third is the offset of s inside the block that minted it.
func (s Sat) Third(t SubsidyTable) (uint64, error) {
	_, start, _, err := s.block(t)
	if err != nil {
		return 0, err
	}
	return uint64(s - start), nil
}

func (s Sat) Decimal(t SubsidyTable) (DecimalSat, error) {
	height, start, _, err := s.block(t)
	if err != nil {
		return DecimalSat{}, err
	}
	return DecimalSat{Height: height, Offset: uint64(s - start)}, nil
}

func (s Sat) Rarity(t SubsidyTable) (Rarity, error) {
	_, start, _, err := s.block(t)
	if err != nil {
		return Common, err
	}
	return Classify(s, s.Epoch().StartingSat(), start), nil
}

// Common reports whether s is neither the first sat of its block nor the
// first sat of its epoch. Tables loaded from a dataset file need not put
// epoch boundaries on block starts.
func (s Sat) Common(t SubsidyTable) (bool, error) {
	_, start, _, err := s.block(t)
	if err != nil {
		return false, err
	}
	return s != start && s != s.Epoch().StartingSat(), nil
}

// Name encodes SUPPLY-s in bijective base 26, most significant letter
// first. Sat 0 has the longest name and LAST is "a".
func (s Sat) Name() string {
	if uint64(s) >= SUPPLY {
		return ""
	}
	x := SUPPLY - uint64(s)
	var buf [16]byte
	i := len(buf)
	for x > 0 {
		i--
		buf[i] = 'a' + byte((x-1)%26)
		x = (x - 1) / 26
	}
	return string(buf[i:])
}

func (s Sat) Coin() bool {
	return uint64(s)%COIN_VALUE == 0
}

// Nineball reports whether s was minted in block 9.
func (s Sat) Nineball(t SubsidyTable) (bool, error) {
	height, err := s.Height(t)
	if err != nil {
		return false, err
	}
	return height == 9, nil
}

func (s Sat) Charms(t SubsidyTable) (uint16, error) {
	var charms uint16

	nineball, err := s.Nineball(t)
	if err != nil {
		return 0, err
	}
	if nineball {
		CharmNineball.Set(&charms)
	}
	if s.Coin() {
		CharmCoin.Set(&charms)
	}

	rarity, err := s.Rarity(t)
	if err != nil {
		return 0, err
	}
	switch rarity {
	case Uncommon:
		CharmUncommon.Set(&charms)
	case Epic:
		CharmEpic.Set(&charms)
	case Mythic:
		CharmMythic.Set(&charms)
	}

	return charms, nil
}

func (s Sat) String() string {
	return strconv.FormatUint(uint64(s), 10)
}
