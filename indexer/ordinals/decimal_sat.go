package ordinals

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DecimalSat writes a sat as height.offset, the offset counted from the
// first sat of the block.
type DecimalSat struct {
	Height Height
	Offset uint64
}

func NewDecimalSat(height Height, offset uint64, t SubsidyTable) (DecimalSat, error) {
	d := DecimalSat{Height: height, Offset: offset}
	if err := d.check(d.String(), t); err != nil {
		return DecimalSat{}, err
	}
	return d, nil
}

func ParseDecimalSat(s string, t SubsidyTable) (DecimalSat, error) {
	heightStr, offsetStr, found := strings.Cut(s, ".")
	if !found {
		return DecimalSat{}, newParseError(s, MissingPeriod, nil)
	}

	height, err := ParseHeight(heightStr)
	if err != nil {
		return DecimalSat{}, newParseError(s, ParseInt, err)
	}
	offset, err := strconv.ParseUint(offsetStr, 10, 64)
	if err != nil {
		return DecimalSat{}, newParseError(s, ParseInt, err)
	}

	d := DecimalSat{Height: height, Offset: offset}
	if err := d.check(s, t); err != nil {
		return DecimalSat{}, err
	}
	return d, nil
}

func (d DecimalSat) check(input string, t SubsidyTable) error {
	subsidy, err := d.Height.Subsidy(t)
	if err != nil {
		if errors.Is(err, ErrOutOfRange) {
			return newParseError(input, OutOfRange, err)
		}
		return err
	}
	if d.Offset >= subsidy {
		return newParseError(input, BlockOffset, nil)
	}
	return nil
}

// Sat returns the ordinal at Offset inside block Height.
func (d DecimalSat) Sat(t SubsidyTable) (Sat, error) {
	if err := d.check(d.String(), t); err != nil {
		return 0, err
	}
	start, err := d.Height.StartingSat(t)
	if err != nil {
		return 0, err
	}
	return start + Sat(d.Offset), nil
}

func (d DecimalSat) String() string {
	return fmt.Sprintf("%d.%d", d.Height, d.Offset)
}
