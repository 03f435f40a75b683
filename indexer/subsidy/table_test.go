package subsidy

import (
	"errors"
	"strings"
	"testing"

	"github.com/sat20-labs/ordinals/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var embedded = NewEmbeddedProvider()

func embeddedTable(t *testing.T) *Table {
	t.Helper()
	table, err := embedded.Table()
	require.NoError(t, err)
	return table
}

func TestEmbeddedTableLiterals(t *testing.T) {
	table := embeddedTable(t)

	assert.Equal(t, 800_001, table.Len())
	assert.Equal(t, uint32(800_000), table.LastHeight())
	assert.Equal(t, 0, table.Holes())

	cases := map[uint32]uint64{
		0:      0,
		1:      88,
		101:    288,
		124:    3588,
		125:    3638,
		20000:  5883338,
		129601: 38064913,
		259201: 56383718,
		518401: 60650345,
		800000: 61213543,
	}
	for height, coins := range cases {
		got, err := table.CumulativeAt(height)
		require.NoError(t, err)
		assert.Equal(t, coins*common.COIN_VALUE, got, "height %d", height)
	}
	assert.Equal(t, uint64(61213543)*common.COIN_VALUE, table.RecordedSupply())
}

func TestTableSubsidy(t *testing.T) {
	table := embeddedTable(t)

	sub, err := table.Subsidy(0)
	require.NoError(t, err)
	assert.Equal(t, 88*common.COIN_VALUE, sub)

	sub, err = table.Subsidy(124)
	require.NoError(t, err)
	assert.Equal(t, 50*common.COIN_VALUE, sub)

	sub, err = table.Subsidy(799_999)
	require.NoError(t, err)
	assert.Equal(t, 2*common.COIN_VALUE, sub)

	_, err = table.Subsidy(800_000)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = table.CumulativeAt(800_001)
	assert.ErrorIs(t, err, ErrOutOfRange)
	var rangeErr *RangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, uint32(800_001), rangeErr.Height)
	assert.Equal(t, uint32(800_000), rangeErr.Last)
}

func TestHeightFromCumulative(t *testing.T) {
	table := embeddedTable(t)

	assert.Equal(t, uint32(0), table.HeightFromCumulative(0))
	assert.Equal(t, uint32(0), table.HeightFromCumulative(88*common.COIN_VALUE-1))
	assert.Equal(t, uint32(1), table.HeightFromCumulative(88*common.COIN_VALUE))
	assert.Equal(t, uint32(124), table.HeightFromCumulative(363799999999))
	assert.Equal(t, uint32(125), table.HeightFromCumulative(363800000000))

	assert.Equal(t, uint32(800_000), table.HeightFromCumulative(table.RecordedSupply()))
	assert.Equal(t, uint32(800_000), table.HeightFromCumulative(^uint64(0)/2))
}

func TestHeightFromCumulativeInvertsTable(t *testing.T) {
	table := embeddedTable(t)

	for h := uint32(0); h < table.LastHeight(); h += 97 {
		start, err := table.CumulativeAt(h)
		require.NoError(t, err)
		sub, err := table.Subsidy(h)
		require.NoError(t, err)

		assert.Equal(t, h, table.HeightFromCumulative(start))
		assert.Equal(t, h, table.HeightFromCumulative(start+sub/2))
		assert.Equal(t, h, table.HeightFromCumulative(start+sub-1))
	}
}

func TestTableMonotonic(t *testing.T) {
	table := embeddedTable(t)
	for i := 1; i < table.Len(); i++ {
		require.Greater(t, table.cumulative[i], table.cumulative[i-1], "height %d", i)
	}
}

func TestParseTableHoles(t *testing.T) {
	table, err := ParseTable(strings.NewReader("0\r\n10\nbogus\n30\n40\n"))
	require.NoError(t, err)

	assert.Equal(t, 5, table.Len())
	assert.Equal(t, 1, table.Holes())
	assert.True(t, table.IsHole(2))

	_, err = table.CumulativeAt(2)
	assert.ErrorIs(t, err, ErrOutOfRange)
	var rangeErr *RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.True(t, rangeErr.Hole)

	_, err = table.Subsidy(1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	sub, err := table.Subsidy(3)
	require.NoError(t, err)
	assert.Equal(t, 10*common.COIN_VALUE, sub)

	// the hole absorbs the sats between its neighbours
	assert.Equal(t, uint32(0), table.HeightFromCumulative(9*common.COIN_VALUE))
	assert.Equal(t, uint32(2), table.HeightFromCumulative(10*common.COIN_VALUE))
	assert.Equal(t, uint32(2), table.HeightFromCumulative(15*common.COIN_VALUE))
	assert.Equal(t, uint32(3), table.HeightFromCumulative(30*common.COIN_VALUE))
}

func TestParseTableEmpty(t *testing.T) {
	_, err := ParseTable(strings.NewReader(""))
	assert.Error(t, err)

	_, err = ParseTable(strings.NewReader("x\ny\n"))
	assert.Error(t, err)
}

func TestNewTableCopies(t *testing.T) {
	values := []uint64{0, 88, 90}
	table := NewTable(values)
	values[1] = 1

	got, err := table.CumulativeAt(1)
	require.NoError(t, err)
	assert.Equal(t, 88*common.COIN_VALUE, got)

	empty := NewTable(nil)
	assert.Equal(t, uint32(0), empty.HeightFromCumulative(123))
	assert.Equal(t, uint64(0), empty.RecordedSupply())
	_, err = empty.CumulativeAt(0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestExtend(t *testing.T) {
	s := NewSchedule(common.ChainMainnet)
	base := NewTable([]uint64{0, 88})

	assert.Same(t, base, base.Extend(s, 1))

	extended := base.Extend(s, 130)
	assert.Equal(t, uint32(1), base.LastHeight())
	assert.Equal(t, uint32(130), extended.LastHeight())

	table := embeddedTable(t)
	for h := uint32(0); h <= 130; h++ {
		want, err := table.CumulativeAt(h)
		require.NoError(t, err)
		got, err := extended.CumulativeAt(h)
		require.NoError(t, err)
		assert.Equal(t, want, got, "height %d", h)
	}
}

func TestExtendPastMaxHeight(t *testing.T) {
	table := embeddedTable(t)
	require.Equal(t, MaxHeight, table.LastHeight())

	extended := table.Extend(NewSchedule(common.ChainMainnet), MaxHeight+100)
	require.Equal(t, MaxHeight+100, extended.LastHeight())

	for _, h := range []uint32{MaxHeight, MaxHeight + 50, MaxHeight + 99} {
		start, err := extended.CumulativeAt(h)
		require.NoError(t, err)
		assert.Equal(t, h, extended.HeightFromCumulative(start), "height %d", h)

		subsidy, err := extended.Subsidy(h)
		require.NoError(t, err)
		assert.Equal(t, h, extended.HeightFromCumulative(start+subsidy-1), "height %d", h)
	}

	// the loaded table still stops at its own last height
	beyond, err := extended.CumulativeAt(MaxHeight + 50)
	require.NoError(t, err)
	assert.Equal(t, MaxHeight, table.HeightFromCumulative(beyond))
}
