package ordinals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeightStartingSat(t *testing.T) {
	table := loadTable(t)
	cases := map[Height]Sat{
		0:   0,
		1:   Sat(88 * COIN_VALUE),
		9:   Sat(104 * COIN_VALUE),
		101: Sat(288 * COIN_VALUE),
		124: Sat(3588 * COIN_VALUE),
		125: Sat(3638 * COIN_VALUE),
	}
	for height, want := range cases {
		got, err := height.StartingSat(table)
		require.NoError(t, err)
		assert.Equal(t, want, got, "height %d", height)
	}

	_, err := Height(800_001).StartingSat(table)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestHeightSubsidy(t *testing.T) {
	table := loadTable(t)

	sub, err := Height(0).Subsidy(table)
	require.NoError(t, err)
	assert.Equal(t, 88*COIN_VALUE, sub)

	sub, err = Height(1241).Subsidy(table)
	require.NoError(t, err)
	assert.Equal(t, 10000*COIN_VALUE, sub)

	sub, err = Height(144_500).Subsidy(table)
	require.NoError(t, err)
	assert.Equal(t, 2*COIN_VALUE, sub)

	_, err = Height(table.LastHeight()).Subsidy(table)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestHeightArithmetic(t *testing.T) {
	assert.Equal(t, Height(12), Height(10).Add(2))
	assert.Equal(t, Height(8), Height(10).Sub(2))
	assert.Equal(t, Height(0), Height(1).Sub(2))
	assert.Equal(t, uint32(7), Height(7).N())
	assert.Equal(t, "129601", Height(129601).String())
	assert.Equal(t, Epoch(3), Height(129601).Epoch())

	h, err := ParseHeight("4314")
	require.NoError(t, err)
	assert.Equal(t, Height(4314), h)

	_, err = ParseHeight("4294967296")
	assert.Error(t, err)
	_, err = ParseHeight("-1")
	assert.Error(t, err)
}
