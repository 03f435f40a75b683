package ordinals

import (
	"math/rand"
	"testing"

	"github.com/sat20-labs/ordinals/indexer/subsidy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSatName(t *testing.T) {
	cases := map[Sat]string{
		0:          "mpdxnrvotxcb",
		1:          "mpdxnrvotxca",
		26:         "mpdxnrvotxbb",
		27:         "mpdxnrvotxba",
		LAST:       "a",
		LAST - 1:   "b",
		LAST - 25:  "z",
		LAST - 26:  "aa",
		LAST - 701: "zz",
		LAST - 702: "aaa",
	}
	for sat, name := range cases {
		assert.Equal(t, name, sat.Name(), "sat %d", sat)

		parsed, err := SatFromName(name)
		require.NoError(t, err)
		assert.Equal(t, sat, parsed)
	}
	assert.Equal(t, "", Sat(SUPPLY).Name())
}

func TestSatHeight(t *testing.T) {
	table := loadTable(t)
	cases := map[Sat]Height{
		0:                      0,
		1:                      0,
		Sat(88*COIN_VALUE - 1): 0,
		Sat(88 * COIN_VALUE):   1,
		363_799_999_999:        124,
		363_800_000_000:        125,
		Sat(28_800_000_000):    101,
		STARTING_SATS[4]:       518_401,
	}
	for sat, want := range cases {
		got, err := sat.Height(table)
		require.NoError(t, err)
		assert.Equal(t, want, got, "sat %d", sat)
	}
}

func TestSatBeyondRecordedSupply(t *testing.T) {
	table := loadTable(t)
	recorded := Sat(table.RecordedSupply())

	_, err := (recorded - 1).Height(table)
	require.NoError(t, err)

	_, err = recorded.Height(table)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = LAST.Rarity(table)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = LAST.Decimal(table)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = LAST.Common(table)
	assert.ErrorIs(t, err, ErrOutOfRange)

	// table independent operations still work
	assert.Equal(t, Epoch(5), LAST.Epoch())
	assert.Equal(t, "a", LAST.Name())
	assert.Equal(t, "100%", LAST.Percentile())
}

func TestSatEpochPosition(t *testing.T) {
	assert.Equal(t, uint64(0), Sat(0).EpochPosition())
	assert.Equal(t, uint64(100), Sat(100).EpochPosition())
	assert.Equal(t, uint64(0), Epoch(2).StartingSat().EpochPosition())
	assert.Equal(t, uint64(7), (Epoch(3).StartingSat() + 7).EpochPosition())
	assert.Equal(t, uint32(0), LAST.Cycle())
}

func TestSatThirdAndDecimal(t *testing.T) {
	table := loadTable(t)
	cases := []struct {
		sat     Sat
		decimal string
	}{
		{0, "0.0"},
		{1, "0.1"},
		{Sat(88 * COIN_VALUE), "1.0"},
		{363_799_999_999, "124.4999999999"},
		{363_800_000_000, "125.0"},
	}
	for _, c := range cases {
		d, err := c.sat.Decimal(table)
		require.NoError(t, err)
		assert.Equal(t, c.decimal, d.String())

		third, err := c.sat.Third(table)
		require.NoError(t, err)
		assert.Equal(t, d.Offset, third)

		parsed, err := ParseSat(c.decimal, table)
		require.NoError(t, err)
		assert.Equal(t, c.sat, parsed)
	}
}

func TestSatRarity(t *testing.T) {
	table := loadTable(t)
	cases := map[Sat]Rarity{
		0:                      Mythic,
		1:                      Common,
		Sat(88*COIN_VALUE - 1): Common,
		Sat(88 * COIN_VALUE):   Uncommon,
		Sat(88*COIN_VALUE + 1): Common,
		Epoch(2).StartingSat(): Epic,
		Epoch(3).StartingSat(): Epic,
		Epoch(5).StartingSat(): Epic,
		363_800_000_000:        Uncommon,
	}
	for sat, want := range cases {
		got, err := sat.Rarity(table)
		require.NoError(t, err)
		assert.Equal(t, want, got, "sat %d", sat)
	}
}

func TestCommonMatchesRarityInSecondEpoch(t *testing.T) {
	table := loadTable(t)

	check := func(sat Sat) {
		rarity, err := sat.Rarity(table)
		require.NoError(t, err)
		common, err := sat.Common(table)
		require.NoError(t, err)
		if common != (rarity == Common) {
			t.Fatalf("sat %d: common %v, rarity %s", sat, common, rarity)
		}
	}

	for h := Epoch(2).StartingHeight(); h < Epoch(3).StartingHeight(); h++ {
		start, err := h.StartingSat(table)
		require.NoError(t, err)
		check(start - 1)
		check(start)
		check(start + 1)
	}
}

func TestCommonEpochStartInsideBlock(t *testing.T) {
	table := subsidy.NewTable([]uint64{0, 100, 300, 400})
	sat := STARTING_SATS[1]

	rarity, err := sat.Rarity(table)
	require.NoError(t, err)
	assert.Equal(t, Epic, rarity)

	common, err := sat.Common(table)
	require.NoError(t, err)
	assert.False(t, common)

	common, err = (sat + 1).Common(table)
	require.NoError(t, err)
	assert.True(t, common)
}

func TestCommonMatchesRaritySampled(t *testing.T) {
	table := loadTable(t)
	recorded := table.RecordedSupply()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 4096; i++ {
		sat := Sat(rng.Uint64() % recorded)
		rarity, err := sat.Rarity(table)
		require.NoError(t, err)
		common, err := sat.Common(table)
		require.NoError(t, err)
		assert.Equal(t, rarity == Common, common, "sat %d", sat)
	}
}

func TestSatCoinAndCharms(t *testing.T) {
	table := loadTable(t)

	assert.True(t, Sat(0).Coin())
	assert.True(t, Sat(COIN_VALUE).Coin())
	assert.False(t, Sat(COIN_VALUE+1).Coin())

	cases := map[Sat]uint16{
		0:                       CharmCoin.Flag() | CharmMythic.Flag(),
		1:                       0,
		Sat(104 * COIN_VALUE):   CharmCoin.Flag() | CharmNineball.Flag() | CharmUncommon.Flag(),
		Sat(104*COIN_VALUE + 1): CharmNineball.Flag(),
		Sat(106 * COIN_VALUE):   CharmCoin.Flag() | CharmUncommon.Flag(),
		Epoch(2).StartingSat():  CharmCoin.Flag() | CharmEpic.Flag(),
		Sat(3 * COIN_VALUE):     CharmCoin.Flag(),
	}
	for sat, want := range cases {
		got, err := sat.Charms(table)
		require.NoError(t, err)
		assert.Equal(t, want, got, "sat %d: %v", sat, Charms(got))
	}
}

func TestSatString(t *testing.T) {
	assert.Equal(t, "49999999999999999", LAST.String())
	assert.Equal(t, uint64(42), Sat(42).N())
}
