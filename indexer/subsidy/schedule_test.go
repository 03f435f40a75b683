package subsidy

import (
	"testing"

	"github.com/sat20-labs/ordinals/common"
	"github.com/stretchr/testify/assert"
)

func TestRewardLiterals(t *testing.T) {
	s := NewSchedule(common.ChainMainnet)
	cases := []struct {
		height uint32
		reward uint64
	}{
		{0, 88},
		{1, 2},
		{100, 2},
		{101, 100},
		{102, 100},
		{113, 500},
		{119, 500},
		{124, 50},
		{318, 100},
		{319, 10000},
		{444, 500},
		{1241, 10000},
		{4314, 100},
		{100000, 50},
		{129600, 25},
		{143877, 25},
		{143999, 25},
		{145000, 25},
		{213214, 5000},
		{259200, 5},
		{259211, 10},
		{518399, 5},
		{518400, 2},
		{800000, 2},
	}
	for _, c := range cases {
		assert.Equal(t, c.reward, s.Reward(c.height), "height %d", c.height)
		assert.Equal(t, c.reward*common.COIN_VALUE, s.Subsidy(c.height), "height %d", c.height)
	}
}

func TestAuxPowWindow(t *testing.T) {
	mainnet := NewSchedule(common.ChainMainnet)
	testnet := NewSchedule(common.ChainTestnet)

	for h := AuxPowStartHeight; h < AuxPowStartHeight+AuxPowWindow; h++ {
		assert.True(t, mainnet.InAuxPowWindow(h))
		assert.Equal(t, MinimalReward, mainnet.Reward(h))
		assert.False(t, testnet.InAuxPowWindow(h))
	}
	assert.False(t, mainnet.InAuxPowWindow(AuxPowStartHeight-1))
	assert.False(t, mainnet.InAuxPowWindow(AuxPowStartHeight+AuxPowWindow))

	assert.Equal(t, uint64(125), testnet.Reward(144000))
	assert.Equal(t, uint64(25), testnet.Reward(144500))
	assert.Equal(t, uint64(50), testnet.Reward(144999))
}

func TestRewardTiersCoverAllDraws(t *testing.T) {
	s := NewSchedule(common.ChainMainnet)
	for _, e := range s.eras {
		for draw := uint32(1); draw <= DrawRange; draw++ {
			k, v := e.tiers.Floor(draw)
			assert.NotNil(t, k, "era ending %d draw %d", e.end, draw)
			assert.NotNil(t, v)
		}
	}
}

func TestRewardDeterministic(t *testing.T) {
	a := NewSchedule(common.ChainRegtest)
	b := NewSchedule(common.ChainRegtest)
	for h := uint32(0); h < 5000; h += 7 {
		assert.Equal(t, a.Reward(h), b.Reward(h))
	}
}
