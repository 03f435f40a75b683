package subsidy

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/sat20-labs/ordinals/common"
)

const (
	GenesisReward uint64 = 88
	MinimalReward uint64 = 2

	// heights below this one mint MinimalReward
	MinimalRewardEnd uint32 = 101

	AuxPowStartHeight uint32 = 144_000
	AuxPowWindow      uint32 = 1_000

	// reward draws are uniform in [1, DrawRange]
	DrawRange uint32 = 1000
)

type tier struct {
	threshold uint32
	reward    uint64
}

type era struct {
	end   uint32
	tiers *treemap.Map
}

// thresholds must start at 1 so that every draw has a floor
var eraTiers = []struct {
	end   uint32
	tiers []tier
}{
	{129_600, []tier{{1, 50}, {500, 100}, {700, 250}, {840, 500}, {940, 1000}, {990, 10000}}},
	{259_200, []tier{{1, 25}, {500, 50}, {700, 125}, {840, 250}, {940, 500}, {990, 5000}}},
	{518_400, []tier{{1, 5}, {500, 10}, {840, 25}, {940, 50}, {990, 500}}},
}

func buildEras() []era {
	eras := make([]era, 0, len(eraTiers))
	for _, e := range eraTiers {
		m := treemap.NewWith(utils.UInt32Comparator)
		for _, t := range e.tiers {
			m.Put(t.threshold, t.reward)
		}
		eras = append(eras, era{end: e.end, tiers: m})
	}
	return eras
}

// Schedule is the legacy reward function of the node: a Mersenne Twister
// seeded with the block height picks a reward tier for the block's era.
// A Schedule is read-only after construction and safe for concurrent use.
type Schedule struct {
	chain  string
	auxPow bool
	eras   []era
}

func NewSchedule(chain string) *Schedule {
	return &Schedule{
		chain:  chain,
		auxPow: chain == common.ChainMainnet,
		eras:   buildEras(),
	}
}

func (s *Schedule) Chain() string {
	return s.chain
}

// InAuxPowWindow reports whether height falls in the mainnet window that
// mints MinimalReward while merged mining was switched on.
func (s *Schedule) InAuxPowWindow(height uint32) bool {
	return s.auxPow && height >= AuxPowStartHeight && height < AuxPowStartHeight+AuxPowWindow
}

// Draw returns the first uniform value in [1, n] produced by a generator
// seeded with height.
func (s *Schedule) Draw(height uint32, n uint32) uint32 {
	return drawUniform(newMT19937(height).Uint32, n)
}

// drawUniform rejects words at or above the largest multiple of n below
// 2^32 and maps the rest onto [1, n].
func drawUniform(next func() uint32, n uint32) uint32 {
	if n == 0 {
		panic("subsidy: draw range must be positive")
	}
	bucket := (uint64(1) << 32) / uint64(n)
	limit := bucket * uint64(n)
	for {
		word := uint64(next())
		if word < limit {
			return uint32(1 + word/bucket)
		}
	}
}

// Reward returns the block reward at height in whole coins.
func (s *Schedule) Reward(height uint32) uint64 {
	if height == 0 {
		return GenesisReward
	}
	if height < MinimalRewardEnd || s.InAuxPowWindow(height) {
		return MinimalReward
	}

	for _, e := range s.eras {
		if height >= e.end {
			continue
		}
		_, reward := e.tiers.Floor(s.Draw(height, DrawRange))
		return reward.(uint64)
	}
	return MinimalReward
}

// Subsidy returns the block reward at height in smallest units.
func (s *Schedule) Subsidy(height uint32) uint64 {
	return s.Reward(height) * common.COIN_VALUE
}
