package ordinals

import (
	"fmt"

	"github.com/decred/dcrd/lru"
	"github.com/sat20-labs/ordinals/common"
	"github.com/sat20-labs/ordinals/indexer/ordinals"
	"github.com/sat20-labs/ordinals/indexer/subsidy"
)

type traitsKey struct {
	chain string
	sat   ordinals.Sat
}

type Model struct {
	registry  *subsidy.Registry
	chain     string
	schedules map[string]*subsidy.Schedule
	cache     lru.KVCache
}

func NewModel(registry *subsidy.Registry, chain string, cacheSize int) *Model {
	schedules := make(map[string]*subsidy.Schedule)
	for _, c := range []string{common.ChainMainnet, common.ChainTestnet, common.ChainRegtest} {
		schedules[c] = subsidy.NewSchedule(c)
	}
	return &Model{
		registry:  registry,
		chain:     chain,
		schedules: schedules,
		cache:     lru.NewKVCache(uint(cacheSize)),
	}
}

// resolveChain falls back to the service chain when none is requested.
func (s *Model) resolveChain(chain string) (string, error) {
	if chain == "" {
		return s.chain, nil
	}
	if !common.IsSupportedChain(chain) {
		return "", fmt.Errorf("unsupported chain %s", chain)
	}
	return chain, nil
}

func (s *Model) TableReady(chain string) bool {
	return s.registry.Provider(chain).Ready()
}

func (s *Model) GetSatTraits(chain, input string) (*ordinals.Traits, error) {
	table, err := s.registry.Table(chain)
	if err != nil {
		return nil, err
	}
	sat, err := ordinals.ParseSat(input, table)
	if err != nil {
		return nil, err
	}

	key := traitsKey{chain: chain, sat: sat}
	if v, ok := s.cache.Lookup(key); ok {
		return v.(*ordinals.Traits), nil
	}

	traits, err := ordinals.NewTraits(sat, table)
	if err != nil {
		return nil, err
	}
	s.cache.Add(key, traits)
	return traits, nil
}

func (s *Model) GetRarity(chain, input string) (*RarityData, error) {
	table, err := s.registry.Table(chain)
	if err != nil {
		return nil, err
	}
	sat, err := ordinals.ParseSat(input, table)
	if err != nil {
		return nil, err
	}
	rarity, err := sat.Rarity(table)
	if err != nil {
		return nil, err
	}
	return &RarityData{Sat: sat.N(), Rarity: rarity, Code: rarity.Code()}, nil
}

func (s *Model) GetHeightInfo(chain string, height ordinals.Height) (*HeightInfo, error) {
	table, err := s.registry.Table(chain)
	if err != nil {
		return nil, err
	}
	start, err := height.StartingSat(table)
	if err != nil {
		return nil, err
	}
	sub, err := height.Subsidy(table)
	if err != nil {
		return nil, err
	}

	schedule := s.schedules[chain]
	return &HeightInfo{
		Height:         height.N(),
		Epoch:          height.Epoch().N(),
		StartingSat:    start.N(),
		Subsidy:        sub,
		SubsidyCoins:   common.ToCoins(sub),
		ScheduleReward: schedule.Reward(height.N()),
		AuxPow:         schedule.InAuxPowWindow(height.N()),
	}, nil
}

func (s *Model) GetEpochInfo(epoch ordinals.Epoch) (*EpochInfo, error) {
	if epoch == 0 || epoch >= ordinals.FIRST_POST_SUBSIDY {
		return nil, fmt.Errorf("epoch %d has no fixed boundary", epoch)
	}
	return &EpochInfo{
		Epoch:          epoch.N(),
		StartingSat:    epoch.StartingSat().N(),
		StartingHeight: epoch.StartingHeight().N(),
	}, nil
}
