package ordinals

import (
	"github.com/sat20-labs/ordinals/indexer/ordinals"
	"github.com/sat20-labs/ordinals/server/wire"
)

type HealthData struct {
	Version    string `json:"version"`
	Chain      string `json:"chain"`
	TableReady bool   `json:"table_ready"`
}

type HealthResp struct {
	wire.BaseResp
	Data *HealthData `json:"data"`
}

type SatTraitsResp struct {
	wire.BaseResp
	Data *ordinals.Traits `json:"data"`
}

type RarityData struct {
	Sat    uint64          `json:"sat"`
	Rarity ordinals.Rarity `json:"rarity"`
	Code   uint8           `json:"code"`
}

type RarityResp struct {
	wire.BaseResp
	Data *RarityData `json:"data"`
}

type HeightInfo struct {
	Height         uint32  `json:"height"`
	Epoch          uint32  `json:"epoch"`
	StartingSat    uint64  `json:"starting_sat"`
	Subsidy        uint64  `json:"subsidy"`
	SubsidyCoins   float64 `json:"subsidy_coins"`
	ScheduleReward uint64  `json:"schedule_reward"`
	AuxPow         bool    `json:"auxpow"`
}

type HeightInfoResp struct {
	wire.BaseResp
	Data *HeightInfo `json:"data"`
}

type EpochInfo struct {
	Epoch          uint32 `json:"epoch"`
	StartingSat    uint64 `json:"starting_sat"`
	StartingHeight uint32 `json:"starting_height"`
}

type EpochInfoResp struct {
	wire.BaseResp
	Data *EpochInfo `json:"data"`
}
