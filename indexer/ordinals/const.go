package ordinals

import "github.com/sat20-labs/ordinals/common"

// COIN_VALUE represents the value of one coin in the smallest unit.
const COIN_VALUE = common.COIN_VALUE

// SUPPLY is the number of ordinals that can ever exist.
const SUPPLY uint64 = 50_000_000_000_000_000

// LAST is the highest valid ordinal.
const LAST Sat = Sat(SUPPLY - 1)

// CYCLE_EPOCHS is the number of epochs in a cycle.
const CYCLE_EPOCHS uint32 = 6
