package common

import "github.com/btcsuite/btcd/btcutil"

// COIN_VALUE is the number of smallest units in one coin.
const COIN_VALUE uint64 = btcutil.SatoshiPerBitcoin

const (
	ChainMainnet = "mainnet"
	ChainTestnet = "testnet"
	ChainRegtest = "regtest"
)

func IsSupportedChain(chain string) bool {
	switch chain {
	case ChainMainnet, ChainTestnet, ChainRegtest:
		return true
	}
	return false
}

// ToCoins converts an amount in smallest units to whole coins.
func ToCoins(units uint64) float64 {
	return btcutil.Amount(units).ToBTC()
}
