package common

// 0.1.0  2026.10.19   ordinal traits, height/epoch/rarity api
const ORDINALS_VERSION = "0.1.0"
