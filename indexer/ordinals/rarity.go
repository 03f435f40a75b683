package ordinals

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Rarity values are the wire codes; their order says nothing about rank.
type Rarity uint8

const (
	Common   Rarity = 0
	Uncommon Rarity = 1
	Epic     Rarity = 3
	Mythic   Rarity = 5
)

// Rank orders rarities by specialness: Common < Uncommon < Epic < Mythic.
func (r Rarity) Rank() int {
	switch r {
	case Common:
		return 0
	case Uncommon:
		return 1
	case Epic:
		return 2
	case Mythic:
		return 3
	}
	return -1
}

func (r Rarity) Compare(other Rarity) int {
	a, b := r.Rank(), other.Rank()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (r Rarity) Code() uint8 {
	return uint8(r)
}

// Classify applies Mythic > Epic > Uncommon > Common.
func Classify(sat, epochStart, blockStart Sat) Rarity {
	switch {
	case sat == 0:
		return Mythic
	case sat == epochStart:
		return Epic
	case sat == blockStart:
		return Uncommon
	default:
		return Common
	}
}

func (r Rarity) String() string {
	switch r {
	case Common:
		return "common"
	case Uncommon:
		return "uncommon"
	case Epic:
		return "epic"
	case Mythic:
		return "mythic"
	}
	return fmt.Sprintf("rarity(%d)", uint8(r))
}

func ParseRarity(s string) (Rarity, error) {
	switch s {
	case "common":
		return Common, nil
	case "uncommon":
		return Uncommon, nil
	case "epic":
		return Epic, nil
	case "mythic":
		return Mythic, nil
	}
	return Common, fmt.Errorf("invalid rarity `%s`", s)
}

func RarityFromCode(code uint8) (Rarity, error) {
	r := Rarity(code)
	if r.Rank() < 0 {
		return Common, fmt.Errorf("invalid rarity code %d", code)
	}
	return r, nil
}

func (r Rarity) MarshalText() ([]byte, error) {
	if r.Rank() < 0 {
		return nil, fmt.Errorf("invalid rarity code %d", uint8(r))
	}
	return []byte(r.String()), nil
}

func (r *Rarity) UnmarshalText(text []byte) error {
	v, err := ParseRarity(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (r Rarity) MarshalYAML() (interface{}, error) {
	text, err := r.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

func (r *Rarity) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return r.UnmarshalText([]byte(s))
}

func (r Rarity) MarshalCBOR() ([]byte, error) {
	text, err := r.MarshalText()
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(string(text))
}

func (r *Rarity) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return err
	}
	return r.UnmarshalText([]byte(s))
}
