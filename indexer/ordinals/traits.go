package ordinals

// Traits is everything derivable about one sat.
type Traits struct {
	Number     uint64   `json:"number" yaml:"number" cbor:"number"`
	Decimal    string   `json:"decimal" yaml:"decimal" cbor:"decimal"`
	Name       string   `json:"name" yaml:"name" cbor:"name"`
	Height     uint32   `json:"height" yaml:"height" cbor:"height"`
	Cycle      uint32   `json:"cycle" yaml:"cycle" cbor:"cycle"`
	Epoch      uint32   `json:"epoch" yaml:"epoch" cbor:"epoch"`
	Offset     uint64   `json:"offset" yaml:"offset" cbor:"offset"`
	Rarity     Rarity   `json:"rarity" yaml:"rarity" cbor:"rarity"`
	Percentile string   `json:"percentile" yaml:"percentile" cbor:"percentile"`
	Charms     []string `json:"charms" yaml:"charms" cbor:"charms"`
}

func NewTraits(sat Sat, t SubsidyTable) (*Traits, error) {
	decimal, err := sat.Decimal(t)
	if err != nil {
		return nil, err
	}
	rarity, err := sat.Rarity(t)
	if err != nil {
		return nil, err
	}
	charms, err := sat.Charms(t)
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, c := range Charms(charms) {
		names = append(names, c.String())
	}

	return &Traits{
		Number:     sat.N(),
		Decimal:    decimal.String(),
		Name:       sat.Name(),
		Height:     decimal.Height.N(),
		Cycle:      sat.Cycle(),
		Epoch:      sat.Epoch().N(),
		Offset:     decimal.Offset,
		Rarity:     rarity,
		Percentile: sat.Percentile(),
		Charms:     names,
	}, nil
}
