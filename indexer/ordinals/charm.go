package ordinals

// Charm is a bit position in a charms bitfield.
type Charm uint16

const (
	CharmCoin     Charm = 0
	CharmEpic     Charm = 2
	CharmNineball Charm = 5
	CharmUncommon Charm = 9
	CharmMythic   Charm = 11
)

var allCharms = []Charm{CharmCoin, CharmEpic, CharmNineball, CharmUncommon, CharmMythic}

func (c Charm) Flag() uint16 {
	return 1 << c
}

func (c Charm) Set(charms *uint16) {
	*charms |= c.Flag()
}

func (c Charm) IsSet(charms uint16) bool {
	return charms&c.Flag() != 0
}

func (c Charm) String() string {
	switch c {
	case CharmCoin:
		return "coin"
	case CharmEpic:
		return "epic"
	case CharmNineball:
		return "nineball"
	case CharmUncommon:
		return "uncommon"
	case CharmMythic:
		return "mythic"
	}
	return "unknown"
}

// Charms lists the known charms set in bits.
func Charms(bits uint16) []Charm {
	var charms []Charm
	for _, c := range allCharms {
		if c.IsSet(bits) {
			charms = append(charms, c)
		}
	}
	return charms
}
