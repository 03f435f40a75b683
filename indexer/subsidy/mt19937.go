package subsidy

const (
	mtN         = 624
	mtM         = 397
	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff
	mtInitMult  = 1812433253
)

// mt19937 is the 32-bit Mersenne Twister (period 2^19937-1) with the single
// word seeding of the reference implementation. The node draws rewards with
// it, so every constant here is consensus-critical.
type mt19937 struct {
	mt    [mtN]uint32
	index int
}

func newMT19937(seed uint32) *mt19937 {
	m := &mt19937{}
	m.seed(seed)
	return m
}

func (m *mt19937) seed(value uint32) {
	m.mt[0] = value
	for i := 1; i < mtN; i++ {
		prev := m.mt[i-1]
		m.mt[i] = mtInitMult*(prev^(prev>>30)) + uint32(i)
	}
	m.index = mtN
}

func (m *mt19937) twist() {
	for i := 0; i < mtN; i++ {
		x := (m.mt[i] & mtUpperMask) + (m.mt[(i+1)%mtN] & mtLowerMask)
		xA := x >> 1
		if x&1 != 0 {
			xA ^= mtMatrixA
		}
		m.mt[i] = m.mt[(i+mtM)%mtN] ^ xA
	}
	m.index = 0
}

// Uint32 returns the next tempered word.
func (m *mt19937) Uint32() uint32 {
	if m.index >= mtN {
		m.twist()
	}

	y := m.mt[m.index]
	m.index++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18

	return y
}
