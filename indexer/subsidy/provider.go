package subsidy

import (
	"sync"
	"sync/atomic"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/sat20-labs/ordinals/common"
)

type LoadFunc func() (*Table, error)

// Provider materializes a Table at most once. Callers racing on the first
// Table call block until the load finishes and then share its outcome.
type Provider struct {
	name  string
	load  LoadFunc
	once  sync.Once
	ready atomic.Bool
	table *Table
	err   error
}

func NewProvider(name string, load LoadFunc) *Provider {
	return &Provider{name: name, load: load}
}

func NewEmbeddedProvider() *Provider {
	return NewProvider("embedded", LoadEmbedded)
}

// EmbeddedChain is the chain the bundled dataset was recorded on.
const EmbeddedChain = common.ChainMainnet

// SourceConfig selects where a chain's table comes from.
type SourceConfig struct {
	// Dataset is a file path, empty for the embedded dataset.
	Dataset string
	// ExtendTo appends schedule rewards up to this height when the
	// dataset stops earlier.
	ExtendTo uint32
}

func NewProviderFromConfig(cfg SourceConfig, chain string) *Provider {
	name := cfg.Dataset
	if name == "" {
		name = "embedded"
	}
	return NewProvider(chain+":"+name, func() (*Table, error) {
		var (
			t   *Table
			err error
		)
		if cfg.Dataset == "" {
			if chain != EmbeddedChain {
				common.GetLoggerEntry("subsidy").Warnf("no dataset configured for %s, using the embedded %s table", chain, EmbeddedChain)
			}
			t, err = LoadEmbedded()
		} else {
			t, err = LoadTableFile(cfg.Dataset)
		}
		if err != nil {
			return nil, err
		}
		if cfg.ExtendTo > t.LastHeight() {
			t = t.Extend(NewSchedule(chain), cfg.ExtendTo)
		}
		return t, nil
	})
}

func (p *Provider) Name() string {
	return p.name
}

func (p *Provider) Ready() bool {
	return p.ready.Load()
}

func (p *Provider) Table() (*Table, error) {
	p.once.Do(func() {
		log := common.GetLoggerEntry("subsidy")
		startTime := time.Now()
		p.table, p.err = p.load()
		if p.err != nil {
			log.Errorf("load subsidy table %s failed: %v", p.name, p.err)
		} else {
			log.Infof("subsidy table %s loaded, %d heights, %d holes, takes %v",
				p.name, p.table.Len(), p.table.Holes(), time.Since(startTime))
		}
		p.ready.Store(true)
	})
	return p.table, p.err
}

// Registry hands out one Provider per chain.
type Registry struct {
	providers cmap.ConcurrentMap[string, *Provider]
	source    func(chain string) SourceConfig
}

func NewRegistry(source func(chain string) SourceConfig) *Registry {
	if source == nil {
		source = func(string) SourceConfig { return SourceConfig{} }
	}
	return &Registry{
		providers: cmap.New[*Provider](),
		source:    source,
	}
}

func (r *Registry) Provider(chain string) *Provider {
	if p, ok := r.providers.Get(chain); ok {
		return p
	}
	r.providers.SetIfAbsent(chain, NewProviderFromConfig(r.source(chain), chain))
	p, _ := r.providers.Get(chain)
	return p
}

func (r *Registry) Table(chain string) (*Table, error) {
	return r.Provider(chain).Table()
}

func (r *Registry) Chains() []string {
	return r.providers.Keys()
}
