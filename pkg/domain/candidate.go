package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const (
	// MinTrustRating is the lowest accepted trust rating.
	MinTrustRating = 0.0
	// MaxTrustRating is the highest accepted trust rating.
	MaxTrustRating = 5.0
)

// Candidate is one product entry of the reference catalog.
type Candidate struct {
	// ID is the unique product name.
	ID string `json:"id"`
	// Countries lists the countries the product can be used in.
	Countries Set `json:"countries"`
	// Exchanges lists the exchanges the product imports data from.
	Exchanges Set `json:"exchanges"`
	// Blockchains lists the blockchains the product supports.
	Blockchains Set `json:"blockchains"`
	// NFTProtocols lists the supported NFT protocols.
	NFTProtocols Set `json:"nftProtocols"`
	// DeFiProtocols lists the supported DeFi protocols.
	DeFiProtocols Set `json:"defiProtocols"`
	// TrustRating is the externally sourced reputation score in [0, 5].
	TrustRating float64 `json:"trustRating"`
}

// NFTProtocolCount returns the number of supported NFT protocols.
func (c Candidate) NFTProtocolCount() int { return len(c.NFTProtocols) }

// DeFiProtocolCount returns the number of supported DeFi protocols.
func (c Candidate) DeFiProtocolCount() int { return len(c.DeFiProtocols) }

// Entry is a catalog candidate together with its membership indexes.
type Entry struct {
	Candidate

	countries   map[string]struct{}
	exchanges   map[string]struct{}
	blockchains map[string]struct{}
}

// SupportsCountry reports whether the candidate can be used in country.
func (e *Entry) SupportsCountry(country string) bool {
	_, ok := e.countries[country]

	return ok
}

// SupportsExchange reports whether the candidate supports exchange.
func (e *Entry) SupportsExchange(exchange string) bool {
	_, ok := e.exchanges[exchange]

	return ok
}

// SupportsBlockchain reports whether the candidate supports blockchain.
func (e *Entry) SupportsBlockchain(blockchain string) bool {
	_, ok := e.blockchains[blockchain]

	return ok
}

// Catalog is an immutable snapshot of the reference candidates. It is safe for
// concurrent reads and must not be modified after construction.
type Catalog struct {
	ids     []string
	entries map[string]*Entry
	version string
}

// NewCatalog builds a Catalog. Candidate IDs must be unique and non-empty and
// trust ratings must lie within [MinTrustRating, MaxTrustRating].
func NewCatalog(candidates ...Candidate) (*Catalog, error) {
	c := &Catalog{
		ids:     make([]string, 0, len(candidates)),
		entries: make(map[string]*Entry, len(candidates)),
	}
	for _, cand := range candidates {
		if cand.ID == "" {
			return nil, fmt.Errorf("candidate with empty id")
		}
		if _, ok := c.entries[cand.ID]; ok {
			return nil, fmt.Errorf("duplicate candidate %q", cand.ID)
		}
		if !(cand.TrustRating >= MinTrustRating && cand.TrustRating <= MaxTrustRating) {
			return nil, fmt.Errorf("candidate %q: trust rating %v out of range", cand.ID, cand.TrustRating)
		}

		cand.Countries = NewSet(cand.Countries...)
		cand.Exchanges = NewSet(cand.Exchanges...)
		cand.Blockchains = NewSet(cand.Blockchains...)
		cand.NFTProtocols = NewSet(cand.NFTProtocols...)
		cand.DeFiProtocols = NewSet(cand.DeFiProtocols...)

		c.entries[cand.ID] = &Entry{
			Candidate:   cand,
			countries:   cand.Countries.Lookup(),
			exchanges:   cand.Exchanges.Lookup(),
			blockchains: cand.Blockchains.Lookup(),
		}
		c.ids = append(c.ids, cand.ID)
	}
	slices.Sort(c.ids)
	c.version = c.hash()

	return c, nil
}

// hash digests the catalog content in ID order.
func (c *Catalog) hash() string {
	d := xxhash.New()
	write := func(s string) {
		_, _ = d.WriteString(s)
		_, _ = d.WriteString("\x00")
	}
	for _, id := range c.ids {
		e := c.entries[id]
		write(id)
		for _, s := range []Set{e.Countries, e.Exchanges, e.Blockchains, e.NFTProtocols, e.DeFiProtocols} {
			write(strings.Join(s, "\x1f"))
		}
		write(strconv.FormatFloat(e.TrustRating, 'f', -1, 64))
	}

	return strconv.FormatUint(d.Sum64(), 16)
}

// Len returns the number of candidates.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}

	return len(c.ids)
}

// Version identifies the catalog content. Two catalogs with equal content have
// equal versions.
func (c *Catalog) Version() string {
	if c == nil {
		return ""
	}

	return c.version
}

// Lookup returns the entry with the given ID.
func (c *Catalog) Lookup(id string) (*Entry, bool) {
	if c == nil {
		return nil, false
	}
	e, ok := c.entries[id]

	return e, ok
}

// Entries returns all entries ordered by ID.
func (c *Catalog) Entries() []*Entry {
	if c == nil {
		return nil
	}
	out := make([]*Entry, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.entries[id])
	}

	return out
}

// Candidates returns a copy of all candidates ordered by ID.
func (c *Catalog) Candidates() []Candidate {
	entries := c.Entries()
	out := make([]Candidate, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Candidate)
	}

	return out
}
