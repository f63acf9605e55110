package catalog

import (
	"slices"

	"advisor/pkg/domain"
)

// Countries returns the sorted unique countries supported by any candidate.
func Countries(catalog *domain.Catalog) []string {
	return collect(catalog, nil, func(c *domain.Entry) domain.Set { return c.Countries })
}

// Exchanges returns the sorted unique exchanges of candidates supporting
// country. An empty country matches every candidate.
func Exchanges(catalog *domain.Catalog, country string) []string {
	return collect(catalog,
		func(e *domain.Entry) bool { return country == "" || e.SupportsCountry(country) },
		func(c *domain.Entry) domain.Set { return c.Exchanges })
}

// Blockchains returns the sorted unique blockchains of candidates supporting
// both country and exchange. Empty filters match every candidate.
func Blockchains(catalog *domain.Catalog, country, exchange string) []string {
	return collect(catalog,
		func(e *domain.Entry) bool {
			return (country == "" || e.SupportsCountry(country)) &&
				(exchange == "" || e.SupportsExchange(exchange))
		},
		func(c *domain.Entry) domain.Set { return c.Blockchains })
}

func collect(catalog *domain.Catalog, keep func(*domain.Entry) bool, values func(*domain.Entry) domain.Set) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, e := range catalog.Entries() {
		if keep != nil && !keep(e) {
			continue
		}
		for _, v := range values(e) {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	slices.Sort(out)

	return out
}
