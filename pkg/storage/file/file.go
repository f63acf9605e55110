// Package file implements a read-only catalog source backed by a JSON document
// keyed by product name:
//
//	{
//	  "Koinly": {
//	    "CountrySupported": ["US", "UK"],
//	    "ExchangeSupported": ["Binance"],
//	    "BlockchainsSupported": ["ethereum"],
//	    "NftProtocolsSupported": ["OpenSea"],
//	    "DefiProtocolsSupported": [],
//	    "Trustpilot": "4.5"
//	  }
//	}
package file

import (
	"context"
	"os"
	"slices"
	"strings"

	"advisor/pkg/domain"
	"advisor/pkg/storage"

	"github.com/go-faster/errors"
)

// Source reads candidates from a JSON catalog file on every call.
type Source struct {
	// Path is the location of the catalog document.
	Path string
}

var _ storage.CatalogReader = (*Source)(nil)

// New returns a Source reading from path.
func New(path string) *Source {
	return &Source{Path: path}
}

// Candidates reads and decodes the catalog file. Candidates are returned
// ordered by ID.
func (s *Source) Candidates(ctx context.Context) ([]domain.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, errors.Wrap(err, "read catalog file")
	}

	candidates, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", s.Path)
	}
	slices.SortFunc(candidates, func(a, b domain.Candidate) int {
		return strings.Compare(a.ID, b.ID)
	})

	return candidates, nil
}

// Write encodes candidates into the catalog format and writes them to path.
func Write(path string, candidates []domain.Candidate) error {
	if err := os.WriteFile(path, Encode(candidates), 0o644); err != nil { //nolint: gosec
		return errors.Wrap(err, "write catalog file")
	}

	return nil
}
