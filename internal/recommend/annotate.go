package recommend

import (
	"errors"

	"advisor/pkg/domain"
)

// Annotate attaches the matched blockchains and exchanges to each scored
// candidate. Candidates missing from the catalog keep empty matched lists and
// are reported through the returned error, a join of *DataIntegrityError
// values. The recommendations are complete even when the error is non-nil.
func Annotate(
	catalog *domain.Catalog,
	p domain.Profile,
	scored []domain.ScoredCandidate) ([]domain.Recommendation, error) {
	out := make([]domain.Recommendation, 0, len(scored))
	var errs []error
	for _, sc := range scored {
		rec := domain.Recommendation{
			ScoredCandidate:    sc,
			MatchedBlockchains: []string{},
			MatchedExchanges:   []string{},
		}

		e, ok := catalog.Lookup(sc.ID)
		if !ok {
			errs = append(errs, &DataIntegrityError{CandidateID: sc.ID})
			out = append(out, rec)

			continue
		}

		for _, bc := range p.Blockchains {
			if e.SupportsBlockchain(bc) {
				rec.MatchedBlockchains = append(rec.MatchedBlockchains, bc)
			}
		}
		for _, ex := range p.Exchanges {
			if e.SupportsExchange(ex) {
				rec.MatchedExchanges = append(rec.MatchedExchanges, ex)
			}
		}
		out = append(out, rec)
	}

	return out, errors.Join(errs...)
}
