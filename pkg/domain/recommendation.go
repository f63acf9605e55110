package domain

// ScoredCandidate is an eligible candidate with its computed match score. It
// only lives for the duration of one scoring call.
type ScoredCandidate struct {
	ID          string  `json:"name"`
	Score       float64 `json:"score"`
	TrustRating float64 `json:"trustPilotScore"`
}

// Recommendation is one returned result: a scored candidate annotated with the
// subset of the user's blockchains and exchanges it supports.
type Recommendation struct {
	ScoredCandidate

	// MatchedBlockchains keeps the order of Profile.Blockchains.
	MatchedBlockchains []string `json:"blockchains"`
	// MatchedExchanges keeps the order of Profile.Exchanges.
	MatchedExchanges []string `json:"exchanges"`
}
