package domain

import "strings"

// Profile holds the questionnaire answers of a single scoring request.
type Profile struct {
	// PrimaryBlockchain is the blockchain the user is most active on.
	PrimaryBlockchain string `json:"blockchain"`
	// Blockchains are the other blockchains the user uses.
	Blockchains Set `json:"blockchains"`
	// Exchanges are the exchanges the user trades on.
	Exchanges Set `json:"exchanges"`
	// NFT is true when the user trades NFTs.
	NFT bool `json:"nft"`
	// DeFi is true when the user uses DeFi protocols.
	DeFi bool `json:"defi"`
	// Country is the user's country of residence.
	Country string `json:"country"`
}

// Normalized returns a copy of p with trimmed scalar fields and de-duplicated sets.
func (p Profile) Normalized() Profile {
	return Profile{
		PrimaryBlockchain: strings.TrimSpace(p.PrimaryBlockchain),
		Blockchains:       NewSet(p.Blockchains...),
		Exchanges:         NewSet(p.Exchanges...),
		NFT:               p.NFT,
		DeFi:              p.DeFi,
		Country:           strings.TrimSpace(p.Country),
	}
}
