package domain

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

func (s ScoredCandidate) encodeFields(e *jx.Encoder) {
	e.FieldStart("name")
	e.Str(s.ID)
	e.FieldStart("score")
	e.Float64(s.Score)
	e.FieldStart("trustPilotScore")
	e.Float64(s.TrustRating)
}

// Encode writes r as a JSON object. Matched lists are always arrays.
func (r Recommendation) Encode(e *jx.Encoder) {
	e.ObjStart()
	r.encodeFields(e)
	e.FieldStart("blockchains")
	encodeStrings(e, r.MatchedBlockchains)
	e.FieldStart("exchanges")
	encodeStrings(e, r.MatchedExchanges)
	e.ObjEnd()
}

// Decode reads r from a JSON object. Unknown fields are skipped.
func (r *Recommendation) Decode(d *jx.Decoder) error {
	if r == nil {
		return errors.New("invalid: unable to decode Recommendation to nil")
	}

	*r = Recommendation{
		MatchedBlockchains: []string{},
		MatchedExchanges:   []string{},
	}

	return d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "name":
			r.ID, err = d.Str()
		case "score":
			r.Score, err = d.Float64()
		case "trustPilotScore":
			r.TrustRating, err = d.Float64()
		case "blockchains":
			r.MatchedBlockchains, err = decodeStrings(d)
		case "exchanges":
			r.MatchedExchanges, err = decodeStrings(d)
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "decode field %q", key)
		}

		return nil
	})
}

// EncodeRecommendations writes recs as a JSON array. A nil slice is written as
// an empty array.
func EncodeRecommendations(e *jx.Encoder, recs []Recommendation) {
	e.ArrStart()
	for _, r := range recs {
		r.Encode(e)
	}
	e.ArrEnd()
}

// DecodeRecommendations reads a JSON array of recommendations.
func DecodeRecommendations(d *jx.Decoder) ([]Recommendation, error) {
	out := make([]Recommendation, 0)
	if err := d.Arr(func(d *jx.Decoder) error {
		var r Recommendation
		if err := r.Decode(d); err != nil {
			return err
		}
		out = append(out, r)

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "decode recommendations")
	}

	return out, nil
}

// Encode writes p as a JSON object using the questionnaire field names.
func (p Profile) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("country")
	e.Str(p.Country)
	e.FieldStart("exchanges")
	encodeStrings(e, p.Exchanges)
	e.FieldStart("blockchain")
	e.Str(p.PrimaryBlockchain)
	e.FieldStart("blockchains")
	encodeStrings(e, p.Blockchains)
	e.FieldStart("nft")
	e.Bool(p.NFT)
	e.FieldStart("defi")
	e.Bool(p.DeFi)
	e.ObjEnd()
}

// Decode reads p from a questionnaire submission. Missing fields keep their
// zero value and unknown fields are skipped; validation is left to callers.
func (p *Profile) Decode(d *jx.Decoder) error {
	if p == nil {
		return errors.New("invalid: unable to decode Profile to nil")
	}

	*p = Profile{}

	return d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "country":
			p.Country, err = decodeOptStr(d)
		case "exchanges":
			p.Exchanges, err = decodeStrings(d)
		case "blockchain":
			p.PrimaryBlockchain, err = decodeOptStr(d)
		case "blockchains":
			p.Blockchains, err = decodeStrings(d)
		case "nft":
			p.NFT, err = decodeOptBool(d)
		case "defi":
			p.DeFi, err = decodeOptBool(d)
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "decode field %q", key)
		}

		return nil
	})
}

func encodeStrings[S ~[]string](e *jx.Encoder, values S) {
	e.ArrStart()
	for _, v := range values {
		e.Str(v)
	}
	e.ArrEnd()
}

func decodeStrings(d *jx.Decoder) ([]string, error) {
	out := make([]string, 0)
	if d.Next() == jx.Null {
		return out, d.Null()
	}
	err := d.Arr(func(d *jx.Decoder) error {
		v, err := d.Str()
		if err != nil {
			return err
		}
		out = append(out, v)

		return nil
	})

	return out, err
}

func decodeOptStr(d *jx.Decoder) (string, error) {
	if d.Next() == jx.Null {
		return "", d.Null()
	}

	return d.Str()
}

func decodeOptBool(d *jx.Decoder) (bool, error) {
	if d.Next() == jx.Null {
		return false, d.Null()
	}

	return d.Bool()
}
