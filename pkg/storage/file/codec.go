package file

import (
	"math"
	"strconv"
	"strings"

	"advisor/pkg/domain"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

const (
	fieldCountries     = "CountrySupported"
	fieldExchanges     = "ExchangeSupported"
	fieldBlockchains   = "BlockchainsSupported"
	fieldNFTProtocols  = "NftProtocolsSupported"
	fieldDeFiProtocols = "DefiProtocolsSupported"
	fieldTrustpilot    = "Trustpilot"
)

// Decode parses a catalog document. Unknown fields are ignored, missing lists
// decode as empty and the Trustpilot rating may be a string or a number.
func Decode(data []byte) ([]domain.Candidate, error) {
	d := jx.DecodeBytes(data)
	if d.Next() != jx.Object {
		return nil, errors.Errorf("catalog must be a JSON object, got %s", d.Next())
	}

	var candidates []domain.Candidate
	if err := d.Obj(func(d *jx.Decoder, name string) error {
		c, err := decodeCandidate(d, name)
		if err != nil {
			return errors.Wrapf(err, "candidate %q", name)
		}
		candidates = append(candidates, c)

		return nil
	}); err != nil {
		return nil, err
	}

	return candidates, nil
}

func decodeCandidate(d *jx.Decoder, name string) (domain.Candidate, error) {
	c := domain.Candidate{ID: name}
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case fieldCountries:
			c.Countries, err = decodeSet(d)
		case fieldExchanges:
			c.Exchanges, err = decodeSet(d)
		case fieldBlockchains:
			c.Blockchains, err = decodeSet(d)
		case fieldNFTProtocols:
			c.NFTProtocols, err = decodeSet(d)
		case fieldDeFiProtocols:
			c.DeFiProtocols, err = decodeSet(d)
		case fieldTrustpilot:
			c.TrustRating, err = decodeRating(d)
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrap(err, key)
		}

		return nil
	})

	return c, err
}

func decodeSet(d *jx.Decoder) (domain.Set, error) {
	if d.Next() == jx.Null {
		return nil, d.Null()
	}

	var values []string
	if err := d.Arr(func(d *jx.Decoder) error {
		v, err := d.Str()
		if err != nil {
			return err
		}
		values = append(values, v)

		return nil
	}); err != nil {
		return nil, err
	}

	return domain.NewSet(values...), nil
}

func decodeRating(d *jx.Decoder) (float64, error) {
	switch d.Next() {
	case jx.Null:
		return 0, d.Null()
	case jx.Number:
		return d.Float64()
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return 0, err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, errors.Wrap(err, "parse rating")
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, errors.Errorf("rating %q is not a finite number", s)
		}

		return v, nil
	default:
		return 0, errors.Errorf("unexpected rating type %s", d.Next())
	}
}

// Encode renders candidates in the catalog format, preserving their order.
func Encode(candidates []domain.Candidate) []byte {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	e.SetIdent(2)

	e.Obj(func(e *jx.Encoder) {
		for _, c := range candidates {
			e.Field(c.ID, func(e *jx.Encoder) {
				e.Obj(func(e *jx.Encoder) {
					encodeSet(e, fieldCountries, c.Countries)
					encodeSet(e, fieldExchanges, c.Exchanges)
					encodeSet(e, fieldBlockchains, c.Blockchains)
					encodeSet(e, fieldNFTProtocols, c.NFTProtocols)
					encodeSet(e, fieldDeFiProtocols, c.DeFiProtocols)
					e.Field(fieldTrustpilot, func(e *jx.Encoder) {
						e.Str(strconv.FormatFloat(c.TrustRating, 'f', -1, 64))
					})
				})
			})
		}
	})

	out := make([]byte, len(e.Bytes()))
	copy(out, e.Bytes())

	return out
}

func encodeSet(e *jx.Encoder, field string, values domain.Set) {
	e.Field(field, func(e *jx.Encoder) {
		e.Arr(func(e *jx.Encoder) {
			for _, v := range values {
				e.Str(v)
			}
		})
	})
}
