package recommend

import (
	"strings"

	"advisor/pkg/domain"
)

// Validate checks the preconditions of a scoring call. Blank entries inside the
// sets do not count towards their size. It returns a *ValidationError listing
// all offending fields, or nil.
func Validate(p domain.Profile) error {
	var fields []FieldError
	if strings.TrimSpace(p.PrimaryBlockchain) == "" {
		fields = append(fields, FieldError{Field: "blockchain", Message: "Please select Blockchain."})
	}
	if len(domain.NewSet(p.Blockchains...)) == 0 {
		fields = append(fields, FieldError{Field: "blockchains", Message: "Please select at least one Blockchain."})
	}
	if len(domain.NewSet(p.Exchanges...)) == 0 {
		fields = append(fields, FieldError{Field: "exchanges", Message: "Please select at least one Crypto Exchange."})
	}
	if strings.TrimSpace(p.Country) == "" {
		fields = append(fields, FieldError{Field: "country", Message: "Please select a Country."})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	return nil
}
