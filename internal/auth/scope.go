package auth

import (
	"strings"

	"github.com/paclead/platform-backend/internal/domain"
)

// ResolveScope derives the tenant partition key for a user: the CNPJ when
// present, otherwise the CPF. A user with neither is a data invariant
// violation and yields domain.ErrScopeMissing.
func ResolveScope(u *domain.User) (string, error) {
	if u.CNPJ != "" {
		return u.CNPJ, nil
	}
	if u.CPF != "" {
		return u.CPF, nil
	}
	return "", domain.ErrScopeMissing
}

// NormalizeTaxID strips everything but digits from a raw CPF/CNPJ.
// Empty input normalizes to "". Length checks (11 for CPF, 14 for CNPJ)
// belong to the signup boundary, not here.
func NormalizeTaxID(raw string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
}
