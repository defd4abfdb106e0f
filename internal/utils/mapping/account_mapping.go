package mapping

import (
	"database/sql"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/models"
)

// ToModelAccount converts a domain Account to a model Account. The label key is computed by the
// repository.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		Number:    d.Number,
		Label:     d.Label,
		Kind:      nullKind(d.Kind),
		Active:    d.Active,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	var kind *domain.AccountKind
	if m.Kind.Valid {
		kind = domain.KindPtr(domain.AccountKind(m.Kind.String))
	}
	return domain.Account{
		Number:    m.Number,
		Label:     m.Label,
		Kind:      kind,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}

func nullKind(k *domain.AccountKind) sql.NullString {
	if k == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*k), Valid: true}
}
