package accounting

import (
	"time"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/shopspring/decimal"
)

type sheetBalances struct {
	account domain.Account
	initial decimal.Decimal
	final   decimal.Decimal
}

// BuildBalanceSheet computes the comparative sheet from account/posting rows covering at least every
// posting dated up to the later boundary. Asset and liability lines are balances-to-date shown as
// magnitudes. Equity is the capital plus the period result given by the classifier.
func BuildBalanceSheet(initial, final time.Time, rows []domain.AccountPosting, capital decimal.Decimal, c Classifier) domain.BalanceSheet {
	bs := domain.BalanceSheet{
		InitialDate: initial,
		FinalDate:   final,
		Assets:      []domain.BalanceSheetLine{},
		Liabilities: []domain.BalanceSheetLine{},
	}

	var order []string
	balances := map[string]*sheetBalances{}
	resultInitial, resultFinal := decimal.Zero, decimal.Zero

	for _, r := range rows {
		acc := r.Account
		isSheetAccount := acc.HasKind(domain.Asset) || acc.HasKind(domain.Liability)
		if isSheetAccount {
			if _, ok := balances[acc.Number]; !ok {
				balances[acc.Number] = &sheetBalances{account: acc}
				order = append(order, acc.Number)
			}
		}
		if r.Posting == nil {
			continue
		}
		p := *r.Posting

		if isSheetAccount {
			b := balances[acc.Number]
			if !p.Date.After(initial) {
				b.initial = b.initial.Add(SignedAmount(p))
			}
			if !p.Date.After(final) {
				b.final = b.final.Add(SignedAmount(p))
			}
		}

		var contribution decimal.Decimal
		switch {
		case c.IsRevenue(acc) && p.Side == domain.Credit:
			contribution = p.Amount
		case c.IsExpense(acc) && p.Side == domain.Debit:
			contribution = p.Amount.Neg()
		default:
			continue
		}
		if !p.Date.After(initial) {
			resultInitial = resultInitial.Add(contribution)
		}
		if !p.Date.After(final) {
			resultFinal = resultFinal.Add(contribution)
		}
	}

	for _, number := range order {
		b := balances[number]
		line := domain.BalanceSheetLine{
			AccountNumber: number,
			Label:         b.account.Label,
			Initial:       b.initial.Abs(),
			Final:         b.final.Abs(),
		}
		if line.Initial.IsZero() && line.Final.IsZero() {
			continue
		}
		if b.account.HasKind(domain.Asset) {
			bs.Assets = append(bs.Assets, line)
			bs.TotalAssetsInitial = bs.TotalAssetsInitial.Add(line.Initial)
			bs.TotalAssetsFinal = bs.TotalAssetsFinal.Add(line.Final)
		} else {
			bs.Liabilities = append(bs.Liabilities, line)
			bs.TotalLiabilitiesEquityInitial = bs.TotalLiabilitiesEquityInitial.Add(line.Initial)
			bs.TotalLiabilitiesEquityFinal = bs.TotalLiabilitiesEquityFinal.Add(line.Final)
		}
	}

	bs.Equity = []domain.BalanceSheetLine{
		{Label: domain.CapitalLabel, Initial: capital, Final: capital},
		{Label: domain.PeriodResultLabel, Initial: resultInitial, Final: resultFinal},
	}
	for _, e := range bs.Equity {
		bs.TotalLiabilitiesEquityInitial = bs.TotalLiabilitiesEquityInitial.Add(e.Initial)
		bs.TotalLiabilitiesEquityFinal = bs.TotalLiabilitiesEquityFinal.Add(e.Final)
	}
	bs.Balanced, _ = CheckEquilibrium(bs.TotalAssetsFinal, bs.TotalLiabilitiesEquityFinal)
	return bs
}
