package ledger

import "strings"

// Summary holds the dashboard statistics derived from the full ledger.
// TotalIn/TotalOut are unit counts; TotalBuyValue/TotalSellValue are
// quantity*price sums in rupiah.
type Summary struct {
	TotalIn        int64
	TotalOut       int64
	TotalBuyValue  int64
	TotalSellValue int64
}

// Summarize computes the summary statistics. An empty ledger yields all
// zeros.
func Summarize(txs []*Transaction) Summary {
	var s Summary

	for _, tx := range txs {
		switch tx.Type {
		case TypeIn:
			s.TotalIn += tx.Quantity
		case TypeOut:
			s.TotalOut += tx.Quantity
		case TypeBuy:
			s.TotalBuyValue += tx.Total()
		case TypeSell:
			s.TotalSellValue += tx.Total()
		}
	}

	return s
}

// Tab selects which slice of the ledger a view shows: everything, or a
// single transaction type.
type Tab string

const (
	TabOverview Tab = "overview"
	TabIn       Tab = Tab(TypeIn)
	TabOut      Tab = Tab(TypeOut)
	TabBuy      Tab = Tab(TypeBuy)
	TabSell     Tab = Tab(TypeSell)
)

// Valid reports whether t names a known tab.
func (t Tab) Valid() bool {
	return t == TabOverview || Type(t).Valid()
}

// Filter returns the records matching both the tab restriction and, when
// query is non-empty, a case-insensitive substring match on code or item
// name. Ledger ordering (newest-first) is preserved; the input is never
// modified.
func Filter(txs []*Transaction, tab Tab, query string) []*Transaction {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]*Transaction, 0, len(txs))

	for _, tx := range txs {
		if tab != TabOverview && Tab(tx.Type) != tab {
			continue
		}

		if query != "" &&
			!strings.Contains(strings.ToLower(tx.Code), query) &&
			!strings.Contains(strings.ToLower(tx.ItemName), query) {
			continue
		}

		out = append(out, tx)
	}

	return out
}
