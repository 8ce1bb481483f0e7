package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rizkyhp/gudangpro/internal/ledger"
)

func testLedger() []*ledger.Transaction {
	return []*ledger.Transaction{
		{Code: "INV-20231027-A1B2", Type: ledger.TypeSell, ItemName: "Laptop ASUS", Quantity: 2, Price: 7_500_000},
		{Code: "BUY-20231026-C3D4", Type: ledger.TypeBuy, ItemName: "Mouse Logitech", Quantity: 10, Price: 150_000},
		{Code: "IN-20231025-E5F6", Type: ledger.TypeIn, ItemName: "Keyboard Mechanical", Quantity: 25, Price: 450_000},
		{Code: "OUT-20231024-G7H8", Type: ledger.TypeOut, ItemName: "Mouse Logitech", Quantity: 4, Price: 150_000},
		{Code: "IN-20231023-I9J0", Type: ledger.TypeIn, ItemName: "Monitor LG", Quantity: 5, Price: 2_000_000},
	}
}

func TestSummarize(t *testing.T) {
	got := ledger.Summarize(testLedger())

	// In/out totals count units; buy/sell totals sum quantity*price.
	assert.Equal(t, int64(30), got.TotalIn)
	assert.Equal(t, int64(4), got.TotalOut)
	assert.Equal(t, int64(1_500_000), got.TotalBuyValue)
	assert.Equal(t, int64(15_000_000), got.TotalSellValue)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, ledger.Summary{}, ledger.Summarize(nil))
}

func TestFilter(t *testing.T) {
	txs := testLedger()

	type testCase struct {
		name      string
		tab       ledger.Tab
		query     string
		wantCodes []string
	}

	tests := []testCase{
		{
			name:      "OverviewNoQuery",
			tab:       ledger.TabOverview,
			wantCodes: []string{"INV-20231027-A1B2", "BUY-20231026-C3D4", "IN-20231025-E5F6", "OUT-20231024-G7H8", "IN-20231023-I9J0"},
		},
		{
			name:      "TabRestriction",
			tab:       ledger.TabIn,
			wantCodes: []string{"IN-20231025-E5F6", "IN-20231023-I9J0"},
		},
		{
			name:      "QueryMatchesItemName",
			tab:       ledger.TabOverview,
			query:     "mouse",
			wantCodes: []string{"BUY-20231026-C3D4", "OUT-20231024-G7H8"},
		},
		{
			name:      "QueryMatchesCode",
			tab:       ledger.TabOverview,
			query:     "inv-2023",
			wantCodes: []string{"INV-20231027-A1B2"},
		},
		{
			name:      "TabAndQueryCombine",
			tab:       ledger.TabIn,
			query:     "monitor",
			wantCodes: []string{"IN-20231023-I9J0"},
		},
		{
			name:      "WhitespaceQueryIgnored",
			tab:       ledger.TabSell,
			query:     "   ",
			wantCodes: []string{"INV-20231027-A1B2"},
		},
		{
			name:      "NoMatch",
			tab:       ledger.TabOverview,
			query:     "printer",
			wantCodes: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ledger.Filter(txs, tt.tab, tt.query)

			codes := make([]string, 0, len(got))
			for _, tx := range got {
				codes = append(codes, tx.Code)
			}

			assert.Equal(t, tt.wantCodes, codes)
		})
	}
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	txs := testLedger()
	before := make([]*ledger.Transaction, len(txs))
	copy(before, txs)

	ledger.Filter(txs, ledger.TabBuy, "mouse")

	assert.Equal(t, before, txs)
}

func TestTab_Valid(t *testing.T) {
	assert.True(t, ledger.TabOverview.Valid())
	assert.True(t, ledger.TabSell.Valid())
	assert.False(t, ledger.Tab("expenses").Valid())
}
