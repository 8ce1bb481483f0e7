package view

import (
	"time"

	"github.com/rizkyhp/gudangpro/internal/ledger"
)

// FormatDate formats a timestamp for list rows.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

var typeLabels = map[ledger.Type]string{
	ledger.TypeIn:   "Barang Masuk",
	ledger.TypeOut:  "Barang Keluar",
	ledger.TypeBuy:  "Pembelian",
	ledger.TypeSell: "Penjualan",
}

// TypeLabel returns the Indonesian display label for a transaction type.
func TypeLabel(t ledger.Type) string {
	return typeLabels[t]
}
