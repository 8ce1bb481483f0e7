package document

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Indonesian)

// FormatRupiah renders an amount with the Indonesian thousands
// separator and currency prefix: 1500000 -> "Rp 1.500.000".
func FormatRupiah(v int64) string {
	return printer.Sprintf("Rp %d", v)
}

// FormatQuantity renders a unit count with Indonesian grouping.
func FormatQuantity(v int64) string {
	return printer.Sprintf("%d", v)
}

var monthNames = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatDate renders a day/month-name/year date the way the printed
// documents show it: "27 Oktober 2023".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%02d %s %d", t.Day(), monthNames[t.Month()-1], t.Year())
}
