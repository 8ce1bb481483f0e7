package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	enc "github.com/rizkyhp/gudangpro/internal/encoding"
	"github.com/rizkyhp/gudangpro/internal/ledger"
)

// Legacy spreadsheet column headers.
const (
	colDate     = "Tanggal"
	colType     = "Jenis"
	colItem     = "Nama Barang"
	colQty      = "Jumlah"
	colPrice    = "Harga"
	colNotes    = "Keterangan"
	colCustomer = "Customer"
	colSupplier = "Supplier"
)

// typeLabels maps the Indonesian labels used in the old sheets to
// transaction types.
var typeLabels = map[string]ledger.Type{
	"masuk":     ledger.TypeIn,
	"keluar":    ledger.TypeOut,
	"beli":      ledger.TypeBuy,
	"pembelian": ledger.TypeBuy,
	"jual":      ledger.TypeSell,
	"penjualan": ledger.TypeSell,
}

// LegacyParser reads the semicolon-separated CSV exported from the old
// warehouse spreadsheet. The header row is located by its column names,
// so leading title rows are tolerated.
type LegacyParser struct{}

func NewLegacyParser() *LegacyParser {
	return &LegacyParser{}
}

func (p *LegacyParser) Parse(r io.Reader) ([]ledger.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx := findHeader(rows)
	if cols == nil {
		return nil, fmt.Errorf("no header row found: expected columns %q, %q, %q, %q, %q",
			colDate, colType, colItem, colQty, colPrice)
	}

	return parseRows(cols, rows[headerIdx+1:], headerIdx)
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

func findHeader(rows [][]string) (colIndex, int) {
	required := []string{colDate, colType, colItem, colQty, colPrice}

	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		matched := true

		for _, name := range required {
			if _, ok := cols[name]; !ok {
				matched = false
				break
			}
		}

		if matched {
			return cols, rowIdx
		}
	}

	return nil, 0
}

func parseRows(cols colIndex, rows [][]string, headerRowIdx int) ([]ledger.CreateParams, error) {
	var params []ledger.CreateParams

	for i, row := range rows {
		rowNum := headerRowIdx + i + 2 // 1-based, after the header

		if isBlank(row) {
			continue
		}

		date, err := parseDate(cellValue(row, cols, colDate))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		txType, err := parseType(cellValue(row, cols, colType))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		item := cellValue(row, cols, colItem)
		if item == "" {
			return nil, fmt.Errorf("row %d: missing item name", rowNum)
		}

		qty, err := strconv.ParseInt(cellValue(row, cols, colQty), 10, 64)
		if err != nil || qty < 1 {
			return nil, fmt.Errorf("row %d: invalid quantity %q", rowNum, cellValue(row, cols, colQty))
		}

		price, err := parseRupiah(cellValue(row, cols, colPrice))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid price %q", rowNum, cellValue(row, cols, colPrice))
		}

		params = append(params, ledger.CreateParams{
			Type:     txType,
			ItemName: item,
			Quantity: qty,
			Price:    price,
			Notes:    cellValue(row, cols, colNotes),
			Customer: cellValue(row, cols, colCustomer),
			Supplier: cellValue(row, cols, colSupplier),
			Date:     date,
		})
	}

	return params, nil
}

var dateLayouts = []string{"02/01/2006", "2/1/2006", "02-01-2006", "2006-01-02"}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

func parseType(s string) (ledger.Type, error) {
	if t, ok := typeLabels[strings.ToLower(s)]; ok {
		return t, nil
	}

	// Newer exports already use the short type values.
	if t := ledger.Type(strings.ToLower(s)); t.Valid() {
		return t, nil
	}

	return "", fmt.Errorf("unknown transaction type %q", s)
}

// parseRupiah parses an Indonesian-formatted amount into whole rupiah.
// Examples: "1.500.000" -> 1500000, "Rp 12.500" -> 12500, "9000" -> 9000.
// A decimal comma, when present, is rounded away since rupiah amounts
// are whole.
func parseRupiah(s string) (int64, error) {
	clean := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "Rp"))
	clean = strings.ReplaceAll(clean, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")

	if clean == "" {
		return 0, fmt.Errorf("empty amount")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	if d.IsNegative() {
		return 0, fmt.Errorf("negative amount")
	}

	return d.Round(0).IntPart(), nil
}

func cellValue(row []string, cols colIndex, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
