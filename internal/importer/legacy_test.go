package importer_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rizkyhp/gudangpro/internal/importer"
	"github.com/rizkyhp/gudangpro/internal/ledger"
)

func TestLegacyParser_Parse(t *testing.T) {
	input := strings.Join([]string{
		"Tanggal;Jenis;Nama Barang;Jumlah;Harga;Keterangan;Customer;Supplier",
		"27/10/2023;Jual;Laptop ASUS;2;Rp 7.500.000;garansi 1 tahun;PT Maju Jaya;",
		"26/10/2023;Beli;Mouse Logitech;10;150.000;;;CV Sumber Rejeki",
		"25/10/2023;Masuk;Keyboard Mechanical;25;450000;;;",
	}, "\n")

	p := importer.NewLegacyParser()
	got, err := p.Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, got, 3)

	sell := got[0]
	assert.Equal(t, ledger.TypeSell, sell.Type)
	assert.Equal(t, "Laptop ASUS", sell.ItemName)
	assert.Equal(t, int64(2), sell.Quantity)
	assert.Equal(t, int64(7_500_000), sell.Price)
	assert.Equal(t, "garansi 1 tahun", sell.Notes)
	assert.Equal(t, "PT Maju Jaya", sell.Customer)
	assert.Equal(t, time.Date(2023, 10, 27, 0, 0, 0, 0, time.UTC), sell.Date)

	buy := got[1]
	assert.Equal(t, ledger.TypeBuy, buy.Type)
	assert.Equal(t, int64(150_000), buy.Price)
	assert.Equal(t, "CV Sumber Rejeki", buy.Supplier)

	in := got[2]
	assert.Equal(t, ledger.TypeIn, in.Type)
	assert.Equal(t, int64(450_000), in.Price)
}

func TestLegacyParser_LeadingTitleRows(t *testing.T) {
	input := strings.Join([]string{
		"Laporan Gudang 2023;;;;;",
		";;;;;",
		"Tanggal;Jenis;Nama Barang;Jumlah;Harga;Keterangan",
		"01/02/2023;Keluar;Monitor LG;3;2.000.000;",
	}, "\n")

	p := importer.NewLegacyParser()
	got, err := p.Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, ledger.TypeOut, got[0].Type)
	assert.Equal(t, "Monitor LG", got[0].ItemName)
}

func TestLegacyParser_SkipsBlankRows(t *testing.T) {
	input := strings.Join([]string{
		"Tanggal;Jenis;Nama Barang;Jumlah;Harga",
		"01/02/2023;Masuk;Monitor LG;3;2000000",
		";;;;",
		"02/02/2023;Keluar;Monitor LG;1;2000000",
	}, "\n")

	p := importer.NewLegacyParser()
	got, err := p.Parse(strings.NewReader(input))

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestLegacyParser_ShortTypeValues(t *testing.T) {
	input := strings.Join([]string{
		"Tanggal;Jenis;Nama Barang;Jumlah;Harga",
		"2023-02-01;sell;Laptop ASUS;1;7500000",
	}, "\n")

	p := importer.NewLegacyParser()
	got, err := p.Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, ledger.TypeSell, got[0].Type)
}

func TestLegacyParser_Errors(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		wantErr string
	}

	tests := []testCase{
		{
			name:    "NoHeader",
			input:   "a;b;c\n1;2;3\n",
			wantErr: "no header row found",
		},
		{
			name: "BadDate",
			input: "Tanggal;Jenis;Nama Barang;Jumlah;Harga\n" +
				"31/31/2023;Masuk;Monitor LG;3;2000000\n",
			wantErr: "row 2",
		},
		{
			name: "UnknownType",
			input: "Tanggal;Jenis;Nama Barang;Jumlah;Harga\n" +
				"01/02/2023;Pinjam;Monitor LG;3;2000000\n",
			wantErr: "unknown transaction type",
		},
		{
			name: "MissingItemName",
			input: "Tanggal;Jenis;Nama Barang;Jumlah;Harga\n" +
				"01/02/2023;Masuk;;3;2000000\n",
			wantErr: "missing item name",
		},
		{
			name: "ZeroQuantity",
			input: "Tanggal;Jenis;Nama Barang;Jumlah;Harga\n" +
				"01/02/2023;Masuk;Monitor LG;0;2000000\n",
			wantErr: "invalid quantity",
		},
		{
			name: "NegativePrice",
			input: "Tanggal;Jenis;Nama Barang;Jumlah;Harga\n" +
				"01/02/2023;Masuk;Monitor LG;3;-2000000\n",
			wantErr: "invalid price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := importer.NewLegacyParser()

			_, err := p.Parse(strings.NewReader(tt.input))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLegacyParser_RupiahFormats(t *testing.T) {
	type testCase struct {
		raw  string
		want int64
	}

	tests := []testCase{
		{raw: "1.500.000", want: 1_500_000},
		{raw: "Rp 12.500", want: 12_500},
		{raw: "Rp12.500", want: 12_500},
		{raw: "9000", want: 9000},
		{raw: "2.000.000,00", want: 2_000_000},
	}

	p := importer.NewLegacyParser()

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			input := "Tanggal;Jenis;Nama Barang;Jumlah;Harga\n" +
				"01/02/2023;Masuk;Monitor LG;3;" + tt.raw + "\n"

			got, err := p.Parse(strings.NewReader(input))

			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Price)
		})
	}
}

func TestService_Import_UnknownSource(t *testing.T) {
	svc := importer.NewService()

	_, err := svc.Import(importer.Source("sap"), strings.NewReader(""))

	assert.Error(t, err)
}
