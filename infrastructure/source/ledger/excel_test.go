package ledger

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/reminder-return-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook cria uma planilha com o cabeçalho e as linhas informadas na aba Sheet1
func writeWorkbook(t *testing.T, header []string, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for col, name := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(DefaultSheet, cell, name))
	}

	for r, row := range rows {
		for col, value := range row {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(DefaultSheet, cell, value))
		}
	}

	path := filepath.Join(t.TempDir(), "Vendas_Lubrimax.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

var defaultHeader = []string{"CLIENTE", "IDENTIFICAÇÃO", "OBSERVAÇÃO", "EMISSÃO", "TOTAL VENDA"}

func TestExcelLoader_LoadSales(t *testing.T) {
	issued := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	path := writeWorkbook(t, defaultHeader, [][]any{
		{"João", "ABC1234", nil, "05/03/2024", "R$ 150,50"},
		{"Maria", nil, "troca de óleo placa xyz9876", issued, 200.25},
		{nil, nil, nil, nil, nil},
		{"Pedro", "DEF5678", "", 45000, 99},
	})

	loader := NewExcelLoader(path, "")
	sales, err := loader.LoadSales(context.Background())
	require.NoError(t, err)
	require.Len(t, sales, 3)

	t.Run("Texto preservado", func(t *testing.T) {
		sale := sales[0]
		require.NotNil(t, sale.Identification)
		assert.Equal(t, "ABC1234", *sale.Identification)
		assert.Nil(t, sale.Observation)
		assert.Equal(t, "05/03/2024", sale.IssuedAt)
		assert.Equal(t, "R$ 150,50", sale.TotalAmount)
		assert.Equal(t, "João", sale.CustomerName)
	})

	t.Run("Data e valor numéricos", func(t *testing.T) {
		sale := sales[1]
		assert.Nil(t, sale.Identification)
		require.NotNil(t, sale.Observation)
		assert.Equal(t, "troca de óleo placa xyz9876", *sale.Observation)

		got, ok := sale.IssuedAt.(time.Time)
		require.True(t, ok, "EMISSÃO formatada como data deve virar time.Time")
		assert.True(t, issued.Equal(got))
		assert.Equal(t, 200.25, sale.TotalAmount)
	})

	t.Run("Número sem formato de data", func(t *testing.T) {
		sale := sales[2]
		assert.Nil(t, sale.Observation)
		assert.Equal(t, float64(45000), sale.IssuedAt)
		assert.Equal(t, float64(99), sale.TotalAmount)
	})
}

func TestExcelLoader_CustomDateFormat(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	for col, name := range defaultHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		require.NoError(t, f.SetCellValue(DefaultSheet, cell, name))
	}

	dateFormat := "dd/mm/yyyy"
	styleID, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFormat})
	require.NoError(t, err)

	// 45356 = 05/03/2024
	require.NoError(t, f.SetCellValue(DefaultSheet, "B2", "ABC1234"))
	require.NoError(t, f.SetCellValue(DefaultSheet, "D2", 45356))
	require.NoError(t, f.SetCellStyle(DefaultSheet, "D2", "D2", styleID))

	path := filepath.Join(t.TempDir(), "vendas.xlsx")
	require.NoError(t, f.SaveAs(path))

	sales, err := NewExcelLoader(path, DefaultSheet).LoadSales(context.Background())
	require.NoError(t, err)
	require.Len(t, sales, 1)

	got, ok := sales[0].IssuedAt.(time.Time)
	require.True(t, ok)
	assert.Equal(t, "2024-03-05", got.Format(time.DateOnly))
	assert.Nil(t, sales[0].TotalAmount)
}

func TestExcelLoader_HeaderResolution(t *testing.T) {
	// Cabeçalho fora de ordem, com espaços, minúsculas e acentos decompostos
	header := []string{" total venda ", "Cliente", "EMISSÃO", "observação", "IDENTIFICAC\u0327A\u0303O", "EXTRA"}

	path := writeWorkbook(t, header, [][]any{
		{"50,00", "Ana", "10/01/2025", "GHI0001", "ZZZ9999", "x"},
	})

	sales, err := NewExcelLoader(path, DefaultSheet).LoadSales(context.Background())
	require.NoError(t, err)
	require.Len(t, sales, 1)

	assert.Equal(t, "50,00", sales[0].TotalAmount)
	assert.Equal(t, "Ana", sales[0].CustomerName)
	assert.Equal(t, "10/01/2025", sales[0].IssuedAt)
	assert.Equal(t, "GHI0001", *sales[0].Observation)
	assert.Equal(t, "ZZZ9999", *sales[0].Identification)
}

func TestExcelLoader_Errors(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T) *ExcelLoader
		validate func(t *testing.T, sales []domain.SaleRecord, err error)
	}{
		{
			name: "Arquivo inexistente resulta em lista vazia",
			setup: func(t *testing.T) *ExcelLoader {
				return NewExcelLoader(filepath.Join(t.TempDir(), "nao_existe.xlsx"), "")
			},
			validate: func(t *testing.T, sales []domain.SaleRecord, err error) {
				require.NoError(t, err)
				assert.Empty(t, sales)
			},
		},
		{
			name: "Coluna obrigatória ausente",
			setup: func(t *testing.T) *ExcelLoader {
				path := writeWorkbook(t, []string{"CLIENTE", "IDENTIFICAÇÃO", "EMISSÃO"}, nil)
				return NewExcelLoader(path, "")
			},
			validate: func(t *testing.T, sales []domain.SaleRecord, err error) {
				assert.ErrorIs(t, err, ErrMissingColumn)
				assert.Contains(t, err.Error(), "OBSERVAÇÃO")
				assert.Contains(t, err.Error(), "TOTAL VENDA")
			},
		},
		{
			name: "Aba inexistente",
			setup: func(t *testing.T) *ExcelLoader {
				path := writeWorkbook(t, defaultHeader, nil)
				return NewExcelLoader(path, "Vendas2025")
			},
			validate: func(t *testing.T, sales []domain.SaleRecord, err error) {
				assert.Error(t, err)
				assert.NotErrorIs(t, err, ErrMissingColumn)
			},
		},
		{
			name: "Somente cabeçalho",
			setup: func(t *testing.T) *ExcelLoader {
				path := writeWorkbook(t, defaultHeader, nil)
				return NewExcelLoader(path, "")
			},
			validate: func(t *testing.T, sales []domain.SaleRecord, err error) {
				require.NoError(t, err)
				assert.Empty(t, sales)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := tt.setup(t)
			sales, err := loader.LoadSales(context.Background())
			tt.validate(t, sales, err)
		})
	}
}

func TestExcelLoader_Source(t *testing.T) {
	loader := NewExcelLoader("Vendas_Lubrimax.xlsx", "")
	assert.True(t, filepath.IsAbs(filepath.Dir(loader.Source())))
	assert.Contains(t, loader.Source(), "#Sheet1")
}

func TestIsDateFormatCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"dd/mm/yyyy", true},
		{"yyyy-mm-dd hh:mm", true},
		{"[$-416]d/m/yy", true},
		{"#,##0.00", false},
		{`"R$" #,##0.00`, false},
		{"[Red]0.00", false},
		{"hh:mm", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, isDateFormatCode(tt.code))
		})
	}
}
