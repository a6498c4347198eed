package ledger

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/reminder-return-api/internal/domain"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

// ErrMissingColumn indica que o cabeçalho da planilha não tem uma coluna obrigatória
var ErrMissingColumn = errors.New("coluna obrigatória ausente na planilha de vendas")

const DefaultSheet = "Sheet1"

// ExcelLoader lê a planilha de vendas exportada pelo sistema da loja
type ExcelLoader struct {
	path  string
	sheet string
}

func NewExcelLoader(path, sheet string) *ExcelLoader {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if sheet == "" {
		sheet = DefaultSheet
	}
	return &ExcelLoader{path: path, sheet: sheet}
}

func (l *ExcelLoader) Source() string {
	return l.path + "#" + l.sheet
}

func (l *ExcelLoader) LoadSales(ctx context.Context) ([]domain.SaleRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		logrus.WithField("path", l.path).Warn("Planilha de vendas não encontrada, considerando vazia")
		return []domain.SaleRecord{}, nil
	}

	f, err := excelize.OpenFile(l.path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir planilha %s", l.path)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar planilha de vendas")
		}
	}()

	if idx, err := f.GetSheetIndex(l.sheet); err != nil || idx < 0 {
		return nil, errors.Errorf("aba %q não encontrada em %s", l.sheet, l.path)
	}

	rows, err := f.GetRows(l.sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler aba %q", l.sheet)
	}

	if len(rows) == 0 {
		return []domain.SaleRecord{}, nil
	}

	columns, err := resolveColumns(rows[0])
	if err != nil {
		return nil, err
	}

	reader := newCellReader(f, l.sheet)
	sales := make([]domain.SaleRecord, 0, len(rows)-1)

	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		if i%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		// Linha 1 é o cabeçalho
		rowNumber := i + 2
		sales = append(sales, domain.SaleRecord{
			Identification: optionalText(cellAt(row, columns[domain.ColumnIdentification])),
			Observation:    optionalText(cellAt(row, columns[domain.ColumnObservation])),
			IssuedAt:       reader.issuedAt(row, columns[domain.ColumnIssuedAt], rowNumber),
			TotalAmount:    reader.amount(row, columns[domain.ColumnTotalAmount], rowNumber),
			CustomerName:   strings.TrimSpace(cellAt(row, columns[domain.ColumnCustomer])),
		})
	}

	logrus.WithFields(logrus.Fields{
		"path":  l.path,
		"sheet": l.sheet,
		"sales": len(sales),
	}).Debug("Planilha de vendas carregada")

	return sales, nil
}

// resolveColumns localiza as colunas obrigatórias pelo nome, ignorando caixa,
// espaços nas pontas e a forma de composição dos acentos
func resolveColumns(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		key := normalizeHeader(name)
		if _, exists := index[key]; !exists {
			index[key] = i
		}
	}

	columns := make(map[string]int, len(domain.RequiredSalesColumns))
	var missing []string
	for _, column := range domain.RequiredSalesColumns {
		i, ok := index[normalizeHeader(column)]
		if !ok {
			missing = append(missing, column)
			continue
		}
		columns[column] = i
	}

	if len(missing) > 0 {
		return nil, errors.Wrapf(ErrMissingColumn, "%s", strings.Join(missing, ", "))
	}

	return columns, nil
}

func normalizeHeader(name string) string {
	return norm.NFC.String(strings.ToUpper(strings.TrimSpace(name)))
}

func cellAt(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}

func optionalText(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}

func isBlank(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}

// cellReader recupera o tipo de origem das células de data e valor
type cellReader struct {
	file       *excelize.File
	sheet      string
	date1904   bool
	dateStyles map[int]bool
}

func newCellReader(f *excelize.File, sheet string) *cellReader {
	r := &cellReader{
		file:       f,
		sheet:      sheet,
		dateStyles: make(map[int]bool),
	}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		r.date1904 = *props.Date1904
	}
	return r
}

// issuedAt devolve time.Time para células numéricas formatadas como data,
// float64 para outros números e o texto original nos demais casos
func (r *cellReader) issuedAt(row []string, col, rowNumber int) any {
	raw := cellAt(row, col)
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	cell, err := excelize.CoordinatesToCellName(col+1, rowNumber)
	if err != nil {
		return raw
	}

	serial, numeric := r.numeric(cell, raw)
	if !numeric {
		return raw
	}

	if r.isDate(cell) {
		t, err := excelize.ExcelDateToTime(serial, r.date1904)
		if err == nil {
			return t
		}
	}

	return serial
}

// amount devolve float64 para células numéricas e o texto original nos demais casos
func (r *cellReader) amount(row []string, col, rowNumber int) any {
	raw := cellAt(row, col)
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	cell, err := excelize.CoordinatesToCellName(col+1, rowNumber)
	if err != nil {
		return raw
	}

	if value, ok := r.numeric(cell, raw); ok {
		return value
	}
	return raw
}

func (r *cellReader) numeric(cell, raw string) (float64, bool) {
	cellType, err := r.file.GetCellType(r.sheet, cell)
	if err != nil {
		return 0, false
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return 0, false
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

func (r *cellReader) isDate(cell string) bool {
	styleID, err := r.file.GetCellStyle(r.sheet, cell)
	if err != nil || styleID == 0 {
		return false
	}

	if isDate, ok := r.dateStyles[styleID]; ok {
		return isDate
	}

	isDate := false
	if style, err := r.file.GetStyle(styleID); err == nil {
		isDate = isDateNumFmt(style.NumFmt)
		if !isDate && style.CustomNumFmt != nil {
			isDate = isDateFormatCode(*style.CustomNumFmt)
		}
	}

	r.dateStyles[styleID] = isDate
	return isDate
}

// isDateNumFmt cobre os formatos embutidos de data e data/hora
func isDateNumFmt(id int) bool {
	return (id >= 14 && id <= 22) || (id >= 45 && id <= 47)
}

// isDateFormatCode detecta dia ou ano em um formato customizado, fora de trechos literais
func isDateFormatCode(code string) bool {
	var (
		inQuotes  bool
		inBracket bool
	)

	for _, c := range strings.ToLower(code) {
		switch {
		case c == '"':
			inQuotes = !inQuotes
		case inQuotes:
		case c == '[':
			inBracket = true
		case c == ']':
			inBracket = false
		case inBracket:
		case c == 'd' || c == 'y':
			return true
		}
	}

	return false
}
