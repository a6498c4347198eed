package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/reminder-return-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	sentAtLayout = "2006-01-02 15:04:05"
	sheetName    = "Retornos"
)

// Colunas do CSV seguem os nomes usados pelos consumidores da planilha antiga
var csvHeader = []string{
	"mes_referencia",
	"placa",
	"nome",
	"telefone",
	"data_envio",
	"retornou",
	"qtd_retornos",
	"valor_gerado",
	"dias_ate_retorno",
}

var xlsxHeader = []string{
	"Mês",
	"Cliente",
	"Placa",
	"Telefone",
	"Data Envio",
	"Retornou?",
	"Qtd. Visitas",
	"Valor Gerado (R$)",
	"Dias até Retorno",
}

// WriteCSV escreve os registros separados por vírgula, na ordem recebida
func WriteCSV(w io.Writer, records []domain.AnalysisRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return errors.Wrap(err, "erro ao escrever cabeçalho do CSV")
	}

	for _, record := range records {
		days := ""
		if record.DaysToFirstReturn != nil {
			days = strconv.Itoa(*record.DaysToFirstReturn)
		}

		row := []string{
			record.Period,
			record.Identifier,
			record.CustomerName,
			record.Phone,
			record.SentAt.Format(sentAtLayout),
			strconv.FormatBool(record.Returned),
			strconv.Itoa(record.ReturnCount),
			record.TotalValueGenerated.StringFixed(2),
			days,
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrapf(err, "erro ao escrever registro %s/%s", record.Period, record.Identifier)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteXLSX gera uma planilha com os registros, com datas e valores tipados
func WriteXLSX(w io.Writer, records []domain.AnalysisRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return errors.Wrap(err, "erro ao renomear planilha")
	}

	if err := f.SetSheetRow(sheetName, "A1", &xlsxHeader); err != nil {
		return errors.Wrap(err, "erro ao escrever cabeçalho da planilha")
	}

	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		returned := "Não"
		if record.Returned {
			returned = "Sim"
		}

		var days any
		if record.DaysToFirstReturn != nil {
			days = *record.DaysToFirstReturn
		}

		row := []any{
			record.Period,
			record.CustomerName,
			record.Identifier,
			record.Phone,
			record.SentAt,
			returned,
			record.ReturnCount,
			record.TotalValueGenerated.InexactFloat64(),
			days,
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return errors.Wrapf(err, "erro ao escrever registro %s/%s", record.Period, record.Identifier)
		}
	}

	if err := f.SetColWidth(sheetName, "B", "B", 30); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "E", "E", 18); err != nil {
		return err
	}

	return f.Write(w)
}
