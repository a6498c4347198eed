package domain

// Colunas obrigatórias da planilha de vendas
const (
	ColumnIdentification = "IDENTIFICAÇÃO"
	ColumnObservation    = "OBSERVAÇÃO"
	ColumnIssuedAt       = "EMISSÃO"
	ColumnTotalAmount    = "TOTAL VENDA"
	ColumnCustomer       = "CLIENTE"
)

// RequiredSalesColumns lista as colunas que a análise de retorno precisa encontrar no cabeçalho
var RequiredSalesColumns = []string{
	ColumnIdentification,
	ColumnObservation,
	ColumnIssuedAt,
	ColumnTotalAmount,
	ColumnCustomer,
}

// SaleRecord é uma linha da planilha de vendas.
// IssuedAt e TotalAmount mantêm o tipo de origem (string, número, data ou nil)
// e só são normalizados durante a análise.
type SaleRecord struct {
	Identification *string
	Observation    *string
	IssuedAt       any
	TotalAmount    any
	CustomerName   string
}
