package domain

// ReturnStatus filtra os registros pela situação de retorno
type ReturnStatus string

const (
	ReturnStatusAll         ReturnStatus = "all"
	ReturnStatusReturned    ReturnStatus = "returned"
	ReturnStatusNotReturned ReturnStatus = "not_returned"
)

// AnalysisFilters são os filtros aceitos pela listagem de retornos
type AnalysisFilters struct {
	Status ReturnStatus
	Period string // vazio = todos os períodos
	Search string // busca por nome do cliente ou placa
}
