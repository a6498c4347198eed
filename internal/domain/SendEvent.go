package domain

// SentAtLayout é o formato em que o histórico grava a data de envio da mensagem
const SentAtLayout = "2006-01-02 15:04:05"

// SendEvent representa uma mensagem de lembrete enviada a um cliente em um período
type SendEvent struct {
	Period       string `json:"period"`
	Identifier   string `json:"identifier"` // Placa do veículo
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	SentAt       string `json:"sent_at"` // Formato 2006-01-02 15:04:05, validado apenas na análise
}

// SendHistory agrupa os envios por período e, dentro de cada período, por placa.
// A ordem de inserção de períodos e placas é preservada.
type SendHistory struct {
	periods []string
	events  map[string]*periodEvents
}

type periodEvents struct {
	identifiers []string
	byID        map[string]SendEvent
}

func NewSendHistory() *SendHistory {
	return &SendHistory{
		events: make(map[string]*periodEvents),
	}
}

// Add registra um envio. Uma placa repetida no mesmo período substitui os dados
// anteriores mantendo a posição original.
func (h *SendHistory) Add(event SendEvent) {
	if h.events == nil {
		h.events = make(map[string]*periodEvents)
	}

	pe, ok := h.events[event.Period]
	if !ok {
		pe = &periodEvents{byID: make(map[string]SendEvent)}
		h.events[event.Period] = pe
		h.periods = append(h.periods, event.Period)
	}

	if _, exists := pe.byID[event.Identifier]; !exists {
		pe.identifiers = append(pe.identifiers, event.Identifier)
	}
	pe.byID[event.Identifier] = event
}

// ResetPeriod descarta os envios de um período já lido, mantendo sua posição.
// Período inexistente não é registrado.
func (h *SendHistory) ResetPeriod(period string) {
	if h == nil {
		return
	}
	if pe, ok := h.events[period]; ok {
		pe.identifiers = nil
		pe.byID = make(map[string]SendEvent)
	}
}

// Periods retorna os períodos na ordem em que foram lidos
func (h *SendHistory) Periods() []string {
	if h == nil {
		return nil
	}
	return append([]string(nil), h.periods...)
}

// Get busca o envio de uma placa em um período
func (h *SendHistory) Get(period, identifier string) (SendEvent, bool) {
	if h == nil {
		return SendEvent{}, false
	}
	pe, ok := h.events[period]
	if !ok {
		return SendEvent{}, false
	}
	event, ok := pe.byID[identifier]
	return event, ok
}

// Events achata o histórico em uma lista ordenada por (período, placa)
func (h *SendHistory) Events() []SendEvent {
	if h == nil {
		return nil
	}

	events := make([]SendEvent, 0, h.Len())
	for _, period := range h.periods {
		pe := h.events[period]
		for _, id := range pe.identifiers {
			events = append(events, pe.byID[id])
		}
	}
	return events
}

// Len retorna o total de envios em todos os períodos
func (h *SendHistory) Len() int {
	if h == nil {
		return 0
	}
	total := 0
	for _, pe := range h.events {
		total += len(pe.identifiers)
	}
	return total
}
