package returning

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
		ok       bool
	}{
		{name: "texto com vírgula decimal", input: "1654,30", expected: "1654.30", ok: true},
		{name: "texto com prefixo de moeda", input: "R$ 50,00", expected: "50.00", ok: true},
		{name: "texto com espaços", input: "  12,5 ", expected: "12.5", ok: true},
		{name: "texto com ponto decimal", input: "99.90", expected: "99.90", ok: true},
		{name: "float", input: 1654.3, expected: "1654.3", ok: true},
		{name: "float32", input: float32(2.5), expected: "2.5", ok: true},
		{name: "inteiro", input: 200, expected: "200", ok: true},
		{name: "int64", input: int64(-15), expected: "-15", ok: true},
		{name: "uint", input: uint(7), expected: "7", ok: true},
		{name: "decimal", input: decimal.RequireFromString("10.10"), expected: "10.10", ok: true},
		{name: "texto vazio", input: "", expected: "0", ok: false},
		{name: "somente moeda", input: "R$ ", expected: "0", ok: false},
		{name: "nil", input: nil, expected: "0", ok: false},
		{name: "texto inválido", input: "abc", expected: "0", ok: false},
		{name: "separador de milhar não suportado", input: "1.654,30", expected: "0", ok: false},
		{name: "NaN", input: math.NaN(), expected: "0", ok: false},
		{name: "infinito", input: math.Inf(1), expected: "0", ok: false},
		{name: "tipo não suportado", input: true, expected: "0", ok: false},
		{name: "ponteiro nil", input: (*string)(nil), expected: "0", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseValue(tt.input)

			assert.Equal(t, tt.ok, ok)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(got), "esperado %s, obtido %s", tt.expected, got)
		})
	}
}

func TestParseValue_PointerToString(t *testing.T) {
	value := "R$ 1,99"

	got, ok := ParseValue(&value)

	assert.True(t, ok)
	assert.True(t, decimal.RequireFromString("1.99").Equal(got))
}

func TestParseIssueDate(t *testing.T) {
	native := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    any
		expected time.Time
		ok       bool
	}{
		{name: "dia/mês/ano", input: "15/03/2024", expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), ok: true},
		{name: "sem zero à esquerda", input: "5/3/2024", expected: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), ok: true},
		{name: "componentes com espaços", input: " 05 / 03 / 2024 ", expected: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), ok: true},
		{name: "data nativa", input: native, expected: native, ok: true},
		{name: "ponteiro para data nativa", input: &native, expected: native, ok: true},
		{name: "formato ISO não suportado", input: "2024-03-15", ok: false},
		{name: "nil", input: nil, ok: false},
		{name: "data inexistente", input: "31/02/2024", ok: false},
		{name: "mês inválido", input: "10/13/2024", ok: false},
		{name: "componente não numérico", input: "aa/03/2024", ok: false},
		{name: "quantidade de componentes errada", input: "15/03", ok: false},
		{name: "quatro componentes", input: "15/03/2024/1", ok: false},
		{name: "texto vazio", input: "", ok: false},
		{name: "data zero", input: time.Time{}, ok: false},
		{name: "número", input: 45366.0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseIssueDate(tt.input)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.expected.Equal(got), "esperado %s, obtido %s", tt.expected, got)
			} else {
				assert.True(t, got.IsZero())
			}
		})
	}
}

func TestParseSentAt(t *testing.T) {
	got, ok := ParseSentAt("2024-03-01 10:00:00")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), got)

	for _, invalid := range []string{"", "01/03/2024 10:00:00", "2024-03-01", "2024-03-01T10:00:00"} {
		_, ok := ParseSentAt(invalid)
		assert.False(t, ok, invalid)
	}
}

func TestDaysBetween(t *testing.T) {
	sentAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 4, daysBetween(sentAt, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, daysBetween(sentAt, time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)))
	assert.Equal(t, 31, daysBetween(sentAt, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)))

	// Venda registrada em outro fuso, mas posterior ao envio, nunca gera dias negativos
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	lateSent := time.Date(2024, 3, 2, 0, 30, 0, 0, time.UTC)
	sale := time.Date(2024, 3, 1, 22, 0, 0, 0, saoPaulo)
	assert.True(t, sale.After(lateSent))
	assert.Equal(t, 0, daysBetween(lateSent, sale))
}
