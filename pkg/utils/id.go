package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	// Tamanho das colunas id VARCHAR(21)
	idLength = 21
)

func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
