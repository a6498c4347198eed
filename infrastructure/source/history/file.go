package history

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/reminder-return-api/internal/domain"
)

// FileLoader lê o histórico de envios do arquivo JSON gerado pelo disparador de lembretes:
// {"2025-12": {"ABC1234": {"nome": "...", "fone": "...", "data_envio": "2025-12-01 09:30:00"}}}
type FileLoader struct {
	path string
}

func NewFileLoader(path string) *FileLoader {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &FileLoader{path: path}
}

func (l *FileLoader) Source() string {
	return l.path
}

func (l *FileLoader) LoadHistory(ctx context.Context) (*domain.SendHistory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.WithField("path", l.path).Warn("Histórico de envios não encontrado, considerando vazio")
			return domain.NewSendHistory(), nil
		}
		return nil, errors.Wrapf(err, "erro ao ler histórico %s", l.path)
	}

	history, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao decodificar histórico %s", l.path)
	}

	logrus.WithFields(logrus.Fields{
		"path":    l.path,
		"periods": len(history.Periods()),
		"events":  history.Len(),
	}).Debug("Histórico de envios carregado")

	return history, nil
}

// Decode interpreta o JSON do histórico preservando a ordem de períodos e placas do documento.
// Campos ausentes viram texto vazio e campos desconhecidos são ignorados.
// Como em um objeto JSON comum, a última ocorrência de uma chave repetida prevalece.
func Decode(data []byte) (*domain.SendHistory, error) {
	history := domain.NewSendHistory()
	if len(bytes.TrimSpace(data)) == 0 {
		return history, nil
	}

	iter := jsoniter.ConfigCompatibleWithStandardLibrary.BorrowIterator(data)
	defer jsoniter.ConfigCompatibleWithStandardLibrary.ReturnIterator(iter)

	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		if iter.ReadNil(); iter.Error != nil && iter.Error != io.EOF {
			return nil, iter.Error
		}
		return history, nil
	case jsoniter.ObjectValue:
	default:
		return nil, fmt.Errorf("histórico deve ser um objeto indexado por período")
	}

	seen := make(map[string]bool)
	iter.ReadMapCB(func(it *jsoniter.Iterator, period string) bool {
		if it.WhatIsNext() != jsoniter.ObjectValue {
			it.ReportError("decode", fmt.Sprintf("período %q deve ser um objeto indexado por placa", period))
			return false
		}

		// Chave repetida: vale o último objeto, na posição da primeira ocorrência
		if seen[period] {
			history.ResetPeriod(period)
		}
		seen[period] = true

		return it.ReadMapCB(func(it *jsoniter.Iterator, plate string) bool {
			if it.WhatIsNext() != jsoniter.ObjectValue {
				it.ReportError("decode", fmt.Sprintf("envio %s/%s deve ser um objeto", period, plate))
				return false
			}

			event := domain.SendEvent{Period: period, Identifier: plate}
			ok := it.ReadMapCB(func(it *jsoniter.Iterator, field string) bool {
				switch field {
				case "nome":
					event.CustomerName = readText(it)
				case "fone":
					event.Phone = readText(it)
				case "data_envio":
					event.SentAt = readText(it)
				default:
					it.Skip()
				}
				return true
			})

			history.Add(event)
			return ok
		})
	})

	if iter.Error != nil && iter.Error != io.EOF {
		return nil, iter.Error
	}

	return history, nil
}

// readText aceita texto, número ou null; outros tipos são descartados
func readText(it *jsoniter.Iterator) string {
	switch it.WhatIsNext() {
	case jsoniter.StringValue:
		return it.ReadString()
	case jsoniter.NumberValue:
		return it.ReadNumber().String()
	case jsoniter.BoolValue:
		return strconv.FormatBool(it.ReadBool())
	case jsoniter.NilValue:
		it.ReadNil()
		return ""
	default:
		it.Skip()
		return ""
	}
}
