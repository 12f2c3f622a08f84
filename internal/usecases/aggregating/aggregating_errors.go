package aggregating

import (
	"errors"
	"fmt"
)

// ErrEmptyDataset indica que não restou nenhum registro válido para agregar
var ErrEmptyDataset = errors.New("conjunto de dados vazio")

// EmptyDatasetError carrega quantas linhas foram descartadas na normalização
type EmptyDatasetError struct {
	Dropped int
}

// Error implementa a interface error com a mensagem exibida ao usuário
func (e *EmptyDatasetError) Error() string {
	if e.Dropped > 0 {
		return fmt.Sprintf("No hay datos válidos para analizar: se descartaron %d filas", e.Dropped)
	}
	return "No hay datos válidos para analizar"
}

// Unwrap retorna o erro base
func (e *EmptyDatasetError) Unwrap() error {
	return ErrEmptyDataset
}

// NewEmptyDatasetError cria um novo EmptyDatasetError
func NewEmptyDatasetError(dropped int) *EmptyDatasetError {
	return &EmptyDatasetError{Dropped: dropped}
}
