package normalizing

import (
	"errors"
	"fmt"
	"strings"
)

// Erros da normalização
var (
	// ErrMissingColumns indica que uma coluna obrigatória não foi encontrada no cabeçalho
	ErrMissingColumns = errors.New("colunas obrigatórias ausentes")
	// ErrEmptyInput indica um arquivo sem cabeçalho
	ErrEmptyInput = errors.New("arquivo CSV vazio")
	// ErrReadCSV indica uma falha de leitura que não pertence a uma linha específica
	ErrReadCSV = errors.New("erro ao ler o CSV")
)

// Motivos de descarte de linha
const (
	ReasonInvalidDate   = "fecha inválida"
	ReasonEmptyProduct  = "producto vacío"
	ReasonInvalidAmount = "monto de venta inválido"
	ReasonMalformedRow  = "fila mal formada"
)

// SchemaError é retornado quando, depois da reconciliação de aliases, faltam colunas obrigatórias
type SchemaError struct {
	Missing []string // Colunas canônicas ausentes, na ordem canônica
}

// Error implementa a interface error com a mensagem exibida ao usuário
func (e *SchemaError) Error() string {
	if len(e.Missing) == 1 {
		return fmt.Sprintf("Columna requerida '%s' no encontrada en el CSV", e.Missing[0])
	}
	return fmt.Sprintf("Columnas requeridas no encontradas en el CSV: %s", strings.Join(e.Missing, ", "))
}

// Unwrap retorna o erro base
func (e *SchemaError) Unwrap() error {
	return ErrMissingColumns
}

// NewSchemaError cria um novo SchemaError
func NewSchemaError(missing []string) *SchemaError {
	return &SchemaError{Missing: missing}
}

// IsSchemaError verifica se o erro é de colunas ausentes
func IsSchemaError(err error) bool {
	return errors.Is(err, ErrMissingColumns)
}
