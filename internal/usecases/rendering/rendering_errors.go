package rendering

import (
	"errors"
	"fmt"
)

// Erros de renderização
var (
	ErrRender        = errors.New("erro ao renderizar o documento")
	ErrChartRender   = errors.New("erro ao desenhar o gráfico")
	ErrEmptyDocument = errors.New("documento sem seções")
)

// RenderError indica que o documento não pôde ser montado. Os resultados das etapas
// anteriores continuam válidos e a renderização pode ser repetida.
type RenderError struct {
	Err     error  // Erro base
	Section string // Seção em que a falha ocorreu (quando aplicável)
	Cause   error  // Erro original da biblioteca
}

// Error implementa a interface error
func (e *RenderError) Error() string {
	msg := e.Err.Error()
	if e.Section != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Section)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap retorna o erro base e a causa
func (e *RenderError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// NewRenderError cria um novo RenderError
func NewRenderError(err error, section string, cause error) *RenderError {
	return &RenderError{
		Err:     err,
		Section: section,
		Cause:   cause,
	}
}
