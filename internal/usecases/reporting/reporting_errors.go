package reporting

import (
	"errors"
	"fmt"
)

// Erros específicos do contexto de relatórios
var (
	// Erros de validação
	ErrOwnerRequired       = errors.New("owner ID is required")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrEmptyFile           = errors.New("empty file")
	ErrFileTooLarge        = errors.New("file too large")

	// Erros de consulta
	ErrSourceFileNotFound = errors.New("source file not found")
	ErrReportNotFound     = errors.New("report not found")
	ErrFileProcessing     = errors.New("source file is being processed")

	// Erros de infraestrutura
	ErrDatabaseOperation = errors.New("database operation error")
	ErrStorageOperation  = errors.New("storage operation error")
	ErrGenerateID        = errors.New("error generating ID")
)

// ReportError é um erro com contexto adicional para arquivos e relatórios
type ReportError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	EntityID string // ID do arquivo ou relatório envolvido (quando aplicável)
	Details  string // Detalhes adicionais
	Cause    error  // Erro original (quando aplicável)
}

// Error implementa a interface error
func (e *ReportError) Error() string {
	msg := e.Err.Error()
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap retorna o erro base e a causa
func (e *ReportError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// NewReportError cria um novo ReportError
func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewReportErrorWithID cria um novo ReportError com o ID da entidade e o erro original
func NewReportErrorWithID(err error, code string, entityID string, cause error) *ReportError {
	return &ReportError{
		Err:      err,
		Code:     code,
		EntityID: entityID,
		Cause:    cause,
	}
}
