package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de identificação (1000-1999)
	ErrMissingIdentity = "AUTH_001" // Cabeçalho de identidade ausente

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrFileTooLarge        = "VAL_004" // Arquivo maior que o limite de upload
	ErrUnsupportedFileType = "VAL_005" // Extensão de arquivo não suportada
	ErrMissingColumns      = "VAL_006" // Colunas obrigatórias ausentes no CSV
	ErrEmptyDataset        = "VAL_007" // Nenhuma linha válida no CSV

	// Erros de relatórios (3000-3999)
	ErrReportNotFound     = "RPT_001" // Relatório não encontrado
	ErrSourceFileNotFound = "RPT_002" // Arquivo não encontrado
	ErrReportRender       = "RPT_003" // Falha ao gerar o PDF
	ErrFileProcessing     = "RPT_004" // Arquivo em processamento
	ErrUnknownJob         = "RPT_005" // Tipo de rotina desconhecido
	ErrJobRunning         = "RPT_006" // Rotina já em andamento

	// Erros de roteamento (4000-4999)
	ErrRouteNotFound    = "RTE_001" // Rota inexistente
	ErrMethodNotAllowed = "RTE_002" // Método não suportado pela rota

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrStorageOperation  = "SRV_003" // Erro no armazenamento de arquivos
	ErrServiceDisabled   = "SRV_004" // Serviço desabilitado
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrMissingIdentity:     http.StatusUnauthorized,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrFileTooLarge:        http.StatusRequestEntityTooLarge,
	ErrUnsupportedFileType: http.StatusBadRequest,
	ErrMissingColumns:      http.StatusBadRequest,
	ErrEmptyDataset:        http.StatusBadRequest,
	ErrReportNotFound:      http.StatusNotFound,
	ErrSourceFileNotFound:  http.StatusNotFound,
	ErrReportRender:        http.StatusInternalServerError,
	ErrFileProcessing:      http.StatusConflict,
	ErrUnknownJob:          http.StatusNotFound,
	ErrJobRunning:          http.StatusConflict,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrStorageOperation:    http.StatusInternalServerError,
	ErrServiceDisabled:     http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP de um código de erro
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
// Útil para quando você quer envolver um erro existente em um erro de API
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
