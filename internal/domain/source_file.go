package domain

import "time"

// Status de processamento de um arquivo enviado
const (
	StatusUploaded   = "uploaded"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusError      = "error"
)

// SourceFile é um CSV enviado por um usuário
type SourceFile struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	OriginalName string    `json:"original_name"`
	StorageKey   string    `json:"-"`
	Checksum     string    `json:"checksum"`
	SizeBytes    int64     `json:"size_bytes"`
	Status       string    `json:"status"`
	ErrorMessage *string   `json:"error_message"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StatusCount é a quantidade de arquivos de um usuário em cada status
type StatusCount map[string]int
