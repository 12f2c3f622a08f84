// Package storage guarda os CSVs enviados e os PDFs gerados
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-report-api/internal/config"
)

const (
	ContentTypeCSV = "text/csv"
	ContentTypePDF = "application/pdf"
)

var (
	// ErrObjectNotFound indica que a chave não existe no armazenamento
	ErrObjectNotFound = errors.New("objeto não encontrado")
	// ErrInvalidKey indica uma chave vazia ou que tenta sair do diretório base
	ErrInvalidKey = errors.New("chave de armazenamento inválida")
)

// ArtifactStore guarda conteúdos binários por chave
type ArtifactStore interface {
	Put(ctx context.Context, key string, content []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// NewArtifactStore cria o armazenamento configurado em STORAGE_DRIVER
func NewArtifactStore(ctx context.Context, cfg config.Storage) (ArtifactStore, error) {
	switch cfg.Driver {
	case config.StorageDriverLocal:
		return NewLocalStore(cfg.LocalDir)
	case config.StorageDriverS3:
		client, err := NewS3Client(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return NewS3Store(client, cfg.Bucket, cfg.Prefix), nil
	default:
		return nil, fmt.Errorf("driver de armazenamento desconhecido: %s", cfg.Driver)
	}
}

// SourceFileKey é a chave do CSV enviado por um usuário
func SourceFileKey(ownerID, sourceFileID string) string {
	return path.Join("csv_files", ownerID, sourceFileID+".csv")
}

// PDFKey é a chave do PDF de um relatório
func PDFKey(reportID, filename string) string {
	return path.Join("pdfs", reportID, filename)
}

// cleanKey normaliza a chave e rejeita caminhos absolutos ou com ".."
func cleanKey(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", ErrInvalidKey
	}
	cleaned := path.Clean("/" + key)[1:]
	if cleaned == "" || cleaned != strings.TrimPrefix(key, "/") || strings.Contains(key, "..") {
		return "", errors.Wrapf(ErrInvalidKey, "%q", key)
	}
	return cleaned, nil
}
