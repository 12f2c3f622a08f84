package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

const (
	sourceFilesTable   = "source_files sf"
	sourceFilesColumns = "sf.id, sf.owner_id, sf.original_name, sf.storage_key, sf.checksum, sf.size_bytes, sf.status, sf.error_message, sf.created_at, sf.updated_at"

	uniqueViolation = "23505"
)

// ErrDuplicateSourceFile indica que o mesmo conteúdo já foi enviado pelo usuário
var ErrDuplicateSourceFile = errors.New("arquivo já enviado")

type SourceFileRepository interface {
	Create(ctx context.Context, file *domain.SourceFile) error
	GetByID(ctx context.Context, id string) (*domain.SourceFile, error)
	GetByChecksum(ctx context.Context, ownerID, checksum string) (*domain.SourceFile, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.SourceFile, error)
	UpdateStatus(ctx context.Context, id, status string, errorMessage *string) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, ownerID string) (domain.StatusCount, error)
}

type sourceFileRepository struct {
	conn *postgres.Connection
}

func NewSourceFileRepository(conn *postgres.Connection) SourceFileRepository {
	return &sourceFileRepository{
		conn: conn,
	}
}

func (r *sourceFileRepository) Create(ctx context.Context, file *domain.SourceFile) error {
	query, args, err := squirrel.
		Insert("source_files").
		Columns("id", "owner_id", "original_name", "storage_key", "checksum", "size_bytes", "status").
		Values(file.ID, file.OwnerID, file.OriginalName, file.StorageKey, file.Checksum, file.SizeBytes, file.Status).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&file.CreatedAt, &file.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Code == uniqueViolation {
				return ErrDuplicateSourceFile
			}
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *sourceFileRepository) GetByID(ctx context.Context, id string) (*domain.SourceFile, error) {
	return r.get(ctx, squirrel.Eq{"sf.id": id})
}

func (r *sourceFileRepository) GetByChecksum(ctx context.Context, ownerID, checksum string) (*domain.SourceFile, error) {
	return r.get(ctx, squirrel.Eq{"sf.owner_id": ownerID, "sf.checksum": checksum})
}

func (r *sourceFileRepository) get(ctx context.Context, where squirrel.Eq) (*domain.SourceFile, error) {
	query, args, err := squirrel.
		Select(sourceFilesColumns).
		From(sourceFilesTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	file, err := scanSourceFile(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear arquivo: %w", err)
	}

	return file, nil
}

func (r *sourceFileRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.SourceFile, error) {
	query, args, err := squirrel.
		Select(sourceFilesColumns).
		From(sourceFilesTable).
		Where(squirrel.Eq{"sf.owner_id": ownerID}).
		OrderBy("sf.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	files := make([]*domain.SourceFile, 0)
	for rows.Next() {
		file, err := scanSourceFile(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear arquivos: %w", err)
		}
		files = append(files, file)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return files, nil
}

func (r *sourceFileRepository) UpdateStatus(ctx context.Context, id, status string, errorMessage *string) error {
	query, args, err := squirrel.
		Update("source_files").
		Set("status", status).
		Set("error_message", errorMessage).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar status do arquivo: %w", err)
	}

	return nil
}

// Delete remove o arquivo; relatório e dados de vendas caem em cascata
func (r *sourceFileRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete("source_files").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao remover arquivo: %w", err)
	}

	return nil
}

func (r *sourceFileRepository) CountByStatus(ctx context.Context, ownerID string) (domain.StatusCount, error) {
	query, args, err := squirrel.
		Select("sf.status, COUNT(*)").
		From(sourceFilesTable).
		Where(squirrel.Eq{"sf.owner_id": ownerID}).
		GroupBy("sf.status").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	counts := domain.StatusCount{}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("erro ao escanear contagem: %w", err)
		}
		counts[status] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return counts, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSourceFile(row scanner) (*domain.SourceFile, error) {
	file := &domain.SourceFile{}
	var errorMessage sql.NullString

	if err := row.Scan(
		&file.ID,
		&file.OwnerID,
		&file.OriginalName,
		&file.StorageKey,
		&file.Checksum,
		&file.SizeBytes,
		&file.Status,
		&errorMessage,
		&file.CreatedAt,
		&file.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if errorMessage.Valid {
		file.ErrorMessage = &errorMessage.String
	}

	return file, nil
}
