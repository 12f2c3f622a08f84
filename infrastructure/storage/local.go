package storage

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// LocalStore grava os objetos em um diretório do sistema de arquivos
type LocalStore struct {
	baseDir string
}

// NewLocalStore cria o diretório base, se necessário
func NewLocalStore(baseDir string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "erro ao criar diretório de armazenamento %s", baseDir)
	}
	return &LocalStore{baseDir: baseDir}, nil
}

func (s *LocalStore) path(key string) (string, error) {
	cleaned, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.baseDir, filepath.FromSlash(cleaned)), nil
}

// Put grava o conteúdo em um arquivo temporário e o renomeia, para que leitores
// nunca vejam um arquivo pela metade
func (s *LocalStore) Put(ctx context.Context, key string, content []byte, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target, err := s.path(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return errors.Wrapf(err, "erro ao criar diretório para %s", key)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".upload-*")
	if err != nil {
		return errors.Wrapf(err, "erro ao criar arquivo temporário para %s", key)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "erro ao gravar %s", key)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "erro ao gravar %s", key)
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		return errors.Wrapf(err, "erro ao mover %s", key)
	}
	return nil
}

func (s *LocalStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	target, err := s.path(key)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(target)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(ErrObjectNotFound, key)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler %s", key)
	}
	return content, nil
}

// Delete remove o objeto; remover uma chave inexistente não é erro
func (s *LocalStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target, err := s.path(key)
	if err != nil {
		return err
	}

	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrapf(err, "erro ao remover %s", key)
	}
	return nil
}
