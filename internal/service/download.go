package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/stegasaur/internal/artifact"
	"github.com/MKhiriev/stegasaur/internal/logger"
	"github.com/MKhiriev/stegasaur/models"
)

const (
	fallbackFileName = "download"
	maxNameAttempts  = 1000
)

type downloadService struct {
	store       *artifact.Store
	downloadDir string

	logger *logger.Logger
}

func NewDownloadService(store *artifact.Store, downloadDir string, log *logger.Logger) DownloadService {
	return &downloadService{
		store:       store,
		downloadDir: downloadDir,
		logger:      log.WithComponent("download"),
	}
}

func (s *downloadService) Save(ctx context.Context, a models.ResolvedArtifact) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if a.ObjectURL == "" {
		return "", ErrEmptyObjectURL
	}

	data, err := s.store.Bytes(a.ObjectURL)
	if err != nil {
		return "", fmt.Errorf("read artifact: %w", err)
	}

	if err = os.MkdirAll(s.downloadDir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	f, path, err := createUnique(s.downloadDir, SafeFileName(a.FileName))
	if err != nil {
		return "", err
	}

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}

	s.logger.Info().Str("path", path).Int("bytes", len(data)).Msg("artifact saved")
	return path, nil
}

func (s *downloadService) Revoke(objectURL string) bool {
	revoked := s.store.Revoke(objectURL)
	if revoked {
		s.logger.Debug().Str("object_url", objectURL).Msg("object url revoked")
	}
	return revoked
}

// SafeFileName reduces name to a single path element.
func SafeFileName(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = strings.TrimSpace(filepath.Base(name))
	if name == "" || name == "." || name == ".." || name == "/" {
		return fallbackFileName
	}
	return name
}

// createUnique creates name in dir, or "stem (n).ext" for the first free n.
func createUnique(dir, name string) (*os.File, string, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	if stem == "" {
		stem, ext = name, ""
	}

	for i := range maxNameAttempts {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, i, ext)
		}
		path := filepath.Join(dir, candidate)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", fmt.Errorf("create %s: %w", path, err)
		}
	}

	return nil, "", fmt.Errorf("%w: %s", ErrNoFreeFileName, name)
}
