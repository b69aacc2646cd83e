package validators

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/stegasaur/models"
)

const pngExtension = "png"

// FileSelectionValidator accepts or rejects file selections by name.
// Only the extension is checked; file content is never read.
type FileSelectionValidator struct {
	stat func(string) (os.FileInfo, error)
}

func NewFileSelectionValidator() FileSelector {
	return &FileSelectionValidator{stat: os.Stat}
}

// Select validates path for role. Rejections are one of
// [ErrNoFileSelected], [ErrWrongKind], [ErrFileNotFound] or
// [ErrNotRegularFile].
func (v *FileSelectionValidator) Select(path string, role models.Role) (models.SelectedFile, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return models.SelectedFile{}, ErrNoFileSelected
	}

	name := filepath.Base(path)
	if !KindAccepts(role.Kind(), name) {
		return models.SelectedFile{}, ErrWrongKind
	}

	info, err := v.stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.SelectedFile{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return models.SelectedFile{}, fmt.Errorf("error checking %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return models.SelectedFile{}, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}

	return models.SelectedFile{
		Path: path,
		Name: name,
		Size: info.Size(),
	}, nil
}

// Validate checks a models.TransferRequest: every role of its operation
// must carry a file of the right kind. Field names restrict the check to
// roles with matching part names.
func (v *FileSelectionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TransferRequest:
		return v.validateRequest(ctx, value, fields...)
	case *models.TransferRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *FileSelectionValidator) validateRequest(_ context.Context, req models.TransferRequest, fields ...string) error {
	roles := req.Operation.Roles()
	if len(roles) == 0 {
		return ErrUnsupportedType
	}

	if len(fields) > 0 {
		scoped := make([]models.Role, 0, len(fields))
		for _, field := range fields {
			role, ok := roleByField(roles, field)
			if !ok {
				return fmt.Errorf("%w: %s", ErrUnknownField, field)
			}
			scoped = append(scoped, role)
		}
		roles = scoped
	}

	for _, role := range roles {
		f, ok := req.File(role)
		if !ok || f.Name == "" {
			return fmt.Errorf("%w: %s", ErrMissingRoleFile, role)
		}
		if !KindAccepts(role.Kind(), f.Name) {
			return fmt.Errorf("%w: %s", ErrWrongKind, role)
		}
	}

	return nil
}

func roleByField(roles []models.Role, field string) (models.Role, bool) {
	for _, role := range roles {
		if role.PartName() == field {
			return role, true
		}
	}
	return 0, false
}

// KindAccepts reports whether a file called name satisfies kind. For
// PNG-only kinds the text after the last '.' must equal "png" ignoring
// case; a name without a dot has no extension.
func KindAccepts(kind models.FileKind, name string) bool {
	if name == "" {
		return false
	}
	if kind != models.KindPNGOnly {
		return true
	}

	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return false
	}
	return strings.EqualFold(name[idx+1:], pngExtension)
}
