// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/stegasaur/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

// ---------------------------------------------------------------------------
// KindAccepts
// ---------------------------------------------------------------------------

func TestKindAccepts(t *testing.T) {
	tests := []struct {
		name string
		kind models.FileKind
		file string
		want bool
	}{
		{name: "png lower", kind: models.KindPNGOnly, file: "photo.png", want: true},
		{name: "png upper", kind: models.KindPNGOnly, file: "PHOTO.PNG", want: true},
		{name: "png mixed", kind: models.KindPNGOnly, file: "a.b.PnG", want: true},
		{name: "jpg rejected", kind: models.KindPNGOnly, file: "photo.jpg", want: false},
		{name: "png in middle", kind: models.KindPNGOnly, file: "photo.png.txt", want: false},
		{name: "no extension", kind: models.KindPNGOnly, file: "png", want: false},
		{name: "trailing dot", kind: models.KindPNGOnly, file: "photo.", want: false},
		{name: "dot only name", kind: models.KindPNGOnly, file: ".png", want: true},
		{name: "empty name png", kind: models.KindPNGOnly, file: "", want: false},
		{name: "any file", kind: models.KindAnyFile, file: "notes", want: true},
		{name: "any file with ext", kind: models.KindAnyFile, file: "notes.jpg", want: true},
		{name: "empty name any", kind: models.KindAnyFile, file: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindAccepts(tt.kind, tt.file))
		})
	}
}

// ---------------------------------------------------------------------------
// Select
// ---------------------------------------------------------------------------

func TestSelect_AcceptsPNGCarrier(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "cover.PNG", []byte("not really a png"))

	f, err := NewFileSelectionValidator().Select(path, models.RoleCarrier)
	require.NoError(t, err)

	assert.Equal(t, path, f.Path)
	assert.Equal(t, "cover.PNG", f.Name)
	assert.Equal(t, int64(16), f.Size)
}

func TestSelect_AnySecret(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "secret", []byte("x"))

	f, err := NewFileSelectionValidator().Select(path, models.RoleSecret)
	require.NoError(t, err)
	assert.Equal(t, "secret", f.Name)
}

func TestSelect_Rejections(t *testing.T) {
	dir := t.TempDir()
	jpg := writeFile(t, dir, "photo.jpg", []byte("x"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.png"), 0o700))

	tests := []struct {
		name    string
		path    string
		role    models.Role
		wantErr error
	}{
		{name: "empty path", path: "", role: models.RoleCarrier, wantErr: ErrNoFileSelected},
		{name: "blank path", path: "   ", role: models.RoleSecret, wantErr: ErrNoFileSelected},
		{name: "jpg carrier", path: jpg, role: models.RoleCarrier, wantErr: ErrWrongKind},
		{name: "jpg encoded", path: jpg, role: models.RoleEncoded, wantErr: ErrWrongKind},
		{name: "missing png", path: filepath.Join(dir, "gone.png"), role: models.RoleEncoded, wantErr: ErrFileNotFound},
		{name: "directory", path: filepath.Join(dir, "folder.png"), role: models.RoleCarrier, wantErr: ErrNotRegularFile},
	}

	v := NewFileSelectionValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := v.Select(tt.path, tt.role)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, models.SelectedFile{}, f)
		})
	}
}

// Kind is checked before the file system is touched.
func TestSelect_WrongKindWithoutStat(t *testing.T) {
	v := &FileSelectionValidator{stat: func(string) (os.FileInfo, error) {
		t.Fatal("stat must not be called")
		return nil, nil
	}}

	_, err := v.Select("/nowhere/picture.gif", models.RoleCarrier)
	assert.ErrorIs(t, err, ErrWrongKind)
}

// ---------------------------------------------------------------------------
// Validate
// ---------------------------------------------------------------------------

func TestValidate_TransferRequest(t *testing.T) {
	carrier := models.SelectedFile{Path: "/c.png", Name: "c.png"}
	secret := models.SelectedFile{Path: "/s.bin", Name: "s.bin"}

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{
			name: "complete encode",
			obj: models.NewTransferRequest(models.OperationEncode, map[models.Role]models.SelectedFile{
				models.RoleCarrier: carrier, models.RoleSecret: secret,
			}),
		},
		{
			name: "pointer decode",
			obj: &models.TransferRequest{Operation: models.OperationDecode, Files: map[models.Role]models.SelectedFile{
				models.RoleEncoded: carrier,
			}},
		},
		{
			name: "encode missing secret",
			obj: models.NewTransferRequest(models.OperationEncode, map[models.Role]models.SelectedFile{
				models.RoleCarrier: carrier,
			}),
			wantErr: ErrMissingRoleFile,
		},
		{
			name: "scoped to carrier",
			obj: models.NewTransferRequest(models.OperationEncode, map[models.Role]models.SelectedFile{
				models.RoleCarrier: carrier,
			}),
			fields: []string{"carrier"},
		},
		{
			name: "wrong carrier kind",
			obj: models.NewTransferRequest(models.OperationEncode, map[models.Role]models.SelectedFile{
				models.RoleCarrier: secret, models.RoleSecret: secret,
			}),
			wantErr: ErrWrongKind,
		},
		{
			name: "unknown field",
			obj: models.NewTransferRequest(models.OperationDecode, map[models.Role]models.SelectedFile{
				models.RoleEncoded: carrier,
			}),
			fields:  []string{"carrier"},
			wantErr: ErrUnknownField,
		},
		{name: "unsupported type", obj: "file.png", wantErr: ErrUnsupportedType},
		{name: "nil pointer", obj: (*models.TransferRequest)(nil), wantErr: ErrUnsupportedType},
		{name: "no operation", obj: models.TransferRequest{}, wantErr: ErrUnsupportedType},
	}

	v := NewFileSelectionValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
