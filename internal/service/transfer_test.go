package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/stegasaur/internal/adapter"
	"github.com/MKhiriev/stegasaur/internal/artifact"
	"github.com/MKhiriev/stegasaur/internal/logger"
	"github.com/MKhiriev/stegasaur/internal/mock"
	"github.com/MKhiriev/stegasaur/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestTransferSvc: хелпер для создания transferService с моком адаптера
func newTestTransferSvc(t *testing.T, ctrl *gomock.Controller) (TransferService, *mock.MockStegoAdapter, *artifact.Store) {
	t.Helper()
	mockAdapter := mock.NewMockStegoAdapter(ctrl)
	store := artifact.NewStore()
	return NewTransferService(mockAdapter, artifact.NewResolver(store), logger.Nop()), mockAdapter, store
}

func decodeReq() models.TransferRequest {
	return models.NewTransferRequest(models.OperationDecode, map[models.Role]models.SelectedFile{
		models.RoleEncoded: {Path: "/tmp/stego.png", Name: "stego.png"},
	})
}

func encodeReq() models.TransferRequest {
	return models.NewTransferRequest(models.OperationEncode, map[models.Role]models.SelectedFile{
		models.RoleCarrier: {Path: "/tmp/cover.png", Name: "cover.png"},
		models.RoleSecret:  {Path: "/tmp/s.txt", Name: "s.txt"},
	})
}

// ── Submit ───────────────────────────────────────────────────────────────────

func TestTransferService_Submit_Encode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, store := newTestTransferSvc(t, ctrl)
	ctx := context.Background()
	req := encodeReq()

	mockAdapter.EXPECT().Submit(ctx, req).Return(models.TransferSuccess{
		Payload: []byte("ENCODED"),
		Header:  http.Header{"Content-Type": []string{"image/png"}},
	}, nil)

	got, err := svc.Submit(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, "encoded.png", got.FileName)
	assert.Empty(t, got.AuxiliaryName)
	data, err := store.Bytes(got.ObjectURL)
	require.NoError(t, err)
	assert.Equal(t, "ENCODED", string(data))
}

func TestTransferService_Submit_DecodeCarriesEncodedName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestTransferSvc(t, ctrl)
	req := decodeReq()

	mockAdapter.EXPECT().Submit(gomock.Any(), req).Return(models.TransferSuccess{
		Payload: []byte("secret"),
		Header:  http.Header{"Content-Disposition": []string{`attachment; filename="report.pdf"`}},
	}, nil)

	got, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "report.pdf", got.FileName)
	assert.Equal(t, "stego.png", got.AuxiliaryName)
	assert.Equal(t, int64(6), got.Size)
}

func TestTransferService_Submit_FailurePassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, store := newTestTransferSvc(t, ctrl)
	failure := &models.TransferFailure{Kind: models.FailureStructured, StatusCode: 400, Message: "bad header"}

	mockAdapter.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(models.TransferSuccess{}, failure)

	got, err := svc.Submit(context.Background(), decodeReq())

	var tf *models.TransferFailure
	require.True(t, errors.As(err, &tf))
	assert.Equal(t, "bad header", tf.Message)
	assert.Equal(t, models.ResolvedArtifact{}, got)
	assert.Zero(t, store.Len(), "no object url is created for a failure")
}

// ── Health / Cleanup ─────────────────────────────────────────────────────────

func TestTransferService_Health(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestTransferSvc(t, ctrl)
	want := models.ServiceHealth{Status: "ok", BinaryExists: true}
	mockAdapter.EXPECT().Health(gomock.Any()).Return(want, nil)

	got, err := svc.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTransferService_Health_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "down", err: adapter.ErrServiceUnavailable, wantErr: ErrServiceDown},
		{name: "internal", err: adapter.ErrInternalServerError, wantErr: ErrServiceDown},
		{name: "unreachable", err: errors.New("dial tcp: connection refused"), wantErr: ErrServiceUnreachable},
		{name: "not found", err: adapter.ErrNotFound, wantErr: adapter.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, mockAdapter, _ := newTestTransferSvc(t, ctrl)
			mockAdapter.EXPECT().Health(gomock.Any()).Return(models.ServiceHealth{}, tt.err)

			_, err := svc.Health(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTransferService_Cleanup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestTransferSvc(t, ctrl)

	mockAdapter.EXPECT().Cleanup(gomock.Any()).Return(nil)
	assert.NoError(t, svc.Cleanup(context.Background()))

	mockAdapter.EXPECT().Cleanup(gomock.Any()).Return(adapter.ErrBadGateway)
	assert.ErrorIs(t, svc.Cleanup(context.Background()), ErrServiceDown)
}

func TestMapAdapterError_Nil(t *testing.T) {
	assert.NoError(t, mapAdapterError(nil))
}
