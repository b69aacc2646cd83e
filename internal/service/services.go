package service

import (
	"github.com/MKhiriev/stegasaur/internal/adapter"
	"github.com/MKhiriev/stegasaur/internal/artifact"
	"github.com/MKhiriev/stegasaur/internal/logger"
)

type ClientServices struct {
	TransferService TransferService
	DownloadService DownloadService
}

func NewClientServices(stegoAdapter adapter.StegoAdapter, store *artifact.Store, downloadDir string, log *logger.Logger) *ClientServices {
	return &ClientServices{
		TransferService: NewTransferService(stegoAdapter, artifact.NewResolver(store), log),
		DownloadService: NewDownloadService(store, downloadDir, log),
	}
}
