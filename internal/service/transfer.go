package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/stegasaur/internal/adapter"
	"github.com/MKhiriev/stegasaur/internal/artifact"
	"github.com/MKhiriev/stegasaur/internal/logger"
	"github.com/MKhiriev/stegasaur/models"
)

type transferService struct {
	adapter  adapter.StegoAdapter
	resolver *artifact.Resolver

	logger *logger.Logger
}

func NewTransferService(stegoAdapter adapter.StegoAdapter, resolver *artifact.Resolver, log *logger.Logger) TransferService {
	return &transferService{
		adapter:  stegoAdapter,
		resolver: resolver,
		logger:   log.WithComponent("transfer"),
	}
}

func (s *transferService) Submit(ctx context.Context, req models.TransferRequest) (models.ResolvedArtifact, error) {
	success, err := s.adapter.Submit(ctx, req)
	if err != nil {
		s.logger.Info().Err(err).Str("operation", req.Operation.String()).Msg("transfer failed")
		return models.ResolvedArtifact{}, err
	}

	var auxiliaryName string
	if encoded, ok := req.File(models.RoleEncoded); ok {
		auxiliaryName = encoded.Name
	}

	resolved := s.resolver.Resolve(req.Operation, success, auxiliaryName)

	s.logger.Info().
		Str("operation", req.Operation.String()).
		Str("object_url", resolved.ObjectURL).
		Str("file_name", resolved.FileName).
		Int64("size", resolved.Size).
		Msg("artifact resolved")

	return resolved, nil
}

func (s *transferService) Health(ctx context.Context) (models.ServiceHealth, error) {
	health, err := s.adapter.Health(ctx)
	if err != nil {
		return models.ServiceHealth{}, fmt.Errorf("health check: %w", mapAdapterError(err))
	}
	return health, nil
}

func (s *transferService) Cleanup(ctx context.Context) error {
	if err := s.adapter.Cleanup(ctx); err != nil {
		return fmt.Errorf("cleanup: %w", mapAdapterError(err))
	}
	s.logger.Info().Msg("service cleanup requested")
	return nil
}
