package adapter

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/MKhiriev/stegasaur/internal/config"
	"github.com/MKhiriev/stegasaur/internal/logger"
	"github.com/MKhiriev/stegasaur/internal/utils"
	"github.com/MKhiriev/stegasaur/models"
)

const (
	healthPath  = "/api/health"
	cleanupPath = "/api/cleanup"
)

type httpStegoAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPStegoAdapter constructs an HTTP/REST implementation of [StegoAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL. A zero
// RequestTimeout leaves the transport without a deadline.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPStegoAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (StegoAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.SetBaseURL(baseURL)
	if adapterCfg.RequestTimeout > 0 {
		client.SetTimeout(adapterCfg.RequestTimeout)
	}

	return &httpStegoAdapter{client: client, logger: logger.WithComponent("adapter")}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Submit implements [StegoAdapter]. Each role of the operation becomes one
// multipart part named after the role and carrying the selected file name.
func (h *httpStegoAdapter) Submit(ctx context.Context, req models.TransferRequest) (models.TransferSuccess, error) {
	op := req.Operation
	if err := req.Validate(); err != nil {
		return models.TransferSuccess{}, fmt.Errorf("submit %s: %w", op, err)
	}

	r := h.client.R().SetContext(ctx)

	for _, role := range op.Roles() {
		file, _ := req.File(role)
		f, err := os.Open(file.Path)
		if err != nil {
			return models.TransferSuccess{}, networkFailure(err)
		}
		defer f.Close()

		r.SetFileReader(role.PartName(), file.Name, f)
	}

	resp, err := r.Post(op.Endpoint())
	if err != nil {
		h.logger.Debug().Err(err).Str("operation", op.String()).Msg("transfer got no response")
		return models.TransferSuccess{}, networkFailure(err)
	}

	h.logger.Debug().
		Str("operation", op.String()).
		Int("status", resp.StatusCode()).
		Int("bytes", len(resp.Body())).
		Dur("elapsed", resp.Time()).
		Msg("transfer finished")

	if !resp.IsSuccess() {
		return models.TransferSuccess{}, transferFailure(op, resp)
	}

	return models.TransferSuccess{
		Payload: resp.Body(),
		Header:  resp.Header().Clone(),
	}, nil
}

// Health implements [StegoAdapter].
func (h *httpStegoAdapter) Health(ctx context.Context) (models.ServiceHealth, error) {
	var health models.ServiceHealth

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get(healthPath)
	if err != nil {
		return models.ServiceHealth{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServiceHealth{}, err
	}

	return health, nil
}

// Cleanup implements [StegoAdapter].
func (h *httpStegoAdapter) Cleanup(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Post(cleanupPath)
	if err != nil {
		return fmt.Errorf("cleanup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.logger.Debug().Msg("service temporary files cleaned")
	return nil
}
