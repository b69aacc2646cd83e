package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/stegasaur/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	body := errorText(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), body)
	}
}

// errorText prefers the "error" field of a JSON body and falls back to the
// raw body.
func errorText(body []byte) string {
	if msg, ok := decodeErrorMessage(body); ok {
		return msg
	}
	return strings.TrimSpace(string(body))
}

// decodeErrorMessage extracts a non-empty "error" field from body.
func decodeErrorMessage(body []byte) (string, bool) {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return "", false
	}
	if strings.TrimSpace(errResp.Error) == "" {
		return "", false
	}
	return errResp.Error, true
}

// transferFailure builds the structured failure for a non-2xx transfer
// response.
func transferFailure(op models.Operation, resp *resty.Response) *models.TransferFailure {
	msg, ok := decodeErrorMessage(resp.Body())
	if !ok {
		msg = op.DefaultFailureMessage()
	}

	return &models.TransferFailure{
		Kind:       models.FailureStructured,
		StatusCode: resp.StatusCode(),
		Message:    msg,
	}
}

// networkFailure builds the failure for a request that got no response.
func networkFailure(err error) *models.TransferFailure {
	return &models.TransferFailure{
		Kind:    models.FailureTransport,
		Message: "Network error: " + err.Error(),
		Err:     err,
	}
}
