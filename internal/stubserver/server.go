// Package stubserver runs an in-process imitation of the stegaSaur service
// for tests. Encode appends the secret to the carrier behind a marker and
// decode splits it off again, so round trips through the client behave like
// the real service without its binary.
package stubserver

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MKhiriev/stegasaur/internal/utils"
	"github.com/MKhiriev/stegasaur/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	EncodePath  = "/api/encode"
	DecodePath  = "/api/decode"
	HealthPath  = "/api/health"
	CleanupPath = "/api/cleanup"

	maxMemory = 32 << 20
)

var marker = []byte("\x00STEGASAUR\x00")

// Part is one received multipart file.
type Part struct {
	Field    string
	FileName string
	Data     []byte
}

// Request is a recorded incoming request.
type Request struct {
	Method string
	Path   string
	Parts  []Part
}

// Part returns the first part sent under field.
func (r Request) Part(field string) (Part, bool) {
	for _, p := range r.Parts {
		if p.Field == field {
			return p, true
		}
	}
	return Part{}, false
}

// Response replaces the default behaviour of a route.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// JSONError is a failure response carrying {"error": msg}.
func JSONError(status int, msg string) Response {
	body, _ := json.Marshal(models.ErrorResponse{Error: msg})
	return Response{
		Status: status,
		Header: http.Header{"Content-Type": []string{"application/json"}},
		Body:   body,
	}
}

// Server is a running stub service. Close it when done.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	overrides map[string]Response
	requests  []Request
	cleaned   int
}

// New starts a stub service on a loopback port.
func New() *Server {
	s := &Server{overrides: make(map[string]Response)}
	s.Server = httptest.NewServer(s.routes())
	return s
}

func (s *Server) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.record)

	router.Get(HealthPath, s.health)
	router.Post(EncodePath, s.encode)
	router.Post(DecodePath, s.decode)
	router.Post(CleanupPath, s.cleanup)

	return router
}

// Respond makes path answer with resp from now on.
func (s *Server) Respond(path string, resp Response) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[path] = resp
}

// Reset drops overrides and recorded requests.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides = make(map[string]Response)
	s.requests = nil
}

// Requests returns a copy of the requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Count returns how many requests hit path.
func (s *Server) Count(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.requests {
		if r.Path == path {
			n++
		}
	}
	return n
}

// Cleaned returns how many cleanups succeeded.
func (s *Server) Cleaned() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cleaned
}

// Embed produces what the stub encode returns for carrier and secret.
func Embed(carrier []byte, secretName string, secret []byte) []byte {
	var buf bytes.Buffer
	buf.Write(carrier)
	buf.Write(marker)
	buf.WriteString(secretName)
	buf.WriteByte('\n')
	buf.Write(secret)
	return buf.Bytes()
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := Request{Method: r.Method, Path: r.URL.Path}

		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			if err := r.ParseMultipartForm(maxMemory); err == nil {
				rec.Parts = readParts(r.MultipartForm)
			}
		}

		s.mu.Lock()
		s.requests = append(s.requests, rec)
		override, ok := s.overrides[r.URL.Path]
		s.mu.Unlock()

		if ok {
			writeResponse(w, override)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func readParts(form *multipart.Form) []Part {
	var parts []Part
	for field, headers := range form.File {
		for _, fh := range headers {
			f, err := fh.Open()
			if err != nil {
				continue
			}
			data, _ := io.ReadAll(f)
			_ = f.Close()
			parts = append(parts, Part{Field: field, FileName: fh.Filename, Data: data})
		}
	}
	return parts
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, models.ServiceHealth{Status: "ok", BinaryExists: true}, http.StatusOK)
}

func (s *Server) cleanup(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	s.cleaned++
	s.mu.Unlock()
	_, _ = utils.WriteJSON(w, models.StatusResponse{Status: "cleaned"}, http.StatusOK)
}

func (s *Server) encode(w http.ResponseWriter, r *http.Request) {
	carrier, okCarrier := formFile(r, "carrier")
	secret, okSecret := formFile(r, "secret")
	if !okCarrier || !okSecret {
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "Missing carrier or secret file"}, http.StatusBadRequest)
		return
	}
	if !strings.EqualFold(filepath.Ext(carrier.FileName), ".png") {
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "Carrier must be PNG"}, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `attachment; filename="encoded_stub.png"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(Embed(carrier.Data, secret.FileName, secret.Data))
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request) {
	encoded, ok := formFile(r, "encoded")
	if !ok {
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "Missing encoded file"}, http.StatusBadRequest)
		return
	}
	if !strings.HasSuffix(encoded.FileName, ".png") {
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "Encoded file must be PNG"}, http.StatusBadRequest)
		return
	}

	idx := bytes.Index(encoded.Data, marker)
	if idx < 0 {
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "Decoding failed", Details: "no hidden data"}, http.StatusInternalServerError)
		return
	}
	rest := encoded.Data[idx+len(marker):]
	name, payload, _ := bytes.Cut(rest, []byte{'\n'})

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", "attachment; filename=decoded_stub"+filepath.Ext(string(name)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

func formFile(r *http.Request, field string) (Part, bool) {
	if r.MultipartForm == nil {
		return Part{}, false
	}
	headers := r.MultipartForm.File[field]
	if len(headers) == 0 {
		return Part{}, false
	}
	parts := readParts(&multipart.Form{File: map[string][]*multipart.FileHeader{field: headers[:1]}})
	if len(parts) == 0 {
		return Part{}, false
	}
	return parts[0], true
}

func writeResponse(w http.ResponseWriter, resp Response) {
	for k, vals := range resp.Header {
		for _, v := range vals {
			w.Header().Add(k, v)
		}
	}
	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = w.Write(resp.Body)
}
