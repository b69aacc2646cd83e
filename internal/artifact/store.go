package artifact

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
)

// ObjectURLPrefix starts every URL handed out by a [Store].
const ObjectURLPrefix = "blob:stegasaur/"

// maxTombstones bounds how many revoked URLs are remembered. Older ones
// read as not found.
const maxTombstones = 256

type blob struct {
	data        []byte
	contentType string
}

// Store is a concurrency-safe registry of payloads addressed by object URL.
// The zero value is not usable; call [NewStore].
type Store struct {
	mu    sync.RWMutex
	blobs map[string]blob

	revoked        map[string]struct{}
	revokedOrder   []string
	tombstoneLimit int
}

func NewStore() *Store {
	return &Store{
		blobs:          make(map[string]blob),
		revoked:        make(map[string]struct{}),
		tombstoneLimit: maxTombstones,
	}
}

// Put registers data and returns its new object URL. The store takes
// ownership of data.
func (s *Store) Put(data []byte, contentType string) string {
	url := ObjectURLPrefix + newObjectID()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[url] = blob{data: data, contentType: contentType}

	return url
}

// Bytes returns a copy of the payload behind url.
func (s *Store) Bytes(url string) ([]byte, error) {
	b, err := s.get(url)
	if err != nil {
		return nil, err
	}
	return bytes.Clone(b.data), nil
}

// Open returns a reader over the payload behind url.
func (s *Store) Open(url string) (io.ReadSeeker, error) {
	b, err := s.get(url)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(b.data), nil
}

// ContentType returns the media type recorded with url.
func (s *Store) ContentType(url string) (string, error) {
	b, err := s.get(url)
	if err != nil {
		return "", err
	}
	return b.contentType, nil
}

// Revoke releases the payload behind url. It reports whether url was live;
// revoking an unknown or already revoked URL does nothing.
func (s *Store) Revoke(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blobs[url]; !ok {
		return false
	}
	delete(s.blobs, url)
	s.remember(url)

	return true
}

// remember records url as revoked, forgetting the oldest tombstone once
// the limit is reached. Callers hold the write lock.
func (s *Store) remember(url string) {
	s.revoked[url] = struct{}{}
	s.revokedOrder = append(s.revokedOrder, url)

	for len(s.revokedOrder) > s.tombstoneLimit {
		delete(s.revoked, s.revokedOrder[0])
		s.revokedOrder[0] = ""
		s.revokedOrder = s.revokedOrder[1:]
	}
}

// Len returns the number of live object URLs.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}

func (s *Store) get(url string) (blob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if b, ok := s.blobs[url]; ok {
		return b, nil
	}
	if _, ok := s.revoked[url]; ok {
		return blob{}, fmt.Errorf("%w: %s", ErrObjectURLRevoked, url)
	}
	return blob{}, fmt.Errorf("%w: %s", ErrObjectURLNotFound, url)
}

// newObjectID returns a time-ordered UUID, falling back to a random one.
func newObjectID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
