package artifact

import (
	"github.com/MKhiriev/stegasaur/models"
)

// Resolver materialises transfer payloads into a [Store].
type Resolver struct {
	store *Store
}

func NewResolver(store *Store) *Resolver {
	return &Resolver{store: store}
}

// Store returns the registry the resolver writes to.
func (r *Resolver) Store() *Store {
	return r.store
}

// Resolve registers the payload of success and names it for op.
// auxiliaryName is kept on decode only, where it is the name of the
// encoded file that was sent.
func (r *Resolver) Resolve(op models.Operation, success models.TransferSuccess, auxiliaryName string) models.ResolvedArtifact {
	contentType := success.Header.Get("Content-Type")

	resolved := models.ResolvedArtifact{
		ObjectURL:   r.store.Put(success.Payload, contentType),
		FileName:    op.DefaultArtifactName(),
		ContentType: contentType,
		Size:        int64(len(success.Payload)),
	}

	if op == models.OperationDecode {
		if name, ok := FilenameFromContentDisposition(success.Header.Get("Content-Disposition")); ok {
			resolved.FileName = name
		}
		resolved.AuxiliaryName = auxiliaryName
	}

	return resolved
}
