package inject

import (
	"github.com/gostream-official/tracks/impl/models"
	"github.com/gostream-official/tracks/pkg/store"
)

// Description:
//
//	The dependencies injected into every endpoint handler.
type Injector struct {

	// The store holding all tracks.
	TrackStore *store.MemoryStore[models.TrackInfo]
}

// Description:
//
//	Creates an injector with a fresh track store holding the seed tracks.
//
// Returns:
//
//	The created injector.
func NewInjector() Injector {
	return Injector{
		TrackStore: store.NewMemoryStore(models.SeedTracks(), models.FirstCreatedID),
	}
}
