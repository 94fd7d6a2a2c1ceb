package gettrack

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gostream-official/tracks/impl/inject"
	"github.com/gostream-official/tracks/impl/models"
	"github.com/gostream-official/tracks/pkg/api"
	"github.com/gostream-official/tracks/pkg/marshal"
	"github.com/gostream-official/tracks/pkg/parallel"
	"github.com/gostream-official/tracks/pkg/store"
	"github.com/gostream-official/tracks/pkg/store/query"
	"github.com/revx-official/output/log"
)

// Description:
//
//	The error response body for the get track endpoint.
type GetTrackErrorResponseBody struct {

	// The error message.
	Message string `json:"error"`
}

// Description:
//
//	Attempts to cast the input object to the endpoint injector.
//	If this cast fails, we cannot proceed to process this request.
//
// Parameters:
//
//	object 	The injector object.
//
// Returns:
//
//	The injector if the cast is successful, an error otherwise.
func GetSafeInjector(object interface{}) (*inject.Injector, error) {
	injector, ok := object.(inject.Injector)

	if !ok || injector.TrackStore == nil {
		return nil, fmt.Errorf("gettrack: failed to deduce injector")
	}

	return &injector, nil
}

// Description:
//
//	Searches a track with the given id in the store.
//
// Parameters:
//
//	store 	The store to search through.
//	id 		The raw id path parameter.
//
// Returns:
//
//	The matched track.
//	An error if the id is not an integer or no track carries it.
func FindTrackByID(trackStore *store.MemoryStore[models.TrackInfo], id string) (*models.TrackInfo, error) {
	trackID, err := strconv.Atoi(id)
	if err != nil {
		return nil, fmt.Errorf("gettrack: invalid track id %q", id)
	}

	filter := query.Filter{
		Root: query.FilterOperatorEq{
			Key:   "id",
			Value: trackID,
		},
	}

	items := trackStore.FindItems(&filter)
	if len(items) == 0 {
		return nil, fmt.Errorf("gettrack: %w", store.ErrItemNotFound)
	}

	return &items[0], nil
}

// Description:
//
//	The router handler for getting a single track.
//
// Parameters:
//
//	request The incoming request.
//	object 	The injector. Contains injected dependencies.
//
// Returns:
//
//	An API response object.
func Handler(request *api.APIRequest, object interface{}) *api.APIResponse {
	context := parallel.NewContext()

	log.Infof("[%s] %s: %s", context.ID, request.Method, request.Path)
	log.Tracef("[%s] request: %s", context.ID, marshal.Quick(request))

	injector, err := GetSafeInjector(object)
	if err != nil {
		log.Errorf("[%s] failed to get endpoint injector: %s", context.ID, err)
		return &api.APIResponse{
			StatusCode: http.StatusInternalServerError,
		}
	}

	track, err := FindTrackByID(injector.TrackStore, request.PathParameters["id"])
	if err != nil {
		log.Warnf("[%s] could not find track: %s", context.ID, err)
		return &api.APIResponse{
			StatusCode: http.StatusNotFound,
			Body: GetTrackErrorResponseBody{
				Message: "Track not found",
			},
		}
	}

	return &api.APIResponse{
		StatusCode: http.StatusOK,
		Body:       track,
	}
}
