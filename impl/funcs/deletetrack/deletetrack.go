package deletetrack

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gostream-official/tracks/impl/inject"
	"github.com/gostream-official/tracks/pkg/api"
	"github.com/gostream-official/tracks/pkg/marshal"
	"github.com/gostream-official/tracks/pkg/parallel"
	"github.com/revx-official/output/log"
)

// Description:
//
//	The error response body for the delete track endpoint.
type DeleteTrackErrorResponseBody struct {

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
		return nil, fmt.Errorf("deletetrack: failed to deduce injector")
	}

	return &injector, nil
}

// Description:
//
//	The router handler for deleting a track.
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

	notFound := &api.APIResponse{
		StatusCode: http.StatusNotFound,
		Body: DeleteTrackErrorResponseBody{
			Message: "Track not found",
		},
	}

	idToDelete, err := strconv.Atoi(request.PathParameters["id"])
	if err != nil {
		log.Warnf("[%s] invalid track id: %s", context.ID, err)
		return notFound
	}

	count := injector.TrackStore.DeleteItem(idToDelete)
	if count == 0 {
		log.Warnf("[%s] track %d does not exist", context.ID, idToDelete)
		return notFound
	}

	log.Tracef("[%s] successfully deleted track %d", context.ID, idToDelete)
	return &api.APIResponse{
		StatusCode: http.StatusNoContent,
	}
}
