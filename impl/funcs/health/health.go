package health

import (
	"net/http"

	"github.com/gostream-official/tracks/pkg/api"
	"github.com/gostream-official/tracks/pkg/parallel"
	"github.com/revx-official/output/log"
)

// Description:
//
//	The response body for the health endpoint.
type HealthResponseBody struct {

	// Always "ok".
	Status string `json:"status"`
}

// Description:
//
//	The router handler for the health check.
//	Reports that the service is reachable and checks nothing else.
//
// Parameters:
//
//	request The incoming request.
//	object 	Unused.
//
// Returns:
//
//	An API response object.
func Handler(request *api.APIRequest, object interface{}) *api.APIResponse {
	context := parallel.NewContext()
	log.Tracef("[%s] %s: %s", context.ID, request.Method, request.Path)

	return &api.APIResponse{
		StatusCode: http.StatusOK,
		Body: HealthResponseBody{
			Status: "ok",
		},
	}
}
