package gettracks

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gostream-official/tracks/impl/inject"
	"github.com/gostream-official/tracks/pkg/api"
	"github.com/gostream-official/tracks/pkg/marshal"
	"github.com/gostream-official/tracks/pkg/parallel"
	"github.com/gostream-official/tracks/pkg/store/query"
	"github.com/revx-official/output/log"
)

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
		return nil, fmt.Errorf("gettracks: failed to deduce injector")
	}

	return &injector, nil
}

// Description:
//
//	Creates a query filter from the incoming API request.
//	A missing, empty or non-numeric minWeirdness means no filter.
//
// Parameters:
//
//	request The incoming API request.
//
// Returns:
//
//	The created query filter.
func CreateFilterFromQueryParameters(request *api.APIRequest) query.Filter {
	andFilter := query.FilterOperatorAnd{
		And: make([]query.IQuery, 0),
	}

	var realThreshold int
	var realThresholdErr error

	minWeirdness, minWeirdnessOk := request.QueryParameters["minWeirdness"]
	if minWeirdnessOk {
		realThreshold, realThresholdErr = strconv.Atoi(strings.TrimSpace(minWeirdness))
	}

	if minWeirdnessOk && realThresholdErr == nil {
		andFilter.And = append(andFilter.And, query.FilterOperatorGte{
			Key:   "weirdness",
			Value: realThreshold,
		})
	}

	resultFilter := query.Filter{}

	if len(andFilter.And) > 0 {
		resultFilter.Root = andFilter
	}

	return resultFilter
}

// Description:
//
//	The router handler for listing tracks.
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

	filter := CreateFilterFromQueryParameters(request)
	items := injector.TrackStore.FindItems(&filter)

	log.Tracef("[%s] found %d tracks", context.ID, len(items))
	return &api.APIResponse{
		StatusCode: http.StatusOK,
		Body:       items,
	}
}
