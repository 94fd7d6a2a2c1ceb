package updatetrack

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gostream-official/tracks/impl/inject"
	"github.com/gostream-official/tracks/impl/models"
	"github.com/gostream-official/tracks/pkg/api"
	"github.com/gostream-official/tracks/pkg/marshal"
	"github.com/gostream-official/tracks/pkg/parallel"
	"github.com/gostream-official/tracks/pkg/store"
	"github.com/revx-official/output/log"

	jsoniter "github.com/json-iterator/go"
)

// Request bodies only bind keys that match the json tags exactly.
var json = jsoniter.Config{CaseSensitive: true}.Froze()

var validate = newValidator()

// Returned from the update callback when the body fails validation.
var errRequestRejected = errors.New("updatetrack: request body rejected")

// Description:
//
//	Creates the request body validator.
//	Registers the "whole" tag, which rejects numbers with a fraction.
//
// Returns:
//
//	The validator.
func newValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("whole", func(fl validator.FieldLevel) bool {
		value := fl.Field().Float()
		return value == math.Trunc(value)
	})

	return v
}

// Description:
//
//	Validates a provided weirdness value.
//
// Parameters:
//
//	weirdness The provided value.
//
// Returns:
//
//	An error if the value is not a whole number in range.
func validateWeirdness(weirdness float64) error {
	tag := fmt.Sprintf("whole,min=%d,max=%d", models.MinWeirdness, models.MaxWeirdness)
	return validate.Var(weirdness, tag)
}

// Description:
//
//	The request body for the update track endpoint.
//	Nil fields were omitted and keep their stored value.
type UpdateTrackRequestBody struct {

	// The title of the track.
	Title *string `json:"title"`

	// The artist of the track.
	Artist *string `json:"artist"`

	// The weirdness score. Decoded as a number so that 5.0 is accepted.
	Weirdness *float64 `json:"weirdness"`

	// The genre of the track.
	Genre *string `json:"genre"`
}

// Description:
//
//	The error response body for the update track endpoint.
type UpdateTrackErrorResponseBody struct {

	// The error message.
	Message string `json:"error"`
}

// Description:
//
//	Describes a validation error.
type UpdateTrackValidationError struct {

	// The JSON field which is referenced by the error message.
	FieldRef string `json:"-"`

	// The error message.
	ErrorMessage string `json:"error"`
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
		return nil, fmt.Errorf("updatetrack: failed to deduce injector")
	}

	return &injector, nil
}

// Description:
//
//	Unmarshals the request body for this endpoint.
//	An empty body is treated as an empty object.
//
// Parameters:
//
//	request The original request.
//
// Returns:
//
//	The unmarshalled request body, or an error when unmarshalling fails.
func ExtractRequestBody(request *api.APIRequest) (*UpdateTrackRequestBody, error) {
	body := &UpdateTrackRequestBody{}

	if strings.TrimSpace(request.Body) == "" {
		return body, nil
	}

	bytes := []byte(request.Body)
	err := json.Unmarshal(bytes, body)

	if err != nil {
		return nil, err
	}

	return body, nil
}

// Description:
//
//	Validates the request body for this endpoint.
//	A provided weirdness must be in range, zero included.
//
// Parameters:
//
//	request The request body.
//
// Returns:
//
//	An error if the validation fails.
func ValidateRequestBody(request *UpdateTrackRequestBody) *UpdateTrackValidationError {
	if request.Weirdness == nil {
		return nil
	}

	if err := validateWeirdness(*request.Weirdness); err != nil {
		return &UpdateTrackValidationError{
			FieldRef:     "weirdness",
			ErrorMessage: "Weirdness must be between 1-10",
		}
	}

	return nil
}

// Description:
//
//	Applies a validated request body to a track. Omitted fields keep
//	their value. Empty strings count as omitted, so title and artist
//	never become empty.
//
// Parameters:
//
//	track 	The current track.
//	request The validated request body.
//
// Returns:
//
//	The updated track.
func ApplyRequestBody(track models.TrackInfo, request *UpdateTrackRequestBody) models.TrackInfo {
	if request.Title != nil && *request.Title != "" {
		track.Title = *request.Title
	}

	if request.Artist != nil && *request.Artist != "" {
		track.Artist = *request.Artist
	}

	if request.Weirdness != nil {
		track.Weirdness = int(*request.Weirdness)
	}

	if request.Genre != nil && *request.Genre != "" {
		track.Genre = *request.Genre
	}

	return track
}

// Description:
//
//	The router handler for track updates.
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
		Body: UpdateTrackErrorResponseBody{
			Message: "Track not found",
		},
	}

	id, err := strconv.Atoi(request.PathParameters["id"])
	if err != nil {
		log.Warnf("[%s] invalid track id: %s", context.ID, err)
		return notFound
	}

	requestBody, err := ExtractRequestBody(request)
	if err != nil {
		log.Warnf("[%s] failed to extract request body: %s", context.ID, err)
		return &api.APIResponse{
			StatusCode: http.StatusBadRequest,
			Body: UpdateTrackErrorResponseBody{
				Message: "Invalid request body",
			},
		}
	}

	var validationError *UpdateTrackValidationError

	log.Tracef("[%s] attempting to update track %d ...", context.ID, id)
	trackInfo, err := injector.TrackStore.UpdateItem(id, func(track models.TrackInfo) (models.TrackInfo, error) {
		validationError = ValidateRequestBody(requestBody)
		if validationError != nil {
			return track, errRequestRejected
		}

		return ApplyRequestBody(track, requestBody), nil
	})

	if errors.Is(err, store.ErrItemNotFound) {
		log.Warnf("[%s] could not find track %d: %s", context.ID, id, err)
		return notFound
	}

	if err != nil {
		log.Warnf("[%s] failed request body validation on %s: %s", context.ID, validationError.FieldRef, validationError.ErrorMessage)
		return &api.APIResponse{
			StatusCode: http.StatusBadRequest,
			Body:       validationError,
		}
	}

	log.Tracef("[%s] successfully completed request", context.ID)
	return &api.APIResponse{
		StatusCode: http.StatusOK,
		Body:       trackInfo,
	}
}
