package createtrack

import (
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gostream-official/tracks/impl/inject"
	"github.com/gostream-official/tracks/impl/models"
	"github.com/gostream-official/tracks/pkg/api"
	"github.com/gostream-official/tracks/pkg/marshal"
	"github.com/gostream-official/tracks/pkg/parallel"
	"github.com/revx-official/output/log"

	jsoniter "github.com/json-iterator/go"
)

// Request bodies only bind keys that match the json tags exactly.
var json = jsoniter.Config{CaseSensitive: true}.Froze()

var validate = newValidator()

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
//	The request body for the create track endpoint.
type CreateTrackRequestBody struct {

	// The title of the track. Required.
	Title string `json:"title"`

	// The artist of the track. Required.
	Artist string `json:"artist"`

	// The weirdness score. Nil when omitted.
	// Decoded as a number so that 5.0 is accepted.
	Weirdness *float64 `json:"weirdness"`

	// The genre of the track.
	Genre string `json:"genre"`
}

// Description:
//
//	The error response body for the create track endpoint.
type CreateTrackErrorResponseBody struct {

	// The error message.
	Message string `json:"error"`
}

// Description:
//
//	Describes a validation error.
type CreateTrackValidationError struct {

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
		return nil, fmt.Errorf("createtrack: failed to deduce injector")
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
func ExtractRequestBody(request *api.APIRequest) (*CreateTrackRequestBody, error) {
	body := &CreateTrackRequestBody{}

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
//	Title and artist are checked before weirdness.
//
// Parameters:
//
//	request The request body.
//
// Returns:
//
//	An error if the validation fails.
func ValidateRequestBody(request *CreateTrackRequestBody) *CreateTrackValidationError {
	if err := validate.Var(request.Title, "required"); err != nil {
		return &CreateTrackValidationError{
			FieldRef:     "title",
			ErrorMessage: "Title and artist are required",
		}
	}

	if err := validate.Var(request.Artist, "required"); err != nil {
		return &CreateTrackValidationError{
			FieldRef:     "artist",
			ErrorMessage: "Title and artist are required",
		}
	}

	if request.Weirdness != nil {
		if err := validateWeirdness(*request.Weirdness); err != nil {
			return &CreateTrackValidationError{
				FieldRef:     "weirdness",
				ErrorMessage: "Weirdness must be between 1-10",
			}
		}
	}

	return nil
}

// Description:
//
//	Builds the track to store from a validated request body, applying
//	the defaults for omitted fields.
//
// Parameters:
//
//	id 		The id allocated by the store.
//	request The validated request body.
//
// Returns:
//
//	The track to store.
func BuildTrack(id int, request *CreateTrackRequestBody) models.TrackInfo {
	track := models.TrackInfo{
		ID:        id,
		Title:     request.Title,
		Artist:    request.Artist,
		Weirdness: models.DefaultWeirdness,
		Genre:     models.DefaultGenre,
	}

	if request.Weirdness != nil {
		track.Weirdness = int(*request.Weirdness)
	}

	if request.Genre != "" {
		track.Genre = request.Genre
	}

	return track
}

// Description:
//
//	The router handler for track creation.
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

	requestBody, err := ExtractRequestBody(request)
	if err != nil {
		log.Warnf("[%s] failed to extract request body: %s", context.ID, err)
		return &api.APIResponse{
			StatusCode: http.StatusBadRequest,
			Body: CreateTrackErrorResponseBody{
				Message: "Invalid request body",
			},
		}
	}

	validationError := ValidateRequestBody(requestBody)
	if validationError != nil {
		log.Warnf("[%s] failed request body validation on %s: %s", context.ID, validationError.FieldRef, validationError.ErrorMessage)
		return &api.APIResponse{
			StatusCode: http.StatusBadRequest,
			Body:       validationError,
		}
	}

	trackInfo := injector.TrackStore.CreateItem(func(id int) models.TrackInfo {
		return BuildTrack(id, requestBody)
	})

	log.Tracef("[%s] successfully created track %d", context.ID, trackInfo.ID)
	return &api.APIResponse{
		StatusCode: http.StatusCreated,
		Body:       trackInfo,
	}
}
