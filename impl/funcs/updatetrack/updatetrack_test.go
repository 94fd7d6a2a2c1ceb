package updatetrack

import (
	"net/http"
	"testing"

	"github.com/gostream-official/tracks/impl/inject"
	"github.com/gostream-official/tracks/impl/models"
	"github.com/gostream-official/tracks/pkg/api"
)

func newRequest(id string, body string) *api.APIRequest {
	return &api.APIRequest{
		Method:         "PUT",
		Path:           "/api/tracks/" + id,
		PathParameters: map[string]string{"id": id},
		Body:           body,
	}
}

func seed(t *testing.T, injector inject.Injector, id int) models.TrackInfo {
	t.Helper()

	track, err := injector.TrackStore.FindItem(id)
	if err != nil {
		t.Fatal(err)
	}
	return track
}

func TestHandlerUpdates(t *testing.T) {
	windowlicker := models.SeedTracks()[0]

	tests := []struct {
		name string
		body string
		want models.TrackInfo
	}{
		{"empty body", ``, windowlicker},
		{"title only", `{"title":"Flim"}`, models.TrackInfo{ID: 1, Title: "Flim", Artist: "Aphex Twin", Weirdness: 9, Genre: "IDM"}},
		{"all fields", `{"title":"A","artist":"B","weirdness":1,"genre":"C"}`, models.TrackInfo{ID: 1, Title: "A", Artist: "B", Weirdness: 1, Genre: "C"}},
		{"empty strings keep", `{"title":"","artist":"","genre":""}`, windowlicker},
		{"nulls keep", `{"title":null,"weirdness":null}`, windowlicker},
		{"weirdness upper bound", `{"weirdness":10}`, models.TrackInfo{ID: 1, Title: "Windowlicker", Artist: "Aphex Twin", Weirdness: 10, Genre: "IDM"}},
		{"id in body ignored", `{"id":99}`, windowlicker},
		{"mismatched-case keys ignored", `{"TITLE":"X","Weirdness":50,"Genre":"Y"}`, windowlicker},
		{"whole float weirdness", `{"weirdness":6.0}`, models.TrackInfo{ID: 1, Title: "Windowlicker", Artist: "Aphex Twin", Weirdness: 6, Genre: "IDM"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			injector := inject.NewInjector()

			response := Handler(newRequest("1", tt.body), injector)
			if response.StatusCode != http.StatusOK {
				t.Fatalf("expected 200, got %d", response.StatusCode)
			}

			if got := response.Body.(models.TrackInfo); got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
			if got := seed(t, injector, 1); got != tt.want {
				t.Errorf("stored track: expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestHandlerRejectsWeirdnessOutOfRange(t *testing.T) {
	for _, body := range []string{
		`{"weirdness":11}`,
		`{"weirdness":0}`,
		`{"title":"Changed","weirdness":-1}`,
		`{"weirdness":6.5}`,
	} {
		injector := inject.NewInjector()
		before := seed(t, injector, 1)

		response := Handler(newRequest("1", body), injector)
		if response.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", body, response.StatusCode)
		}

		if got, ok := response.Body.(*UpdateTrackValidationError); !ok || got.ErrorMessage != "Weirdness must be between 1-10" {
			t.Errorf("%s: unexpected body %#v", body, response.Body)
		}

		if after := seed(t, injector, 1); after != before {
			t.Errorf("%s: track changed from %+v to %+v", body, before, after)
		}
	}
}

func TestHandlerNotFoundBeforeValidation(t *testing.T) {
	for _, id := range []string{"42", "abc"} {
		injector := inject.NewInjector()

		response := Handler(newRequest(id, `{"weirdness":11}`), injector)
		if response.StatusCode != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", id, response.StatusCode)
		}

		if got, ok := response.Body.(UpdateTrackErrorResponseBody); !ok || got.Message != "Track not found" {
			t.Errorf("%s: unexpected body %#v", id, response.Body)
		}
	}
}

func TestHandlerRejectsMalformedBody(t *testing.T) {
	for _, id := range []string{"1", "42"} {
		injector := inject.NewInjector()

		response := Handler(newRequest(id, `{"weirdness":`), injector)
		if response.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", id, response.StatusCode)
		}

		if got, ok := response.Body.(UpdateTrackErrorResponseBody); !ok || got.Message != "Invalid request body" {
			t.Errorf("%s: unexpected body %#v", id, response.Body)
		}
	}
}
