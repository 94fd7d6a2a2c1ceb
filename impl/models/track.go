package models

const (
	// The lowest accepted weirdness score.
	MinWeirdness = 1

	// The highest accepted weirdness score.
	MaxWeirdness = 10

	// The weirdness assigned when a track is created without one.
	DefaultWeirdness = 5

	// The genre assigned when a track is created without one.
	DefaultGenre = "Unknown"

	// The id handed to the first track created after startup.
	FirstCreatedID = 3
)

// Description:
//
//	The data model definition for a track.
//	Field order matches the JSON representation served by the API.
type TrackInfo struct {

	// The id of the track, assigned by the store.
	ID int `json:"id"`

	// The title of the track.
	Title string `json:"title"`

	// The artist of the track.
	Artist string `json:"artist"`

	// How weird the track is, from MinWeirdness to MaxWeirdness.
	Weirdness int `json:"weirdness"`

	// The genre of the track.
	Genre string `json:"genre"`
}

// Description:
//
//	Returns the id assigned by the store.
//
// Returns:
//
//	The track id.
func (track TrackInfo) Identity() int {
	return track.ID
}

// Description:
//
//	Exposes the track fields to store queries, by their JSON names.
//
// Parameters:
//
//	key The JSON field name.
//
// Returns:
//
//	The field value and whether the field exists.
func (track TrackInfo) Field(key string) (interface{}, bool) {
	switch key {
	case "id":
		return track.ID, true
	case "title":
		return track.Title, true
	case "artist":
		return track.Artist, true
	case "weirdness":
		return track.Weirdness, true
	case "genre":
		return track.Genre, true
	default:
		return nil, false
	}
}

// Description:
//
//	Returns the tracks every fresh store starts with.
//
// Returns:
//
//	The seed tracks, in order.
func SeedTracks() []TrackInfo {
	return []TrackInfo{
		{
			ID:        1,
			Title:     "Windowlicker",
			Artist:    "Aphex Twin",
			Weirdness: 9,
			Genre:     "IDM",
		},
		{
			ID:        2,
			Title:     "Weird Fishes",
			Artist:    "Radiohead",
			Weirdness: 7,
			Genre:     "Alternative",
		},
	}
}
