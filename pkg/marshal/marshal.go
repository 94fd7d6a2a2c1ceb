package marshal

import "encoding/json"

// Description:
//
//	Renders any value as a JSON string for log output.
//	Marshalling failures are rendered inline instead of returned.
//
// Parameters:
//
//	object The value to render.
//
// Returns:
//
//	The JSON representation of the value.
func Quick(object interface{}) string {
	bytes, err := json.Marshal(object)
	if err != nil {
		return "<marshal error: " + err.Error() + ">"
	}

	return string(bytes)
}
