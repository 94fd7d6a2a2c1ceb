package api

// Description:
//
//	A transport-neutral representation of an incoming API request.
//	The router fills this in before handing it to an endpoint handler.
type APIRequest struct {

	// The HTTP method, e.g. GET.
	Method string `json:"method"`

	// The request path as received.
	Path string `json:"path"`

	// The request headers. Only the first value of each header is kept.
	Headers map[string]string `json:"headers"`

	// The path parameters, keyed by name without the leading colon.
	PathParameters map[string]string `json:"pathParameters"`

	// The query parameters. Only the first value of each key is kept.
	QueryParameters map[string]string `json:"queryParameters"`

	// The raw request body.
	Body string `json:"body"`
}

// Description:
//
//	The response produced by an endpoint handler.
//	A nil body is written as an empty response.
type APIResponse struct {

	// The HTTP status code.
	StatusCode int `json:"statusCode"`

	// The response body, serialized as JSON.
	Body interface{} `json:"body,omitempty"`
}
