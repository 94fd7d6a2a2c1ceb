package parallel

import "github.com/google/uuid"

// Description:
//
//	A per-request execution context.
//	The id is used to correlate log lines of a single request.
type Context struct {

	// The correlation id of the request.
	ID string
}

// Description:
//
//	Creates a new context with a random correlation id.
//
// Returns:
//
//	The created context.
func NewContext() *Context {
	return &Context{
		ID: uuid.New().String(),
	}
}
