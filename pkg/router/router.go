// Package router adapts api handlers onto a gin engine.
package router

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gostream-official/tracks/pkg/api"
	"github.com/revx-official/output/log"
)

// Description:
//
//	An endpoint handler. The object is whatever was passed to Inject for
//	the route, or nil.
type HandlerFunc func(request *api.APIRequest, object interface{}) *api.APIResponse

// Description:
//
//	A registered route. Dependencies can be injected after registration.
type Route struct {
	method   string
	path     string
	handler  HandlerFunc
	injected interface{}
}

// Description:
//
//	Injects an object that is passed to the handler on every request.
//
// Parameters:
//
//	object The object to inject.
//
// Returns:
//
//	The route, for chaining.
func (route *Route) Inject(object interface{}) *Route {
	route.injected = object
	return route
}

// Description:
//
//	The router engine. Wraps a gin engine.
type Engine struct {
	engine *gin.Engine
	routes []*Route
}

// Description:
//
//	Creates a router engine with panic recovery, request logging and a
//	JSON not-found handler. Trailing slashes are ignored when matching
//	routes, so /tracks/ is served like /tracks.
//
// Returns:
//
//	The created engine.
func Default() *Engine {
	if gin.Mode() == gin.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.RedirectTrailingSlash = false
	engine.Use(gin.Recovery(), requestLogger())

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return &Engine{
		engine: engine,
	}
}

// Description:
//
//	Registers a handler for the given method and path.
//	Paths use gin syntax, e.g. /tracks/:id.
//
// Parameters:
//
//	method 	The HTTP method.
//	path 	The route path.
//	handler The endpoint handler.
//
// Returns:
//
//	The registered route.
func (engine *Engine) HandleWith(method string, path string, handler HandlerFunc) *Route {
	route := &Route{
		method:  method,
		path:    path,
		handler: handler,
	}

	engine.engine.Handle(method, path, func(c *gin.Context) {
		request, err := NewAPIRequest(c)
		if err != nil {
			log.Warnf("failed to read request %s %s: %s", c.Request.Method, c.Request.URL.Path, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		WriteAPIResponse(c, route.handler(request, route.injected))
	})

	engine.routes = append(engine.routes, route)
	return route
}

// Description:
//
//	Serves a single HTTP request. Trailing slashes are stripped from the
//	path before routing.
//
// Parameters:
//
//	writer 	The response writer.
//	request The incoming request.
func (engine *Engine) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	if path := request.URL.Path; len(path) > 1 && strings.HasSuffix(path, "/") {
		trimmed := strings.TrimRight(path, "/")
		if trimmed == "" {
			trimmed = "/"
		}

		request.URL.Path = trimmed
		request.URL.RawPath = ""
	}

	engine.engine.ServeHTTP(writer, request)
}

// Description:
//
//	Starts listening on the given port. Blocks until the server fails.
//
// Parameters:
//
//	port The TCP port.
//
// Returns:
//
//	The error that stopped the server.
func (engine *Engine) Run(port int) error {
	for _, route := range engine.routes {
		log.Infof("route registered: %s %s", route.method, route.path)
	}

	log.Infof("listening on port %d", port)
	return http.ListenAndServe(fmt.Sprintf(":%d", port), engine)
}

// Description:
//
//	Converts a gin request context into an API request.
//	Only the first value of repeated headers and query keys is kept.
//
// Parameters:
//
//	c The gin context.
//
// Returns:
//
//	The API request, or an error if the body could not be read.
func NewAPIRequest(c *gin.Context) (*api.APIRequest, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, err
	}

	request := &api.APIRequest{
		Method:          c.Request.Method,
		Path:            c.Request.URL.Path,
		Headers:         make(map[string]string, len(c.Request.Header)),
		PathParameters:  make(map[string]string, len(c.Params)),
		QueryParameters: make(map[string]string),
		Body:            string(body),
	}

	for key, values := range c.Request.Header {
		if len(values) > 0 {
			request.Headers[key] = values[0]
		}
	}

	for _, param := range c.Params {
		request.PathParameters[param.Key] = param.Value
	}

	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			request.QueryParameters[key] = values[0]
		}
	}

	return request, nil
}

// Description:
//
//	Writes an API response to the gin context. A nil response is a 500,
//	a nil body is written as an empty response.
//
// Parameters:
//
//	c 			The gin context.
//	response 	The API response.
func WriteAPIResponse(c *gin.Context, response *api.APIResponse) {
	if response == nil {
		c.Status(http.StatusInternalServerError)
		c.Writer.WriteHeaderNow()
		return
	}

	if response.Body == nil {
		c.Status(response.StatusCode)
		c.Writer.WriteHeaderNow()
		return
	}

	c.JSON(response.StatusCode, response.Body)
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Infof("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.RequestURI(), c.Writer.Status(), time.Since(start))
	}
}
