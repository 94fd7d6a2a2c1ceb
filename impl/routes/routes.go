package routes

import (
	"github.com/gostream-official/tracks/impl/funcs/createtrack"
	"github.com/gostream-official/tracks/impl/funcs/deletetrack"
	"github.com/gostream-official/tracks/impl/funcs/gettrack"
	"github.com/gostream-official/tracks/impl/funcs/gettracks"
	"github.com/gostream-official/tracks/impl/funcs/health"
	"github.com/gostream-official/tracks/impl/funcs/updatetrack"
	"github.com/gostream-official/tracks/impl/inject"
	"github.com/gostream-official/tracks/pkg/router"
)

// Description:
//
//	Registers every endpoint of the service on the engine.
//
// Parameters:
//
//	engine 		The router engine.
//	injector 	The dependencies handed to the track endpoints.
func Register(engine *router.Engine, injector inject.Injector) {
	engine.HandleWith("GET", "/api/tracks", gettracks.Handler).Inject(injector)
	engine.HandleWith("GET", "/api/tracks/:id", gettrack.Handler).Inject(injector)
	engine.HandleWith("POST", "/api/tracks", createtrack.Handler).Inject(injector)
	engine.HandleWith("PUT", "/api/tracks/:id", updatetrack.Handler).Inject(injector)
	engine.HandleWith("DELETE", "/api/tracks/:id", deletetrack.Handler).Inject(injector)

	engine.HandleWith("GET", "/health", health.Handler)
}

// Description:
//
//	Creates a router engine serving the full API. The engine does not
//	listen until Run is called.
//
// Parameters:
//
//	injector The dependencies handed to the track endpoints.
//
// Returns:
//
//	The created engine.
func NewEngine(injector inject.Injector) *router.Engine {
	engine := router.Default()
	Register(engine, injector)
	return engine
}
