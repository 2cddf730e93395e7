package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/urmzd/homeview/pkg/api/handlers"
	"github.com/urmzd/homeview/pkg/entity"
	"github.com/urmzd/homeview/pkg/entity/schema"
	"github.com/urmzd/homeview/pkg/route"
)

// Options configures the router.
type Options struct {
	BasePath string
	Site     handlers.Site
	Routes   []route.Route // defaults to route.Table()
}

// Router holds the Gin engine and dependencies
type Router struct {
	engine    *gin.Engine
	store     entity.Store
	broker    *entity.Broker
	validator *schema.Validator
	opts      Options
}

// NewRouter creates a new router serving the API and the page routes.
func NewRouter(store entity.Store, broker *entity.Broker, validator *schema.Validator, opts Options) (*Router, error) {
	gin.SetMode(gin.ReleaseMode)

	if opts.BasePath == "" {
		opts.BasePath = "/"
	}
	if opts.Routes == nil {
		opts.Routes = route.Table()
	}

	engine := gin.New()
	SetupMiddleware(engine)

	router := &Router{
		engine:    engine,
		store:     store,
		broker:    broker,
		validator: validator,
		opts:      opts,
	}

	if err := router.setupRoutes(); err != nil {
		return nil, err
	}

	return router, nil
}

// setupRoutes configures the API, docs and page routes
func (r *Router) setupRoutes() error {
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	healthHandler := handlers.NewHealthHandler(r.store)
	r.engine.GET("/health", healthHandler.Health)

	v1 := r.engine.Group("/api/v1")
	{
		v1.GET("/health", healthHandler.Health)

		routesHandler := handlers.NewRoutesHandler(r.opts.Routes, r.opts.BasePath)
		v1.GET("/routes", routesHandler.Routes)

		eventsHandler := handlers.NewEventsHandler(r.broker)
		v1.GET("/events", eventsHandler.Events)

		entitiesHandler := handlers.NewEntitiesHandler(r.store, r.validator, r.broker, r.opts.Routes, r.opts.BasePath)
		entities := v1.Group("/:collection")
		{
			entities.GET("", entitiesHandler.ListEntities)
			entities.GET("/:id", entitiesHandler.GetEntity)
			entities.PUT("/:id", entitiesHandler.PutEntity)
			entities.DELETE("/:id", entitiesHandler.DeleteEntity)
			entities.GET("/:id/attributes/:name", entitiesHandler.GetAttribute)
		}
	}

	pages := handlers.NewPagesHandler(r.store, r.opts.Routes, r.opts.BasePath, r.opts.Site)
	return route.Mount(r.engine, r.opts.BasePath, r.opts.Routes, pages.Views())
}

// Handler returns the underlying http.Handler
func (r *Router) Handler() http.Handler {
	return r.engine
}
