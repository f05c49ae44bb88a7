package httpgin

import (
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	redisrepo "github.com/bandstand/bandstand/internal/repository/redis"
	"github.com/bandstand/bandstand/internal/service"
	"github.com/bandstand/bandstand/web"
)

func NewRouter(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
	limiter *redisrepo.SlidingWindowLimiter,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()

	r.Use(
		gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, _ any) {
			renderServerError(c)
		}),
		LoggingMiddleware(logger),
		RequestIDMiddleware(),
		CORS(),
	)
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// Show times are preformatted in the handlers, so templates only
	// ever see display strings.
	tmpl := template.Must(template.New("").ParseFS(web.Templates, "templates/*.tmpl"))
	r.SetHTMLTemplate(tmpl)

	// health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Pages
	r.GET("/", handleHome(svcs))

	r.GET("/venues", handleListVenues(svcs))
	r.POST("/venues/search", handleSearchVenues(svcs, limiter))
	r.GET("/venues/create", handleNewVenueForm())
	r.POST("/venues/create", handleCreateVenue(svcs, limiter))
	r.GET("/venues/:id", handleShowVenue(svcs))
	r.GET("/venues/:id/edit", handleEditVenueForm(svcs))
	r.POST("/venues/:id/edit", handleEditVenue(svcs, limiter))
	r.DELETE("/venues/:id", handleDeleteVenue(svcs))

	r.GET("/artists", handleListArtists(svcs))
	r.POST("/artists/search", handleSearchArtists(svcs, limiter))
	r.GET("/artists/create", handleNewArtistForm())
	r.POST("/artists/create", handleCreateArtist(svcs, limiter))
	r.GET("/artists/:id", handleShowArtist(svcs))
	r.GET("/artists/:id/edit", handleEditArtistForm(svcs))
	r.POST("/artists/:id/edit", handleEditArtist(svcs, limiter))
	r.DELETE("/artists/:id", handleDeleteArtist(svcs))

	r.GET("/shows", handleListShows(svcs))
	r.GET("/shows/create", handleNewShowForm())
	r.POST("/shows/create", handleCreateShow(svcs, limiter))

	// JSON API consumed by the pages' async actions.
	api := r.Group("/api")
	{
		api.GET("/venues", handleAPIVenues(svcs))
		api.GET("/artists", handleAPIArtists(svcs))
		api.GET("/shows", handleAPIShows(svcs))
		api.POST("/shows", handleAPICreateShow(svcs, idem))
	}

	r.NoRoute(func(c *gin.Context) {
		renderNotFound(c)
	})

	return r
}

// --- Shared helpers ---

func parseInt64Param(c *gin.Context, name string) (int64, bool) {
	s := c.Param(name)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		renderNotFound(c)
		return 0, false
	}
	return v, true
}

// parseInt64ParamJSON is parseInt64Param for JSON endpoints.
func parseInt64ParamJSON(c *gin.Context, name string) (int64, bool) {
	s := c.Param(name)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		return 0, false
	}
	return v, true
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.tmpl", gin.H{
		"Flash": takeFlash(c),
	})
	c.Abort()
}

func renderServerError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "500.tmpl", gin.H{
		"Flash": "",
	})
	c.Abort()
}

// rateLimited enforces the per-IP sliding window on form posts. A nil
// limiter disables limiting (tests).
func rateLimited(c *gin.Context, limiter *redisrepo.SlidingWindowLimiter) bool {
	if limiter == nil {
		return false
	}

	allowed, _, retryAfter, err := limiter.Allow(c.Request.Context(), "ip:"+c.ClientIP())
	if err != nil {
		// The limiter is advisory; a broken Redis must not take forms
		// down with it.
		return false
	}
	if !allowed {
		c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
		c.String(http.StatusTooManyRequests, "Too many requests. Try again shortly.")
		c.Abort()
		return true
	}
	return false
}
