package httpgin

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	redisrepo "github.com/bandstand/bandstand/internal/repository/redis"
	"github.com/bandstand/bandstand/internal/service"
)

func handleAPIVenues(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		areas, err := svcs.Venues.ListAreas(c.Request.Context())
		if err != nil {
			respondAPIErr(c, err)
			return
		}

		writeJSONWithCache(c, http.StatusOK, toVenueAreaResponses(areas), "public, max-age=30", true)
	}
}

func handleAPIArtists(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		artists, err := svcs.Artists.List(c.Request.Context())
		if err != nil {
			respondAPIErr(c, err)
			return
		}

		writeJSONWithCache(c, http.StatusOK, toArtistSummaryResponses(artists), "public, max-age=30", true)
	}
}

func handleAPIShows(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		listings, err := svcs.Shows.List(c.Request.Context())
		if err != nil {
			respondAPIErr(c, err)
			return
		}

		writeJSONWithCache(c, http.StatusOK, toShowListingResponses(listings), "public, max-age=15", true)
	}
}

func handleAPICreateShow(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateShowRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		startTime, err := parseRFC3339(req.StartTime)
		if err != nil {
			badRequest(c, "invalid start_time")
			return
		}

		idemKey := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
		var idemStorageKey string
		if idem != nil && idemKey != "" {
			idemStorageKey = redisrepo.KeyIdemShow(idemKey)

			if payload, ok, _ := idem.GetResult(
				c.Request.Context(),
				idemStorageKey,
			); ok {
				c.Header("Idempotency-Key", idemKey)
				c.Data(
					http.StatusCreated,
					"application/json; charset=utf-8",
					[]byte(payload),
				)
				return
			}

			locked, err := idem.AcquireLock(
				c.Request.Context(),
				idemStorageKey,
				60*time.Second,
			)
			if err != nil {
				respondAPIErr(c, err)
				return
			}
			if !locked {
				if payload, ok, _ := idem.GetResult(
					c.Request.Context(),
					idemStorageKey,
				); ok {
					c.Header("Idempotency-Key", idemKey)
					c.Data(
						http.StatusCreated,
						"application/json; charset=utf-8",
						[]byte(payload),
					)
					return
				}
				c.Header("Retry-After", "1")
				c.JSON(
					http.StatusConflict,
					ErrorResponse{Error: "idempotency key in progress"},
				)
				return
			}
		}

		showID, err := svcs.Shows.Create(c.Request.Context(), req.Show(startTime))
		if err != nil {
			if idemStorageKey != "" && idem != nil {
				_ = idem.Release(c.Request.Context(), idemStorageKey)
			}
			respondAPIErr(c, err)
			return
		}

		resp := CreateShowResponse{ShowID: showID}

		if idemStorageKey != "" && idem != nil {
			b, _ := json.Marshal(resp)
			_ = idem.SaveResult(c.Request.Context(), idemStorageKey, string(b))
			c.Header("Idempotency-Key", idemKey)
		}

		c.JSON(http.StatusCreated, resp)
	}
}
