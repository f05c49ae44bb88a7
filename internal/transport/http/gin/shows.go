package httpgin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bandstand/bandstand/internal/domain"
	"github.com/bandstand/bandstand/internal/forms"
	redisrepo "github.com/bandstand/bandstand/internal/repository/redis"
	"github.com/bandstand/bandstand/internal/service"
	"github.com/bandstand/bandstand/internal/service/shows"
)

// listingRow is a template-facing show listing with its start time
// preformatted.
type listingRow struct {
	VenueID         int64
	VenueName       string
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	StartTime       string
}

func toListingRows(in []domain.ShowListing) []listingRow {
	out := make([]listingRow, 0, len(in))
	for _, s := range in {
		out = append(out, listingRow{
			VenueID:         s.VenueID,
			VenueName:       s.VenueName,
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       s.StartTime.Format(displayTime),
		})
	}
	return out
}

func handleListShows(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		listings, err := svcs.Shows.List(c.Request.Context())
		if err != nil {
			c.Error(err)
			listings = nil
		}

		c.HTML(http.StatusOK, "shows.tmpl", gin.H{
			"Flash": takeFlash(c),
			"Shows": toListingRows(listings),
		})
	}
}

func handleNewShowForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		renderShowForm(c, forms.ShowForm{}, nil)
	}
}

func handleCreateShow(svcs *service.Services, limiter *redisrepo.SlidingWindowLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rateLimited(c, limiter) {
			return
		}

		var form forms.ShowForm
		if err := c.ShouldBind(&form); err != nil {
			renderShowForm(c, form, forms.Errors{"form": {"Invalid submission."}})
			return
		}

		if errs := form.Validate(); errs.Any() {
			renderShowForm(c, form, errs)
			return
		}

		if _, err := svcs.Shows.Create(c.Request.Context(), form.Show()); err != nil {
			switch {
			case errors.Is(err, shows.ErrArtistNotFound):
				renderShowForm(c, form, forms.Errors{"artist_id": {"No artist with that id."}})
			case errors.Is(err, shows.ErrVenueNotFound):
				renderShowForm(c, form, forms.Errors{"venue_id": {"No venue with that id."}})
			default:
				c.Error(err)
				renderShowForm(c, form, forms.Errors{
					"form": {"An error occurred. Show could not be listed."},
				})
			}
			return
		}

		setFlash(c, "Show was successfully listed!")
		c.Redirect(http.StatusSeeOther, "/")
	}
}

func renderShowForm(c *gin.Context, form forms.ShowForm, errs forms.Errors) {
	status := http.StatusOK
	if errs.Any() {
		status = http.StatusBadRequest
	}

	startValue := ""
	if !form.StartTime.IsZero() {
		startValue = form.StartTime.Format(formTime)
	}

	c.HTML(status, "new_show.tmpl", gin.H{
		"Flash":          takeFlash(c),
		"Form":           form,
		"Errors":         errs,
		"StartTimeValue": startValue,
	})
}
