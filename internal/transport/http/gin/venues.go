package httpgin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bandstand/bandstand/internal/domain"
	"github.com/bandstand/bandstand/internal/forms"
	redisrepo "github.com/bandstand/bandstand/internal/repository/redis"
	"github.com/bandstand/bandstand/internal/service"
	"github.com/bandstand/bandstand/internal/service/venues"
)

func handleHome(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		recentVenues, err := svcs.Venues.ListRecent(c.Request.Context())
		if err != nil {
			c.Error(err)
		}
		recentArtists, err := svcs.Artists.ListRecent(c.Request.Context())
		if err != nil {
			c.Error(err)
		}

		c.HTML(http.StatusOK, "home.tmpl", gin.H{
			"Flash":         takeFlash(c),
			"RecentVenues":  recentVenues,
			"RecentArtists": recentArtists,
		})
	}
}

func handleListVenues(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		areas, err := svcs.Venues.ListAreas(c.Request.Context())
		if err != nil {
			// Best-effort fallback: show an empty listing rather than
			// a hard error page.
			c.Error(err)
			areas = nil
		}

		c.HTML(http.StatusOK, "venues.tmpl", gin.H{
			"Flash": takeFlash(c),
			"Areas": areas,
		})
	}
}

func handleSearchVenues(svcs *service.Services, limiter *redisrepo.SlidingWindowLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rateLimited(c, limiter) {
			return
		}

		term := c.PostForm("search_term")

		results, err := svcs.Venues.Search(c.Request.Context(), term)
		if err != nil {
			c.Error(err)
			results = nil
		}

		c.HTML(http.StatusOK, "search_venues.tmpl", gin.H{
			"Flash":      takeFlash(c),
			"SearchTerm": term,
			"Count":      len(results),
			"Results":    results,
		})
	}
}

func handleShowVenue(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		venueID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		page, err := svcs.Venues.Get(c.Request.Context(), venueID)
		if err != nil {
			if errors.Is(err, venues.ErrVenueNotFound) {
				renderNotFound(c)
				return
			}
			c.Error(err)
			renderServerError(c)
			return
		}

		c.HTML(http.StatusOK, "show_venue.tmpl", gin.H{
			"Flash":              takeFlash(c),
			"Venue":              page.Venue,
			"PastShows":          toShowRows(page.PastShows),
			"UpcomingShows":      toShowRows(page.UpcomingShows),
			"PastShowsCount":     page.PastShowsCount,
			"UpcomingShowsCount": page.UpcomingShowsCount,
		})
	}
}

func handleNewVenueForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		renderVenueForm(c, "new_venue.tmpl", forms.VenueForm{}, nil, 0)
	}
}

func handleCreateVenue(svcs *service.Services, limiter *redisrepo.SlidingWindowLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rateLimited(c, limiter) {
			return
		}

		var form forms.VenueForm
		if err := c.ShouldBind(&form); err != nil {
			renderVenueForm(c, "new_venue.tmpl", form, forms.Errors{"form": {"Invalid submission."}}, 0)
			return
		}

		if errs := form.Validate(); errs.Any() {
			renderVenueForm(c, "new_venue.tmpl", form, errs, 0)
			return
		}

		if _, err := svcs.Venues.Create(c.Request.Context(), form.Venue()); err != nil {
			c.Error(err)
			renderVenueForm(c, "new_venue.tmpl", form, forms.Errors{
				"form": {"An error occurred. Venue " + form.Name + " could not be listed."},
			}, 0)
			return
		}

		setFlash(c, "Venue "+form.Name+" was successfully listed!")
		c.Redirect(http.StatusSeeOther, "/")
	}
}

func handleEditVenueForm(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		venueID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		page, err := svcs.Venues.Get(c.Request.Context(), venueID)
		if err != nil {
			if errors.Is(err, venues.ErrVenueNotFound) {
				renderNotFound(c)
				return
			}
			c.Error(err)
			renderServerError(c)
			return
		}

		renderVenueForm(c, "edit_venue.tmpl", forms.FromVenue(page.Venue), nil, venueID)
	}
}

func handleEditVenue(svcs *service.Services, limiter *redisrepo.SlidingWindowLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rateLimited(c, limiter) {
			return
		}

		venueID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		var form forms.VenueForm
		if err := c.ShouldBind(&form); err != nil {
			renderVenueForm(c, "edit_venue.tmpl", form, forms.Errors{"form": {"Invalid submission."}}, venueID)
			return
		}

		if errs := form.Validate(); errs.Any() {
			renderVenueForm(c, "edit_venue.tmpl", form, errs, venueID)
			return
		}

		v := form.Venue()
		v.ID = venueID

		if err := svcs.Venues.Update(c.Request.Context(), v); err != nil {
			if errors.Is(err, venues.ErrVenueNotFound) {
				renderNotFound(c)
				return
			}
			c.Error(err)
			renderVenueForm(c, "edit_venue.tmpl", form, forms.Errors{
				"form": {"An error occurred. Venue " + form.Name + " could not be updated."},
			}, venueID)
			return
		}

		setFlash(c, "Venue "+form.Name+" was successfully updated!")
		c.Redirect(http.StatusSeeOther, "/venues/"+c.Param("id"))
	}
}

func handleDeleteVenue(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		venueID, ok := parseInt64ParamJSON(c, "id")
		if !ok {
			return
		}

		if err := svcs.Venues.Delete(c.Request.Context(), venueID); err != nil {
			respondDeleteErr(c, err)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "Venue deleted successfully"})
	}
}

func renderVenueForm(c *gin.Context, tmpl string, form forms.VenueForm, errs forms.Errors, venueID int64) {
	status := http.StatusOK
	if errs.Any() {
		status = http.StatusBadRequest
	}

	c.HTML(status, tmpl, gin.H{
		"Flash":   takeFlash(c),
		"Form":    form,
		"Errors":  errs,
		"Genres":  domain.Genres,
		"States":  domain.States,
		"VenueID": venueID,
	})
}
