package httpgin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bandstand/bandstand/internal/domain"
	"github.com/bandstand/bandstand/internal/forms"
	redisrepo "github.com/bandstand/bandstand/internal/repository/redis"
	"github.com/bandstand/bandstand/internal/service"
	"github.com/bandstand/bandstand/internal/service/artists"
)

func handleListArtists(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := svcs.Artists.List(c.Request.Context())
		if err != nil {
			c.Error(err)
			list = nil
		}

		c.HTML(http.StatusOK, "artists.tmpl", gin.H{
			"Flash":   takeFlash(c),
			"Artists": list,
		})
	}
}

func handleSearchArtists(svcs *service.Services, limiter *redisrepo.SlidingWindowLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rateLimited(c, limiter) {
			return
		}

		term := c.PostForm("search_term")

		results, err := svcs.Artists.Search(c.Request.Context(), term)
		if err != nil {
			c.Error(err)
			results = nil
		}

		c.HTML(http.StatusOK, "search_artists.tmpl", gin.H{
			"Flash":      takeFlash(c),
			"SearchTerm": term,
			"Count":      len(results),
			"Results":    results,
		})
	}
}

func handleShowArtist(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		artistID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		page, err := svcs.Artists.Get(c.Request.Context(), artistID)
		if err != nil {
			if errors.Is(err, artists.ErrArtistNotFound) {
				renderNotFound(c)
				return
			}
			c.Error(err)
			renderServerError(c)
			return
		}

		c.HTML(http.StatusOK, "show_artist.tmpl", gin.H{
			"Flash":              takeFlash(c),
			"Artist":             page.Artist,
			"PastShows":          toShowRows(page.PastShows),
			"UpcomingShows":      toShowRows(page.UpcomingShows),
			"PastShowsCount":     page.PastShowsCount,
			"UpcomingShowsCount": page.UpcomingShowsCount,
		})
	}
}

func handleNewArtistForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		renderArtistForm(c, "new_artist.tmpl", forms.ArtistForm{}, nil, 0)
	}
}

func handleCreateArtist(svcs *service.Services, limiter *redisrepo.SlidingWindowLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rateLimited(c, limiter) {
			return
		}

		var form forms.ArtistForm
		if err := c.ShouldBind(&form); err != nil {
			renderArtistForm(c, "new_artist.tmpl", form, forms.Errors{"form": {"Invalid submission."}}, 0)
			return
		}

		if errs := form.Validate(); errs.Any() {
			renderArtistForm(c, "new_artist.tmpl", form, errs, 0)
			return
		}

		if _, err := svcs.Artists.Create(c.Request.Context(), form.Artist()); err != nil {
			c.Error(err)
			renderArtistForm(c, "new_artist.tmpl", form, forms.Errors{
				"form": {"An error occurred. Artist " + form.Name + " could not be listed."},
			}, 0)
			return
		}

		setFlash(c, "Artist "+form.Name+" was successfully listed!")
		c.Redirect(http.StatusSeeOther, "/")
	}
}

func handleEditArtistForm(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		artistID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		page, err := svcs.Artists.Get(c.Request.Context(), artistID)
		if err != nil {
			if errors.Is(err, artists.ErrArtistNotFound) {
				renderNotFound(c)
				return
			}
			c.Error(err)
			renderServerError(c)
			return
		}

		renderArtistForm(c, "edit_artist.tmpl", forms.FromArtist(page.Artist), nil, artistID)
	}
}

func handleEditArtist(svcs *service.Services, limiter *redisrepo.SlidingWindowLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rateLimited(c, limiter) {
			return
		}

		artistID, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}

		var form forms.ArtistForm
		if err := c.ShouldBind(&form); err != nil {
			renderArtistForm(c, "edit_artist.tmpl", form, forms.Errors{"form": {"Invalid submission."}}, artistID)
			return
		}

		if errs := form.Validate(); errs.Any() {
			renderArtistForm(c, "edit_artist.tmpl", form, errs, artistID)
			return
		}

		a := form.Artist()
		a.ID = artistID

		if err := svcs.Artists.Update(c.Request.Context(), a); err != nil {
			if errors.Is(err, artists.ErrArtistNotFound) {
				renderNotFound(c)
				return
			}
			c.Error(err)
			renderArtistForm(c, "edit_artist.tmpl", form, forms.Errors{
				"form": {"An error occurred. Artist " + form.Name + " could not be updated."},
			}, artistID)
			return
		}

		setFlash(c, "Artist "+form.Name+" was successfully updated!")
		c.Redirect(http.StatusSeeOther, "/artists/"+c.Param("id"))
	}
}

func handleDeleteArtist(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		artistID, ok := parseInt64ParamJSON(c, "id")
		if !ok {
			return
		}

		if err := svcs.Artists.Delete(c.Request.Context(), artistID); err != nil {
			respondDeleteErr(c, err)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "Artist deleted successfully"})
	}
}

func renderArtistForm(c *gin.Context, tmpl string, form forms.ArtistForm, errs forms.Errors, artistID int64) {
	status := http.StatusOK
	if errs.Any() {
		status = http.StatusBadRequest
	}

	c.HTML(status, tmpl, gin.H{
		"Flash":    takeFlash(c),
		"Form":     form,
		"Errors":   errs,
		"Genres":   domain.Genres,
		"States":   domain.States,
		"ArtistID": artistID,
	})
}
