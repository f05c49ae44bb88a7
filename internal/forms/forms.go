// Package forms binds and validates the HTML form payloads for venue,
// artist and show submissions. Genre and state membership is a
// form-level guarantee only; programmatic writes bypass it.
package forms

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/bandstand/bandstand/internal/domain"
)

// Accepts 10-digit US numbers with optional ., - or space separators
// and an optional parenthesized area code.
var phoneRe = regexp.MustCompile(`^\(?([0-9]{3})\)?[-. ]?([0-9]{3})[-. ]?([0-9]{4})$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report errors under the form field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("usphone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("usstate", func(fl validator.FieldLevel) bool {
		return domain.ValidState(fl.Field().String())
	})
	_ = v.RegisterValidation("genres", func(fl validator.FieldLevel) bool {
		gs, ok := fl.Field().Interface().([]string)
		if !ok {
			return false
		}
		return domain.ValidGenres(gs)
	})

	return v
}

// Errors maps a form field name to its failure messages.
type Errors map[string][]string

func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func (e Errors) Any() bool { return len(e) > 0 }

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "usphone":
		return "Invalid phone number."
	case "usstate":
		return "Invalid state."
	case "genres":
		return "Invalid genres."
	case "url":
		return "Invalid URL."
	case "gt":
		return "Must be a positive id."
	default:
		return "Invalid value."
	}
}

func collect(err error) Errors {
	errs := Errors{}
	if err == nil {
		return errs
	}

	var ves validator.ValidationErrors
	if ok := asValidationErrors(err, &ves); !ok {
		errs.Add("form", "Invalid submission.")
		return errs
	}

	for _, fe := range ves {
		errs.Add(fe.Field(), messageFor(fe))
	}

	return errs
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	*target = ves
	return true
}

// VenueForm carries a venue create/edit submission.
type VenueForm struct {
	Name               string   `form:"name" validate:"required"`
	City               string   `form:"city" validate:"required"`
	State              string   `form:"state" validate:"required,usstate"`
	Address            string   `form:"address" validate:"required"`
	Phone              string   `form:"phone" validate:"required,usphone"`
	Genres             []string `form:"genres" validate:"required,genres"`
	ImageLink          string   `form:"image_link" validate:"omitempty,url"`
	FacebookLink       string   `form:"facebook_link" validate:"omitempty,url"`
	WebsiteLink        string   `form:"website_link" validate:"omitempty,url"`
	SeekingTalent      string   `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description"`
}

func (f *VenueForm) Validate() Errors {
	f.trim()
	return collect(validate.Struct(f))
}

func (f *VenueForm) trim() {
	f.Name = strings.TrimSpace(f.Name)
	f.City = strings.TrimSpace(f.City)
	f.State = strings.TrimSpace(f.State)
	f.Address = strings.TrimSpace(f.Address)
	f.Phone = strings.TrimSpace(f.Phone)
}

// Venue maps a validated form onto a domain record. The checkbox is
// encoded by the browser as value "y" when checked, absent otherwise.
func (f *VenueForm) Venue() domain.Venue {
	return domain.Venue{
		Name:               f.Name,
		Genres:             f.Genres,
		Address:            f.Address,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingTalent:      f.SeekingTalent == "y",
		SeekingDescription: f.SeekingDescription,
	}
}

// FromVenue pre-populates an edit form from a stored venue.
func FromVenue(v domain.Venue) VenueForm {
	f := VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Genres:             v.Genres,
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		WebsiteLink:        v.WebsiteLink,
		SeekingDescription: v.SeekingDescription,
	}
	if v.SeekingTalent {
		f.SeekingTalent = "y"
	}
	return f
}

// ArtistForm carries an artist create/edit submission.
type ArtistForm struct {
	Name               string   `form:"name" validate:"required"`
	City               string   `form:"city" validate:"required"`
	State              string   `form:"state" validate:"required,usstate"`
	Phone              string   `form:"phone" validate:"required,usphone"`
	Genres             []string `form:"genres" validate:"required,genres"`
	ImageLink          string   `form:"image_link" validate:"omitempty,url"`
	FacebookLink       string   `form:"facebook_link" validate:"omitempty,url"`
	WebsiteLink        string   `form:"website_link" validate:"omitempty,url"`
	SeekingVenue       string   `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description"`
}

func (f *ArtistForm) Validate() Errors {
	f.Name = strings.TrimSpace(f.Name)
	f.City = strings.TrimSpace(f.City)
	f.State = strings.TrimSpace(f.State)
	f.Phone = strings.TrimSpace(f.Phone)
	return collect(validate.Struct(f))
}

func (f *ArtistForm) Artist() domain.Artist {
	return domain.Artist{
		Name:               f.Name,
		Genres:             f.Genres,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingVenue:       f.SeekingVenue == "y",
		SeekingDescription: f.SeekingDescription,
	}
}

// FromArtist pre-populates an edit form from a stored artist.
func FromArtist(a domain.Artist) ArtistForm {
	f := ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             a.Genres,
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		WebsiteLink:        a.WebsiteLink,
		SeekingDescription: a.SeekingDescription,
	}
	if a.SeekingVenue {
		f.SeekingVenue = "y"
	}
	return f
}

// ShowForm carries a show creation submission. The start time arrives
// in the form's "2006-01-02 15:04:05" layout.
type ShowForm struct {
	ArtistID  int64     `form:"artist_id" validate:"required,gt=0"`
	VenueID   int64     `form:"venue_id" validate:"required,gt=0"`
	StartTime time.Time `form:"start_time" time_format:"2006-01-02 15:04:05" validate:"required"`
}

func (f *ShowForm) Validate() Errors {
	return collect(validate.Struct(f))
}

func (f *ShowForm) Show() domain.Show {
	return domain.Show{
		ArtistID:  f.ArtistID,
		VenueID:   f.VenueID,
		StartTime: f.StartTime,
	}
}
