package services

import (
	"net/url"

	"github.com/digitalocean/admissions-form/pkg/models"
)

// PreferredCityParam is the query parameter that preselects the city.
const PreferredCityParam = "preferredCity"

// Prefill holds the values a form starts with before the user types.
type Prefill struct {
	PreferredCity string
}

// PrefillFromURL reads the prefill from a page URL. A nil URL, a missing
// parameter, or a city that is not on offer all yield an empty prefill.
func PrefillFromURL(u *url.URL) Prefill {
	if u == nil {
		return Prefill{}
	}

	city := u.Query().Get(PreferredCityParam)
	if !models.IsCity(city) {
		return Prefill{}
	}

	return Prefill{PreferredCity: city}
}

// Defaults returns the initial visible values of a form built from p.
func (p Prefill) Defaults() models.FormValues {
	values := models.FormValues{}
	if p.PreferredCity != "" {
		values[models.FieldPreferredCity] = p.PreferredCity
	}
	return values
}
