package models

import (
	"errors"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("city", func(fl validator.FieldLevel) bool {
			return IsCity(fl.Field().String())
		})
		_ = v.RegisterValidation("agegroup", func(fl validator.FieldLevel) bool {
			return IsAgeGroup(fl.Field().String())
		})
		_ = v.RegisterValidation("howheard", func(fl validator.FieldLevel) bool {
			return IsHowHeard(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// fieldMessages are the messages shown next to a field that fails its
// constraint.
var fieldMessages = map[string]string{
	FieldFullName:      "Please enter your full name (at least 2 characters).",
	FieldPhone:         "Please enter a phone number.",
	FieldEmail:         "Please enter a valid email address.",
	FieldPreferredCity: "Please select a city.",
	FieldAgeGroup:      "Please select an age group.",
	FieldGoals:         "Please tell us a little more (at least 10 characters).",
	FieldHowHeard:      "Please pick one of the listed options.",
	FieldConsent:       "Please agree to be contacted.",
}

// ValidationErrors maps a field name to the message shown for it.
type ValidationErrors map[string]string

func (e ValidationErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "invalid fields: " + strings.Join(fields, ", ")
}

// Validate checks the submission against the form constraints. It returns
// ValidationErrors when any field fails.
func (l LeadSubmission) Validate() error {
	err := getValidator().Struct(l)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(ValidationErrors, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if _, seen := out[name]; seen {
			continue
		}
		out[name] = fieldMessages[name]
	}
	return out
}
