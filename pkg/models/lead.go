package models

import (
	"encoding/json"
	"net/url"
	"strings"
)

// Wire field names of a lead submission, in form order.
const (
	FieldFullName         = "fullName"
	FieldPhone            = "phone"
	FieldEmail            = "email"
	FieldPreferredCity    = "preferredCity"
	FieldAgeGroup         = "ageGroup"
	FieldGoals            = "goals"
	FieldHowHeard         = "howHeard"
	FieldIsParentGuardian = "isParentGuardian"
	FieldConsent          = "consent"
)

// FieldNames lists every key sent to the admissions API.
var FieldNames = []string{
	FieldFullName,
	FieldPhone,
	FieldEmail,
	FieldPreferredCity,
	FieldAgeGroup,
	FieldGoals,
	FieldHowHeard,
	FieldIsParentGuardian,
	FieldConsent,
}

var (
	Cities    = []string{"Trivandrum", "Kochi", "Calicut", "Thrissur", "Kottayam"}
	AgeGroups = []string{"Kids (3–12)", "Teens (13–17)", "Adults (18+)"}
	HowHeard  = []string{"Instagram", "Friend/Family", "Our Shows", "Magazine", "Other"}
)

// CheckboxOn is the value a browser posts for a checked checkbox.
const CheckboxOn = "on"

// LeadSubmission represents a prospective student's callback request
type LeadSubmission struct {
	FullName         string `json:"fullName" validate:"required,min=2"`
	Phone            string `json:"phone" validate:"required"`
	Email            string `json:"email" validate:"omitempty,email"`
	PreferredCity    string `json:"preferredCity" validate:"required,city"`
	AgeGroup         string `json:"ageGroup" validate:"required,agegroup"`
	Goals            string `json:"goals" validate:"required,min=10"`
	HowHeard         string `json:"howHeard" validate:"omitempty,howheard"`
	IsParentGuardian bool   `json:"isParentGuardian"`
	Consent          bool   `json:"consent" validate:"required"`
}

// Payload serializes the submission into the JSON body the admissions API
// expects. All nine keys are always present and checkboxes are booleans.
func (l LeadSubmission) Payload() ([]byte, error) {
	return json.Marshal(l)
}

// FormValues is the flat name to value record of the visible form.
type FormValues map[string]string

// FormValuesFrom flattens posted form data. When a name repeats, the last
// value wins.
func FormValuesFrom(form url.Values) FormValues {
	values := make(FormValues, len(FieldNames))
	for name, vs := range form {
		if len(vs) == 0 {
			continue
		}
		values[name] = vs[len(vs)-1]
	}
	return values
}

// Get returns the value of a field, or "" when absent.
func (v FormValues) Get(name string) string {
	return v[name]
}

// Checked reports whether a checkbox field was posted as checked.
func (v FormValues) Checked(name string) bool {
	val, ok := v[name]
	return ok && val != "" && val != "false"
}

// Lead converts the visible form into a submission. Text fields are trimmed.
func (v FormValues) Lead() LeadSubmission {
	return LeadSubmission{
		FullName:         strings.TrimSpace(v.Get(FieldFullName)),
		Phone:            strings.TrimSpace(v.Get(FieldPhone)),
		Email:            strings.TrimSpace(v.Get(FieldEmail)),
		PreferredCity:    v.Get(FieldPreferredCity),
		AgeGroup:         v.Get(FieldAgeGroup),
		Goals:            strings.TrimSpace(v.Get(FieldGoals)),
		HowHeard:         v.Get(FieldHowHeard),
		IsParentGuardian: v.Checked(FieldIsParentGuardian),
		Consent:          v.Checked(FieldConsent),
	}
}

// Clone returns an independent copy.
func (v FormValues) Clone() FormValues {
	out := make(FormValues, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// IsCity reports whether s is one of the campus cities.
func IsCity(s string) bool { return contains(Cities, s) }

// IsAgeGroup reports whether s is one of the offered age groups.
func IsAgeGroup(s string) bool { return contains(AgeGroups, s) }

// IsHowHeard reports whether s is one of the referral sources.
func IsHowHeard(s string) bool { return contains(HowHeard, s) }
