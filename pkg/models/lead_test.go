package models

import (
	"encoding/json"
	"errors"
	"net/url"
	"testing"
)

func completeForm() url.Values {
	return url.Values{
		FieldFullName:      {"Jane Doe"},
		FieldPhone:         {"+91 85908 66865"},
		FieldEmail:         {""},
		FieldPreferredCity: {"Kochi"},
		FieldAgeGroup:      {"Teens (13–17)"},
		FieldGoals:         {"Prepare for a stage debut"},
		FieldHowHeard:      {""},
		FieldConsent:       {CheckboxOn},
	}
}

func TestPayload_HasExactlyTheFieldNames(t *testing.T) {
	lead := FormValuesFrom(completeForm()).Lead()

	data, err := lead.Payload()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("Expected JSON object, got: %v", err)
	}

	if len(payload) != len(FieldNames) {
		t.Errorf("Expected %d keys, got %d: %v", len(FieldNames), len(payload), payload)
	}
	for _, name := range FieldNames {
		if _, ok := payload[name]; !ok {
			t.Errorf("Expected key %q in payload", name)
		}
	}

	if payload[FieldConsent] != true {
		t.Errorf("Expected consent true, got %v", payload[FieldConsent])
	}
	if payload[FieldIsParentGuardian] != false {
		t.Errorf("Expected isParentGuardian false, got %v", payload[FieldIsParentGuardian])
	}
}

func TestFormValuesFrom_LastValueWins(t *testing.T) {
	values := FormValuesFrom(url.Values{FieldPhone: {"111", "222"}})

	if got := values.Get(FieldPhone); got != "222" {
		t.Errorf("Expected 222, got %s", got)
	}
}

func TestFormValues_Checked(t *testing.T) {
	values := FormValues{FieldConsent: CheckboxOn, FieldIsParentGuardian: ""}

	if !values.Checked(FieldConsent) {
		t.Error("Expected consent to be checked")
	}
	if values.Checked(FieldIsParentGuardian) {
		t.Error("Expected empty checkbox value to be unchecked")
	}
	if values.Checked("missing") {
		t.Error("Expected absent checkbox to be unchecked")
	}
}

func TestValidate_ValidLead(t *testing.T) {
	lead := FormValuesFrom(completeForm()).Lead()

	if err := lead.Validate(); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestValidate_FieldConstraints(t *testing.T) {
	tests := []struct {
		name   string
		field  string
		value  string
		remove bool
	}{
		{name: "short name", field: FieldFullName, value: "J"},
		{name: "missing phone", field: FieldPhone, value: "   "},
		{name: "bad email", field: FieldEmail, value: "not-an-email"},
		{name: "unknown city", field: FieldPreferredCity, value: "Mumbai"},
		{name: "empty city", field: FieldPreferredCity, value: ""},
		{name: "unknown age group", field: FieldAgeGroup, value: "Seniors"},
		{name: "short goals", field: FieldGoals, value: "sing"},
		{name: "unknown referral", field: FieldHowHeard, value: "Billboard"},
		{name: "no consent", field: FieldConsent, remove: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := completeForm()
			if tt.remove {
				form.Del(tt.field)
			} else {
				form.Set(tt.field, tt.value)
			}

			err := FormValuesFrom(form).Lead().Validate()

			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("Expected ValidationErrors, got: %v", err)
			}
			if len(verrs) != 1 {
				t.Errorf("Expected one invalid field, got %v", verrs)
			}
			if verrs[tt.field] == "" {
				t.Errorf("Expected a message for %s, got %v", tt.field, verrs)
			}
		})
	}
}

func TestValidate_NameLengthCountsCharacters(t *testing.T) {
	form := completeForm()
	form.Set(FieldFullName, "അ")

	err := FormValuesFrom(form).Lead().Validate()
	if err == nil {
		t.Error("Expected a single multi-byte character to be too short")
	}
}

func TestValidate_LengthsCountTrimmedText(t *testing.T) {
	form := completeForm()
	form.Set(FieldFullName, " J ")
	form.Set(FieldGoals, "  sing  ")

	err := FormValuesFrom(form).Lead().Validate()

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Expected ValidationErrors, got: %v", err)
	}
	if verrs[FieldFullName] == "" || verrs[FieldGoals] == "" {
		t.Errorf("Expected padded short values to fail, got %v", verrs)
	}

	form.Set(FieldFullName, "  Jo  ")
	if got := FormValuesFrom(form).Lead().FullName; got != "Jo" {
		t.Errorf("Expected trimmed name Jo, got %q", got)
	}
}
