package services

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/digitalocean/admissions-form/pkg/clients/admissions"
	"github.com/digitalocean/admissions-form/pkg/models"
	"github.com/digitalocean/admissions-form/pkg/utils"
)

// GenericErrorMessage is the only failure text a visitor ever sees.
const GenericErrorMessage = "Could not submit right now. Please try later."

// ErrSubmitInProgress is returned when a form is submitted again while its
// previous submission has not finished.
var ErrSubmitInProgress = errors.New("submission already in progress")

// FormState is a snapshot of what the page should show.
type FormState struct {
	Loading     bool
	Submitted   bool
	Error       string
	Values      models.FormValues
	FieldErrors models.ValidationErrors
}

// AdmissionsForm is one rendered admissions form and its submission state.
type AdmissionsForm struct {
	client   admissions.Client
	logger   *zap.Logger
	defaults models.FormValues

	mu          sync.Mutex
	loading     bool
	submitted   bool
	errMsg      string
	values      models.FormValues
	fieldErrors models.ValidationErrors
}

// NewAdmissionsForm creates a form that starts from prefill and submits
// through client.
func NewAdmissionsForm(client admissions.Client, prefill Prefill, logger *zap.Logger) *AdmissionsForm {
	if logger == nil {
		logger = zap.NewNop()
	}
	defaults := prefill.Defaults()
	return &AdmissionsForm{
		client:   client,
		logger:   logger,
		defaults: defaults,
		values:   defaults.Clone(),
	}
}

// State returns a copy of the current state.
func (f *AdmissionsForm) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()

	return FormState{
		Loading:     f.loading,
		Submitted:   f.submitted,
		Error:       f.errMsg,
		Values:      f.values.Clone(),
		FieldErrors: f.fieldErrors,
	}
}

// begin moves the form into the submitting state.
func (f *AdmissionsForm) begin(values models.FormValues) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.loading {
		return ErrSubmitInProgress
	}
	f.loading = true
	f.submitted = false
	f.errMsg = ""
	f.fieldErrors = nil
	f.values = values.Clone()
	return nil
}

// Submit validates values and, when they pass, sends the lead to the
// admissions API. The returned error is for logging and status codes only;
// the visitor-facing outcome is in State.
func (f *AdmissionsForm) Submit(ctx context.Context, values models.FormValues) error {
	if err := f.begin(values); err != nil {
		return err
	}
	defer func() {
		f.mu.Lock()
		f.loading = false
		f.mu.Unlock()
	}()

	lead := values.Lead()
	log := f.logger.With(zap.String("phone_hash", utils.HashPhone(lead.Phone)))

	if err := lead.Validate(); err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			f.mu.Lock()
			f.fieldErrors = verrs
			f.mu.Unlock()
			log.Debug("Lead failed validation", zap.Error(err))
			return err
		}
		f.fail()
		log.Error("Error validating lead", zap.Error(err))
		return err
	}

	if err := f.client.SubmitLead(ctx, lead); err != nil {
		f.fail()
		var rejected *admissions.RejectedError
		if errors.As(err, &rejected) {
			log.Warn("Admissions API rejected lead",
				zap.Int("status_code", rejected.StatusCode),
				zap.String("detail", rejected.Detail))
		} else {
			log.Error("Error submitting lead", zap.Error(err))
		}
		return err
	}

	f.mu.Lock()
	f.submitted = true
	f.values = f.defaults.Clone()
	f.mu.Unlock()

	log.Info("Lead submitted",
		zap.String("preferred_city", lead.PreferredCity),
		zap.String("age_group", lead.AgeGroup))
	return nil
}

func (f *AdmissionsForm) fail() {
	f.mu.Lock()
	f.errMsg = GenericErrorMessage
	f.mu.Unlock()
}
