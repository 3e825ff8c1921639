package services

import (
	"context"
	"fmt"

	"github.com/ltlab/internship-portal/internal/app/models"
	"github.com/ltlab/internship-portal/internal/app/models/dto"
	"github.com/ltlab/internship-portal/internal/pkg/apperrors"
	"github.com/ltlab/internship-portal/internal/pkg/audit"
	"github.com/ltlab/internship-portal/internal/pkg/validation"
)

// ValidationErrorMessage is the only validation text an applicant ever sees.
const ValidationErrorMessage = "Please fill in all required fields and select at least one domain."

// ApplicationStore is the persistence surface the service needs.
type ApplicationStore interface {
	CreateApplication(ctx context.Context, app *models.Application) (int64, error)
	ListApplications(ctx context.Context) ([]*models.Application, error)
}

// ApplicationService defines the interface for application submission operations
type ApplicationService interface {
	Submit(ctx context.Context, form *dto.ApplicationForm) (int64, error)
	List(ctx context.Context) ([]*models.Application, error)
}

// applicationServiceImpl implements the ApplicationService interface
type applicationServiceImpl struct {
	store ApplicationStore
	audit *audit.Recorder
}

// NewApplicationService creates a new application service instance
func NewApplicationService(store ApplicationStore, recorder *audit.Recorder) ApplicationService {
	return &applicationServiceImpl{
		store: store,
		audit: recorder,
	}
}

// Submit runs one submission through validation and persistence. It returns
// the new row id on success, ErrIncompleteApplication when validation turns
// the submission away, and ErrPersistenceFailed (with the cause wrapped) when
// the store refuses the insert.
func (s *applicationServiceImpl) Submit(ctx context.Context, form *dto.ApplicationForm) (int64, error) {
	s.audit.SubmissionReceived(form.Fields(), form.Domains)

	if !ValidateSubmission(form) {
		s.audit.ValidationRejected(ValidationErrorMessage)
		return 0, apperrors.ErrIncompleteApplication
	}

	app := &models.Application{
		Email:     form.Email,
		FullName:  form.FullName,
		Gender:    form.Gender,
		Whatsapp:  form.Whatsapp,
		Education: form.Education,
		Country:   form.Country,
		Linkedin:  form.Linkedin,
		Domains:   models.EncodeDomains(form.Domains),
	}

	id, err := s.store.CreateApplication(ctx, app)
	if err != nil {
		s.audit.PersistFailed(form.Email, err)
		return 0, fmt.Errorf("%w: %v", apperrors.ErrPersistenceFailed, err)
	}

	s.audit.Persisted(id, form.Email)
	return id, nil
}

// List returns all stored applications.
func (s *applicationServiceImpl) List(ctx context.Context) ([]*models.Application, error) {
	return s.store.ListApplications(ctx)
}

// ValidateSubmission reports whether every required field is filled in and at
// least one domain is selected. Pure function of the form values.
func ValidateSubmission(form *dto.ApplicationForm) bool {
	if form == nil {
		return false
	}

	if !validation.AllPresent(
		form.Email,
		form.FullName,
		form.Gender,
		form.Whatsapp,
		form.Education,
		form.Country,
		form.Linkedin,
	) {
		return false
	}

	return validation.AnyPresent(form.Domains)
}
