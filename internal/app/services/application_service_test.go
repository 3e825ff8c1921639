package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltlab/internship-portal/internal/app/models"
	"github.com/ltlab/internship-portal/internal/app/models/dto"
	"github.com/ltlab/internship-portal/internal/pkg/apperrors"
	"github.com/ltlab/internship-portal/internal/pkg/audit"
)

// fakeStore is an in-memory ApplicationStore.
type fakeStore struct {
	apps      []*models.Application
	createErr error
	listErr   error
	nextID    int64
}

func (f *fakeStore) CreateApplication(_ context.Context, app *models.Application) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.nextID++
	stored := *app
	stored.ID = f.nextID
	f.apps = append(f.apps, &stored)
	return f.nextID, nil
}

func (f *fakeStore) ListApplications(_ context.Context) ([]*models.Application, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.apps, nil
}

func validForm() *dto.ApplicationForm {
	return &dto.ApplicationForm{
		Email:     "a@b.com",
		FullName:  "A B",
		Gender:    "F",
		Whatsapp:  "+1000",
		Education: "X Univ",
		Country:   "US",
		Linkedin:  "li.com/a",
		Domains:   []string{"DataEng", "ML"},
	}
}

func newTestService(store *fakeStore, logBuf *bytes.Buffer) ApplicationService {
	var logger zerolog.Logger
	if logBuf != nil {
		logger = zerolog.New(logBuf)
	} else {
		logger = zerolog.Nop()
	}
	return NewApplicationService(store, audit.NewRecorder(logger))
}

func TestSubmitValidApplication(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, nil)

	id, err := svc.Submit(context.Background(), validForm())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	require.Len(t, store.apps, 1)
	stored := store.apps[0]
	assert.Equal(t, "a@b.com", stored.Email)
	assert.Equal(t, "A B", stored.FullName)
	assert.Equal(t, "X Univ", stored.Education)
	assert.Equal(t, "DataEng,ML", stored.Domains)
}

func TestSubmitRejectsMissingFields(t *testing.T) {
	breakField := map[string]func(*dto.ApplicationForm){
		"email":      func(f *dto.ApplicationForm) { f.Email = "" },
		"fullName":   func(f *dto.ApplicationForm) { f.FullName = "" },
		"gender":     func(f *dto.ApplicationForm) { f.Gender = "" },
		"whatsapp":   func(f *dto.ApplicationForm) { f.Whatsapp = "" },
		"college":    func(f *dto.ApplicationForm) { f.Education = "" },
		"country":    func(f *dto.ApplicationForm) { f.Country = "" },
		"linkedin":   func(f *dto.ApplicationForm) { f.Linkedin = "" },
		"domains":    func(f *dto.ApplicationForm) { f.Domains = nil },
		"whitespace": func(f *dto.ApplicationForm) { f.FullName = "   " },
	}

	for name, mutate := range breakField {
		t.Run(name, func(t *testing.T) {
			store := &fakeStore{}
			svc := newTestService(store, nil)

			form := validForm()
			mutate(form)

			_, err := svc.Submit(context.Background(), form)
			assert.ErrorIs(t, err, apperrors.ErrIncompleteApplication)
			assert.Empty(t, store.apps, "no row may be written for an invalid submission")
		})
	}
}

func TestSubmitEmptyDomainsRejectedLikeMissingField(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, nil)

	form := validForm()
	form.Domains = []string{}

	_, err := svc.Submit(context.Background(), form)
	assert.ErrorIs(t, err, apperrors.ErrIncompleteApplication)
	assert.Empty(t, store.apps)
}

func TestSubmitPersistenceFailure(t *testing.T) {
	var logBuf bytes.Buffer
	store := &fakeStore{createErr: errors.New("connection refused")}
	svc := newTestService(store, &logBuf)

	_, err := svc.Submit(context.Background(), validForm())
	assert.ErrorIs(t, err, apperrors.ErrPersistenceFailed)
	assert.Empty(t, store.apps, "row count must be unchanged after a failed attempt")

	// The failure detail goes to the error-level audit trail, never the user.
	logged := logBuf.String()
	assert.Contains(t, logged, `"level":"error"`)
	assert.Contains(t, logged, "connection refused")
	assert.Contains(t, logged, "submission_persist_failed")
}

func TestSubmitAuditsInboundFields(t *testing.T) {
	var logBuf bytes.Buffer
	store := &fakeStore{}
	svc := newTestService(store, &logBuf)

	_, err := svc.Submit(context.Background(), validForm())
	require.NoError(t, err)

	logged := logBuf.String()
	assert.Contains(t, logged, "submission_received")
	assert.Contains(t, logged, "a@b.com")
	assert.Contains(t, logged, "submission_persisted")
}

func TestSubmitAuditsValidationRejection(t *testing.T) {
	var logBuf bytes.Buffer
	svc := newTestService(&fakeStore{}, &logBuf)

	form := validForm()
	form.Domains = nil
	_, err := svc.Submit(context.Background(), form)
	require.ErrorIs(t, err, apperrors.ErrIncompleteApplication)

	logged := logBuf.String()
	assert.Contains(t, logged, `"level":"warn"`)
	assert.Contains(t, logged, "submission_rejected")
}

func TestSubmitPreservesDomainOrderAndDuplicates(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, nil)

	form := validForm()
	form.Domains = []string{"ML", "ML", "DataEng"}

	_, err := svc.Submit(context.Background(), form)
	require.NoError(t, err)
	require.Len(t, store.apps, 1)
	assert.Equal(t, "ML,ML,DataEng", store.apps[0].Domains)
}

func TestValidateSubmission(t *testing.T) {
	assert.True(t, ValidateSubmission(validForm()))
	assert.False(t, ValidateSubmission(nil))

	form := validForm()
	form.Domains = []string{""}
	assert.False(t, ValidateSubmission(form), "blank checkbox values count as nothing selected")
}

func TestList(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, nil)

	_, err := svc.Submit(context.Background(), validForm())
	require.NoError(t, err)

	apps, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, apps, 1)

	store.listErr = errors.New("boom")
	_, err = svc.List(context.Background())
	assert.Error(t, err)
}
