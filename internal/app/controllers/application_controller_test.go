package controllers_test

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltlab/internship-portal/internal/app/controllers"
	"github.com/ltlab/internship-portal/internal/app/models"
	"github.com/ltlab/internship-portal/internal/app/routes"
	"github.com/ltlab/internship-portal/internal/app/services"
	"github.com/ltlab/internship-portal/internal/middleware"
	"github.com/ltlab/internship-portal/internal/pkg/audit"
	"github.com/ltlab/internship-portal/internal/pkg/auth"
)

// fakeStore is an in-memory services.ApplicationStore.
type fakeStore struct {
	apps      []*models.Application
	createErr error
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
	return f.apps, nil
}

// testTemplates stands in for web/templates so handler tests do not depend on
// the working directory.
func testTemplates(t *testing.T) *template.Template {
	t.Helper()

	tpl := template.New("")
	pages := map[string]string{
		"index.html":           `home`,
		"apply.html":           `apply{{if .Error}} error: {{.Error}}{{end}}`,
		"thank_you.html":       `thanks`,
		"learn.html":           `learn`,
		"research.html":        `research`,
		"jobs.html":            `jobs`,
		"login.html":           `login{{if .Error}} error: {{.Error}}{{end}}`,
		"forgot_password.html": `forgot{{if .Message}} message: {{.Message}}{{end}}`,
		"applications.html":    `applications of {{.Email}}:{{range .Applications}} {{.Email}}={{.Domains}}{{end}}`,
		"error.html":           `error: {{.Message}}`,
	}
	for name, body := range pages {
		template.Must(tpl.New(name).Parse(body))
	}
	return tpl
}

type testEnv struct {
	router   *gin.Engine
	store    *fakeStore
	sessions *auth.SessionService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := &fakeStore{}
	applicationService := services.NewApplicationService(store, audit.NewRecorder(zerolog.Nop()))

	sessions := auth.NewSessionService(auth.SessionConfig{
		SecretKey:  "test-secret",
		Expiration: time.Hour,
		Issuer:     "internship-portal",
	})
	hash, err := auth.HashPassword("hunter2hunter2")
	require.NoError(t, err)
	authService := services.NewAuthService("admin@ltlab.io", hash, sessions, zerolog.Nop())

	router := gin.New()
	router.SetHTMLTemplate(testTemplates(t))

	routes.SetupRouter(router,
		controllers.NewPagesController(),
		controllers.NewApplicationController(applicationService, zerolog.Nop()),
		controllers.NewAuthController(authService, time.Hour, false, zerolog.Nop()),
		controllers.NewAdminController(applicationService, zerolog.Nop()),
		middleware.NewSessionMiddleware(sessions),
	)

	return &testEnv{router: router, store: store, sessions: sessions}
}

func validPayload() url.Values {
	form := url.Values{}
	form.Set("email", "a@b.com")
	form.Set("fullName", "A B")
	form.Set("gender", "F")
	form.Set("whatsapp", "+1000")
	form.Set("college", "X Univ")
	form.Set("country", "US")
	form.Set("linkedin", "li.com/a")
	form["domains"] = []string{"DataEng", "ML"}
	return form
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestShowForm(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/apply", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubmitValidApplicationRedirects(t *testing.T) {
	env := newTestEnv(t)

	w := postForm(env.router, "/apply", validPayload())

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/thank-you", w.Header().Get("Location"))

	require.Len(t, env.store.apps, 1)
	assert.Equal(t, "DataEng,ML", env.store.apps[0].Domains)
}

func TestSubmitWithoutDomainsRerendersForm(t *testing.T) {
	env := newTestEnv(t)

	form := validPayload()
	form.Del("domains")
	w := postForm(env.router, "/apply", form)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), services.ValidationErrorMessage)
	assert.Empty(t, env.store.apps)
}

func TestSubmitMissingFieldRerendersForm(t *testing.T) {
	env := newTestEnv(t)

	form := validPayload()
	form.Del("country")
	w := postForm(env.router, "/apply", form)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), services.ValidationErrorMessage)
	assert.Empty(t, env.store.apps)
}

func TestSubmitPersistenceFailureHidesDetail(t *testing.T) {
	env := newTestEnv(t)
	env.store.createErr = errors.New("pq: connection refused")

	w := postForm(env.router, "/apply", validPayload())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
	assert.Contains(t, w.Body.String(), "Something went wrong")
	assert.Empty(t, env.store.apps)
}

func TestStaticPages(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/", "/learn", "/research", "/jobs", "/thank-you"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "GET %s", path)
	}
}
