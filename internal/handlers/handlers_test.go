package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"

	"github.com/justsurfingit/hireable/internal/catalog"
	"github.com/justsurfingit/hireable/internal/contact"
	"github.com/justsurfingit/hireable/internal/models"
	"github.com/justsurfingit/hireable/internal/posting"
	"github.com/justsurfingit/hireable/internal/services"
)

type stubModel struct{ response string }

func (m stubModel) GenerateContent(context.Context, []llms.MessageContent, ...llms.CallOption) (*llms.ContentResponse, error) {
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: m.response}}}, nil
}

func (m stubModel) Call(context.Context, string, ...llms.CallOption) (string, error) {
	return m.response, nil
}

type failingSink struct{}

func (failingSink) SaveContactMessage(context.Context, models.ContactMessage) error {
	return errors.New("mailbox full")
}

type testEnv struct {
	router *gin.Engine
}

func newTestEnv(t *testing.T, model llms.Model, contactSink contact.Sink) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()

	c, err := catalog.New([]models.Job{
		{ID: "1", Title: "Frontend Developer", Company: "Zeta", Location: "San Francisco, CA", Type: models.FullTime, Salary: "$50,000 - $70,000", Skills: []string{"React"}},
		{ID: "2", Title: "Backend Engineer", Company: "Acme", Location: "Remote", Type: models.Remote, Salary: "$90,000 - $110,000", Skills: []string{"Go"}},
		{ID: "3", Title: "Design Intern", Company: "Mango", Location: "New York, NY", Type: models.Internship, Salary: "$20,000 - $30,000", Skills: []string{"Figma"}},
	}, []models.Company{{Name: "Acme", Logo: "acme.png"}})
	require.NoError(t, err)

	sink := services.NewLogSink(log)
	if contactSink == nil {
		contactSink = sink
	}
	llm := &services.LLMService{Client: model, Logger: log}

	jobs := NewJobHandler(llm, services.NewJobService(c, sink, log), posting.NewService(sink, 0, log))
	contactHandler := NewContactHandler(contact.NewService(contactSink, 0, log))
	return &testEnv{router: NewRouter(jobs, contactHandler, []string{"*"}, log)}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func jobIDs(t *testing.T, body map[string]interface{}) []string {
	t.Helper()
	raw, ok := body["jobs"].([]interface{})
	require.True(t, ok, "jobs should be a list")
	ids := make([]string, 0, len(raw))
	for _, j := range raw {
		ids = append(ids, j.(map[string]interface{})["id"].(string))
	}
	return ids
}

func validJobDraft() map[string]string {
	return map[string]string{
		"title":       "Senior Go Engineer",
		"company":     "Acme",
		"location":    "Remote",
		"skills":      "React, Node.js",
		"description": strings.Repeat("a", 60),
	}
}

func TestHealthCheck(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	w := env.do(t, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListJobs_Default(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	w := env.do(t, http.MethodGet, "/api/v1/jobs", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, []string{"1", "2", "3"}, jobIDs(t, body))
	assert.Equal(t, "Showing 3 of 3 jobs", body["summary"])
	assert.NotContains(t, body, "empty_state")
}

func TestListJobs_SearchFilterSort(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	tests := []struct {
		name   string
		params url.Values
		want   []string
	}{
		{"skill search", url.Values{"q": {"REACT"}}, []string{"1"}},
		{"type filter", url.Values{"type": {"Internship"}}, []string{"3"}},
		{"location filter", url.Values{"location": {"Remote"}}, []string{"2"}},
		{"salary sort", url.Values{"sort": {"Salary (High to Low)"}}, []string{"2", "1", "3"}},
		{"company sort alias", url.Values{"sort": {"company_asc"}}, []string{"2", "3", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodGet, "/api/v1/jobs?"+tt.params.Encode(), nil)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, jobIDs(t, decode(t, w)))
		})
	}
}

func TestListJobs_NoResults(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	w := env.do(t, http.MethodGet, "/api/v1/jobs?q=cobol", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Empty(t, jobIDs(t, body))
	assert.Equal(t, "No jobs found matching your criteria", body["summary"])

	empty := body["empty_state"].(map[string]interface{})
	reset := empty["reset"].(map[string]interface{})
	assert.Equal(t, "", reset["query"])
	assert.Equal(t, map[string]interface{}{"type": "All", "location": "All", "sort": "Newest"}, reset["filters"])
}

func TestListJobs_InvalidFilter(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	w := env.do(t, http.MethodGet, "/api/v1/jobs?type=Contract", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFilterOptions(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	w := env.do(t, http.MethodGet, "/api/v1/jobs/filters", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Contains(t, body["types"], "All")
	assert.Contains(t, body["sorts"], "Company A-Z")
}

func TestGetJob(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	w := env.do(t, http.MethodGet, "/api/v1/jobs/2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Backend Engineer", decode(t, w)["title"])

	w = env.do(t, http.MethodGet, "/api/v1/jobs/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListCompanies(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	w := env.do(t, http.MethodGet, "/api/v1/companies", nil)
	require.Equal(t, http.StatusOK, w.Code)

	companies := decode(t, w)["companies"].([]interface{})
	require.Len(t, companies, 1)
	assert.Equal(t, "Acme", companies[0].(map[string]interface{})["name"])
}

func TestApply(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	w := env.do(t, http.MethodPost, "/api/v1/jobs/1/apply", nil)
	require.Equal(t, http.StatusOK, w.Code)
	notice := decode(t, w)["notice"].(map[string]interface{})
	assert.Equal(t, "success", notice["type"])
	assert.Equal(t, "Application submitted for Frontend Developer at Zeta!", notice["message"])

	w = env.do(t, http.MethodPost, "/api/v1/jobs/404/apply", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestJobForm(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	w := env.do(t, http.MethodGet, "/api/v1/jobs/form", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Len(t, body["locations"], len(posting.Locations))
	initial := body["initial"].(map[string]interface{})
	assert.Equal(t, float64(0), initial["progress"])
	assert.Equal(t, "Full-time", initial["draft"].(map[string]interface{})["type"])
}

func TestPreviewJob(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	w := env.do(t, http.MethodPost, "/api/v1/jobs/preview", map[string]string{
		"title":   "Dev",
		"company": "Acme",
		"skills":  "",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, float64(40), body["progress"])
	assert.Equal(t, false, body["valid"])
	errs := body["errors"].(map[string]interface{})
	assert.Contains(t, errs, "location")
	assert.Contains(t, errs, "description")
	assert.Contains(t, errs, "skills")
	assert.NotContains(t, errs, "title")
}

func TestCreateJob(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	w := env.do(t, http.MethodPost, "/api/v1/jobs", validJobDraft())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decode(t, w)
	job := body["job"].(map[string]interface{})
	assert.NotEmpty(t, job["id"])
	assert.Equal(t, "Just now", job["posted"])
	assert.Equal(t, "Full-time", job["type"])
	assert.Equal(t, []interface{}{"React", "Node.js"}, job["skills"])

	notice := body["notice"].(map[string]interface{})
	assert.Equal(t, `Job "Senior Go Engineer" at Acme posted successfully!`, notice["message"])
}

func TestCreateJob_ValidationErrors(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	draft := validJobDraft()
	draft["description"] = strings.Repeat("a", 49)

	w := env.do(t, http.MethodPost, "/api/v1/jobs", draft)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	body := decode(t, w)
	errs := body["errors"].(map[string]interface{})
	assert.Equal(t, "Job description must be at least 50 characters", errs["description"])
	assert.Equal(t, "Please fix the errors in the form", body["notice"].(map[string]interface{})["message"])

	// The submitted values come back untouched.
	state := body["state"].(map[string]interface{})
	assert.Equal(t, "Senior Go Engineer", state["draft"].(map[string]interface{})["title"])
}

func TestCreateJob_BadJSON(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseJob(t *testing.T) {
	env := newTestEnv(t, stubModel{response: `{"company_name":"Stripe","role_title":"SRE","location":"Remote","tech_stack":["Go","AWS"]}`}, nil)

	w := env.do(t, http.MethodPost, "/api/v1/jobs/extract", map[string]string{"raw_html": "<p>SRE at Stripe</p>"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := decode(t, w)["data"].(map[string]interface{})
	draft := data["draft"].(map[string]interface{})
	assert.Equal(t, "SRE", draft["title"])
	assert.Equal(t, "Go, AWS", draft["skills"])
	assert.Equal(t, float64(80), data["progress"])
}

func TestParseJob_Disabled(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	w := env.do(t, http.MethodPost, "/api/v1/jobs/extract", map[string]string{"raw_html": "<p>job</p>"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestParseJob_MissingBody(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	w := env.do(t, http.MethodPost, "/api/v1/jobs/extract", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContact(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	w := env.do(t, http.MethodPost, "/api/v1/contact", map[string]string{
		"name": "John Doe", "email": "john@example.com", "subject": "Hi", "message": "Hello",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "Thank you for your message! We'll get back to you soon.", body["notice"].(map[string]interface{})["message"])
	assert.Equal(t, map[string]interface{}{"name": "", "email": "", "subject": "", "message": ""}, body["reset"])
}

func TestContact_MissingField(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	w := env.do(t, http.MethodPost, "/api/v1/contact", map[string]string{"name": "John"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/contact", map[string]string{
		"name": "John", "email": "j@x.io", "subject": "   ", "message": "Hi",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContact_SinkFailure(t *testing.T) {
	env := newTestEnv(t, nil, failingSink{})
	w := env.do(t, http.MethodPost, "/api/v1/contact", map[string]string{
		"name": "John", "email": "j@x.io", "subject": "Hi", "message": "Hi",
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	notice := decode(t, w)["notice"].(map[string]interface{})
	assert.Equal(t, "error", notice["type"])
	assert.Equal(t, "Something went wrong. Please try again.", notice["message"])
}
