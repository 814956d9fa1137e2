package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap/zaptest"
)

type fakeModel struct {
	response string
	err      error
	prompt   string
}

func (f *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	for _, m := range messages {
		for _, p := range m.Parts {
			if tc, ok := p.(llms.TextContent); ok {
				f.prompt += tc.Text
			}
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: f.response}}}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

const extractionJSON = `{
  "company_name": "Stripe",
  "role_title": "Backend Engineer",
  "location": "Remote",
  "job_type": "Remote",
  "description": "Design APIs.",
  "tech_stack": ["Go", "PostgreSQL"],
  "salary_range": null
}`

func TestLLMService_ExtractJobDetails(t *testing.T) {
	model := &fakeModel{response: extractionJSON}
	s := &LLMService{Client: model, Logger: zaptest.NewLogger(t)}

	d, err := s.ExtractJobDetails(context.Background(), "<html>job page</html>")
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer", d.Title)
	assert.Equal(t, "Stripe", d.Company)
	assert.Equal(t, "Remote", d.Type)
	assert.Equal(t, "Go, PostgreSQL", d.Skills)
	assert.Empty(t, d.Salary)
	assert.Contains(t, model.prompt, "<html>job page</html>")
}

func TestLLMService_TruncatesInput(t *testing.T) {
	model := &fakeModel{response: extractionJSON}
	s := &LLMService{Client: model, Logger: zaptest.NewLogger(t)}

	_, err := s.ExtractJobDetails(context.Background(), strings.Repeat("☃", maxExtractionInput+500))
	require.NoError(t, err)
	assert.Equal(t, maxExtractionInput, strings.Count(model.prompt, "☃"))
}

func TestLLMService_Disabled(t *testing.T) {
	s, err := NewLLMService(context.Background(), "", "gemini-2.5-flash", zaptest.NewLogger(t))
	require.NoError(t, err)

	_, err = s.ExtractJobDetails(context.Background(), "page")
	assert.ErrorIs(t, err, ErrExtractionDisabled)
}

func TestLLMService_ModelError(t *testing.T) {
	s := &LLMService{Client: &fakeModel{err: errors.New("quota")}, Logger: zaptest.NewLogger(t)}

	_, err := s.ExtractJobDetails(context.Background(), "page")
	assert.ErrorContains(t, err, "quota")
}

func TestParseExtraction(t *testing.T) {
	d, err := parseExtraction("```json\n" + extractionJSON + "\n```")
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", d.Title)

	d, err = parseExtraction(`{"role_title": "Intern", "job_type": null}`)
	require.NoError(t, err)
	assert.Equal(t, "Full-time", d.Type)
	assert.Empty(t, d.Skills)

	_, err = parseExtraction("not json")
	assert.Error(t, err)
}
