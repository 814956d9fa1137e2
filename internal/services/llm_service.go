package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"

	"github.com/justsurfingit/hireable/internal/posting"
)

const maxExtractionInput = 20000

var ErrExtractionDisabled = errors.New("job extraction is not configured")

type LLMService struct {
	Client llms.Model
	Logger *zap.Logger
}

// NewLLMService connects to Gemini. An empty apiKey yields a service whose
// calls return ErrExtractionDisabled.
func NewLLMService(ctx context.Context, apiKey, model string, log *zap.Logger) (*LLMService, error) {
	s := &LLMService{Logger: log.With(zap.String("component", "llm"))}
	if apiKey == "" {
		s.Logger.Warn("no LLM api key configured, job extraction disabled")
		return s, nil
	}

	client, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	s.Client = client
	return s, nil
}

const jobExtractionPrompt = `
You are an expert Job Data Extraction Agent. Your task is to analyze the provided raw HTML/Text from a job posting and extract structured data.

### INSTRUCTIONS:
1. **Analyze** the text to identify the core job details.
2. **Ignore** navigation menus, footers, "similar jobs" lists, and site advertisements.
3. **Extract** the following fields strictly.
4. **Format** the output as valid JSON only. Do not wrap the output in markdown code blocks.

### OUTPUT SCHEMA:
{
    "company_name": "Name of the company (e.g., Google, StartupInc)",
    "role_title": "Job title (e.g., Senior Backend Engineer)",
    "location": "Job location as 'City, ST' or 'Remote'",
    "job_type": "One of: Full-time, Part-time, Remote, Internship",
    "description": "A clean summary of the job. Focus on Responsibilities and Requirements. Remove HTML tags.",
    "tech_stack": ["Array", "of", "technologies", "mentioned", "e.g., Go, React, AWS"],
    "salary_range": "The salary string if explicitly mentioned (e.g., '$100,000 - $150,000'), otherwise null"
}

### CONSTRAINT:
If a piece of information is missing, set the value to null. Do not hallucinate or guess.

### RAW CONTENT:
%s
`

type extractedJob struct {
	CompanyName *string  `json:"company_name"`
	RoleTitle   *string  `json:"role_title"`
	Location    *string  `json:"location"`
	JobType     *string  `json:"job_type"`
	Description *string  `json:"description"`
	TechStack   []string `json:"tech_stack"`
	SalaryRange *string  `json:"salary_range"`
}

// ExtractJobDetails turns a raw job page into a posting form draft.
func (s *LLMService) ExtractJobDetails(ctx context.Context, rawHTML string) (posting.Draft, error) {
	if s == nil || s.Client == nil {
		return posting.Draft{}, ErrExtractionDisabled
	}
	if utf8.RuneCountInString(rawHTML) > maxExtractionInput {
		rawHTML = string([]rune(rawHTML)[:maxExtractionInput])
	}

	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, fmt.Sprintf(jobExtractionPrompt, rawHTML))
	if err != nil {
		return posting.Draft{}, fmt.Errorf("llm generate: %w", err)
	}
	return parseExtraction(resp)
}

func parseExtraction(resp string) (posting.Draft, error) {
	var out extractedJob
	if err := json.Unmarshal([]byte(stripCodeFence(resp)), &out); err != nil {
		return posting.Draft{}, fmt.Errorf("parse llm response: %w", err)
	}

	d := posting.NewDraft()
	d.Title = deref(out.RoleTitle)
	d.Company = deref(out.CompanyName)
	d.Location = deref(out.Location)
	d.Salary = deref(out.SalaryRange)
	d.Description = deref(out.Description)
	d.Skills = strings.Join(out.TechStack, ", ")
	if t := deref(out.JobType); t != "" {
		d.Type = t
	}
	return d, nil
}

// stripCodeFence removes a ```json ... ``` wrapper models add despite being
// told not to.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
