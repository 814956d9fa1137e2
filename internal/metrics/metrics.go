package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

var (
	JobSearches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hireable_job_searches_total",
			Help: "Total number of job searches by sort mode",
		},
		[]string{"sort"},
	)

	JobSearchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hireable_job_search_results",
			Help:    "Number of jobs returned per search",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
		},
	)

	JobPostings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hireable_job_postings_total",
			Help: "Job posting submissions by outcome",
		},
		[]string{"outcome"},
	)

	ContactSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hireable_contact_submissions_total",
			Help: "Contact form submissions by outcome",
		},
		[]string{"outcome"},
	)

	Applications = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hireable_applications_total",
			Help: "Applications submitted to catalog jobs",
		},
	)
)
