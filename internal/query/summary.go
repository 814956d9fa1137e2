package query

import "fmt"

const noResultsMessage = "No jobs found matching your criteria"

// EmptyState is shown instead of the result grid when nothing matches. Reset
// is the query and filters the "Clear All Filters" action restores.
type EmptyState struct {
	Title   string      `json:"title"`
	Message string      `json:"message"`
	Action  string      `json:"action"`
	Reset   ResetAction `json:"reset"`
}

type ResetAction struct {
	Query   string  `json:"query"`
	Filters Filters `json:"filters"`
}

func Summarize(matched, total int) string {
	if matched == 0 {
		return noResultsMessage
	}
	return fmt.Sprintf("Showing %d of %d jobs", matched, total)
}

// NoResults returns the empty state for a zero-match search, nil otherwise.
func NoResults(matched int) *EmptyState {
	if matched > 0 {
		return nil
	}
	return &EmptyState{
		Title:   "No Jobs Found",
		Message: "Try adjusting your search criteria or clearing filters to see more results.",
		Action:  "Clear All Filters",
		Reset:   ResetAction{Query: "", Filters: DefaultFilters()},
	}
}
