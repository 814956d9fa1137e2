// Package query filters and sorts catalog jobs for the job browser.
package query

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/justsurfingit/hireable/internal/models"
)

// All disables the type or location filter.
const All = "All"

type SortMode string

const (
	SortNewest     SortMode = "Newest"
	SortSalaryDesc SortMode = "Salary (High to Low)"
	SortCompanyAsc SortMode = "Company A-Z"
)

type Filters struct {
	Type     string   `json:"type"`
	Location string   `json:"location"`
	Sort     SortMode `json:"sort"`
}

func DefaultFilters() Filters {
	return Filters{Type: All, Location: All, Sort: SortNewest}
}

// FilterAndSort returns the jobs matching term and filters, ordered by
// filters.Sort. jobs is not modified. Newest keeps the input order, which is
// assumed to already be newest first.
func FilterAndSort(jobs []models.Job, term string, filters Filters) []models.Job {
	needle := strings.ToLower(term)

	out := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		if matchesTerm(j, needle) && matchesType(j, filters.Type) && matchesLocation(j, filters.Location) {
			out = append(out, j)
		}
	}

	switch filters.Sort {
	case SortSalaryDesc:
		sort.SliceStable(out, func(a, b int) bool {
			return SalaryUpperBound(out[a].Salary) > SalaryUpperBound(out[b].Salary)
		})
	case SortCompanyAsc:
		col := collate.New(language.English)
		sort.SliceStable(out, func(a, b int) bool {
			return col.CompareString(out[a].Company, out[b].Company) < 0
		})
	}
	return out
}

func matchesTerm(j models.Job, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(j.Title), needle) ||
		strings.Contains(strings.ToLower(j.Company), needle) {
		return true
	}
	for _, s := range j.Skills {
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

func matchesType(j models.Job, typ string) bool {
	return typ == "" || typ == All || string(j.Type) == typ
}

func matchesLocation(j models.Job, loc string) bool {
	if loc == "" || loc == All {
		return true
	}
	return strings.Contains(j.Location, loc) || (loc == "Remote" && j.Location == "Remote")
}

// SalaryUpperBound extracts the upper end of a "$X - $Y" salary range: the
// digits after the last '-'. Text without a '-' or without digits yields 0;
// bounds too large for an int saturate at math.MaxInt so they still rank first.
func SalaryUpperBound(salary string) int {
	i := strings.LastIndex(salary, "-")
	if i < 0 {
		return 0
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, salary[i+1:])

	n, err := strconv.Atoi(digits)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt
	}
	if err != nil {
		return 0
	}
	return n
}
