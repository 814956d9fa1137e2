package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/justsurfingit/hireable/internal/models"
)

var ErrInvalidFilter = errors.New("invalid filter")

// Locations offered by the location selector, after All.
var Locations = []string{
	"Remote",
	"San Francisco, CA",
	"New York, NY",
	"Seattle, WA",
	"Austin, TX",
	"Los Angeles, CA",
}

var SortModes = []SortMode{SortNewest, SortSalaryDesc, SortCompanyAsc}

var sortAliases = map[string]SortMode{
	"newest":      SortNewest,
	"salary_desc": SortSalaryDesc,
	"company_asc": SortCompanyAsc,
}

// Options is what the filter panel renders.
type Options struct {
	Types     []string   `json:"types"`
	Locations []string   `json:"locations"`
	Sorts     []SortMode `json:"sorts"`
	Defaults  Filters    `json:"defaults"`
}

func FilterOptions() Options {
	types := []string{All}
	for _, t := range models.JobTypes {
		types = append(types, string(t))
	}
	return Options{
		Types:     types,
		Locations: append([]string{All}, Locations...),
		Sorts:     append([]SortMode(nil), SortModes...),
		Defaults:  DefaultFilters(),
	}
}

// ParseFilters validates raw selector values. Blank values take the default.
func ParseFilters(typ, location, sortMode string) (Filters, error) {
	f := DefaultFilters()

	if typ != "" && typ != All {
		if !models.JobType(typ).Valid() {
			return Filters{}, fmt.Errorf("%w: unknown type %q", ErrInvalidFilter, typ)
		}
		f.Type = typ
	}

	if location != "" && location != All {
		if !contains(Locations, location) {
			return Filters{}, fmt.Errorf("%w: unknown location %q", ErrInvalidFilter, location)
		}
		f.Location = location
	}

	if sortMode != "" {
		mode, ok := parseSort(sortMode)
		if !ok {
			return Filters{}, fmt.Errorf("%w: unknown sort %q", ErrInvalidFilter, sortMode)
		}
		f.Sort = mode
	}
	return f, nil
}

func parseSort(s string) (SortMode, bool) {
	for _, m := range SortModes {
		if s == string(m) {
			return m, true
		}
	}
	m, ok := sortAliases[strings.ToLower(s)]
	return m, ok
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
