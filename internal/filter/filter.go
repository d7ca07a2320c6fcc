// Package filter implements in-memory transaction filtering. Evaluation is a
// pure, single pass over the record list: no side effects, and matching
// records keep their relative order.
package filter

import (
	"math"
	"strconv"
	"strings"
	"time"

	"expenso/internal/models"
)

// Spec is the set of active filter predicates. Every field is optional; the
// zero value of a field means "unconstrained". Bounds arrive as raw strings
// from the query layer and are parsed leniently: a bound that does not parse
// is treated as unconstrained instead of silently excluding every record.
//
// Predicates combine conjunctively. Within Tags, a record passes if it
// carries at least one of the selected tags.
type Spec struct {
	Search    string   `form:"search"`
	Category  string   `form:"category"`
	Type      string   `form:"type"`
	DateFrom  string   `form:"date_from"`
	DateTo    string   `form:"date_to"`
	MinAmount string   `form:"min_amount"`
	MaxAmount string   `form:"max_amount"`
	Tags      []string `form:"tags"`
}

// compiled holds the parsed form of a Spec so parsing happens once per
// evaluation, not once per record.
type compiled struct {
	search    string
	category  string
	txType    string
	dateFrom  time.Time
	dateTo    time.Time
	hasFrom   bool
	hasTo     bool
	minAmount float64
	maxAmount float64
	hasMin    bool
	hasMax    bool
	tags      []string
}

func compile(spec Spec) compiled {
	c := compiled{
		search:   strings.ToLower(spec.Search),
		category: spec.Category,
		txType:   spec.Type,
		tags:     spec.Tags,
	}
	if t, err := time.Parse(time.DateOnly, spec.DateFrom); err == nil {
		c.dateFrom, c.hasFrom = t, true
	}
	if t, err := time.Parse(time.DateOnly, spec.DateTo); err == nil {
		c.dateTo, c.hasTo = t, true
	}
	if v, err := strconv.ParseFloat(spec.MinAmount, 64); err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) {
		c.minAmount, c.hasMin = v, true
	}
	if v, err := strconv.ParseFloat(spec.MaxAmount, 64); err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) {
		c.maxAmount, c.hasMax = v, true
	}
	return c
}

// Apply returns the subset of records matching every active predicate,
// preserving input order. The input slice is not modified.
func Apply(records []models.Transaction, spec Spec) []models.Transaction {
	c := compile(spec)

	matched := make([]models.Transaction, 0, len(records))
	for _, record := range records {
		if c.matches(record) {
			matched = append(matched, record)
		}
	}
	return matched
}

func (c compiled) matches(record models.Transaction) bool {
	if c.search != "" && !strings.Contains(strings.ToLower(record.Description), c.search) {
		return false
	}
	if c.category != "" && record.Category != c.category {
		return false
	}
	if c.txType != "" && string(record.Type) != c.txType {
		return false
	}

	if c.hasFrom || c.hasTo {
		// Records whose date does not parse are not excluded by date
		// bounds: the comparison is skipped rather than failed.
		if date, err := time.Parse(time.DateOnly, record.Date); err == nil {
			if c.hasFrom && date.Before(c.dateFrom) {
				return false
			}
			if c.hasTo && date.After(c.dateTo) {
				return false
			}
		}
	}

	if c.hasMin && record.Amount < c.minAmount {
		return false
	}
	if c.hasMax && record.Amount > c.maxAmount {
		return false
	}

	if len(c.tags) > 0 && !hasAnyTag(record.Tags, c.tags) {
		return false
	}

	return true
}

func hasAnyTag(recordTags models.TagList, wanted []string) bool {
	for _, w := range wanted {
		for _, t := range recordTags {
			if t == w {
				return true
			}
		}
	}
	return false
}
