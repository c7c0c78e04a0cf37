package client

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// ErrInvalidQuery is returned before any request is sent when the caller's
// parameters cannot be accepted by the backend.
var ErrInvalidQuery = errors.New("invalid query")

const (
	maxPerPage = 500
	dateLayout = "2006-01-02"
)

// queryBuilder collects optional query parameters and the first validation
// failure among them.
type queryBuilder struct {
	values url.Values
	err    error
}

func newQuery() *queryBuilder {
	return &queryBuilder{values: url.Values{}}
}

func (q *queryBuilder) fail(format string, args ...any) {
	if q.err == nil {
		q.err = fmt.Errorf("%w: "+format, append([]any{ErrInvalidQuery}, args...)...)
	}
}

func (q *queryBuilder) str(key, v string) *queryBuilder {
	if v != "" {
		q.values.Set(key, v)
	}
	return q
}

func (q *queryBuilder) oneOf(key, v string, allowed ...string) *queryBuilder {
	if v == "" {
		return q
	}
	for _, a := range allowed {
		if v == a {
			q.values.Set(key, v)
			return q
		}
	}
	q.fail("%s must be one of %v, got %q", key, allowed, v)
	return q
}

func (q *queryBuilder) page(page, perPage int) *queryBuilder {
	switch {
	case page < 0:
		q.fail("page must be >= 1, got %d", page)
	case page > 0:
		q.values.Set("page", strconv.Itoa(page))
	}
	switch {
	case perPage < 0 || perPage > maxPerPage:
		q.fail("per_page must be between 1 and %d, got %d", maxPerPage, perPage)
	case perPage > 0:
		q.values.Set("per_page", strconv.Itoa(perPage))
	}
	return q
}

func (q *queryBuilder) dateRange(start, end string) *queryBuilder {
	var from, to time.Time
	var err error
	if start != "" {
		if from, err = time.Parse(dateLayout, start); err != nil {
			q.fail("start_date must be YYYY-MM-DD, got %q", start)
			return q
		}
		q.values.Set("start_date", start)
	}
	if end != "" {
		if to, err = time.Parse(dateLayout, end); err != nil {
			q.fail("end_date must be YYYY-MM-DD, got %q", end)
			return q
		}
		q.values.Set("end_date", end)
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		q.fail("start_date %s is after end_date %s", start, end)
	}
	return q
}

func (q *queryBuilder) build() (url.Values, error) {
	return q.values, q.err
}

func resourcePath(base, id string) (string, error) {
	if id == "" {
		return "", fmt.Errorf("%w: id is required", ErrInvalidQuery)
	}
	return base + "/" + url.PathEscape(id), nil
}
