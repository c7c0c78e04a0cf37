package client

import (
	"errors"
	"testing"
)

func TestQueryBuilder(t *testing.T) {
	v, err := newQuery().
		page(0, 0).
		str("name", "").
		str("campus_id", "c-1").
		oneOf("region_type", "site", "checkpoint", "site").
		dateRange("2026-01-01", "").
		build()
	if err != nil {
		t.Fatalf("build() error: %v", err)
	}
	if v.Encode() != "campus_id=c-1&region_type=site&start_date=2026-01-01" {
		t.Errorf("query = %s", v.Encode())
	}
}

func TestQueryBuilder_FirstErrorKept(t *testing.T) {
	_, err := newQuery().page(-1, 0).dateRange("bad", "").build()
	if !errors.Is(err, ErrInvalidQuery) {
		t.Fatalf("error = %v, want ErrInvalidQuery", err)
	}
	if want := "invalid query: page must be >= 1, got -1"; err.Error() != want {
		t.Errorf("error = %q, want %q", err, want)
	}
}

func TestResourcePath(t *testing.T) {
	p, err := resourcePath(regionsPath, "a b/c")
	if err != nil {
		t.Fatalf("resourcePath() error: %v", err)
	}
	if p != "/api/v1/admin/regions/a%20b%2Fc" {
		t.Errorf("path = %s", p)
	}
}
