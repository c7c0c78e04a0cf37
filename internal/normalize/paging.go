package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"accessctl/pkg/models"
)

// Spellings of the paging fields seen across endpoints, in lookup order.
var (
	totalKeys      = []string{"total", "total_count", "totalCount", "count"}
	currentKeys    = []string{"current_page", "currentPage", "page", "page_num", "pageNum"}
	totalPagesKeys = []string{"total_pages", "totalPages", "pages", "last_page", "lastPage"}
	perPageKeys    = []string{"per_page", "perPage", "page_size", "pageSize", "limit"}
)

const fallbackRecordKey = "data"

// nestedMetaKeys hold paging metadata on endpoints that do not flatten it.
var nestedMetaKeys = []string{"pagination", "meta", "page_info", "pageInfo"}

// SplitList separates a list payload into its records and its paging
// metadata. A bare array has no metadata. For an object the records are read
// from the first of recordKeys present. When none is present an array under
// "data" is used, which is where paginator-style bodies keep their page;
// otherwise the page is empty.
func SplitList(payload json.RawMessage, recordKeys ...string) ([]json.RawMessage, map[string]json.RawMessage, error) {
	payload = bytes.TrimSpace(payload)
	if isNull(payload) {
		return nil, nil, ErrMissingPayload
	}

	if payload[0] == '[' {
		var records []json.RawMessage
		if err := json.Unmarshal(payload, &records); err != nil {
			return nil, nil, fmt.Errorf("decode record list: %w", err)
		}
		return records, nil, nil
	}

	top, ok := object(payload)
	if !ok {
		return nil, nil, fmt.Errorf("%w: list payload is neither an array nor an object", ErrMissingPayload)
	}

	var records []json.RawMessage
	found := false
	for _, k := range recordKeys {
		raw, ok := top[k]
		if !ok {
			continue
		}
		found = true
		raw = bytes.TrimSpace(raw)
		if !isNull(raw) {
			if err := json.Unmarshal(raw, &records); err != nil {
				return nil, nil, fmt.Errorf("decode %q: %w", k, err)
			}
		}
		break
	}
	if raw := bytes.TrimSpace(top[fallbackRecordKey]); !found && len(raw) > 0 && raw[0] == '[' {
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, nil, fmt.Errorf("decode %q: %w", fallbackRecordKey, err)
		}
	}

	meta := make(map[string]json.RawMessage, len(top))
	for k, v := range top {
		meta[k] = v
	}
	for _, nk := range nestedMetaKeys {
		nested, ok := object(bytes.TrimSpace(top[nk]))
		if !ok {
			continue
		}
		for k, v := range nested {
			if _, exists := meta[k]; !exists {
				meta[k] = v
			}
		}
	}
	return records, meta, nil
}

// Project reduces wire paging metadata to a PagingDescriptor. batchLen is the
// number of records returned with it. Missing fields describe a single
// complete page; a missing page count is derived from total and per-page.
func Project(meta map[string]json.RawMessage, batchLen int) models.PagingDescriptor {
	total, ok := intField(meta, totalKeys)
	if !ok || total < 0 {
		total = batchLen
	}

	perPage, ok := intField(meta, perPageKeys)
	if !ok {
		perPage = batchLen
	}
	if perPage < 1 {
		perPage = 1
	}

	current, ok := intField(meta, currentKeys)
	if !ok || current < 1 {
		current = 1
	}

	totalPages, ok := intField(meta, totalPagesKeys)
	if !ok || totalPages < 0 {
		totalPages = (total + perPage - 1) / perPage
	}
	if total > 0 && totalPages < 1 {
		totalPages = 1
	}

	if last := max(totalPages, 1); current > last {
		current = last
	}

	return models.PagingDescriptor{
		Total:       total,
		CurrentPage: current,
		TotalPages:  totalPages,
		PerPage:     perPage,
	}
}

// maxPagingValue bounds paging numbers so that page arithmetic cannot overflow.
const maxPagingValue = 1 << 30

// intField reads the first of keys that holds a number or a numeric string.
func intField(meta map[string]json.RawMessage, keys []string) (int, bool) {
	for _, k := range keys {
		raw, ok := meta[k]
		if !ok || isNull(bytes.TrimSpace(raw)) {
			continue
		}
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			continue
		}
		if i, err := n.Int64(); err == nil {
			return int(min(max(i, -maxPagingValue), maxPagingValue)), true
		}
		if f, err := n.Float64(); err == nil {
			return int(math.Min(math.Max(f, -maxPagingValue), maxPagingValue)), true
		}
	}
	return 0, false
}
