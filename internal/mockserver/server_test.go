package mockserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func serve(t *testing.T, s *Server, method, target, body string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	var out map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("%s %s: body is not a JSON object: %q", method, target, rec.Body.String())
	}
	return rec, out
}

func TestMessageCenterShape(t *testing.T) {
	rec, out := serve(t, New(nil), http.MethodGet, "/api/message-center", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if _, ok := out["success"]; ok {
		t.Error("message center should use the bare {data} wrapper")
	}

	var items []wireNotification
	if err := json.Unmarshal(out["data"], &items); err != nil {
		t.Fatalf("data: %v", err)
	}
	read := 0
	for _, n := range items {
		if n.Read {
			read++
		}
	}
	if len(items) != 10 || read != 3 {
		t.Errorf("got %d items with %d read, want 10 and 3", len(items), read)
	}
}

func TestPersonEventPaging(t *testing.T) {
	_, out := serve(t, New(nil), http.MethodGet, "/api/v1/admin/person_event_logs?page=2&per_page=5&person_tag=VIP", "")

	var data struct {
		Total       int               `json:"total"`
		CurrentPage int               `json:"current_page"`
		TotalPages  int               `json:"total_pages"`
		PerPage     int               `json:"per_page"`
		Records     []wirePersonEvent `json:"records"`
	}
	if err := json.Unmarshal(out["data"], &data); err != nil {
		t.Fatalf("data: %v", err)
	}
	// VIP is every fourth seeded event: 4, 8, 12, 16, 20
	if data.Total != 5 || data.CurrentPage != 2 || data.TotalPages != 1 || data.PerPage != 5 {
		t.Errorf("paging = %+v", data)
	}
	if len(data.Records) != 0 {
		t.Errorf("page past the end returned %d records", len(data.Records))
	}
}

func TestRegionCRUD(t *testing.T) {
	s := New(nil)
	s.now = func() time.Time { return time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC) }

	rec, out := serve(t, s, http.MethodPost, "/api/v1/admin/regions", `{"name":"Gym","region_type":"site"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d", rec.Code)
	}
	var created wireRegion
	if err := json.Unmarshal(out["data"], &created); err != nil {
		t.Fatal(err)
	}
	if created.ID == "" || created.CreatedAt != "2026-10-19T08:00:00Z" {
		t.Errorf("created = %+v", created)
	}

	rec, _ = serve(t, s, http.MethodPatch, "/api/v1/admin/regions/"+created.ID, `{"region_type":"zone"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("invalid patch status = %d", rec.Code)
	}

	rec, out = serve(t, s, http.MethodDelete, "/api/v1/admin/regions/"+created.ID, "")
	if rec.Code != http.StatusOK || string(out["data"]) != "{}" {
		t.Errorf("delete = %d %s", rec.Code, out["data"])
	}

	rec, out = serve(t, s, http.MethodGet, "/api/v1/admin/regions/"+created.ID, "")
	if rec.Code != http.StatusNotFound || string(out["success"]) != "false" {
		t.Errorf("get after delete = %d %v", rec.Code, out)
	}
}

func TestCreateRegionValidation(t *testing.T) {
	rec, _ := serve(t, New(nil), http.MethodPost, "/api/v1/admin/regions", `{"name":"Gym"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}

func TestInRange(t *testing.T) {
	tests := []struct {
		ts, start, end string
		want           bool
	}{
		{"2026-10-05T09:00:00+08:00", "2026-10-01", "2026-10-07", true},
		{"2026-10-05T09:00:00+08:00", "2026-10-06", "", false},
		{"2026-10-05T09:00:00+08:00", "", "2026-10-05", true},
		{"", "", "", true},
		{"", "2026-10-01", "", false},
	}
	for _, tt := range tests {
		if got := inRange(tt.ts, tt.start, tt.end); got != tt.want {
			t.Errorf("inRange(%q, %q, %q) = %v, want %v", tt.ts, tt.start, tt.end, got, tt.want)
		}
	}
}
