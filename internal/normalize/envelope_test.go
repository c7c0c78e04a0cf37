package normalize

import (
	"errors"
	"testing"
)

func TestUnwrap(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"success envelope", `{"success":true,"data":{"id":"r-1"}}`, `{"id":"r-1"}`},
		{"bare object", `{"id":"r-1"}`, `{"id":"r-1"}`},
		{"data-only envelope", `{"data":[{"id":"n-1"}]}`, `[{"id":"n-1"}]`},
		{"bare array", `[{"id":"n-1"}]`, `[{"id":"n-1"}]`},
		{"envelope with message", `{"data":[],"message":"ok","code":0}`, `[]`},
		{"record with data field", `{"id":"x","data":"blob"}`, `{"id":"x","data":"blob"}`},
		{"no double unwrap", `{"success":true,"data":{"data":{"id":"deep"}}}`, `{"data":{"id":"deep"}}`},
		{"empty data object", `{"success":true,"data":{}}`, `{}`},
		{"surrounding whitespace", "\n  {\"success\":true,\"data\":[1]}  \n", `[1]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unwrap([]byte(tt.body))
			if err != nil {
				t.Fatalf("Unwrap() error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Unwrap() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestUnwrap_EnvelopedEqualsBare(t *testing.T) {
	payloads := []string{`{"id":"pe-42"}`, `[1,2,3]`, `"text"`, `7`}
	for _, p := range payloads {
		wrapped, err := Unwrap([]byte(`{"success":true,"data":` + p + `}`))
		if err != nil {
			t.Fatalf("wrapped %s: %v", p, err)
		}
		bare, err := Unwrap([]byte(p))
		if err != nil {
			t.Fatalf("bare %s: %v", p, err)
		}
		if string(wrapped) != string(bare) || string(bare) != p {
			t.Errorf("payload %s: wrapped=%s bare=%s", p, wrapped, bare)
		}
	}
}

func TestUnwrap_MissingPayload(t *testing.T) {
	bodies := []string{
		``,
		`   `,
		`null`,
		`{"success":true,"data":null}`,
		`{"data":null}`,
		`<html>bad gateway</html>`,
	}
	for _, b := range bodies {
		if _, err := Unwrap([]byte(b)); !errors.Is(err, ErrMissingPayload) {
			t.Errorf("Unwrap(%q) error = %v, want ErrMissingPayload", b, err)
		}
	}
}

func TestRejected(t *testing.T) {
	tests := []struct {
		body    string
		wantMsg string
		wantOK  bool
	}{
		{`{"success":false,"message":"region name taken"}`, "region name taken", true},
		{`{"success":false,"msg":"denied"}`, "denied", true},
		{`{"success":false}`, "request rejected by backend", true},
		{`{"success":true,"data":{}}`, "", false},
		{`{"id":"r-1"}`, "", false},
		{`[{"success":false}]`, "", false},
	}
	for _, tt := range tests {
		msg, ok := Rejected([]byte(tt.body))
		if ok != tt.wantOK || msg != tt.wantMsg {
			t.Errorf("Rejected(%s) = (%q, %v), want (%q, %v)", tt.body, msg, ok, tt.wantMsg, tt.wantOK)
		}
	}
}
