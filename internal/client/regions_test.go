package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"accessctl/internal/mockserver"
	"accessctl/pkg/models"
)

func strPtr(s string) *string { return &s }

func TestListRegions(t *testing.T) {
	c := testClient(t)

	res, err := c.ListRegions(context.Background(), models.RegionQuery{})
	if err != nil {
		t.Fatalf("ListRegions() error: %v", err)
	}
	if len(res.Records) != 3 {
		t.Fatalf("got %d regions, want 3", len(res.Records))
	}
	if res.Records[0].RegionType != models.RegionCheckpoint || res.Records[0].Description == nil {
		t.Errorf("first region = %+v", res.Records[0])
	}
	if res.Records[1].Description != nil {
		t.Errorf("second region description = %q, want absent", *res.Records[1].Description)
	}
	want := models.PagingDescriptor{Total: 3, CurrentPage: 1, TotalPages: 1, PerPage: 10}
	if res.Paging != want {
		t.Errorf("Paging = %+v, want %+v", res.Paging, want)
	}

	sites, err := c.ListRegions(context.Background(), models.RegionQuery{RegionType: models.RegionSite})
	if err != nil {
		t.Fatalf("ListRegions(site) error: %v", err)
	}
	if len(sites.Records) != 1 || sites.Records[0].ID != "r-2" {
		t.Errorf("sites = %+v", sites.Records)
	}

	if _, err := c.ListRegions(context.Background(), models.RegionQuery{RegionType: "zone"}); !errors.Is(err, ErrInvalidQuery) {
		t.Errorf("error = %v, want ErrInvalidQuery", err)
	}
}

func TestRegionLifecycle(t *testing.T) {
	c := testClient(t)
	ctx := context.Background()

	created, err := c.CreateRegion(ctx, models.RegionPayload{
		Name:       strPtr("West lobby"),
		RegionType: strPtr(models.RegionCheckpoint),
	})
	if err != nil {
		t.Fatalf("CreateRegion() error: %v", err)
	}
	if created == nil || created.ID == "" || created.Name != "West lobby" {
		t.Fatalf("created = %+v", created)
	}

	updated, err := c.UpdateRegion(ctx, created.ID.String(), models.RegionPayload{Description: strPtr("Visitors only")})
	if err != nil {
		t.Fatalf("UpdateRegion() error: %v", err)
	}
	if updated.Description == nil || *updated.Description != "Visitors only" || updated.Name != "West lobby" {
		t.Errorf("updated = %+v", updated)
	}

	got, err := c.GetRegion(ctx, created.ID.String())
	if err != nil || got == nil || got.ID != created.ID {
		t.Fatalf("GetRegion() = %+v, %v", got, err)
	}

	if err := c.DeleteRegion(ctx, created.ID.String()); err != nil {
		t.Fatalf("DeleteRegion() error: %v", err)
	}
	_, err = c.GetRegion(ctx, created.ID.String())
	var te *TransportError
	if !errors.As(err, &te) || te.StatusCode != http.StatusNotFound {
		t.Errorf("GetRegion() after delete error = %v, want 404", err)
	}
}

func TestCreateRegion_Validation(t *testing.T) {
	c := testClient(t)
	payloads := []models.RegionPayload{
		{RegionType: strPtr(models.RegionSite)},
		{Name: strPtr("x")},
		{Name: strPtr("x"), RegionType: strPtr("zone")},
	}
	for _, p := range payloads {
		if _, err := c.CreateRegion(context.Background(), p); !errors.Is(err, ErrInvalidQuery) {
			t.Errorf("payload %+v: error = %v, want ErrInvalidQuery", p, err)
		}
	}
}

func TestDeleteRegion_Request(t *testing.T) {
	var method, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		_, _ = io.WriteString(w, `{"success":true,"data":{}}`)
	}))
	defer srv.Close()
	c := New(ClientConfig{BaseURL: srv.URL, Logger: quietLogger()})

	if err := c.DeleteRegion(context.Background(), "r-9"); err != nil {
		t.Fatalf("DeleteRegion() error: %v", err)
	}
	if method != http.MethodDelete || path != "/api/v1/admin/regions/r-9" {
		t.Errorf("request = %s %s", method, path)
	}
}

func TestDeleteRegion_EmptyBodyIsSuccess(t *testing.T) {
	c, _ := rawClient(t, http.StatusNoContent, ``)
	if err := c.DeleteRegion(context.Background(), "r-9"); err != nil {
		t.Errorf("DeleteRegion() error: %v", err)
	}
}

func TestDeleteRegion_Mock(t *testing.T) {
	srv := httptest.NewServer(mockserver.New(nil).Handler())
	defer srv.Close()
	c := New(ClientConfig{BaseURL: srv.URL, Logger: quietLogger()})

	if err := c.DeleteRegion(context.Background(), "r-9"); err != nil {
		t.Fatalf("DeleteRegion() error: %v", err)
	}
	res, err := c.ListRegions(context.Background(), models.RegionQuery{})
	if err != nil {
		t.Fatalf("ListRegions() error: %v", err)
	}
	for _, r := range res.Records {
		if r.ID == "r-9" {
			t.Error("r-9 still listed after delete")
		}
	}
}
