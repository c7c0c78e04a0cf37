package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"accessctl/internal/normalize"
	"accessctl/pkg/models"
)

const regionsPath = "/api/v1/admin/regions"

// Region wire and canonical shapes coincide, so region calls decode without
// renaming.

func (c *ConsoleClient) ListRegions(ctx context.Context, q models.RegionQuery) (models.ListResult[models.Region], error) {
	params, err := newQuery().
		page(q.Page, q.PerPage).
		oneOf("region_type", q.RegionType, models.RegionCheckpoint, models.RegionSite).
		str("keyword", q.Keyword).
		build()
	if err != nil {
		return models.ListResult[models.Region]{}, err
	}
	return fetchList(ctx, c, regionsPath, params,
		[]string{"regions", "records"},
		normalize.DecodeAll[models.Region],
	)
}

func (c *ConsoleClient) GetRegion(ctx context.Context, id string) (*models.Region, error) {
	path, err := resourcePath(regionsPath, id)
	if err != nil {
		return nil, err
	}
	return fetchOne(ctx, c, http.MethodGet, path, nil, normalize.Decode[models.Region])
}

// CreateRegion registers a region. Name and type are required.
func (c *ConsoleClient) CreateRegion(ctx context.Context, p models.RegionPayload) (*models.Region, error) {
	if p.Name == nil || *p.Name == "" {
		return nil, fmt.Errorf("%w: region name is required", ErrInvalidQuery)
	}
	if p.RegionType == nil {
		return nil, fmt.Errorf("%w: region_type is required", ErrInvalidQuery)
	}
	if err := validateRegionType(p.RegionType); err != nil {
		return nil, err
	}
	return fetchOne(ctx, c, http.MethodPost, regionsPath, p, normalize.Decode[models.Region])
}

// UpdateRegion patches the fields set in p.
func (c *ConsoleClient) UpdateRegion(ctx context.Context, id string, p models.RegionPayload) (*models.Region, error) {
	path, err := resourcePath(regionsPath, id)
	if err != nil {
		return nil, err
	}
	if err := validateRegionType(p.RegionType); err != nil {
		return nil, err
	}
	return fetchOne(ctx, c, http.MethodPatch, path, p, normalize.Decode[models.Region])
}

// DeleteRegion removes a region. The backend answers with empty data, which
// is all that is required.
func (c *ConsoleClient) DeleteRegion(ctx context.Context, id string) error {
	path, err := resourcePath(regionsPath, id)
	if err != nil {
		return err
	}
	_, err = c.payload(ctx, http.MethodDelete, path, nil, nil)
	if errors.Is(err, normalize.ErrMissingPayload) {
		return nil
	}
	return err
}

func validateRegionType(t *string) error {
	if t == nil || *t == models.RegionCheckpoint || *t == models.RegionSite {
		return nil
	}
	return fmt.Errorf("%w: region_type must be %q or %q, got %q",
		ErrInvalidQuery, models.RegionCheckpoint, models.RegionSite, *t)
}
