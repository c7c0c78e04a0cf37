package client

import (
	"context"
	"encoding/json"

	"accessctl/internal/normalize"
	"accessctl/pkg/models"
)

const companionRecordsPath = "/api/v1/admin/companion_records"

var companionFields = normalize.FieldTable{
	{Wire: "id", Canonical: "id"},
	{Wire: "person_id", Canonical: "personId"},
	{Wire: "person_name", Canonical: "personName"},
	{Wire: "companion_id", Canonical: "companionId"},
	{Wire: "companion_name", Canonical: "companionName"},
	{Wire: "companion_type", Canonical: "companionType"},
	{Wire: "location", Canonical: "location"},
	{Wire: "capture_image_url", Canonical: "captureImageUrl"},
	{Wire: "occurred_at", Canonical: "occurredAt"},
	{Wire: "count", Canonical: "count"},
}

// ListCompanionRecords returns people captured together with a person, both
// known companions and strangers.
func (c *ConsoleClient) ListCompanionRecords(ctx context.Context, q models.CompanionRecordQuery) (models.ListResult[models.CompanionRecord], error) {
	params, err := newQuery().
		page(q.Page, q.PerPage).
		str("person_id", q.PersonID).
		oneOf("record_type", q.RecordType, models.CompanionKnown, models.CompanionStranger).
		dateRange(q.StartDate, q.EndDate).
		build()
	if err != nil {
		return models.ListResult[models.CompanionRecord]{}, err
	}
	return fetchList(ctx, c, companionRecordsPath, params,
		[]string{"records"},
		func(wire []json.RawMessage) ([]models.CompanionRecord, []models.RecordError) {
			return normalize.MapAll[models.CompanionRecord](companionFields, wire)
		},
	)
}
