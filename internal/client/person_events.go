package client

import (
	"context"
	"encoding/json"
	"net/http"

	"accessctl/internal/normalize"
	"accessctl/pkg/models"
)

const personEventLogsPath = "/api/v1/admin/person_event_logs"

var personEventFields = normalize.FieldTable{
	{Wire: "id", Canonical: "id"},
	{Wire: "campus_name", Canonical: "campusName"},
	{Wire: "person_id", Canonical: "personId"},
	{Wire: "name", Canonical: "name"},
	{Wire: "person_name", Canonical: "name"},
	{Wire: "person_type", Canonical: "personType"},
	{Wire: "person_tag", Canonical: "personTag"},
	{Wire: "location", Canonical: "location"},
	{Wire: "timestamp", Canonical: "timestamp"},
	{Wire: "event_time", Canonical: "timestamp"},
	{Wire: "person_image_url", Canonical: "personImageUrl"},
	{Wire: "capture_image_url", Canonical: "captureImageUrl"},
	{Wire: "frame_image_url", Canonical: "frameImageUrl"},
}

// ListPersonEventLogs searches recognition events. Every filter is optional.
func (c *ConsoleClient) ListPersonEventLogs(ctx context.Context, q models.PersonEventLogQuery) (models.ListResult[models.PersonEventRecord], error) {
	params, err := newQuery().
		page(q.Page, q.PerPage).
		str("person_tag", q.PersonTag).
		str("person_type", q.PersonType).
		dateRange(q.StartDate, q.EndDate).
		str("campus_id", q.CampusID).
		str("name", q.Name).
		build()
	if err != nil {
		return models.ListResult[models.PersonEventRecord]{}, err
	}

	return fetchList(ctx, c, personEventLogsPath, params,
		[]string{"records", "list", "items"},
		mapPersonEvents,
	)
}

// GetPersonEventLog fetches one event. It returns nil when the backend sends
// no payload for the id.
func (c *ConsoleClient) GetPersonEventLog(ctx context.Context, id string) (*models.PersonEventRecord, error) {
	path, err := resourcePath(personEventLogsPath, id)
	if err != nil {
		return nil, err
	}
	return fetchOne(ctx, c, http.MethodGet, path, nil, mapPersonEvent)
}

func mapPersonEvent(wire json.RawMessage) (models.PersonEventRecord, error) {
	return normalize.MapRecord[models.PersonEventRecord](personEventFields, wire)
}

func mapPersonEvents(wire []json.RawMessage) ([]models.PersonEventRecord, []models.RecordError) {
	return normalize.MapAll[models.PersonEventRecord](personEventFields, wire)
}
