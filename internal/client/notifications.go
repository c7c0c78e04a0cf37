package client

import (
	"context"
	"encoding/json"

	"accessctl/internal/normalize"
	"accessctl/pkg/models"
)

const notificationsPath = "/api/message-center"

var notificationFields = normalize.FieldTable{
	{Wire: "id", Canonical: "id"},
	{Wire: "key", Canonical: "id"},
	{Wire: "title", Canonical: "title"},
	{Wire: "description", Canonical: "description"},
	{Wire: "datetime", Canonical: "datetime"},
	{Wire: "category", Canonical: "category"},
	{Wire: "type", Canonical: "category"},
	{Wire: "read", Canonical: "read"},
	{Wire: "avatar", Canonical: "avatar"},
	{Wire: "status", Canonical: "status"},
	{Wire: "extra", Canonical: "extra"},
}

// GetNotifications fetches the message center. The endpoint answers either a
// bare array or an envelope around one.
func (c *ConsoleClient) GetNotifications(ctx context.Context) (models.ListResult[models.NotificationItem], error) {
	return fetchList(ctx, c, notificationsPath, nil,
		[]string{"records", "list", "notices"},
		func(wire []json.RawMessage) ([]models.NotificationItem, []models.RecordError) {
			return normalize.MapAll[models.NotificationItem](notificationFields, wire)
		},
	)
}

// CountUnread returns how many items have not been read yet.
func CountUnread(items []models.NotificationItem) int {
	n := 0
	for _, it := range items {
		if !it.Read {
			n++
		}
	}
	return n
}
