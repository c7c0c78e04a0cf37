package client

import (
	"context"
	"encoding/json"

	"accessctl/internal/normalize"
	"accessctl/pkg/models"
)

const operationLogsPath = "/api/v1/admin/operation_logs"

var operationLogFields = normalize.FieldTable{
	{Wire: "id", Canonical: "id"},
	{Wire: "operator_name", Canonical: "operator"},
	{Wire: "operator", Canonical: "operator"},
	{Wire: "action", Canonical: "action"},
	{Wire: "target_type", Canonical: "targetType"},
	{Wire: "target_id", Canonical: "targetId"},
	{Wire: "ip_address", Canonical: "ipAddress"},
	{Wire: "result", Canonical: "result"},
	{Wire: "detail", Canonical: "detail"},
	{Wire: "created_at", Canonical: "createdAt"},
}

// ListOperationLogs pages through the administrator audit trail.
func (c *ConsoleClient) ListOperationLogs(ctx context.Context, q models.OperationLogQuery) (models.ListResult[models.OperationLog], error) {
	params, err := newQuery().
		page(q.Page, q.PerPage).
		str("operator", q.Operator).
		str("action", q.Action).
		dateRange(q.StartDate, q.EndDate).
		build()
	if err != nil {
		return models.ListResult[models.OperationLog]{}, err
	}
	return fetchList(ctx, c, operationLogsPath, params,
		[]string{"records", "logs"},
		func(wire []json.RawMessage) ([]models.OperationLog, []models.RecordError) {
			return normalize.MapAll[models.OperationLog](operationLogFields, wire)
		},
	)
}
