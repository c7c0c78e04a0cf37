package client

import (
	"context"
	"encoding/json"

	"accessctl/internal/normalize"
	"accessctl/pkg/models"
)

const deviceDeploymentsPath = "/api/v1/admin/device_deployments"

var deploymentFields = normalize.FieldTable{
	{Wire: "id", Canonical: "id"},
	{Wire: "device_id", Canonical: "deviceId"},
	{Wire: "device_name", Canonical: "deviceName"},
	{Wire: "device_type", Canonical: "deviceType"},
	{Wire: "region_id", Canonical: "regionId"},
	{Wire: "region_name", Canonical: "regionName"},
	{Wire: "ip_address", Canonical: "ipAddress"},
	{Wire: "ip", Canonical: "ipAddress"},
	{Wire: "status", Canonical: "status"},
	{Wire: "deployed_at", Canonical: "deployedAt"},
}

func (c *ConsoleClient) ListDeviceDeployments(ctx context.Context, q models.DeviceDeploymentQuery) (models.ListResult[models.DeviceDeployment], error) {
	params, err := newQuery().
		page(q.Page, q.PerPage).
		str("device_type", q.DeviceType).
		str("region_id", q.RegionID).
		str("status", q.Status).
		build()
	if err != nil {
		return models.ListResult[models.DeviceDeployment]{}, err
	}
	return fetchList(ctx, c, deviceDeploymentsPath, params,
		[]string{"records", "deployments"},
		func(wire []json.RawMessage) ([]models.DeviceDeployment, []models.RecordError) {
			return normalize.MapAll[models.DeviceDeployment](deploymentFields, wire)
		},
	)
}
