package client

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"testing"

	"accessctl/pkg/models"
)

func TestListDeviceDeployments(t *testing.T) {
	c := testClient(t)

	res, err := c.ListDeviceDeployments(context.Background(), models.DeviceDeploymentQuery{RegionID: "r-1"})
	if err != nil {
		t.Fatalf("ListDeviceDeployments() error: %v", err)
	}
	if len(res.Records) != 2 {
		t.Fatalf("got %d deployments, want 2", len(res.Records))
	}
	first, second := res.Records[0], res.Records[1]
	if *first.DeviceID != "cam-01" || *first.IPAddress != "10.0.0.21" || *first.RegionName != "North gate" {
		t.Errorf("first = %+v", first)
	}
	if second.IPAddress != nil {
		t.Errorf("second.IPAddress = %q, want absent", *second.IPAddress)
	}
}

func TestListOperationLogs(t *testing.T) {
	c := testClient(t)

	res, err := c.ListOperationLogs(context.Background(), models.OperationLogQuery{StartDate: "2026-05-01"})
	if err != nil {
		t.Fatalf("ListOperationLogs() error: %v", err)
	}
	if len(res.Records) != 2 {
		t.Fatalf("got %d logs, want 2", len(res.Records))
	}
	if *res.Records[0].Operator != "auditor" || res.Records[0].TargetID != nil {
		t.Errorf("first = %+v", res.Records[0])
	}
	if res.Paging.Total != 2 {
		t.Errorf("Paging = %+v", res.Paging)
	}
}

func TestListCompanionRecords(t *testing.T) {
	c := testClient(t)

	res, err := c.ListCompanionRecords(context.Background(), models.CompanionRecordQuery{
		PersonID:   "P1",
		RecordType: models.CompanionStranger,
	})
	if err != nil {
		t.Fatalf("ListCompanionRecords() error: %v", err)
	}
	if len(res.Records) != 1 {
		t.Fatalf("got %d records, want 1", len(res.Records))
	}
	rec := res.Records[0]
	if *rec.CompanionType != models.CompanionStranger || rec.CompanionName != nil || *rec.Count != 1 {
		t.Errorf("record = %+v", rec)
	}

	_, err = c.ListCompanionRecords(context.Background(), models.CompanionRecordQuery{RecordType: "friend"})
	if !errors.Is(err, ErrInvalidQuery) {
		t.Errorf("error = %v, want ErrInvalidQuery", err)
	}
}

func TestListWithoutPagingMetadata(t *testing.T) {
	body := `{"success":true,"data":[{"id":1},{"id":2},{"id":3},{"id":4},{"id":5}]}`
	c, _ := rawClient(t, http.StatusOK, body)

	res, err := c.ListOperationLogs(context.Background(), models.OperationLogQuery{})
	if err != nil {
		t.Fatalf("ListOperationLogs() error: %v", err)
	}
	want := models.PagingDescriptor{Total: 5, CurrentPage: 1, TotalPages: 1, PerPage: 5}
	if res.Paging != want {
		t.Errorf("Paging = %+v, want %+v", res.Paging, want)
	}
	for i, r := range res.Records {
		if r.ID.String() != strconv.Itoa(i+1) {
			t.Errorf("records[%d].ID = %s", i, r.ID)
		}
	}
}
