package mockserver

import "fmt"

type wireNotification struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Datetime    string `json:"datetime"`
	Type        string `json:"type"`
	Read        bool   `json:"read"`
	Avatar      string `json:"avatar,omitempty"`
	Status      string `json:"status,omitempty"`
	Extra       string `json:"extra,omitempty"`
}

type wirePersonEvent struct {
	ID              string `json:"id"`
	CampusID        string `json:"-"`
	CampusName      string `json:"campus_name,omitempty"`
	PersonID        string `json:"person_id,omitempty"`
	Name            string `json:"name,omitempty"`
	PersonType      string `json:"person_type,omitempty"`
	PersonTag       string `json:"person_tag,omitempty"`
	Location        string `json:"location,omitempty"`
	Timestamp       string `json:"timestamp,omitempty"`
	PersonImageURL  string `json:"person_image_url,omitempty"`
	CaptureImageURL string `json:"capture_image_url,omitempty"`
	FrameImageURL   string `json:"frame_image_url,omitempty"`
}

type wireRegion struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	RegionType  string  `json:"region_type"`
	Description *string `json:"description,omitempty"`
	PointCount  int     `json:"point_count"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type wireDeployment struct {
	ID         string `json:"id"`
	DeviceID   string `json:"device_id"`
	DeviceName string `json:"device_name"`
	DeviceType string `json:"device_type"`
	RegionID   string `json:"region_id"`
	RegionName string `json:"region_name"`
	IPAddress  string `json:"ip_address,omitempty"`
	Status     string `json:"status"`
	DeployedAt string `json:"deployed_at"`
}

type wireOperationLog struct {
	ID           string `json:"id"`
	OperatorName string `json:"operator_name"`
	Action       string `json:"action"`
	TargetType   string `json:"target_type,omitempty"`
	TargetID     string `json:"target_id,omitempty"`
	IPAddress    string `json:"ip_address,omitempty"`
	Result       string `json:"result"`
	Detail       string `json:"detail,omitempty"`
	CreatedAt    string `json:"created_at"`
}

type wireCompanion struct {
	ID              string `json:"id"`
	PersonID        string `json:"person_id"`
	PersonName      string `json:"person_name,omitempty"`
	CompanionID     string `json:"companion_id,omitempty"`
	CompanionName   string `json:"companion_name,omitempty"`
	CompanionType   string `json:"companion_type"`
	Location        string `json:"location,omitempty"`
	CaptureImageURL string `json:"capture_image_url,omitempty"`
	OccurredAt      string `json:"occurred_at"`
	Count           int    `json:"count"`
}

// seedNotifications returns ten message center entries, three of them read.
func seedNotifications() []wireNotification {
	types := []string{"notification", "message", "event"}
	out := make([]wireNotification, 0, 10)
	for i := 1; i <= 10; i++ {
		n := wireNotification{
			ID:       fmt.Sprintf("n-%03d", i),
			Title:    fmt.Sprintf("Device alert %d", i),
			Datetime: fmt.Sprintf("2026-10-%02dT08:%02d:00", i, i*3),
			Type:     types[i%len(types)],
			Read:     i%3 == 0,
		}
		if n.Type == "event" {
			n.Status = "processing"
			n.Extra = "pending review"
		}
		if n.Type == "message" {
			n.Description = "Camera went offline at the north gate"
		}
		out = append(out, n)
	}
	return out
}

func seedPersonEvents() []wirePersonEvent {
	tags := []string{"VIP", "staff", "visitor", "blacklist"}
	types := []string{"employee", "visitor", "contractor"}
	out := make([]wirePersonEvent, 0, 23)
	for i := 1; i <= 23; i++ {
		e := wirePersonEvent{
			ID:              fmt.Sprintf("pe-%d", i),
			CampusID:        fmt.Sprintf("c-%d", i%2+1),
			CampusName:      fmt.Sprintf("Campus %d", i%2+1),
			PersonID:        fmt.Sprintf("P%d", i),
			Name:            fmt.Sprintf("Person %d", i),
			PersonType:      types[i%len(types)],
			PersonTag:       tags[i%len(tags)],
			Location:        "Main entrance",
			Timestamp:       fmt.Sprintf("2026-10-%02dT09:00:00+08:00", i%28+1),
			CaptureImageURL: fmt.Sprintf("/images/capture/%d.jpg", i),
		}
		if i%2 == 0 {
			e.PersonImageURL = fmt.Sprintf("/images/person/%d.jpg", i)
			e.FrameImageURL = fmt.Sprintf("/images/frame/%d.jpg", i)
		}
		out = append(out, e)
	}
	out = append(out, wirePersonEvent{ID: "pe-42", PersonID: "P1", Name: "Zhang"})
	return out
}

func seedRegions() []wireRegion {
	desc := "Vehicle and pedestrian gate"
	return []wireRegion{
		{ID: "r-1", Name: "North gate", RegionType: "checkpoint", Description: &desc, PointCount: 4, CreatedAt: "2026-01-05T10:00:00Z", UpdatedAt: "2026-01-05T10:00:00Z"},
		{ID: "r-2", Name: "Campus east", RegionType: "site", PointCount: 12, CreatedAt: "2026-02-11T10:00:00Z", UpdatedAt: "2026-03-01T10:00:00Z"},
		{ID: "r-9", Name: "Loading dock", RegionType: "checkpoint", PointCount: 2, CreatedAt: "2026-04-20T10:00:00Z", UpdatedAt: "2026-04-20T10:00:00Z"},
	}
}

func seedDeployments() []wireDeployment {
	return []wireDeployment{
		{ID: "d-1", DeviceID: "cam-01", DeviceName: "North gate cam", DeviceType: "camera", RegionID: "r-1", RegionName: "North gate", IPAddress: "10.0.0.21", Status: "online", DeployedAt: "2026-01-06T09:00:00Z"},
		{ID: "d-2", DeviceID: "term-01", DeviceName: "North gate turnstile", DeviceType: "terminal", RegionID: "r-1", RegionName: "North gate", Status: "offline", DeployedAt: "2026-01-06T09:30:00Z"},
		{ID: "d-3", DeviceID: "cam-07", DeviceName: "Dock cam", DeviceType: "camera", RegionID: "r-9", RegionName: "Loading dock", IPAddress: "10.0.3.7", Status: "online", DeployedAt: "2026-04-21T08:00:00Z"},
	}
}

func seedOperationLogs() []wireOperationLog {
	return []wireOperationLog{
		{ID: "op-1", OperatorName: "admin", Action: "create_region", TargetType: "region", TargetID: "r-9", IPAddress: "192.168.1.10", Result: "success", CreatedAt: "2026-04-20T10:00:00Z"},
		{ID: "op-2", OperatorName: "auditor", Action: "export_events", Result: "success", Detail: "person_event_logs 2026-04", CreatedAt: "2026-05-01T12:00:00Z"},
		{ID: "op-3", OperatorName: "admin", Action: "delete_device", TargetType: "device", TargetID: "cam-03", Result: "failed", CreatedAt: "2026-05-03T15:20:00Z"},
	}
}

func seedCompanions() []wireCompanion {
	return []wireCompanion{
		{ID: "cr-1", PersonID: "P1", PersonName: "Zhang", CompanionID: "P7", CompanionName: "Li", CompanionType: "companion", Location: "Main entrance", OccurredAt: "2026-10-01T09:00:00+08:00", Count: 5},
		{ID: "cr-2", PersonID: "P1", PersonName: "Zhang", CompanionType: "stranger", CaptureImageURL: "/images/capture/s-1.jpg", OccurredAt: "2026-10-02T18:30:00+08:00", Count: 1},
	}
}
