package models

// PersonEventLogQuery holds the optional filters of the person event log listing.
type PersonEventLogQuery struct {
	Page       int
	PerPage    int
	PersonTag  string
	PersonType string
	StartDate  string // YYYY-MM-DD
	EndDate    string // YYYY-MM-DD
	CampusID   string
	Name       string
}

// PersonEventRecord is a recognition event for a person at a checkpoint.
// Every field except ID is optional and stays nil when the backend omits it.
type PersonEventRecord struct {
	ID              ID    `json:"id" yaml:"id"`
	CampusName      *Text `json:"campusName,omitempty" yaml:"campusName,omitempty"`
	PersonID        *Text `json:"personId,omitempty" yaml:"personId,omitempty"`
	Name            *Text `json:"name,omitempty" yaml:"name,omitempty"`
	PersonType      *Text `json:"personType,omitempty" yaml:"personType,omitempty"`
	PersonTag       *Text `json:"personTag,omitempty" yaml:"personTag,omitempty"`
	Location        *Text `json:"location,omitempty" yaml:"location,omitempty"`
	Timestamp       *Text `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	PersonImageURL  *Text `json:"personImageUrl,omitempty" yaml:"personImageUrl,omitempty"`
	CaptureImageURL *Text `json:"captureImageUrl,omitempty" yaml:"captureImageUrl,omitempty"`
	FrameImageURL   *Text `json:"frameImageUrl,omitempty" yaml:"frameImageUrl,omitempty"`
}
