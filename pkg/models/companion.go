package models

// Companion record kinds.
const (
	CompanionKnown    = "companion"
	CompanionStranger = "stranger"
)

// CompanionRecordQuery holds the optional filters of the companion listing.
type CompanionRecordQuery struct {
	Page       int
	PerPage    int
	PersonID   string
	RecordType string
	StartDate  string
	EndDate    string
}

// CompanionRecord links a person to someone captured alongside them, either a
// known companion or an unidentified stranger.
type CompanionRecord struct {
	ID              ID    `json:"id" yaml:"id"`
	PersonID        *Text `json:"personId,omitempty" yaml:"personId,omitempty"`
	PersonName      *Text `json:"personName,omitempty" yaml:"personName,omitempty"`
	CompanionID     *Text `json:"companionId,omitempty" yaml:"companionId,omitempty"`
	CompanionName   *Text `json:"companionName,omitempty" yaml:"companionName,omitempty"`
	CompanionType   *Text `json:"companionType,omitempty" yaml:"companionType,omitempty"`
	Location        *Text `json:"location,omitempty" yaml:"location,omitempty"`
	CaptureImageURL *Text `json:"captureImageUrl,omitempty" yaml:"captureImageUrl,omitempty"`
	OccurredAt      *Text `json:"occurredAt,omitempty" yaml:"occurredAt,omitempty"`
	Count           *int  `json:"count,omitempty" yaml:"count,omitempty"`
}
