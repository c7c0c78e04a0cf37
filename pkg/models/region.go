package models

// Region types.
const (
	RegionCheckpoint = "checkpoint"
	RegionSite       = "site"
)

// Region shares its field names with the backend, so it is decoded as is.
type Region struct {
	ID          ID     `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	RegionType  string `json:"region_type" yaml:"region_type"`
	Description *Text  `json:"description,omitempty" yaml:"description,omitempty"`
	PointCount  *int   `json:"point_count,omitempty" yaml:"point_count,omitempty"`
	CreatedAt   *Text  `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt   *Text  `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// RegionPayload is the body of POST and PATCH /regions. Nil fields are not sent.
type RegionPayload struct {
	Name        *string `json:"name,omitempty"`
	RegionType  *string `json:"region_type,omitempty"`
	Description *string `json:"description,omitempty"`
}

// RegionQuery holds the optional filters of the region listing.
type RegionQuery struct {
	Page       int
	PerPage    int
	RegionType string
	Keyword    string
}
