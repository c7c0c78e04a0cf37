package models

// OperationLogQuery holds the optional filters of the operation log listing.
type OperationLogQuery struct {
	Page      int
	PerPage   int
	Operator  string
	Action    string
	StartDate string
	EndDate   string
}

// OperationLog is an audit entry for an administrator action.
type OperationLog struct {
	ID         ID    `json:"id" yaml:"id"`
	Operator   *Text `json:"operator,omitempty" yaml:"operator,omitempty"`
	Action     *Text `json:"action,omitempty" yaml:"action,omitempty"`
	TargetType *Text `json:"targetType,omitempty" yaml:"targetType,omitempty"`
	TargetID   *Text `json:"targetId,omitempty" yaml:"targetId,omitempty"`
	IPAddress  *Text `json:"ipAddress,omitempty" yaml:"ipAddress,omitempty"`
	Result     *Text `json:"result,omitempty" yaml:"result,omitempty"`
	Detail     *Text `json:"detail,omitempty" yaml:"detail,omitempty"`
	CreatedAt  *Text `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
}
