package models

// DeviceDeploymentQuery holds the optional filters of the deployment listing.
type DeviceDeploymentQuery struct {
	Page       int
	PerPage    int
	DeviceType string
	RegionID   string
	Status     string
}

// DeviceDeployment places a camera or access terminal in a region.
type DeviceDeployment struct {
	ID         ID    `json:"id" yaml:"id"`
	DeviceID   *Text `json:"deviceId,omitempty" yaml:"deviceId,omitempty"`
	DeviceName *Text `json:"deviceName,omitempty" yaml:"deviceName,omitempty"`
	DeviceType *Text `json:"deviceType,omitempty" yaml:"deviceType,omitempty"`
	RegionID   *Text `json:"regionId,omitempty" yaml:"regionId,omitempty"`
	RegionName *Text `json:"regionName,omitempty" yaml:"regionName,omitempty"`
	IPAddress  *Text `json:"ipAddress,omitempty" yaml:"ipAddress,omitempty"`
	Status     *Text `json:"status,omitempty" yaml:"status,omitempty"`
	DeployedAt *Text `json:"deployedAt,omitempty" yaml:"deployedAt,omitempty"`
}
