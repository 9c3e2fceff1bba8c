package model

import "time"

// DefaultAssetStatus is assigned to assets created without a status.
const DefaultAssetStatus = "Active"

// Asset is an inventory item: a machine tracked by host name and operating
// system. Assets are not owned by a user; any authenticated caller may
// manage them.
type Asset struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	HostName        string `gorm:"size:255" json:"hostName"`
	OperatingSystem string `gorm:"size:255" json:"operatingSystem"`
	// Status is free text, e.g. "Active", "Inactive", "In Maintenance".
	Status string `gorm:"size:64" json:"status"`
	// RegisteredAt is set at creation and immutable afterwards.
	RegisteredAt time.Time `json:"registeredAt"`
}
