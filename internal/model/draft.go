package model

import "time"

// Draft is in-progress form state. It is stored as-is with no schema versioning.
type Draft struct {
	ID        string             `json:"id"`
	Mode      FormMode           `json:"mode"`
	Step      int                `json:"step"`
	Theme     string             `json:"theme,omitempty"`
	Project   ProjectDescription `json:"project"`
	Customer  Customer           `json:"customer"`
	UpdatedAt time.Time          `json:"updated_at"`
}
