package company

import "time"

type Company struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Industry     string              `json:"industry"`
	Size         string              `json:"size"`
	Currency     string              `json:"currency,omitempty"`
	Timezone     string              `json:"timezone,omitempty"`
	WorkingHours map[string]DayHours `json:"workingHours,omitempty"`
	OwnerID      string              `json:"ownerId"`
	CreatedAt    time.Time           `json:"createdAt"`
}

type DayHours struct {
	Open  bool   `json:"open"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

type Input struct {
	Name         string              `json:"name"`
	Industry     string              `json:"industry"`
	Size         string              `json:"size"`
	Currency     string              `json:"currency"`
	Timezone     string              `json:"timezone"`
	WorkingHours map[string]DayHours `json:"workingHours"`
}
