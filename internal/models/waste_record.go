package models

import (
	"strings"
	"time"
)

// WasteType is the category of disposed material
type WasteType string

const (
	WasteGeneral   WasteType = "general"
	WasteRecycling WasteType = "recycling"
	WasteCompost   WasteType = "compost"
)

// KnownWasteTypes are the types the dashboard reports on individually
var KnownWasteTypes = []WasteType{WasteGeneral, WasteRecycling, WasteCompost}

// NormalizeWasteType lowercases and trims a client supplied type
func NormalizeWasteType(s string) WasteType {
	return WasteType(strings.ToLower(strings.TrimSpace(s)))
}

// WasteRecord is a single weighed disposal. Records are immutable once stored.
type WasteRecord struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	WasteType WasteType `json:"wasteType"`
	Amount    float64   `json:"amount"` // kilograms
	Date      time.Time `json:"date"`
}
