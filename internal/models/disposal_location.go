package models

import (
	"strings"
	"time"
)

// DisposalLocation is a drop-off facility
type DisposalLocation struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Address            string    `json:"address"`
	City               string    `json:"city"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	AcceptedWasteTypes []string  `json:"acceptedWasteTypes"`
	OperatingHours     string    `json:"operatingHours"`
	PhoneNumber        *string   `json:"phoneNumber"`
	Website            *string   `json:"website"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// Accepts reports whether the location takes waste of type t
func (l DisposalLocation) Accepts(t string) bool {
	t = strings.ToLower(strings.TrimSpace(t))
	for _, a := range l.AcceptedWasteTypes {
		if strings.ToLower(a) == t {
			return true
		}
	}
	return false
}

// JoinWasteTypes renders accepted types the way they are stored in a text column
func JoinWasteTypes(types []string) string {
	return strings.Join(types, ",")
}

// SplitWasteTypes parses a comma-joined accepted-types column
func SplitWasteTypes(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// LocationPatch lists the mutable location fields. Nil fields are left untouched.
type LocationPatch struct {
	Name               *string
	Address            *string
	City               *string
	Latitude           *float64
	Longitude          *float64
	AcceptedWasteTypes []string
	OperatingHours     *string
	PhoneNumber        *string
	Website            *string
}

// Apply merges the patch into l
func (p LocationPatch) Apply(l *DisposalLocation) {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Address != nil {
		l.Address = *p.Address
	}
	if p.City != nil {
		l.City = *p.City
	}
	if p.Latitude != nil {
		l.Latitude = *p.Latitude
	}
	if p.Longitude != nil {
		l.Longitude = *p.Longitude
	}
	if p.AcceptedWasteTypes != nil {
		l.AcceptedWasteTypes = append([]string(nil), p.AcceptedWasteTypes...)
	}
	if p.OperatingHours != nil {
		l.OperatingHours = *p.OperatingHours
	}
	if p.PhoneNumber != nil {
		l.PhoneNumber = p.PhoneNumber
	}
	if p.Website != nil {
		l.Website = p.Website
	}
}
