package app

import (
	"context"
	"errors"
	"time"

	"github.com/Dan9191/waste-service/internal/apperr"
	"github.com/Dan9191/waste-service/internal/models"
	"github.com/Dan9191/waste-service/internal/service"
)

// Seed loads the demo user and reference data. A store that already holds
// the demo user is left untouched.
func Seed(ctx context.Context, svc *service.Service) error {
	user, err := svc.CreateUser(ctx, service.NewUser{
		Username: "alex",
		Email:    "alex@example.com",
		Password: "password123",
		FullName: "Alex Johnson",
	})
	if errors.Is(err, apperr.ErrConflict) {
		return nil
	}
	if err != nil {
		return err
	}

	now := svc.Now()
	yesterday := now.AddDate(0, 0, -1)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for _, rec := range []models.WasteRecord{
		{WasteType: models.WasteGeneral, Amount: 5, Date: now},
		{WasteType: models.WasteRecycling, Amount: 3, Date: now},
		{WasteType: models.WasteCompost, Amount: 2, Date: now},
		{WasteType: models.WasteGeneral, Amount: 6, Date: yesterday},
		{WasteType: models.WasteRecycling, Amount: 4, Date: yesterday},
		{WasteType: models.WasteCompost, Amount: 3, Date: yesterday},
	} {
		rec.UserID = user.ID
		if _, err := svc.CreateWasteRecord(ctx, &rec); err != nil {
			return err
		}
	}

	for _, loc := range seedLocations() {
		if _, err := svc.CreateLocation(ctx, &loc); err != nil {
			return err
		}
	}

	weekly := "weekly"
	for _, c := range []models.Collection{
		{WasteType: models.WasteRecycling, ScheduledDate: now.AddDate(0, 0, 1)},
		{WasteType: models.WasteGeneral, ScheduledDate: midnight.AddDate(0, 0, 7)},
		{WasteType: models.WasteCompost, ScheduledDate: midnight.AddDate(0, 0, 9)},
	} {
		c.TimeWindow = "8AM - 10AM"
		c.LocationID = 1
		c.IsRecurring = true
		c.RecurringPattern = &weekly
		if _, err := svc.CreateCollection(ctx, &c); err != nil {
			return err
		}
	}

	for _, tip := range []models.RecyclingTip{
		{Title: "Rinse Food Containers", Category: "general",
			Description: "Make sure to rinse food residue from containers before recycling to prevent contamination."},
		{Title: "Flatten Cardboard Boxes", Category: "paper",
			Description: "Break down boxes to save space in your recycling bin and make collection more efficient."},
		{Title: "Remove Lids from Bottles", Category: "plastic",
			Description: "Separate plastic lids from glass bottles as they are often made from different materials."},
	} {
		if _, err := svc.CreateTip(ctx, &tip); err != nil {
			return err
		}
	}

	for _, res := range []models.EducationalResource{
		{Title: "Complete Recycling Guide", ResourceType: "guide",
			Description: "Learn what items can be recycled and how to prepare them properly.",
			ImageURL:    "https://images.unsplash.com/photo-1532996122724-e3c354a0b15b?auto=format&fit=crop&w=800&q=80",
			ContentURL:  "/resources/recycling-guide"},
		{Title: "Composting 101", ResourceType: "article",
			Description: "Start turning your food scraps and yard waste into nutrient-rich soil.",
			ImageURL:    "https://images.unsplash.com/photo-1542601906990-b4d3fb778b09?auto=format&fit=crop&w=800&q=80",
			ContentURL:  "/resources/composting-101"},
		{Title: "Reducing Household Waste", ResourceType: "article",
			Description: "Simple strategies to minimize waste production in your home.",
			ImageURL:    "https://images.unsplash.com/photo-1526951521990-620dc14c214b?auto=format&fit=crop&w=800&q=80",
			ContentURL:  "/resources/reducing-waste"},
	} {
		if _, err := svc.CreateResource(ctx, &res); err != nil {
			return err
		}
	}
	return nil
}

func seedLocations() []models.DisposalLocation {
	str := func(s string) *string { return &s }
	return []models.DisposalLocation{
		{
			Name: "Downtown Recycling Center", Address: "123 Main St", City: "Seattle",
			Latitude: 47.6062, Longitude: -122.3321,
			AcceptedWasteTypes: []string{"general", "recycling", "compost"},
			OperatingHours:     "Mon-Fri: 8AM-6PM, Sat: 9AM-5PM",
			PhoneNumber:        str("(206) 555-1234"),
			Website:            str("https://example.com/downtown-recycling"),
		},
		{
			Name: "Eastside Disposal Facility", Address: "456 Oak Ave", City: "Bellevue",
			Latitude: 47.6101, Longitude: -122.2015,
			AcceptedWasteTypes: []string{"general", "recycling", "hazardous"},
			OperatingHours:     "Mon-Sat: 8AM-7PM",
			PhoneNumber:        str("(206) 555-5678"),
			Website:            str("https://example.com/eastside-disposal"),
		},
		{
			Name: "University District Drop-Off", Address: "789 Campus Way", City: "Seattle",
			Latitude: 47.6553, Longitude: -122.3035,
			AcceptedWasteTypes: []string{"recycling", "compost", "electronics"},
			OperatingHours:     "Mon-Fri: 7AM-8PM, Sat-Sun: 9AM-6PM",
			PhoneNumber:        str("(206) 555-9012"),
			Website:            str("https://example.com/ud-dropoff"),
		},
	}
}
