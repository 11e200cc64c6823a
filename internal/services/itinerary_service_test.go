package services

import (
	"context"
	"errors"
	"lankatrails/internal/models/db_models"
	"lankatrails/internal/models/request_models"
	"lankatrails/pkg/utils"
	"testing"

	"github.com/google/uuid"
)

func TestItineraryServiceHappyPath(t *testing.T) {
	kandy := serviceDestination("Kandy", db_models.CategoryCultural, 7.29, 80.63)
	galle := serviceDestination("Galle", db_models.CategoryHistorical, 6.03, 80.22)

	inn := db_models.Hotel{
		Name:          "Kandy Rest",
		DestinationID: kandy.ID,
		Category:      db_models.HotelCategoryEconomic,
		PricePerNight: 45,
	}
	inn.ID = uuid.New()

	svc := NewItineraryService(
		&fakeDestinationRepo{destinations: []db_models.Destination{kandy, galle}},
		&fakeHotelRepo{hotels: []db_models.Hotel{inn}},
		serviceEngine(),
	)

	resp, err := svc.BuildItinerary(context.Background(), request_models.ItineraryRequest{
		Destinations:  []string{"Kandy", "Galle"},
		StartingPoint: "Kandy",
		Accommodation: "budget",
		Days:          4,
		Budget:        "$1,000 - $2,000",
	})
	if err != nil {
		t.Fatalf("BuildItinerary: %v", err)
	}

	if len(resp.Stops) != 2 {
		t.Fatalf("got %d stops, want 2", len(resp.Stops))
	}
	if resp.Stops[0].Name != "Kandy" || resp.Stops[0].Day != 1 {
		t.Errorf("first stop = %+v, want Kandy on day 1", resp.Stops[0])
	}
	if resp.Stops[0].Date == "" || resp.Stops[1].Date == "" {
		t.Error("stop dates not populated")
	}
	if resp.Stops[1].DistanceFromPreviousKm <= 0 {
		t.Errorf("second leg distance = %v, want > 0", resp.Stops[1].DistanceFromPreviousKm)
	}

	// 2000 ceiling over 4 days at a 40% nightly share.
	if resp.NightlyBudget != 200 {
		t.Errorf("nightly budget = %v, want 200", resp.NightlyBudget)
	}
	if len(resp.Hotels) != 1 || resp.Hotels[0].Name != "Kandy Rest" {
		t.Errorf("hotels = %+v, want Kandy Rest", resp.Hotels)
	}
}

func TestItineraryServiceNoDestinationsRequested(t *testing.T) {
	svc := NewItineraryService(&fakeDestinationRepo{}, &fakeHotelRepo{}, serviceEngine())

	_, err := svc.BuildItinerary(context.Background(), request_models.ItineraryRequest{})
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestItineraryServiceUnknownNamesYieldEmptyItinerary(t *testing.T) {
	svc := NewItineraryService(
		&fakeDestinationRepo{destinations: []db_models.Destination{}},
		&fakeHotelRepo{},
		serviceEngine(),
	)

	resp, err := svc.BuildItinerary(context.Background(), request_models.ItineraryRequest{
		Destinations: []string{"Atlantis"},
	})
	if err != nil {
		t.Fatalf("unknown names should not error: %v", err)
	}
	if len(resp.Stops) != 0 || len(resp.Hotels) != 0 {
		t.Errorf("expected empty itinerary, got %+v", resp)
	}
}

func TestItineraryServiceRepoFailure(t *testing.T) {
	boom := errors.New("connection refused")

	svc := NewItineraryService(
		&fakeDestinationRepo{err: boom},
		&fakeHotelRepo{},
		serviceEngine(),
	)
	_, err := svc.BuildItinerary(context.Background(), request_models.ItineraryRequest{
		Destinations: []string{"Kandy"},
	})
	if !errors.Is(err, utils.ErrDatabaseError) {
		t.Errorf("err = %v, want ErrDatabaseError", err)
	}

	svc = NewItineraryService(
		&fakeDestinationRepo{destinations: []db_models.Destination{serviceDestination("Kandy", db_models.CategoryCultural, 7.29, 80.63)}},
		&fakeHotelRepo{err: boom},
		serviceEngine(),
	)
	_, err = svc.BuildItinerary(context.Background(), request_models.ItineraryRequest{
		Destinations: []string{"Kandy"},
	})
	if !errors.Is(err, utils.ErrDatabaseError) {
		t.Errorf("err = %v, want ErrDatabaseError", err)
	}
}
