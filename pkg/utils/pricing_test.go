package utils

import (
	"testing"

	"ridehail/internal/domain/entities"
)

func TestEstimateFare(t *testing.T) {
	tests := []struct {
		name       string
		distanceKm float64
		class      entities.VehicleClass
		want       int
	}{
		{"bike base only", 0, entities.VehicleBike, 50},
		{"car base only", 0, entities.VehicleCar, 100},
		{"premium base only", 0, entities.VehiclePremium, 200},
		{"car 10km", 10, entities.VehicleCar, 350},
		{"bike 5.2km", 5.2, entities.VehicleBike, 128},
		{"premium 4.7km", 4.7, entities.VehiclePremium, 388},
		{"rounding up", 0.5, entities.VehicleBike, 58},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EstimateFare(tt.distanceKm, tt.class)
			if err != nil {
				t.Fatalf("EstimateFare failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("EstimateFare(%v, %s) = %d, want %d", tt.distanceKm, tt.class, got, tt.want)
			}
		})
	}
}

func TestEstimateFareClassOrdering(t *testing.T) {
	for _, d := range []float64{0.1, 1, 4.7, 10, 25.3} {
		bike, _ := EstimateFare(d, entities.VehicleBike)
		car, _ := EstimateFare(d, entities.VehicleCar)
		premium, _ := EstimateFare(d, entities.VehiclePremium)

		if !(premium >= car && car >= bike) {
			t.Errorf("class ordering violated at %v km: bike=%d car=%d premium=%d", d, bike, car, premium)
		}
	}
}

func TestEstimateFareMonotonic(t *testing.T) {
	for _, class := range []entities.VehicleClass{entities.VehicleBike, entities.VehicleCar, entities.VehiclePremium} {
		prev := -1
		for d := 0.0; d <= 20; d += 0.3 {
			fare, err := EstimateFare(d, class)
			if err != nil {
				t.Fatalf("EstimateFare failed: %v", err)
			}
			if fare < prev {
				t.Fatalf("fare decreased for %s at %v km: %d < %d", class, d, fare, prev)
			}
			prev = fare
		}
	}
}

func TestEstimateFareUnknownClass(t *testing.T) {
	if _, err := EstimateFare(5, "rickshaw"); err != ErrUnknownVehicleClass {
		t.Errorf("expected ErrUnknownVehicleClass, got %v", err)
	}
}

func TestGenerateRideIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateRideID()
		if seen[id] {
			t.Fatalf("duplicate ride id %s", id)
		}
		seen[id] = true
	}
}
