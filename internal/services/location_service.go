package services

import (
	"context"
	"strings"

	"ridehail/internal/config"
	"ridehail/internal/domain/entities"
)

// gazetteer is the fixed reference list behind simulated location search.
// Data fixture, not user-editable; filtering preserves this order.
var gazetteer = []entities.Location{
	{Address: "Gulshan 1, Dhaka", Latitude: 23.7808, Longitude: 90.4152},
	{Address: "Dhanmondi 27, Dhaka", Latitude: 23.7461, Longitude: 90.3742},
	{Address: "Banani, Dhaka", Latitude: 23.7937, Longitude: 90.4066},
	{Address: "Uttara, Dhaka", Latitude: 23.8759, Longitude: 90.3795},
	{Address: "Mirpur 10, Dhaka", Latitude: 23.8069, Longitude: 90.3687},
	{Address: "Mohakhali, Dhaka", Latitude: 23.7808, Longitude: 90.4028},
	{Address: "Farmgate, Dhaka", Latitude: 23.7577, Longitude: 90.3897},
	{Address: "Motijheel, Dhaka", Latitude: 23.7334, Longitude: 90.4176},
	{Address: "Shahbag, Dhaka", Latitude: 23.7389, Longitude: 90.3952},
	{Address: "New Market, Dhaka", Latitude: 23.7345, Longitude: 90.3866},
}

// LocationSearchService simulates a geocoding API against the fixed
// gazetteer. Pure function of the query: no state, restartable, never errors
// on malformed input.
type LocationSearchService struct {
	latency config.LatencyConfig
	delay   Delay
}

func NewLocationSearchService(latency config.LatencyConfig, delay Delay) *LocationSearchService {
	if delay == nil {
		delay = Sleep
	}
	return &LocationSearchService{latency: latency, delay: delay}
}

// Search returns every gazetteer entry whose address contains the query,
// case-insensitively, in gazetteer order. Queries shorter than 2 characters
// resolve empty immediately, with no simulated latency.
func (s *LocationSearchService) Search(ctx context.Context, query string) []entities.Location {
	if len(query) < 2 {
		return []entities.Location{}
	}

	s.delay(s.latency.Search)

	needle := strings.ToLower(query)
	matches := make([]entities.Location, 0)
	for _, loc := range gazetteer {
		if strings.Contains(strings.ToLower(loc.Address), needle) {
			matches = append(matches, loc)
		}
	}
	return matches
}
