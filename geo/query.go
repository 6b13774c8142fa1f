package geo

import (
	"context"
	"fmt"

	"github.com/hojattop/hojattop-api/external/nominatim"
	"github.com/hojattop/hojattop-api/schema"
)

var (
	ErrLocationNotFound = fmt.Errorf("location is not found")
)

// LocationSearcher turns a free-text address into a coordinate.
type LocationSearcher interface {
	LookupCoordinate(ctx context.Context, query string) (schema.Location, error)
}

type NominatimSearcher struct {
	client *nominatim.NominatimClient
}

// NewNominatimSearcher returns a searcher restricted to Uzbekistan.
func NewNominatimSearcher(endpoint string) *NominatimSearcher {
	return &NominatimSearcher{
		client: nominatim.New(endpoint, nominatim.WithCountryCodes("uz")),
	}
}

func (n *NominatimSearcher) LookupCoordinate(ctx context.Context, query string) (schema.Location, error) {
	results, err := n.client.Query(ctx, query)
	if err != nil {
		return schema.Location{}, err
	}

	if len(results) == 0 {
		return schema.Location{}, ErrLocationNotFound
	}

	return schema.Location{
		Latitude:  results[0].Latitude,
		Longitude: results[0].Longitude,
	}, nil
}
