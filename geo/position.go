//go:generate mockgen -destination=mocks/position.go -package=mocks github.com/hojattop/hojattop-api/geo PositionProvider,LocationSearcher

package geo

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/hojattop/hojattop-api/consts"
	"github.com/hojattop/hojattop-api/schema"
)

var (
	ErrPermissionDenied   = fmt.Errorf("location permission denied")
	ErrServicesDisabled   = fmt.Errorf("location services disabled")
	ErrNoPositionProvider = fmt.Errorf("position provider is not configured")
)

// TashkentCenter is the origin used when the user's position is unknown.
var TashkentCenter = schema.Location{
	Latitude:  consts.TashkentLatitude,
	Longitude: consts.TashkentLongitude,
}

// WatchOptions controls how often a position watch reports. A new position is
// emitted once the device moved DistanceFilter meters or Interval elapsed.
type WatchOptions struct {
	DistanceFilter float64
	Interval       time.Duration
}

// PositionProvider is the device geolocation service.
type PositionProvider interface {
	PermissionGranted(ctx context.Context) (bool, error)
	ServicesEnabled(ctx context.Context) (bool, error)
	CurrentPosition(ctx context.Context) (schema.Location, error)
	Watch(ctx context.Context, opts WatchOptions) (<-chan schema.Location, error)
}

// ResolveOrigin asks the provider for the current position. Any failure along
// the way yields fallback together with the reason.
func ResolveOrigin(ctx context.Context, provider PositionProvider, fallback schema.Location) (schema.Location, error) {
	if provider == nil {
		return fallback, ErrNoPositionProvider
	}

	enabled, err := provider.ServicesEnabled(ctx)
	if err != nil {
		return fallback, err
	}
	if !enabled {
		return fallback, ErrServicesDisabled
	}

	granted, err := provider.PermissionGranted(ctx)
	if err != nil {
		return fallback, err
	}
	if !granted {
		return fallback, ErrPermissionDenied
	}

	loc, err := provider.CurrentPosition(ctx)
	if err != nil {
		log.WithField("prefix", "geo").WithError(err).Warn("fail to get current position")
		return fallback, err
	}

	return loc, nil
}

// FixedPosition is a provider that always reports the same location. It backs
// servers and tools that have no device to ask.
type FixedPosition struct {
	Location schema.Location
}

func NewFixedPosition(loc schema.Location) *FixedPosition {
	return &FixedPosition{Location: loc}
}

func (f *FixedPosition) PermissionGranted(context.Context) (bool, error) {
	return true, nil
}

func (f *FixedPosition) ServicesEnabled(context.Context) (bool, error) {
	return true, nil
}

func (f *FixedPosition) CurrentPosition(context.Context) (schema.Location, error) {
	return f.Location, nil
}

// Watch reports the fixed location once and closes the channel when ctx is done.
func (f *FixedPosition) Watch(ctx context.Context, _ WatchOptions) (<-chan schema.Location, error) {
	ch := make(chan schema.Location, 1)
	ch <- f.Location
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}
