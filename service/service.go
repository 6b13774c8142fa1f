package service

import (
	"fmt"
	"time"
)

const logPrefix = "service"

var (
	// ErrDataUnavailable is returned when the remote store failed and no
	// cached copy exists.
	ErrDataUnavailable = fmt.Errorf("toilet data unavailable")
	ErrToiletNotFound  = fmt.Errorf("toilet not found")

	// ErrReviewsUnavailable is returned when the reviews of a toilet could
	// not be refetched from the remote store.
	ErrReviewsUnavailable = fmt.Errorf("reviews unavailable")
)

func epochMillis(t time.Time) int64 {
	return t.UnixNano() / int64(time.Millisecond)
}
