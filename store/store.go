//go:generate mockgen -destination=mocks/store.go -package=mocks github.com/hojattop/hojattop-api/store Store

package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hojattop/hojattop-api/schema"
)

const (
	defaultTimeout = 5 * time.Second
	mongoLogPrefix = "mongo"
)

var (
	ErrToiletNotFound = fmt.Errorf("toilet not found")
	// ErrIndexMissing is returned by ordered queries the backend cannot serve
	// without an index. Callers may retry the query unordered.
	ErrIndexMissing = fmt.Errorf("index missing for ordered query")
)

type Toilet interface {
	ListToilets(ctx context.Context) ([]schema.Toilet, error)
	GetToilet(ctx context.Context, id string) (*schema.Toilet, error)
	CreateToilet(ctx context.Context, toilet schema.Toilet) (string, error)
	UpdateToiletRating(ctx context.Context, id string, rating float64, reviewCount int, lastUpdated int64) error
}

type Review interface {
	// ListReviewsOrdered returns the reviews of a toilet newest first. A
	// positive limit caps the result.
	ListReviewsOrdered(ctx context.Context, toiletID string, limit int64) ([]schema.Review, error)
	// ListReviews returns the reviews of a toilet in no particular order.
	ListReviews(ctx context.Context, toiletID string) ([]schema.Review, error)
	CreateReview(ctx context.Context, review schema.Review) (string, error)
}

// Store is the remote document database.
type Store interface {
	Toilet
	Review
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

func NewMongoStore(client *mongo.Client, database string) Store {
	return &mongoDB{
		client:   client,
		database: database,
	}
}
