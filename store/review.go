package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hojattop/hojattop-api/schema"
)

func (m *mongoDB) ListReviewsOrdered(ctx context.Context, toiletID string, limit int64) ([]schema.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return m.findReviews(ctx, toiletID, opts)
}

func (m *mongoDB) ListReviews(ctx context.Context, toiletID string) ([]schema.Review, error) {
	return m.findReviews(ctx, toiletID, options.Find())
}

func (m *mongoDB) findReviews(ctx context.Context, toiletID string, opts *options.FindOptions) ([]schema.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReviewCollection)

	cursor, err := c.Find(ctx, bson.M{"toilet_id": toiletID}, opts)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).WithField("toilet ID", toiletID).WithError(err).Error("query reviews")
		return nil, translateMongoError(err)
	}

	reviews := make([]schema.Review, 0)
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, translateMongoError(err)
	}

	return reviews, nil
}

func (m *mongoDB) CreateReview(ctx context.Context, review schema.Review) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReviewCollection)

	if review.ID == "" {
		review.ID = primitive.NewObjectID().Hex()
	}

	r, err := c.InsertOne(ctx, review)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).WithField("toilet ID", review.ToiletID).WithError(err).Error("insert review")
		return "", translateMongoError(err)
	}

	id, ok := r.InsertedID.(string)
	if !ok {
		return "", fmt.Errorf("incorrect inserted id")
	}
	return id, nil
}
