package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hojattop/hojattop-api/schema"
)

// ListToilets scans the whole toilet collection
func (m *mongoDB) ListToilets(ctx context.Context) ([]schema.Toilet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ToiletCollection)

	cursor, err := c.Find(ctx, bson.M{})
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("list toilets")
		return nil, translateMongoError(err)
	}

	toilets := make([]schema.Toilet, 0)
	if err := cursor.All(ctx, &toilets); err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("decode toilets")
		return nil, err
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("list toilets gets %d records", len(toilets))

	return toilets, nil
}

// GetToilet finds a toilet by its id
func (m *mongoDB) GetToilet(ctx context.Context, id string) (*schema.Toilet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ToiletCollection)

	var toilet schema.Toilet
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&toilet); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrToiletNotFound
		}
		return nil, translateMongoError(err)
	}

	return &toilet, nil
}

// CreateToilet inserts a toilet. A hex object id is generated when the
// toilet has no id.
func (m *mongoDB) CreateToilet(ctx context.Context, toilet schema.Toilet) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ToiletCollection)

	if toilet.ID == "" {
		toilet.ID = primitive.NewObjectID().Hex()
	}

	r, err := c.InsertOne(ctx, toilet)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":    mongoLogPrefix,
			"toilet ID": toilet.ID,
			"error":     err,
		}).Error("insert toilet")
		return "", translateMongoError(err)
	}

	id, ok := r.InsertedID.(string)
	if !ok {
		return "", fmt.Errorf("incorrect inserted id")
	}
	return id, nil
}

// UpdateToiletRating overwrites the rating aggregates of a toilet
func (m *mongoDB) UpdateToiletRating(ctx context.Context, id string, rating float64, reviewCount int, lastUpdated int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ToiletCollection)

	query := bson.M{
		"_id": id,
	}
	update := bson.M{
		"$set": bson.M{
			"rating":       rating,
			"review_count": reviewCount,
			"last_updated": lastUpdated,
		},
	}

	result, err := c.UpdateOne(ctx, query, update)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":    mongoLogPrefix,
			"toilet ID": id,
			"error":     err,
		}).Error("update toilet rating")
		return translateMongoError(err)
	}

	if result.MatchedCount == 0 {
		log.WithFields(log.Fields{
			"prefix":    mongoLogPrefix,
			"toilet ID": id,
			"error":     ErrToiletNotFound.Error(),
		}).Error("update toilet rating")
		return ErrToiletNotFound
	}

	return nil
}
