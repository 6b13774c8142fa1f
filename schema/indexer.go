package schema

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDBIndexer creates the indexes the store relies on.
type MongoDBIndexer struct {
	connURI  string
	database string
}

func NewMongoDBIndexer(connURI, database string) *MongoDBIndexer {
	return &MongoDBIndexer{
		connURI:  connURI,
		database: database,
	}
}

// IndexAll creates every index. The ordered review query falls back to an
// unordered one when the review index is absent, so a failure here is logged
// rather than fatal.
func (m *MongoDBIndexer) IndexAll() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.connURI))
	if err != nil {
		log.WithField("prefix", "indexer").WithError(err).Error("connect mongo")
		return
	}
	defer client.Disconnect(context.Background())

	if err := m.IndexReviewCollection(ctx, client); err != nil {
		log.WithField("prefix", "indexer").WithError(err).Error("index review collection")
	}
}

func (m *MongoDBIndexer) IndexReviewCollection(ctx context.Context, client *mongo.Client) error {
	c := client.Database(m.database).Collection(ReviewCollection)
	_, err := c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "toilet_id", Value: 1},
			{Key: "created_at", Value: -1},
		},
	})
	return err
}
