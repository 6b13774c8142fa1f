package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hojattop/hojattop-api/schema"
)

const firestoreLogPrefix = "firestore"

type firestoreDB struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) Store {
	return &firestoreDB{client: client}
}

// translateFirestoreError maps gRPC status codes onto the store's error
// values. Firestore rejects a composite-index query with FailedPrecondition.
func translateFirestoreError(err error) error {
	if err == nil {
		return nil
	}

	switch status.Code(err) {
	case codes.FailedPrecondition:
		return fmt.Errorf("%w: %s", ErrIndexMissing, err.Error())
	case codes.NotFound:
		return ErrToiletNotFound
	}
	return err
}

func (f *firestoreDB) ListToilets(ctx context.Context) ([]schema.Toilet, error) {
	docs, err := f.client.Collection(schema.ToiletCollection).Documents(ctx).GetAll()
	if err != nil {
		log.WithField("prefix", firestoreLogPrefix).WithError(err).Error("list toilets")
		return nil, translateFirestoreError(err)
	}

	toilets := make([]schema.Toilet, 0, len(docs))
	for _, doc := range docs {
		var t schema.Toilet
		if err := doc.DataTo(&t); err != nil {
			log.WithField("prefix", firestoreLogPrefix).WithField("toilet ID", doc.Ref.ID).WithError(err).Warn("skip undecodable toilet")
			continue
		}
		t.ID = doc.Ref.ID
		toilets = append(toilets, t)
	}

	return toilets, nil
}

func (f *firestoreDB) GetToilet(ctx context.Context, id string) (*schema.Toilet, error) {
	doc, err := f.client.Collection(schema.ToiletCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, translateFirestoreError(err)
	}

	var t schema.Toilet
	if err := doc.DataTo(&t); err != nil {
		return nil, err
	}
	t.ID = doc.Ref.ID

	return &t, nil
}

// CreateToilet stores the toilet under its own id, or under a generated one
// when the id is empty.
func (f *firestoreDB) CreateToilet(ctx context.Context, toilet schema.Toilet) (string, error) {
	c := f.client.Collection(schema.ToiletCollection)

	if toilet.ID != "" {
		if _, err := c.Doc(toilet.ID).Set(ctx, toilet); err != nil {
			return "", translateFirestoreError(err)
		}
		return toilet.ID, nil
	}

	ref, _, err := c.Add(ctx, toilet)
	if err != nil {
		log.WithField("prefix", firestoreLogPrefix).WithError(err).Error("insert toilet")
		return "", translateFirestoreError(err)
	}
	return ref.ID, nil
}

func (f *firestoreDB) UpdateToiletRating(ctx context.Context, id string, rating float64, reviewCount int, lastUpdated int64) error {
	_, err := f.client.Collection(schema.ToiletCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "rating", Value: rating},
		{Path: "reviewCount", Value: reviewCount},
		{Path: "lastUpdated", Value: lastUpdated},
	})
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":    firestoreLogPrefix,
			"toilet ID": id,
			"error":     err,
		}).Error("update toilet rating")
		return translateFirestoreError(err)
	}
	return nil
}

func (f *firestoreDB) ListReviewsOrdered(ctx context.Context, toiletID string, limit int64) ([]schema.Review, error) {
	q := f.client.Collection(schema.ReviewCollection).
		Where("toiletId", "==", toiletID).
		OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		q = q.Limit(int(limit))
	}
	return f.queryReviews(ctx, q)
}

func (f *firestoreDB) ListReviews(ctx context.Context, toiletID string) ([]schema.Review, error) {
	return f.queryReviews(ctx, f.client.Collection(schema.ReviewCollection).Where("toiletId", "==", toiletID))
}

func (f *firestoreDB) queryReviews(ctx context.Context, q firestore.Query) ([]schema.Review, error) {
	docs, err := q.Documents(ctx).GetAll()
	if err != nil {
		log.WithField("prefix", firestoreLogPrefix).WithError(err).Error("query reviews")
		return nil, translateFirestoreError(err)
	}

	reviews := make([]schema.Review, 0, len(docs))
	for _, doc := range docs {
		var r schema.Review
		if err := doc.DataTo(&r); err != nil {
			log.WithField("prefix", firestoreLogPrefix).WithField("review ID", doc.Ref.ID).WithError(err).Warn("skip undecodable review")
			continue
		}
		r.ID = doc.Ref.ID
		reviews = append(reviews, r)
	}
	return reviews, nil
}

func (f *firestoreDB) CreateReview(ctx context.Context, review schema.Review) (string, error) {
	ref, _, err := f.client.Collection(schema.ReviewCollection).Add(ctx, review)
	if err != nil {
		log.WithField("prefix", firestoreLogPrefix).WithField("toilet ID", review.ToiletID).WithError(err).Error("insert review")
		return "", translateFirestoreError(err)
	}
	return ref.ID, nil
}
