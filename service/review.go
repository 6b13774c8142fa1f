package service

import (
	"context"
	"errors"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/hojattop/hojattop-api/cache"
	"github.com/hojattop/hojattop-api/consts"
	"github.com/hojattop/hojattop-api/schema"
	"github.com/hojattop/hojattop-api/score"
	"github.com/hojattop/hojattop-api/store"
	"github.com/hojattop/hojattop-api/utils"
)

const anonymousUserName = "Anonymous"

type ReviewResult struct {
	Reviews []schema.Review `json:"reviews"`
	Source  schema.Source   `json:"source"`
}

// AddResult reports a review submission. Errors holds the violated rules
// when the draft was rejected by validation.
type AddResult struct {
	Success bool                     `json:"success"`
	ID      string                   `json:"id,omitempty"`
	Errors  []schema.ValidationError `json:"errors,omitempty"`
}

type ReviewService struct {
	store   store.Review
	cache   *cache.ReviewCache
	toilets *ToiletService
	now     func() time.Time
}

func NewReviewService(s store.Review, c *cache.ReviewCache, toilets *ToiletService) *ReviewService {
	return &ReviewService{
		store:   s,
		cache:   c,
		toilets: toilets,
		now:     time.Now,
	}
}

func sortNewestFirst(reviews []schema.Review) {
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt > reviews[j].CreatedAt
	})
}

// queryReviews asks for the ordered list first and falls back to the
// unordered one when the backend lacks the index for it.
func (r *ReviewService) queryReviews(ctx context.Context, toiletID string) ([]schema.Review, error) {
	reviews, err := r.store.ListReviewsOrdered(ctx, toiletID, 0)
	if err == nil {
		return reviews, nil
	}
	if !errors.Is(err, store.ErrIndexMissing) {
		return nil, err
	}

	log.WithField("prefix", logPrefix).WithField("toilet ID", toiletID).WithError(err).Warn("ordered review query unavailable, query unordered")
	return r.store.ListReviews(ctx, toiletID)
}

// cachedReviews returns the cached reviews of a toilet newest first. Appended
// reviews sit at the end of the cached list.
func (r *ReviewService) cachedReviews(ctx context.Context, toiletID string) []schema.Review {
	reviews := r.cache.ForToilet(ctx, toiletID)
	sortNewestFirst(reviews)
	return reviews
}

// FetchForToilet returns the reviews of a toilet newest first. Cached
// reviews are served when there are any, unless forceRefresh is set. A
// network failure falls back to the cache, or to an empty list with source
// none. It never fails.
func (r *ReviewService) FetchForToilet(ctx context.Context, toiletID string, forceRefresh bool) ReviewResult {
	if !forceRefresh {
		if cached := r.cachedReviews(ctx, toiletID); len(cached) > 0 {
			return ReviewResult{Reviews: cached, Source: schema.SourceCache}
		}
	}

	reviews, err := r.queryReviews(ctx, toiletID)
	if err != nil {
		log.WithField("prefix", logPrefix).WithField("toilet ID", toiletID).WithError(err).Warn("fetch reviews from network")
		if cached := r.cachedReviews(ctx, toiletID); len(cached) > 0 {
			return ReviewResult{Reviews: cached, Source: schema.SourceCache}
		}
		return ReviewResult{Reviews: []schema.Review{}, Source: schema.SourceNone}
	}

	if reviews == nil {
		reviews = []schema.Review{}
	}
	sortNewestFirst(reviews)
	r.cache.ReplaceForToilet(ctx, toiletID, reviews)

	return ReviewResult{Reviews: reviews, Source: schema.SourceNetwork}
}

// Add validates and stores a review, then recalculates the toilet rating.
// A rating recalculation failure is logged and does not fail the submission
// since the review itself is already stored.
func (r *ReviewService) Add(ctx context.Context, draft schema.ReviewDraft) AddResult {
	if v := r.Validate(draft); !v.IsValid {
		return AddResult{Errors: v.Errors}
	}

	review := schema.Review{
		ToiletID:        draft.ToiletID,
		UserID:          draft.UserID,
		UserName:        draft.UserName,
		Rating:          draft.Rating,
		Cleanliness:     draft.Cleanliness,
		Accessibility:   draft.Accessibility,
		Comment:         draft.Comment,
		Photos:          []string{},
		CreatedAt:       epochMillis(r.now()),
		FeatureMentions: draft.FeatureMentions,
	}
	if review.UserID == "" {
		review.UserID = "anon-" + uuid.New().String()
		if review.UserName == "" {
			review.UserName = anonymousUserName
		}
	}

	id, err := r.store.CreateReview(ctx, review)
	if err != nil {
		log.WithField("prefix", logPrefix).WithField("toilet ID", review.ToiletID).WithError(err).Error("add review")
		return AddResult{}
	}
	review.ID = id

	r.cache.Append(ctx, review)

	if err := r.RecalculateRating(ctx, review.ToiletID); err != nil {
		log.WithField("prefix", logPrefix).WithField("toilet ID", review.ToiletID).WithError(err).Error("recalculate rating")
	}

	return AddResult{Success: true, ID: id}
}

// RecalculateRating refetches the reviews of a toilet and records their
// mean rating. The stored aggregate is kept when there are no reviews, and
// when the refetch could only be served from the cache, which may hold a
// subset of the reviews.
func (r *ReviewService) RecalculateRating(ctx context.Context, toiletID string) error {
	result := r.FetchForToilet(ctx, toiletID, true)
	if result.Source != schema.SourceNetwork {
		return ErrReviewsUnavailable
	}
	if len(result.Reviews) == 0 {
		return nil
	}

	average, count := score.AverageRating(result.Reviews)
	return r.toilets.RecordRating(ctx, toiletID, average, count)
}

func (r *ReviewService) FeatureCounts(ctx context.Context, toiletID string) schema.FeatureCounts {
	return score.FeatureCounts(r.FetchForToilet(ctx, toiletID, false).Reviews)
}

func (r *ReviewService) Statistics(ctx context.Context, toiletID string) schema.ReviewStatistics {
	return score.Statistics(r.FetchForToilet(ctx, toiletID, false).Reviews)
}

// Validate checks a draft with messages in the default language.
func (r *ReviewService) Validate(draft schema.ReviewDraft) schema.ValidationResult {
	return ValidateReview(draft, utils.DefaultLanguage)
}

func inRatingRange(v float64) bool {
	return v >= consts.MinRating && v <= consts.MaxRating
}

// ValidateReview collects every rule the draft violates. A zero
// cleanliness or accessibility rating means it was not given.
func ValidateReview(draft schema.ReviewDraft, lang string) schema.ValidationResult {
	errs := make([]schema.ValidationError, 0)
	add := func(field, messageID string, data map[string]interface{}) {
		errs = append(errs, schema.ValidationError{
			Field:   field,
			Message: utils.Translate(lang, messageID, data),
		})
	}

	if draft.ToiletID == "" {
		add("toiletId", "validation.toilet_required", nil)
	}
	if !inRatingRange(draft.Rating) {
		add("rating", "validation.rating_range", nil)
	}
	if draft.Cleanliness != 0 && !inRatingRange(draft.Cleanliness) {
		add("cleanliness", "validation.cleanliness_range", nil)
	}
	if draft.Accessibility != 0 && !inRatingRange(draft.Accessibility) {
		add("accessibility", "validation.accessibility_range", nil)
	}
	if utf8.RuneCountInString(draft.Comment) > consts.MaxCommentLength {
		add("comment", "validation.comment_length", map[string]interface{}{"Max": consts.MaxCommentLength})
	}

	return schema.ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}
