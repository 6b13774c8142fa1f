package schema

const (
	ReviewCollection = "reviews"
	UserCollection   = "users"
)

// FeatureMentions are what a reviewer observed on site. They are independent
// from the static Features of the toilet.
type FeatureMentions struct {
	Accessibility bool `json:"accessibility" bson:"accessibility" firestore:"accessibility"`
	BabyChanging  bool `json:"babyChanging" bson:"baby_changing" firestore:"babyChanging"`
	Ablution      bool `json:"ablution" bson:"ablution" firestore:"ablution"`
	IsPaid        bool `json:"isPaid" bson:"is_paid" firestore:"isPaid"`
}

// Review is a rating and comment left for one toilet. Reviews are immutable.
type Review struct {
	ID              string           `json:"id" bson:"_id,omitempty" firestore:"-"`
	ToiletID        string           `json:"toiletId" bson:"toilet_id" firestore:"toiletId"`
	UserID          string           `json:"userId" bson:"user_id" firestore:"userId"`
	UserName        string           `json:"userName" bson:"user_name" firestore:"userName"`
	Rating          float64          `json:"rating" bson:"rating" firestore:"rating"`
	Cleanliness     float64          `json:"cleanliness" bson:"cleanliness" firestore:"cleanliness"`
	Accessibility   float64          `json:"accessibility" bson:"accessibility" firestore:"accessibility"`
	Comment         string           `json:"comment" bson:"comment" firestore:"comment"`
	Photos          []string         `json:"photos" bson:"photos" firestore:"photos"`
	CreatedAt       int64            `json:"createdAt" bson:"created_at" firestore:"createdAt"`
	FeatureMentions *FeatureMentions `json:"featureMentions,omitempty" bson:"feature_mentions,omitempty" firestore:"featureMentions,omitempty"`
}

// ReviewDraft is the caller-supplied content of a new review. A zero
// Cleanliness or Accessibility means the sub-rating was not given.
type ReviewDraft struct {
	ToiletID        string           `json:"toiletId"`
	UserID          string           `json:"userId"`
	UserName        string           `json:"userName"`
	Rating          float64          `json:"rating"`
	Cleanliness     float64          `json:"cleanliness"`
	Accessibility   float64          `json:"accessibility"`
	Comment         string           `json:"comment"`
	FeatureMentions *FeatureMentions `json:"featureMentions,omitempty"`
}

// ReviewStatistics summarises the reviews of one toilet.
type ReviewStatistics struct {
	AverageRating        float64     `json:"averageRating"`
	AverageCleanliness   float64     `json:"averageCleanliness"`
	AverageAccessibility float64     `json:"averageAccessibility"`
	TotalReviews         int         `json:"totalReviews"`
	RatingDistribution   map[int]int `json:"ratingDistribution"`
}

// FeatureCounts tallies feature mentions across the reviews of one toilet.
// Paid and Free only count reviews that carry feature mentions.
type FeatureCounts struct {
	Accessibility int `json:"accessibility"`
	BabyChanging  int `json:"babyChanging"`
	Ablution      int `json:"ablution"`
	Paid          int `json:"paid"`
	Free          int `json:"free"`
}

// ValidationError is a single violated rule of a review draft.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationResult struct {
	IsValid bool              `json:"isValid"`
	Errors  []ValidationError `json:"errors"`
}
