package schema

const (
	ToiletCollection = "toilets"
)

// Features are the static amenity flags of a toilet.
type Features struct {
	IsAccessible    bool `json:"isAccessible" bson:"is_accessible" firestore:"isAccessible"`
	HasBabyChanging bool `json:"hasBabyChanging" bson:"has_baby_changing" firestore:"hasBabyChanging"`
	HasAblution     bool `json:"hasAblution" bson:"has_ablution" firestore:"hasAblution"`
	IsFree          bool `json:"isFree" bson:"is_free" firestore:"isFree"`
}

// Toilet is a public toilet facility. Rating and ReviewCount are aggregates
// derived from the reviews of the toilet.
type Toilet struct {
	ID          string    `json:"id" bson:"_id,omitempty" firestore:"-"`
	Name        string    `json:"name" bson:"name" firestore:"name"`
	Address     string    `json:"address" bson:"address" firestore:"address"`
	Latitude    float64   `json:"latitude" bson:"latitude" firestore:"latitude"`
	Longitude   float64   `json:"longitude" bson:"longitude" firestore:"longitude"`
	Rating      float64   `json:"rating" bson:"rating" firestore:"rating"`
	ReviewCount int       `json:"reviewCount" bson:"review_count" firestore:"reviewCount"`
	Features    *Features `json:"features,omitempty" bson:"features,omitempty" firestore:"features,omitempty"`
	OpenHours   string    `json:"openHours" bson:"open_hours" firestore:"openHours"`
	Photos      []string  `json:"photos" bson:"photos" firestore:"photos"`
	LastUpdated int64     `json:"lastUpdated" bson:"last_updated" firestore:"lastUpdated"`
}

// Coordinate returns the position of the toilet.
func (t Toilet) Coordinate() Location {
	return Location{Latitude: t.Latitude, Longitude: t.Longitude}
}

// ToiletWithDistance is a toilet with its distance in meters from a query origin.
// It is computed per query and never persisted.
type ToiletWithDistance struct {
	Toilet   `bson:",inline"`
	Distance float64 `json:"distance"`
}

// ToiletFilters narrows a toilet list. Boolean filters only apply when true.
// MinRating and MaxDistance (km) apply when positive.
type ToiletFilters struct {
	IsAccessible    bool    `json:"isAccessible" form:"accessible"`
	HasBabyChanging bool    `json:"hasBabyChanging" form:"baby_changing"`
	HasAblution     bool    `json:"hasAblution" form:"ablution"`
	IsFree          bool    `json:"isFree" form:"free"`
	MinRating       float64 `json:"minRating" form:"min_rating"`
	MaxDistance     float64 `json:"maxDistance" form:"max_distance"`
}
