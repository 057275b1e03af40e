package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tour categories
const (
	CategoryGoldenTriangle = "Golden Triangle"
	CategoryRajasthan      = "Rajasthan Tours"
	CategoryExtended       = "Extended Tours"
)

// Tour statuses
const (
	TourActive   = "active"
	TourInactive = "inactive"
	TourDraft    = "draft"
)

// Tour defaults
const (
	DefaultTourRating = 4.5
	DefaultTourStatus = TourActive
)

// TourCategories lists the categories in display order.
var TourCategories = []string{CategoryGoldenTriangle, CategoryRajasthan, CategoryExtended}

// TourStatuses is the closed set of tour statuses.
var TourStatuses = []string{TourActive, TourInactive, TourDraft}

// ItineraryDay is one day of a tour itinerary
type ItineraryDay struct {
	Day         int      `bson:"day" json:"day"`
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	Highlights  []string `bson:"highlights" json:"highlights"`
}

// Tour represents a sellable travel package
type Tour struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name          string             `bson:"name" json:"name"`
	Slug          string             `bson:"slug" json:"slug"`
	Description   string             `bson:"description" json:"description"`
	Overview      string             `bson:"overview" json:"overview"`
	Category      string             `bson:"category" json:"category"`
	Price         *float64           `bson:"price,omitempty" json:"price,omitempty"`
	OriginalPrice *float64           `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	Duration      string             `bson:"duration" json:"duration"`
	MaxGuests     int                `bson:"maxGuests" json:"maxGuests"`
	MinAge        int                `bson:"minAge" json:"minAge"`
	Rating        float64            `bson:"rating" json:"rating"`
	Reviews       int                `bson:"reviews" json:"reviews"`
	Highlights    []string           `bson:"highlights" json:"highlights"`
	Included      []string           `bson:"included" json:"included"`
	NotIncluded   []string           `bson:"notIncluded" json:"notIncluded"`
	Itinerary     []ItineraryDay     `bson:"itinerary" json:"itinerary"`
	Images        []string           `bson:"images" json:"images"`
	Destinations  []string           `bson:"destinations" json:"destinations"`
	Status        string             `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsPublic reports whether the tour may be shown to anonymous visitors.
func (t *Tour) IsPublic() bool {
	return t.Status == TourActive
}

// IsValidCategory reports whether c is a known tour category.
func IsValidCategory(c string) bool {
	return contains(TourCategories, c)
}

// IsValidTourStatus reports whether s is a known tour status.
func IsValidTourStatus(s string) bool {
	return contains(TourStatuses, s)
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
