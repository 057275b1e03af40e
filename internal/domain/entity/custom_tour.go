package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Accommodation types
const (
	AccommodationLuxury  = "Luxury"
	AccommodationComfort = "Comfort"
)

// Custom tour request statuses
const (
	RequestNew        = "new"
	RequestInProgress = "in-progress"
	RequestQuoted     = "quoted"
	RequestBooked     = "booked"
	RequestCompleted  = "completed"
	RequestCancelled  = "cancelled"
)

// DefaultCountryCode is used when the form leaves the dialling code empty.
const DefaultCountryCode = "+1"

// AccommodationTypes is the closed set of accommodation types.
var AccommodationTypes = []string{AccommodationLuxury, AccommodationComfort}

// RequestStatuses is the closed set of custom tour request statuses.
var RequestStatuses = []string{RequestNew, RequestInProgress, RequestQuoted, RequestBooked, RequestCompleted, RequestCancelled}

// CustomizeTourRequest is a lead describing a trip the customer wants built
type CustomizeTourRequest struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	StartDate         time.Time          `bson:"startDate" json:"startDate"`
	Duration          int                `bson:"duration" json:"duration"`
	NumberOfTravelers int                `bson:"numberOfTravelers" json:"numberOfTravelers"`
	AccommodationType string             `bson:"accommodationType" json:"accommodationType"`
	Destinations      []string           `bson:"destinations" json:"destinations"`
	BudgetRange       string             `bson:"budgetRange" json:"budgetRange"`
	Comments          string             `bson:"comments,omitempty" json:"comments,omitempty"`
	Name              string             `bson:"name" json:"name"`
	Email             string             `bson:"email" json:"email"`
	Phone             string             `bson:"phone" json:"phone"`
	CountryCode       string             `bson:"countryCode" json:"countryCode"`
	Status            string             `bson:"status" json:"status"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsValidAccommodation reports whether a is a known accommodation type.
func IsValidAccommodation(a string) bool {
	return contains(AccommodationTypes, a)
}

// IsValidRequestStatus reports whether s is a known request status.
func IsValidRequestStatus(s string) bool {
	return contains(RequestStatuses, s)
}
