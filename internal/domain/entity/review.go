package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review statuses
const (
	ReviewPending  = "pending"
	ReviewApproved = "approved"
	ReviewRejected = "rejected"
)

// ReviewStatuses is the closed set of review statuses.
var ReviewStatuses = []string{ReviewPending, ReviewApproved, ReviewRejected}

// Review is a customer testimonial gated behind admin approval
type Review struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	Rating      int                `bson:"rating" json:"rating"`
	Description string             `bson:"description" json:"description"`
	Status      string             `bson:"status" json:"status"`
	IsApproved  bool               `bson:"isApproved" json:"isApproved"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SetStatus moves the review to status, keeping IsApproved in lockstep.
func (r *Review) SetStatus(status string) {
	r.Status = status
	r.IsApproved = status == ReviewApproved
}

// IsValidReviewStatus reports whether s is a known review status.
func IsValidReviewStatus(s string) bool {
	return contains(ReviewStatuses, s)
}
