package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact statuses
const (
	ContactNew      = "new"
	ContactRead     = "read"
	ContactReplied  = "replied"
	ContactResolved = "resolved"
)

// ContactStatuses is the closed set of contact statuses.
var ContactStatuses = []string{ContactNew, ContactRead, ContactReplied, ContactResolved}

// Contact is a message left through the public contact form
type Contact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Message   string             `bson:"message" json:"message"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsValidContactStatus reports whether s is a known contact status.
func IsValidContactStatus(s string) bool {
	return contains(ContactStatuses, s)
}
