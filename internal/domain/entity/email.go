package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Email delivery status
const (
	StatusSent   = "SENT"
	StatusFailed = "FAILED"
)

// Email kinds
const (
	KindContactAdmin    = "contact_admin"
	KindContactCustomer = "contact_customer"
	KindRequestAdmin    = "custom_tour_admin"
	KindRequestCustomer = "custom_tour_customer"
)

// Email is an outbound message composed for the mail transport
type Email struct {
	Kind     string
	To       string
	ReplyTo  string
	Subject  string
	HTMLBody string
	TextBody string
}

// EmailLog records the outcome of one dispatch attempt
type EmailLog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Kind        string             `bson:"kind" json:"kind"`
	To          string             `bson:"to" json:"to"`
	Subject     string             `bson:"subject" json:"subject"`
	RelatedID   string             `bson:"relatedId" json:"relatedId"`
	Status      string             `bson:"status" json:"status"`
	MessageID   string             `bson:"messageId,omitempty" json:"messageId,omitempty"`
	ErrorDetail string             `bson:"errorDetail,omitempty" json:"errorDetail,omitempty"`
	SentAt      time.Time          `bson:"sentAt" json:"sentAt"`
}
