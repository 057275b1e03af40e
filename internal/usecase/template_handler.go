package usecase

import (
	"tourism-service/internal/domain/entity"
)

// ContactComposer renders the emails sent for a stored contact message
type ContactComposer interface {
	ContactEmails(contact *entity.Contact) ([]*entity.Email, error)
}

// CustomTourComposer renders the emails sent for a stored custom tour request
type CustomTourComposer interface {
	CustomTourEmails(req *entity.CustomizeTourRequest) ([]*entity.Email, error)
}
