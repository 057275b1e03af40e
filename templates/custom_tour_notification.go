package templates

import (
	"tourism-service/internal/domain/entity"
)

// CustomTourEmails composes the mails sent after a custom tour request is stored
func (c *Composer) CustomTourEmails(req *entity.CustomizeTourRequest) ([]*entity.Email, error) {
	var emails []*entity.Email

	if c.adminEmail != "" {
		admin, err := c.compose(entity.KindRequestAdmin, c.adminEmail, req.Email,
			"New custom tour request from "+req.Name, "custom_tour_admin", req)
		if err != nil {
			return nil, err
		}
		emails = append(emails, admin)
	}

	customer, err := c.compose(entity.KindRequestCustomer, req.Email, c.adminEmail,
		"We received your custom tour request", "custom_tour_customer", req)
	if err != nil {
		return nil, err
	}

	return append(emails, customer), nil
}
