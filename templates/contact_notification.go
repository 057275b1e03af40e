package templates

import (
	"tourism-service/internal/domain/entity"
)

// ContactEmails composes the mails sent after a contact message is stored
func (c *Composer) ContactEmails(contact *entity.Contact) ([]*entity.Email, error) {
	var emails []*entity.Email

	if c.adminEmail != "" {
		admin, err := c.compose(entity.KindContactAdmin, c.adminEmail, contact.Email,
			"New contact message from "+contact.Name, "contact_admin", contact)
		if err != nil {
			return nil, err
		}
		emails = append(emails, admin)
	}

	customer, err := c.compose(entity.KindContactCustomer, contact.Email, c.adminEmail,
		"Thank you for contacting "+c.siteName, "contact_customer", contact)
	if err != nil {
		return nil, err
	}

	return append(emails, customer), nil
}
