package templates

import (
	"bytes"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"tourism-service/internal/domain/entity"
)

// Composer renders the admin notification and customer acknowledgment
// emails for public submissions
type Composer struct {
	adminEmail string
	siteName   string
}

// NewComposer creates a composer. An empty adminEmail disables admin notifications.
func NewComposer(adminEmail, siteName string) *Composer {
	return &Composer{
		adminEmail: adminEmail,
		siteName:   siteName,
	}
}

type page struct {
	SiteName string
	Data     interface{}
}

// render executes the named html and text templates against data
func render(html *htmltemplate.Template, text *texttemplate.Template, name string, data page) (string, string, error) {
	var h, t bytes.Buffer
	if err := html.ExecuteTemplate(&h, name, data); err != nil {
		return "", "", err
	}
	if err := text.ExecuteTemplate(&t, name, data); err != nil {
		return "", "", err
	}
	return h.String(), t.String(), nil
}

func (c *Composer) compose(kind, to, replyTo, subject, name string, data interface{}) (*entity.Email, error) {
	html, text, err := render(htmlTemplates, textTemplates, name, page{SiteName: c.siteName, Data: data})
	if err != nil {
		return nil, err
	}

	return &entity.Email{
		Kind:     kind,
		To:       to,
		ReplyTo:  replyTo,
		Subject:  subject,
		HTMLBody: html,
		TextBody: text,
	}, nil
}

var funcs = map[string]interface{}{
	"join": strings.Join,
	"date": func(v interface{ Format(string) string }) string { return v.Format("January 2, 2006") },
}

var htmlTemplates = htmltemplate.Must(htmltemplate.New("").Funcs(funcs).Parse(htmlSources))

var textTemplates = texttemplate.Must(texttemplate.New("").Funcs(funcs).Parse(textSources))
