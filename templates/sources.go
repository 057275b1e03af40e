package templates

const htmlSources = `
{{define "contact_admin"}}<h2>New contact message</h2>
<p><strong>Name:</strong> {{.Data.Name}}</p>
<p><strong>Email:</strong> {{.Data.Email}}</p>
{{if .Data.Phone}}<p><strong>Phone:</strong> {{.Data.Phone}}</p>{{end}}
<p><strong>Message:</strong></p>
<p>{{.Data.Message}}</p>{{end}}

{{define "contact_customer"}}<p>Dear {{.Data.Name}},</p>
<p>Thank you for reaching out to {{.SiteName}}. We have received your message and will get back to you within 24 hours.</p>
<blockquote>{{.Data.Message}}</blockquote>
<p>Warm regards,<br>{{.SiteName}}</p>{{end}}

{{define "custom_tour_admin"}}<h2>New custom tour request</h2>
<p><strong>Name:</strong> {{.Data.Name}}</p>
<p><strong>Email:</strong> {{.Data.Email}}</p>
<p><strong>Phone:</strong> {{.Data.CountryCode}} {{.Data.Phone}}</p>
<p><strong>Start date:</strong> {{date .Data.StartDate}}</p>
<p><strong>Duration:</strong> {{.Data.Duration}} days</p>
<p><strong>Travelers:</strong> {{.Data.NumberOfTravelers}}</p>
<p><strong>Accommodation:</strong> {{.Data.AccommodationType}}</p>
<p><strong>Destinations:</strong> {{join .Data.Destinations ", "}}</p>
<p><strong>Budget:</strong> {{.Data.BudgetRange}}</p>
{{if .Data.Comments}}<p><strong>Comments:</strong> {{.Data.Comments}}</p>{{end}}{{end}}

{{define "custom_tour_customer"}}<p>Dear {{.Data.Name}},</p>
<p>Thank you for planning your trip with {{.SiteName}}. Our travel experts are reviewing your request for a {{.Data.Duration}}-day tour covering {{join .Data.Destinations ", "}} starting {{date .Data.StartDate}}, and will send you a personalised quote shortly.</p>
<p>Warm regards,<br>{{.SiteName}}</p>{{end}}
`

const textSources = `
{{define "contact_admin"}}New contact message

Name: {{.Data.Name}}
Email: {{.Data.Email}}
{{if .Data.Phone}}Phone: {{.Data.Phone}}
{{end}}
{{.Data.Message}}
{{end}}

{{define "contact_customer"}}Dear {{.Data.Name}},

Thank you for reaching out to {{.SiteName}}. We have received your message and will get back to you within 24 hours.

Warm regards,
{{.SiteName}}
{{end}}

{{define "custom_tour_admin"}}New custom tour request

Name: {{.Data.Name}}
Email: {{.Data.Email}}
Phone: {{.Data.CountryCode}} {{.Data.Phone}}
Start date: {{date .Data.StartDate}}
Duration: {{.Data.Duration}} days
Travelers: {{.Data.NumberOfTravelers}}
Accommodation: {{.Data.AccommodationType}}
Destinations: {{join .Data.Destinations ", "}}
Budget: {{.Data.BudgetRange}}
{{if .Data.Comments}}Comments: {{.Data.Comments}}
{{end}}{{end}}

{{define "custom_tour_customer"}}Dear {{.Data.Name}},

Thank you for planning your trip with {{.SiteName}}. Our travel experts are reviewing your request and will send you a personalised quote shortly.

Warm regards,
{{.SiteName}}
{{end}}
`
