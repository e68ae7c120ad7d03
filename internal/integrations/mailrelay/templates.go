package mailrelay

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/travelops/TLO-LeadService/pkg/ptr"
)

// Шаблоны писем. Релей принимает плоский текст в поле message,
// поэтому тела собираются text/template'ом.
var (
	bookingAdminTmpl = template.Must(template.New("booking_admin").Parse(
		`New consultation request from the website.

Name:    {{.Name}}
Email:   {{.Email}}
Phone:   {{.Phone}}
Company: {{.Company}}

Requested slot: {{.DateKey}} at {{.TimeLabel}}

Message:
{{.Message}}
`))

	bookingUserTmpl = template.Must(template.New("booking_user").Parse(
		`Hi {{.FirstName}},

Thank you for booking a consultation call with us.

Your requested slot: {{.DateKey}} at {{.TimeLabel}}.

We will confirm the appointment shortly. If the time no longer works
for you, just reply to this email.

Best regards,
{{.TeamName}}
`))

	contactAdminTmpl = template.Must(template.New("contact_admin").Parse(
		`New contact form message.

Name:    {{.Name}}
Email:   {{.Email}}
Subject: {{.Subject}}

Message:
{{.Message}}
`))

	contactUserTmpl = template.Must(template.New("contact_user").Parse(
		`Hi {{.FirstName}},

Thanks for reaching out. We received your message and will get back to
you within one business day.

Best regards,
{{.TeamName}}
`))

	newsletterAdminTmpl = template.Must(template.New("newsletter_admin").Parse(
		`New newsletter subscription: {{.Email}}
`))

	newsletterUserTmpl = template.Must(template.New("newsletter_user").Parse(
		`Hi,

You are now subscribed to our travel industry newsletter. Expect
product updates and industry insights about once a month.

Best regards,
{{.TeamName}}
`))
)

func renderTemplate(tmpl *template.Template, data interface{}) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("%w: failed to render template %s: %v", ErrInternal, tmpl.Name(), err)
	}
	return sb.String(), nil
}

// firstName берет первое слово имени для обращения в письме
func firstName(fullName string) string {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "there"
	}
	return parts[0]
}

// companyOrDash возвращает компанию или прочерк для админского письма
func companyOrDash(company *string) string {
	if v := strings.TrimSpace(ptr.Deref(company)); v != "" {
		return v
	}
	return "-"
}
