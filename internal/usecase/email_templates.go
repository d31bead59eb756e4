package usecase

import (
	"bytes"
	"html/template"

	"academy_payments/internal/domain/entities"
)

const emailLayout = `<!DOCTYPE html><html><body style="font-family:Arial,sans-serif;color:#1f2937">{{template "content" .}}<p style="color:#6b7280;font-size:12px">Academy Payments</p></body></html>`

var emailBodies = map[entities.EmailType]string{
	entities.EmailContact: `<h2>New contact message</h2>
<p><b>Name:</b> {{.name}}</p><p><b>Email:</b> {{.email}}</p><p><b>Phone:</b> {{.phone}}</p>
<p><b>Subject:</b> {{.subject}}</p><p>{{.message}}</p>`,
	entities.EmailRegistration: `<h2>Registration confirmed</h2>
<p>Hi {{.name}}, you are registered for <b>{{.title}}</b>{{with .date}} on {{.}}{{end}}.</p>`,
	entities.EmailEnrollment: `<h2>Welcome to {{.course}}</h2>
<p>Hi {{.name}}, your enrollment is active. You can start learning right away.</p>`,
	entities.EmailPaymentConfirmation: `<h2>Payment received</h2>
<p>Hi {{.name}}, we received your payment of {{.currency}} {{.amount}}.</p>
<p>Reference: <b>{{.reference}}</b>{{with .receipt_number}} (receipt {{.}}){{end}}</p>`,
	entities.EmailPaymentNotification: `<h2>New payment initiated</h2>
<p><b>Customer:</b> {{.name}} &lt;{{.customer_email}}&gt;</p>
<p><b>Amount:</b> {{.currency}} {{.amount}} via {{.payment_method}}</p><p><b>Reference:</b> {{.reference}}</p>`,
	entities.EmailPaybillInstructions: `<h2>How to complete your payment</h2>
<p>Hi {{.name}}, pay {{.currency}} {{.amount}} to Paybill <b>{{.paybill_number}}</b>
({{.account_name}}) using account number <b>{{.reference}}</b>.</p>`,
}

var emailTemplates = func() map[entities.EmailType]*template.Template {
	out := make(map[entities.EmailType]*template.Template, len(emailBodies))
	for t, body := range emailBodies {
		tpl := template.Must(template.New("layout").Option("missingkey=zero").Parse(emailLayout))
		out[t] = template.Must(tpl.New("content").Parse(body))
	}
	return out
}()

func renderEmailBody(t entities.EmailType, data map[string]any) (string, error) {
	tpl, ok := emailTemplates[t]
	if !ok {
		return "", ErrUnsupportedEmailType
	}
	if data == nil {
		data = map[string]any{}
	}
	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func emailSubject(t entities.EmailType, data map[string]any) string {
	switch t {
	case entities.EmailContact:
		if s := stringField(data, "subject"); s != "" {
			return "Contact form: " + s
		}
		return "New contact form submission"
	case entities.EmailRegistration:
		if s := stringField(data, "title"); s != "" {
			return "You're registered: " + s
		}
		return "Registration confirmed"
	case entities.EmailEnrollment:
		return "Your enrollment is active"
	case entities.EmailPaymentConfirmation:
		return "Payment confirmation " + stringField(data, "reference")
	case entities.EmailPaymentNotification:
		return "New payment " + stringField(data, "reference")
	case entities.EmailPaybillInstructions:
		return "Paybill payment instructions"
	}
	return ""
}
