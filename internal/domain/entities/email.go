package entities

type EmailType string

const (
	EmailContact             EmailType = "contact"
	EmailRegistration        EmailType = "registration"
	EmailEnrollment          EmailType = "enrollment"
	EmailPaymentConfirmation EmailType = "payment_confirmation"
	EmailPaymentNotification EmailType = "payment_notification"
	EmailPaybillInstructions EmailType = "paybill_instructions"
)

func (t EmailType) Valid() bool {
	switch t {
	case EmailContact, EmailRegistration, EmailEnrollment, EmailPaymentConfirmation,
		EmailPaymentNotification, EmailPaybillInstructions:
		return true
	}
	return false
}

// EmailMessage is a rendered email ready for delivery.
type EmailMessage struct {
	To      string
	ReplyTo string
	Subject string
	HTML    string
}
