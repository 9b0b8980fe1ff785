package email

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplatePrayerReceived corresponds to templates/prayer_received.html
	TemplatePrayerReceived Template = "prayer_received"

	// TemplateMassBookingReceived corresponds to templates/mass_booking_received.html
	TemplateMassBookingReceived Template = "mass_booking_received"
)
