package email

// PreviewData contains sample template data for local preview/testing.
//
//	PreviewData[TemplatePrayerReceived]["Name"] == "Maria"
var PreviewData = map[Template]map[string]string{
	TemplatePrayerReceived: {
		"PrayerID":   "42",
		"Name":       "Maria",
		"Prayer":     "For my mother's recovery",
		"ReceivedAt": "2025-01-05 09:30",
	},
	TemplateMassBookingReceived: {
		"BookingID":     "7",
		"Name":          "Jose",
		"IntentionType": "Thanksgiving",
		"StartDate":     "2025-02-01",
		"NumberOfDays":  "3",
	},
}
