package email

import "fmt"

// SendPrayerNotification tells the shrine office a prayer request arrived.
func (c *Client) SendPrayerNotification(to string, prayerID int64, name, prayer, receivedAt string) error {
	data := map[string]string{
		"PrayerID":   fmt.Sprintf("%d", prayerID),
		"Name":       name,
		"Prayer":     prayer,
		"ReceivedAt": receivedAt,
	}

	return c.SendEmail(to, "New prayer request from "+name, TemplatePrayerReceived, data)
}

// SendMassBookingNotification tells the shrine office a mass was booked.
func (c *Client) SendMassBookingNotification(to string, bookingID int64, name, intentionType, startDate string, days int32) error {
	data := map[string]string{
		"BookingID":     fmt.Sprintf("%d", bookingID),
		"Name":          name,
		"IntentionType": intentionType,
		"StartDate":     startDate,
		"NumberOfDays":  fmt.Sprintf("%d", days),
	}

	return c.SendEmail(to, "New mass booking from "+name, TemplateMassBookingReceived, data)
}
