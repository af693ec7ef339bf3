package notifier

import (
	"encoding/json"
	"fmt"
	"strings"

	"hotel-availability/internal/pkg/errs"
	"hotel-availability/internal/usecase/shared"
)

var ErrUnknownTopic = errs.New("unknown notification topic")

type message struct {
	To      string
	Subject string
	Body    string
}

func render(topic string, payload []byte) (message, error) {
	var n shared.BookingNotification
	if err := json.Unmarshal(payload, &n); err != nil {
		return message{}, errs.Wrap(err, "failed to decode notification payload")
	}
	if n.GuestEmail == "" {
		return message{}, errs.New("notification has no recipient")
	}

	var subject, lead string
	switch topic {
	case shared.NotificationTopicBookingCreated:
		subject = "Booking received"
		lead = "We received your booking request."
	case shared.NotificationTopicBookingConfirmed:
		subject = "Booking confirmed"
		lead = "Your booking has been confirmed."
	case shared.NotificationTopicBookingCancelled:
		subject = "Booking cancelled"
		lead = cancelLead(n.CancelledBy)
	default:
		return message{}, errs.Wrap(ErrUnknownTopic, topic)
	}

	var b strings.Builder
	b.WriteString(lead)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Booking: %s\n", n.BookingID)
	fmt.Fprintf(&b, "Stay: %s to %s\n", n.CheckInDate, n.CheckOutDate)
	fmt.Fprintf(&b, "Rooms: %d\n", n.NumberOfRooms)
	fmt.Fprintf(&b, "Status: %s\n", n.Status)

	return message{To: n.GuestEmail, Subject: subject, Body: b.String()}, nil
}

func cancelLead(by string) string {
	switch by {
	case "guest":
		return "Your booking has been cancelled as requested."
	case "availability_reduction":
		return "We are sorry, your booking was cancelled because the hotel reduced its room availability."
	default:
		return "Your booking has been cancelled by the hotel."
	}
}
