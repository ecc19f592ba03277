package service

import (
	"context"

	"go-hostel-pms/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// NotificationEvent identifies a guest-facing notification trigger
type NotificationEvent string

const (
	NotificationEventCheckIn  NotificationEvent = "guest.checkin"
	NotificationEventCheckOut NotificationEvent = "guest.checkout"
	NotificationEventTransfer NotificationEvent = "guest.transfer"
	NotificationEventNoShow   NotificationEvent = "guest.no_show"
	NotificationEventExtended NotificationEvent = "guest.stay_extended"
)

// NotificationDispatcher delivers guest notifications (welcome SMS, WiFi
// credentials, receipts). Strictly best-effort: implementations must never
// return an error that could block or roll back the booking operation that
// triggered them.
type NotificationDispatcher interface {
	Notify(ctx context.Context, event NotificationEvent, guest *entity.Guest, booking *entity.Booking)
}

// logNotificationDispatcher records events to the log. Stands in for the
// SMS/email gateway in environments where none is configured.
type logNotificationDispatcher struct {
	log *logrus.Logger
}

func NewLogNotificationDispatcher(log *logrus.Logger) NotificationDispatcher {
	return &logNotificationDispatcher{log: log}
}

func (d *logNotificationDispatcher) Notify(ctx context.Context, event NotificationEvent, guest *entity.Guest, booking *entity.Booking) {
	fields := logrus.Fields{"event": event}
	if guest != nil {
		fields["guest_id"] = guest.ID
		fields["guest_name"] = guest.FullName
	}
	if booking != nil {
		fields["booking_id"] = booking.ID
		fields["confirmation_code"] = booking.ConfirmationCode
	}
	d.log.WithFields(fields).Info("Notification dispatched")
}
