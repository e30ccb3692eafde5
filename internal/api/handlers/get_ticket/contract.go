package get_ticket

import "context"

type TicketService interface {
	Render(ctx context.Context, bookingID int64, userID int64) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
