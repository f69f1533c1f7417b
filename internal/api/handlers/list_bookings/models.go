package list_bookings

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/booking-calendar/internal/api/handlers"
	"github.com/m04kA/booking-calendar/internal/service/bookings/models"
)

// ParseQuery разбирает фильтры ?status=&from=&to=&userId=
func ParseQuery(q url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if v := q.Get("status"); v != "" {
		req.Status = &v
	}

	if v := q.Get("userId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid userId %q", v)
		}
		req.UserID = &id
	}

	from := q.Get("from")
	fromTime, err := handlers.ParseOptionalTime(&from)
	if err != nil {
		return nil, err
	}
	req.From = fromTime

	to := q.Get("to")
	toTime, err := handlers.ParseOptionalTime(&to)
	if err != nil {
		return nil, err
	}
	req.To = toTime

	return req, nil
}
