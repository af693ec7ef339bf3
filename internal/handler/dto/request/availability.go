package request

import (
	"hotel-availability/internal/domain/availability"
	"hotel-availability/internal/domain/calendar"
	"hotel-availability/internal/usecase/commands"

	"github.com/google/uuid"
)

type AvailabilityUpdateItem struct {
	Date           string `json:"date" binding:"required,calendar_date"`
	AvailableRooms *int   `json:"availableRooms" binding:"required,min=0"`
}

type UpdateAvailabilityRequest struct {
	Updates           []AvailabilityUpdateItem `json:"updates" binding:"required,min=1,dive"`
	ForceCancellation bool                     `json:"forceCancellation"`
}

func (r *UpdateAvailabilityRequest) ToInput(roomTypeID uuid.UUID) (commands.UpdateAvailabilityInput, error) {
	updates := make([]availability.Update, 0, len(r.Updates))
	for _, u := range r.Updates {
		date, err := calendar.Parse(u.Date)
		if err != nil {
			return commands.UpdateAvailabilityInput{}, err
		}
		updates = append(updates, availability.Update{Date: date, AvailableRooms: *u.AvailableRooms})
	}
	return commands.UpdateAvailabilityInput{
		RoomTypeID:        roomTypeID,
		Updates:           updates,
		ForceCancellation: r.ForceCancellation,
	}, nil
}

type CheckAvailabilityQuery struct {
	StartDate string `form:"startDate" binding:"required,calendar_date"`
	EndDate   string `form:"endDate" binding:"required,calendar_date"`
}

func (q *CheckAvailabilityQuery) Range() (calendar.Date, calendar.Date, error) {
	start, err := calendar.Parse(q.StartDate)
	if err != nil {
		return calendar.Date{}, calendar.Date{}, err
	}
	end, err := calendar.Parse(q.EndDate)
	if err != nil {
		return calendar.Date{}, calendar.Date{}, err
	}
	return start, end, nil
}
