//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"hotel-availability/internal/domain/availability"
	"hotel-availability/internal/domain/booking"
	"hotel-availability/internal/domain/calendar"
	"hotel-availability/internal/domain/user"
	"hotel-availability/internal/handler/api"
	"hotel-availability/internal/handler/validation"
	"hotel-availability/internal/usecase/commands"
	"hotel-availability/internal/usecase/queries"
	"hotel-availability/internal/usecase/shared"
	"hotel-availability/tests/common/builder"
	"hotel-availability/tests/common/httptest"
	"hotel-availability/tests/common/testutil"
	commandsmock "hotel-availability/tests/mock/commands"
	queriesmock "hotel-availability/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAvailabilityCommands
	mockQueries  *queriesmock.MockAvailabilityQueries
	actor        shared.Actor
	roomTypeID   uuid.UUID
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	validation.Register()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAvailabilityCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.actor = shared.Actor{UserID: uuid.New(), Role: user.RoleOwner}
	s.roomTypeID = uuid.New()
	handler := api.NewAvailabilityHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/room-types/:id/availability", handler.Check)
	s.router.POST("/room-types/:id/availability", fakeAuth(&s.actor), handler.Update)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) url() string {
	return "/room-types/" + s.roomTypeID.String() + "/availability"
}

func (s *AvailabilityHandlerTestSuite) TestCheck() {
	start := calendar.MustParse("2024-03-15")
	end := calendar.MustParse("2024-03-17")

	s.Run("success: returns one entry per night", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), s.roomTypeID, start, end).
			Return([]queries.DayAvailabilityView{
				{Date: start, AvailableRooms: 10, BookedRooms: 4},
				{Date: start.AddDays(1), AvailableRooms: 3, BookedRooms: 3, IsManuallySet: true},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url()+"?startDate=2024-03-15&endDate=2024-03-17", nil, "")

		var body struct {
			RoomTypeID string `json:"roomTypeId"`
			Days       []struct {
				Date           string `json:"date"`
				AvailableRooms int    `json:"availableRooms"`
				BookedRooms    int    `json:"bookedRooms"`
				IsManuallySet  bool   `json:"isManuallySet"`
			} `json:"days"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.roomTypeID.String(), body.RoomTypeID)
		s.Require().Len(body.Days, 2)
		s.Equal("2024-03-16", body.Days[1].Date)
		s.Equal(3, body.Days[1].AvailableRooms)
		s.True(body.Days[1].IsManuallySet)
	})

	s.Run("error: 400 on malformed query", func() {
		cases := map[string]string{
			"missing endDate": "?startDate=2024-03-15",
			"malformed date":  "?startDate=2024-03-15&endDate=2024-13-01",
			"bad room type":   "",
		}
		for name, query := range cases {
			s.Run(name, func() {
				url := s.url() + query
				if name == "bad room type" {
					url = "/room-types/not-a-uuid/availability?startDate=2024-03-15&endDate=2024-03-17"
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps query errors", func() {
		testCases := []struct {
			name   string
			err    error
			status int
		}{
			{name: "range too large", err: queries.ErrDateRangeTooLarge, status: http.StatusBadRequest},
			{name: "inverted range", err: queries.ErrInvalidDateRange, status: http.StatusBadRequest},
			{name: "room type not found", err: queries.ErrRoomTypeNotFound, status: http.StatusNotFound},
			{name: "storage failure", err: errors.New("connection reset"), status: http.StatusInternalServerError},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), s.roomTypeID, gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url()+"?startDate=2024-03-15&endDate=2024-03-17", nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
			})
		}
	})
}

func (s *AvailabilityHandlerTestSuite) TestUpdate() {
	date := calendar.MustParse("2025-06-01")
	reqBody := map[string]any{
		"updates": []map[string]any{{"date": "2025-06-01", "availableRooms": 4}},
	}

	s.Run("success: 200 with results", func() {
		s.mockCommands.EXPECT().UpdateAvailability(gomock.Any(), s.actor, commands.UpdateAvailabilityInput{
			RoomTypeID:        s.roomTypeID,
			Updates:           []availability.Update{{Date: date, AvailableRooms: 4}},
			ForceCancellation: true,
		}).Return(&commands.UpdateAvailabilityResult{
			Results: []commands.DateResult{{Date: date, AvailableRooms: 4, CancelledBookings: 1}},
		}, nil).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("forceCancellation", true))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url(), body, "bearer-token")

		var response struct {
			Results []struct {
				Date              string `json:"date"`
				AvailableRooms    int    `json:"availableRooms"`
				CancelledBookings int    `json:"cancelledBookings"`
			} `json:"results"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Results, 1)
		s.Equal("2025-06-01", response.Results[0].Date)
		s.Equal(1, response.Results[0].CancelledBookings)
	})

	s.Run("conflict: 409 with affected bookings", func() {
		affected := builder.NewBookingBuilder().WithRoomType(s.roomTypeID).WithStay("2025-06-01", "2025-06-03").WithRooms(2).BuildSnapshot()
		affected.Status = booking.StatusConfirmed
		conflict := commands.AvailabilityConflict{
			Date:                  date,
			RequestedAvailability: 4,
			ExistingBookings:      6,
			AffectedBookings:      []shared.BookingSnapshot{affected},
		}
		s.mockCommands.EXPECT().UpdateAvailability(gomock.Any(), s.actor, gomock.Any()).
			Return(&commands.UpdateAvailabilityResult{Conflict: &conflict, Conflicts: []commands.AvailabilityConflict{conflict}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url(), reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Availability conflict")

		var response map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal("2025-06-01", response["date"])
		s.EqualValues(4, response["requestedAvailability"])
		s.EqualValues(6, response["existingBookings"])

		items, ok := response["affectedBookings"].([]any)
		s.Require().True(ok)
		s.Require().Len(items, 1)
		first := items[0].(map[string]any)
		s.Equal(affected.ID.String(), first["id"])
		s.Equal(affected.GuestID.String(), first["guestId"])
		s.Equal("2025-06-01", first["checkInDate"])
		s.Equal("2025-06-03", first["checkOutDate"])
		s.EqualValues(2, first["numberOfRooms"])
		s.Equal("confirmed", first["status"])

		conflicts, ok := response["conflicts"].([]any)
		s.Require().True(ok)
		s.Len(conflicts, 1)
	})

	s.Run("error: 400 on validation errors", func() {
		testCases := []struct {
			name string
			body any
		}{
			{name: "empty updates", body: map[string]any{"updates": []any{}}},
			{name: "missing updates", body: map[string]any{"forceCancellation": true}},
			{name: "negative rooms", body: map[string]any{"updates": []map[string]any{{"date": "2025-06-01", "availableRooms": -1}}}},
			{name: "missing rooms", body: map[string]any{"updates": []map[string]any{{"date": "2025-06-01"}}}},
			{name: "malformed date", body: map[string]any{"updates": []map[string]any{{"date": "06/01/2025", "availableRooms": 1}}}},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url(), tc.body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("success: zero rooms is accepted", func() {
		s.mockCommands.EXPECT().UpdateAvailability(gomock.Any(), s.actor, gomock.Any()).
			Return(&commands.UpdateAvailabilityResult{Results: []commands.DateResult{{Date: date}}}, nil).Times(1)

		body := map[string]any{"updates": []map[string]any{{"date": "2025-06-01", "availableRooms": 0}}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url(), body, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: maps command errors", func() {
		testCases := []struct {
			name   string
			err    error
			status int
		}{
			{name: "forbidden", err: commands.ErrForbidden, status: http.StatusForbidden},
			{name: "room type not found", err: commands.ErrRoomTypeNotFound, status: http.StatusNotFound},
			{name: "duplicate dates", err: commands.ErrInvalidAvailabilityUpdate, status: http.StatusBadRequest},
			{name: "storage failure", err: errors.New("deadlock"), status: http.StatusInternalServerError},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateAvailability(gomock.Any(), s.actor, gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url(), reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
			})
		}
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url(), reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
