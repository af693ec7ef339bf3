//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-availability/internal/domain/calendar"
	"hotel-availability/internal/domain/user"
	"hotel-availability/internal/handler/api"
	resdto "hotel-availability/internal/handler/dto/response"
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

type RoomTypeHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRoomTypeCommands
	mockQueries  *queriesmock.MockRoomTypeQueries
	mockBookings *queriesmock.MockBookingQueries
	actor        shared.Actor
}

func (s *RoomTypeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	validation.Register()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRoomTypeCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRoomTypeQueries(s.mockCtrl)
	s.mockBookings = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.actor = shared.Actor{UserID: uuid.New(), Role: user.RoleOwner}
	handler := api.NewRoomTypeHandler(s.mockCommands, s.mockQueries, s.mockBookings)

	auth := fakeAuth(&s.actor)
	s.router.GET("/room-types/:id", handler.Get)
	s.router.PATCH("/room-types/:id", auth, handler.Update)
	s.router.GET("/room-types/:id/bookings", auth, handler.BookingsOnDate)
	s.router.POST("/hotels/:id/room-types", auth, handler.Create)
}

func (s *RoomTypeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomTypeHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomTypeHandlerTestSuite))
}

func (s *RoomTypeHandlerTestSuite) TestGet() {
	view := builder.NewRoomTypeBuilder().BuildView()

	s.Run("success: public read", func() {
		s.mockQueries.EXPECT().GetRoomType(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/room-types/"+view.ID.String(), nil, "")

		var response resdto.RoomTypeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("Harbor View Hotel", response.HotelName)
		s.Equal(10, response.BaseAvailability)
		s.Equal(int64(15000), response.PricePerNightCents)
	})

	s.Run("error: 404", func() {
		s.mockQueries.EXPECT().GetRoomType(gomock.Any(), view.ID).Return(nil, queries.ErrRoomTypeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/room-types/"+view.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room type not found")
	})
}

func (s *RoomTypeHandlerTestSuite) TestCreate() {
	hotelID := uuid.New()
	url := "/hotels/" + hotelID.String() + "/room-types"
	snap := builder.NewRoomTypeBuilder().WithName("Family Suite").WithBaseAvailability(4).BuildSnapshot()
	reqBody := map[string]any{"name": "Family Suite", "baseAvailability": 4, "pricePerNightCents": 15000}

	s.Run("success: returns 201 with Location", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, commands.CreateRoomTypeInput{
			HotelID:            hotelID,
			Name:               "Family Suite",
			BaseAvailability:   4,
			PricePerNightCents: 15000,
		}).Return(&snap, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "owner-token")

		var response resdto.RoomTypeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(snap.ID, response.ID)
		s.Equal("Family Suite", response.Name)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/room-types/" + snap.ID.String()})
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil)},
			{name: "missing field: baseAvailability (required)", mutate: testutil.Field("baseAvailability", nil)},
			{name: "negative baseAvailability", mutate: testutil.Field("baseAvailability", -1)},
			{name: "negative price", mutate: testutil.Field("pricePerNightCents", -100)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "owner-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps command errors", func() {
		testCases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{name: "hotel not found", err: commands.ErrHotelNotFound, status: http.StatusNotFound, msg: "Hotel not found"},
			{name: "other owner's hotel", err: commands.ErrForbidden, status: http.StatusForbidden, msg: "Forbidden"},
			{name: "duplicate name", err: commands.ErrRoomTypeNameTaken, status: http.StatusConflict, msg: "Room type name already exists"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "owner-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *RoomTypeHandlerTestSuite) TestUpdate() {
	snap := builder.NewRoomTypeBuilder().WithBaseAvailability(0).BuildSnapshot()
	url := "/room-types/" + snap.ID.String()

	s.Run("success: zero base availability is allowed", func() {
		s.mockCommands.EXPECT().UpdateBaseAvailability(gomock.Any(), s.actor, snap.ID, 0).Return(&snap, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"baseAvailability": 0}, "owner-token")

		var response resdto.RoomTypeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(0, response.BaseAvailability)
	})

	s.Run("error: 400 when baseAvailability missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "owner-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 403 for another owner", func() {
		s.mockCommands.EXPECT().UpdateBaseAvailability(gomock.Any(), s.actor, snap.ID, 5).Return(nil, commands.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"baseAvailability": 5}, "owner-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})
}

func (s *RoomTypeHandlerTestSuite) TestBookingsOnDate() {
	roomTypeID := uuid.New()
	url := "/room-types/" + roomTypeID.String() + "/bookings"

	s.Run("success", func() {
		item := &queries.ActiveBookingView{
			ID:            uuid.New(),
			GuestID:       uuid.New(),
			GuestEmail:    "guest@example.com",
			CheckInDate:   calendar.MustParse("2024-03-14"),
			CheckOutDate:  calendar.MustParse("2024-03-16"),
			NumberOfRooms: 2,
			Status:        "confirmed",
		}
		s.mockBookings.EXPECT().ListBookingsForDate(gomock.Any(), s.actor, roomTypeID, calendar.MustParse("2024-03-15")).
			Return([]*queries.ActiveBookingView{item}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=2024-03-15", nil, "owner-token")

		var response []resdto.ActiveBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(item.ID, response[0].ID)
		s.Equal(2, response[0].NumberOfRooms)
		s.Equal("guest@example.com", response[0].GuestEmail)
	})

	s.Run("error: 400 on missing or malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "owner-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=15-03-2024", nil, "owner-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})

	s.Run("error: 403 for another hotel", func() {
		s.mockBookings.EXPECT().ListBookingsForDate(gomock.Any(), s.actor, roomTypeID, gomock.Any()).Return(nil, queries.ErrRoomTypeAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=2024-03-15", nil, "owner-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})
}
