//go:build unit

package roomtype_test

import (
	"strings"
	"testing"

	"hotel-availability/internal/domain/roomtype"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoomType(t *testing.T) {
	hotelID := uuid.New()

	tests := []struct {
		name    string
		rtName  string
		base    int
		price   int64
		wantErr error
	}{
		{name: "正常系", rtName: "Deluxe Twin", base: 10, price: 20000},
		{name: "在庫0OK", rtName: "Suite", base: 0, price: 0},
		{name: "名前の前後空白は除去", rtName: "  Single  ", base: 1, price: 1},
		{name: "名前100文字OK", rtName: strings.Repeat("あ", 100), base: 1, price: 1},
		{name: "名前101文字NG", rtName: strings.Repeat("a", 101), base: 1, price: 1, wantErr: roomtype.ErrInvalidName},
		{name: "名前空NG", rtName: "   ", base: 1, price: 1, wantErr: roomtype.ErrInvalidName},
		{name: "在庫マイナスNG", rtName: "Twin", base: -1, price: 1, wantErr: roomtype.ErrNegativeBaseAvailability},
		{name: "在庫上限超過NG", rtName: "Twin", base: roomtype.MaxBaseAvailability + 1, price: 1, wantErr: roomtype.ErrBaseAvailabilityTooLarge},
		{name: "価格マイナスNG", rtName: "Twin", base: 1, price: -1, wantErr: roomtype.ErrNegativePrice},
		{name: "価格上限超過NG", rtName: "Twin", base: 1, price: roomtype.MaxPricePerNightCents + 1, wantErr: roomtype.ErrPriceTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, err := roomtype.NewRoomType(hotelID, tt.rtName, tt.base, tt.price)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, rt)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, rt.ID())
			assert.Equal(t, hotelID, rt.HotelID())
			assert.Equal(t, strings.TrimSpace(tt.rtName), rt.Name())
			assert.Equal(t, tt.base, rt.BaseAvailability())
			assert.Equal(t, tt.price, rt.PricePerNightCents())
		})
	}
}

func TestChangeBaseAvailabilityKeepsPreviousOnError(t *testing.T) {
	rt, err := roomtype.NewRoomType(uuid.New(), "Twin", 5, 1000)
	require.NoError(t, err)

	require.ErrorIs(t, rt.ChangeBaseAvailability(-3), roomtype.ErrNegativeBaseAvailability)
	assert.Equal(t, 5, rt.BaseAvailability())

	require.NoError(t, rt.ChangeBaseAvailability(8))
	assert.Equal(t, 8, rt.BaseAvailability())
}
