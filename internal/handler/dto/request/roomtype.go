package request

type CreateRoomTypeRequest struct {
	Name               string `json:"name" binding:"required,max=100"`
	BaseAvailability   *int   `json:"baseAvailability" binding:"required,min=0"`
	PricePerNightCents int64  `json:"pricePerNightCents" binding:"min=0"`
}

type UpdateRoomTypeRequest struct {
	BaseAvailability *int `json:"baseAvailability" binding:"required,min=0"`
}
