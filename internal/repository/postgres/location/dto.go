package location

type CreateRequest struct {
	Latitude  *float64 `json:"latitude"  form:"latitude"`
	Longitude *float64 `json:"longitude" form:"longitude"`
	Address   *string  `json:"address"   form:"address"`
	PinCode   *string  `json:"pin_code"  form:"pin_code"`
}

type CreateResponse struct {
	LocationID int      `json:"location_id"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	Address    *string  `json:"address"`
	PinCode    *string  `json:"pin_code"`
}

type GetDetailResponse struct {
	LocationID int      `json:"location_id"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	Address    *string  `json:"address"`
	PinCode    *string  `json:"pin_code"`
}

// GetAddressResponse is the address-book row. The list endpoint does not
// expose location ids.
type GetAddressResponse struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   *string  `json:"address"`
	PinCode   *string  `json:"pin_code"`
}
