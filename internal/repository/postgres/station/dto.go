package station

type CreateRequest struct {
	StationID *string  `json:"station_id" form:"station_id"`
	Name      *string  `json:"name"       form:"name"`
	Location  *string  `json:"location"   form:"location"`
	Latitude  *float64 `json:"latitude"   form:"latitude"`
	Longitude *float64 `json:"longitude"  form:"longitude"`
	Address   *string  `json:"address"    form:"address"`
}

type CreateResponse struct {
	StationID *string  `json:"station_id"`
	Name      *string  `json:"name"`
	Location  *string  `json:"location"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   *string  `json:"address"`
}

// UpdateRequest carries the partial body of an update; unset fields keep
// their stored value.
type UpdateRequest struct {
	StationID string   `json:"-"`
	Name      *string  `json:"name"      form:"name"`
	Location  *string  `json:"location"  form:"location"`
	Latitude  *float64 `json:"latitude"  form:"latitude"`
	Longitude *float64 `json:"longitude" form:"longitude"`
	Address   *string  `json:"address"   form:"address"`
}

type GetDetailResponse struct {
	StationID string   `json:"station_id"`
	Name      *string  `json:"name"`
	Location  *string  `json:"location"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   *string  `json:"address"`
}
