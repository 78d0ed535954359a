package baselocation

import (
	"time"
)

type CreateRequest struct {
	EmployeeID *string  `json:"employee_id" form:"employee_id"`
	StationID  *string  `json:"station_id"  form:"station_id"`
	Latitude   *float64 `json:"latitude"    form:"latitude"`
	Longitude  *float64 `json:"longitude"   form:"longitude"`
}

type CreateResponse struct {
	ID              int       `json:"id"`
	EmployeeID      *string   `json:"employee_id"`
	StationID       *string   `json:"station_id"`
	Latitude        *float64  `json:"latitude"`
	Longitude       *float64  `json:"longitude"`
	CreatedDateTime time.Time `json:"created_date_time"`
}
