package entity

import (
	"time"

	"github.com/uptrace/bun"
)

type Location struct {
	bun.BaseModel `bun:"table:locationmaster"`

	LocationID int      `json:"location_id" bun:"location_id,pk,autoincrement"`
	Latitude   *float64 `json:"latitude"    bun:"latitude"`
	Longitude  *float64 `json:"longitude"   bun:"longitude"`
	Address    *string  `json:"address"     bun:"address"`
	PinCode    *string  `json:"pin_code"    bun:"pin_code"`
}

// BaseLocation is the once-per-day reference point used by the distance
// report. Unique on (employee_id, date of created_date_time).
type BaseLocation struct {
	bun.BaseModel `bun:"table:base_location"`

	ID              int       `json:"id"                bun:"id,pk,autoincrement"`
	EmployeeID      *string   `json:"employee_id"       bun:"employee_id"`
	StationID       *string   `json:"station_id"        bun:"evstationid"`
	Latitude        *float64  `json:"latitude"          bun:"latitude"`
	Longitude       *float64  `json:"longitude"         bun:"longitude"`
	CreatedDateTime time.Time `json:"created_date_time" bun:"created_date_time"`
}
