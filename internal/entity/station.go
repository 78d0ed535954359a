package entity

import (
	"github.com/uptrace/bun"
)

type Station struct {
	bun.BaseModel `bun:"table:ev_station"`

	StationID *string  `json:"station_id" bun:"evstationid,pk"`
	Name      *string  `json:"name"       bun:"name"`
	Location  *string  `json:"location"   bun:"location"`
	Latitude  *float64 `json:"latitude"   bun:"latitude"`
	Longitude *float64 `json:"longitude"  bun:"longitude"`
	Address   *string  `json:"address"    bun:"address"`
}
