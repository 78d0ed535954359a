package attendance

import (
	"time"

	"github.com/Azure/go-autorest/autorest/date"
)

const (
	FlagPunchIn  = 0
	FlagPunchOut = 1
)

type PunchRequest struct {
	EmployeeID     *string    `json:"employee_id"     form:"employee_id"`
	StationID      *string    `json:"station_id"      form:"station_id"`
	Latitude       *float64   `json:"latitude"        form:"latitude"`
	Longitude      *float64   `json:"longitude"       form:"longitude"`
	Address        *string    `json:"address"         form:"address"`
	AttendanceTime *time.Time `json:"attendance_time" form:"attendance_time"`
	Flag           *int       `json:"flag"            form:"flag"`
}

type PunchResponse struct {
	AttendanceID int        `json:"attendance_id"`
	EmployeeID   *string    `json:"employee_id"`
	StationID    *string    `json:"station_id"`
	Latitude     *float64   `json:"latitude"`
	Longitude    *float64   `json:"longitude"`
	Address      *string    `json:"address"`
	PunchinTime  *time.Time `json:"punchin_time"`
	PunchoutTime *time.Time `json:"punchout_time"`
	Flag         int        `json:"flag"`
	CreatedAt    time.Time  `json:"created_at"`
}

type GetListResponse struct {
	AttendanceID int        `json:"attendance_id"`
	EmployeeID   string     `json:"employee_id"`
	StationID    *string    `json:"station_id"`
	Latitude     *float64   `json:"latitude"`
	Longitude    *float64   `json:"longitude"`
	Address      *string    `json:"address"`
	PunchinTime  *time.Time `json:"punchin_time"`
	PunchoutTime *time.Time `json:"punchout_time"`
	Flag         *int       `json:"flag"`
	CreatedAt    time.Time  `json:"created_at"`
}

type DistanceReportRow struct {
	EmployeeID      string     `json:"employee_id"`
	AttendanceDate  *date.Date `json:"attendance_date"`
	StationsVisited int        `json:"stations_visited"`
	TotalDistanceKm float64    `json:"total_distance_km"`
}
