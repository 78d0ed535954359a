package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// Attendance is one punch window: punchout_time stays NULL while the
// employee is punched in. A partial unique index keeps at most one open
// row per employee.
type Attendance struct {
	bun.BaseModel `bun:"table:attendancemaster"`

	AttendanceID int        `json:"attendance_id" bun:"attendance_id,pk,autoincrement"`
	EmployeeID   *string    `json:"employee_id"   bun:"employee_id"`
	StationID    *string    `json:"station_id"    bun:"evstationid"`
	Latitude     *float64   `json:"latitude"      bun:"latitude"`
	Longitude    *float64   `json:"longitude"     bun:"longitude"`
	Address      *string    `json:"address"       bun:"address"`
	PunchinTime  *time.Time `json:"punchin_time"  bun:"punchin_time"`
	PunchoutTime *time.Time `json:"punchout_time" bun:"punchout_time"`
	Flag         *int       `json:"flag"          bun:"flag"`
	CreatedAt    time.Time  `json:"created_at"    bun:"created_at"`
}
