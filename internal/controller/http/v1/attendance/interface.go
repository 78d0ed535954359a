package attendance

import (
	"context"

	"evfleet/backend/internal/repository/postgres/attendance"
)

type Attendance interface {
	PunchIn(ctx context.Context, request attendance.PunchRequest) (attendance.PunchResponse, error)
	PunchOut(ctx context.Context, request attendance.PunchRequest) (attendance.PunchResponse, error)
	GetAll(ctx context.Context) ([]attendance.GetListResponse, int, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]attendance.GetListResponse, int, error)
	GetDailyDistanceReport(ctx context.Context) ([]attendance.DistanceReportRow, int, error)
}
