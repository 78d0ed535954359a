package attendance

import (
	"net/http"
	"reflect"

	"evfleet/backend/foundation/web"
	"evfleet/backend/internal/repository/postgres/attendance"
	"evfleet/backend/internal/service"

	"github.com/pkg/errors"
)

type Controller struct {
	attendance Attendance
}

func NewController(attendance Attendance) *Controller {
	return &Controller{attendance}
}

// Create is the punch endpoint: flag 0 opens an attendance window,
// flag 1 closes the open one.
func (uc Controller) Create(c *web.Context) error {
	var request attendance.PunchRequest
	if err := c.BindFunc(&request, "EmployeeID", "StationID", "Latitude", "Longitude", "Address", "AttendanceTime", "Flag"); err != nil {
		return c.RespondError(err)
	}

	switch *request.Flag {
	case attendance.FlagPunchIn:
		response, err := uc.attendance.PunchIn(c.Ctx, request)
		if err != nil {
			return c.RespondError(err)
		}

		return c.Respond(map[string]interface{}{
			"success": true,
			"message": "Punch in successful",
			"data":    response,
		}, http.StatusCreated)

	case attendance.FlagPunchOut:
		response, err := uc.attendance.PunchOut(c.Ctx, request)
		if err != nil {
			return c.RespondError(err)
		}

		return c.Respond(map[string]interface{}{
			"success": true,
			"message": "Punch out successful",
			"data":    response,
		}, http.StatusOK)

	default:
		return c.RespondError(web.NewRequestError(
			errors.New("Flag must be 0 (Punch In) or 1 (Punch Out)"),
			http.StatusBadRequest))
	}
}

func (uc Controller) GetAll(c *web.Context) error {
	list, count, err := uc.attendance.GetAll(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"count":   count,
		"data":    list,
	}, http.StatusOK)
}

func (uc Controller) GetByEmployeeID(c *web.Context) error {
	employeeID := c.GetParam(reflect.String, "employee_id").(string)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := uc.attendance.GetByEmployeeID(c.Ctx, employeeID)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"count":   count,
		"data":    list,
	}, http.StatusOK)
}

func (uc Controller) GetDailyDistanceReport(c *web.Context) error {
	list, count, err := uc.attendance.GetDailyDistanceReport(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"message": "Daily distance report fetched successfully",
		"count":   count,
		"data":    list,
	}, http.StatusOK)
}

// Export streams the full attendance history as an .xlsx workbook.
func (uc Controller) Export(c *web.Context) error {
	list, _, err := uc.attendance.GetAll(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	rows := make([]service.AttendanceRow, 0, len(list))
	for _, detail := range list {
		row := service.AttendanceRow{
			AttendanceID: detail.AttendanceID,
			EmployeeID:   detail.EmployeeID,
			PunchinTime:  detail.PunchinTime,
			PunchoutTime: detail.PunchoutTime,
		}
		if detail.StationID != nil {
			row.StationID = *detail.StationID
		}
		if detail.Address != nil {
			row.Address = *detail.Address
		}
		rows = append(rows, row)
	}

	workbook, err := service.AttendanceExcel(rows)
	if err != nil {
		return c.RespondError(err)
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="attendance.xlsx"`)
	c.Status(http.StatusOK)
	if _, err = c.Writer.Write(workbook); err != nil {
		return c.RespondError(err)
	}

	return nil
}
