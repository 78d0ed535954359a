package attendance

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"evfleet/backend/foundation/web"
	"evfleet/backend/internal/repository/postgres/attendance"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAttendance struct {
	punchInErr  error
	punchOutErr error
	punchedIn   bool
	punchedOut  bool
	list        []attendance.GetListResponse
	report      []attendance.DistanceReportRow
}

func (s *stubAttendance) PunchIn(ctx context.Context, request attendance.PunchRequest) (attendance.PunchResponse, error) {
	s.punchedIn = true
	if s.punchInErr != nil {
		return attendance.PunchResponse{}, s.punchInErr
	}
	return attendance.PunchResponse{AttendanceID: 1, EmployeeID: request.EmployeeID}, nil
}

func (s *stubAttendance) PunchOut(ctx context.Context, request attendance.PunchRequest) (attendance.PunchResponse, error) {
	s.punchedOut = true
	if s.punchOutErr != nil {
		return attendance.PunchResponse{}, s.punchOutErr
	}
	return attendance.PunchResponse{AttendanceID: 1, EmployeeID: request.EmployeeID}, nil
}

func (s *stubAttendance) GetAll(ctx context.Context) ([]attendance.GetListResponse, int, error) {
	return s.list, len(s.list), nil
}

func (s *stubAttendance) GetByEmployeeID(ctx context.Context, employeeID string) ([]attendance.GetListResponse, int, error) {
	return s.list, len(s.list), nil
}

func (s *stubAttendance) GetDailyDistanceReport(ctx context.Context) ([]attendance.DistanceReportRow, int, error) {
	return s.report, len(s.report), nil
}

func newTestApp(stub *stubAttendance) *web.App {
	app := web.NewApp()
	controller := NewController(stub)
	app.Post("/attendance", controller.Create)
	app.Get("/attendance", controller.GetAll)
	app.Get("/attendance/export", controller.Export)
	app.Get("/attendance/:employee_id", controller.GetByEmployeeID)
	app.Get("/getDailyDistanceReport", controller.GetDailyDistanceReport)
	return app
}

func punchBody(flag int) string {
	return `{
		"employee_id": "1042",
		"station_id": "EV001",
		"latitude": 12.97,
		"longitude": 77.59,
		"address": "MG Road",
		"attendance_time": "2026-03-02T09:00:00Z",
		"flag": ` + map[int]string{0: "0", 1: "1", 2: "2"}[flag] + `
	}`
}

func doPost(app *web.App, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	app.ServeHTTP(w, req)
	return w
}

func TestPunchInDispatch(t *testing.T) {
	stub := &stubAttendance{}
	w := doPost(newTestApp(stub), "/attendance", punchBody(attendance.FlagPunchIn))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if !stub.punchedIn || stub.punchedOut {
		t.Fatalf("expected punch in only, got in=%v out=%v", stub.punchedIn, stub.punchedOut)
	}

	var envelope map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if envelope["message"] != "Punch in successful" {
		t.Fatalf("unexpected message: %v", envelope["message"])
	}
}

func TestPunchOutDispatch(t *testing.T) {
	stub := &stubAttendance{}
	w := doPost(newTestApp(stub), "/attendance", punchBody(attendance.FlagPunchOut))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !stub.punchedOut || stub.punchedIn {
		t.Fatalf("expected punch out only, got in=%v out=%v", stub.punchedIn, stub.punchedOut)
	}
}

func TestPunchRejectsUnknownFlag(t *testing.T) {
	stub := &stubAttendance{}
	w := doPost(newTestApp(stub), "/attendance", punchBody(2))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if stub.punchedIn || stub.punchedOut {
		t.Fatalf("repository must not be called for an unknown flag")
	}
}

func TestPunchRequiresFlag(t *testing.T) {
	stub := &stubAttendance{}
	body := `{"employee_id":"1042","station_id":"EV001","latitude":1,"longitude":1,"address":"x","attendance_time":"2026-03-02T09:00:00Z"}`
	w := doPost(newTestApp(stub), "/attendance", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing flag, got %d: %s", w.Code, w.Body.String())
	}
}

func TestPunchInConflictPassedThrough(t *testing.T) {
	stub := &stubAttendance{
		punchInErr: web.NewRequestError(errors.New("employee already punched in"), http.StatusConflict),
	}
	w := doPost(newTestApp(stub), "/attendance", punchBody(attendance.FlagPunchIn))

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}

	var envelope map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if envelope["success"] != false {
		t.Fatalf("expected success=false, got %v", envelope["success"])
	}
	if envelope["message"] != "employee already punched in" {
		t.Fatalf("unexpected message: %v", envelope["message"])
	}
}

func TestPunchOutWithoutOpenWindow(t *testing.T) {
	stub := &stubAttendance{
		punchOutErr: web.NewRequestError(errors.New("no active punch-in found"), http.StatusNotFound),
	}
	w := doPost(newTestApp(stub), "/attendance", punchBody(attendance.FlagPunchOut))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGetByEmployeeIDEnvelope(t *testing.T) {
	employeeID := "1042"
	station := "EV001"
	now := time.Now()
	stub := &stubAttendance{list: []attendance.GetListResponse{{
		AttendanceID: 7,
		EmployeeID:   employeeID,
		StationID:    &station,
		PunchinTime:  &now,
	}}}

	w := httptest.NewRecorder()
	newTestApp(stub).ServeHTTP(w, httptest.NewRequest("GET", "/attendance/1042", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var envelope struct {
		Success bool                         `json:"success"`
		Count   int                          `json:"count"`
		Data    []attendance.GetListResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !envelope.Success || envelope.Count != 1 || len(envelope.Data) != 1 {
		t.Fatalf("unexpected envelope: %s", w.Body.String())
	}
	if envelope.Data[0].AttendanceID != 7 {
		t.Fatalf("unexpected row: %+v", envelope.Data[0])
	}
}

func TestExportWritesWorkbook(t *testing.T) {
	employeeID := "1042"
	station := "EV001"
	address := "MG Road"
	now := time.Now()
	stub := &stubAttendance{list: []attendance.GetListResponse{{
		AttendanceID: 1,
		EmployeeID:   employeeID,
		StationID:    &station,
		Address:      &address,
		PunchinTime:  &now,
	}}}

	w := httptest.NewRecorder()
	newTestApp(stub).ServeHTTP(w, httptest.NewRequest("GET", "/attendance/export", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Fatalf("unexpected content type %q", ct)
	}
	// xlsx is a zip archive, PK magic.
	if body := w.Body.Bytes(); len(body) < 2 || body[0] != 'P' || body[1] != 'K' {
		t.Fatalf("response is not an xlsx archive")
	}
}
