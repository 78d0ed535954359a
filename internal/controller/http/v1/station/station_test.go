package station

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"evfleet/backend/foundation/web"
	"evfleet/backend/internal/repository/postgres/station"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubStation struct {
	created    *station.CreateRequest
	getByIDErr error
	deleted    string
	list       []station.GetDetailResponse
}

func (s *stubStation) Create(ctx context.Context, request station.CreateRequest) (station.CreateResponse, error) {
	s.created = &request
	return station.CreateResponse{
		StationID: request.StationID,
		Name:      request.Name,
	}, nil
}

func (s *stubStation) GetAll(ctx context.Context) ([]station.GetDetailResponse, int, error) {
	return s.list, len(s.list), nil
}

func (s *stubStation) GetByID(ctx context.Context, id string) (station.GetDetailResponse, error) {
	if s.getByIDErr != nil {
		return station.GetDetailResponse{}, s.getByIDErr
	}
	name := "Koramangala Hub"
	return station.GetDetailResponse{StationID: id, Name: &name}, nil
}

func (s *stubStation) Update(ctx context.Context, request station.UpdateRequest) (station.GetDetailResponse, error) {
	return station.GetDetailResponse{StationID: request.StationID, Name: request.Name}, nil
}

func (s *stubStation) Delete(ctx context.Context, id string) (station.GetDetailResponse, error) {
	s.deleted = id
	return station.GetDetailResponse{StationID: id}, nil
}

func newTestApp(stub *stubStation) *web.App {
	app := web.NewApp()
	controller := NewController(stub)
	app.Post("/create/ev-station", controller.Create)
	app.Get("/get/ev-station", controller.GetAll)
	app.Get("/getEvStationById/:id", controller.GetByID)
	app.Put("/updateEvStation/:id", controller.Update)
	app.Delete("/deleteEvStation/:id", controller.Delete)
	app.Get("/station/qrcode", controller.GetQrCode)
	return app
}

func doJSON(app *web.App, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	app.ServeHTTP(w, req)
	return w
}

func TestCreateStation(t *testing.T) {
	stub := &stubStation{}
	body := `{
		"station_id": "EV001",
		"name": "Koramangala Hub",
		"location": "Bangalore",
		"latitude": 12.93,
		"longitude": 77.62,
		"address": "80 Feet Rd"
	}`
	w := doJSON(newTestApp(stub), "POST", "/create/ev-station", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if stub.created == nil || *stub.created.StationID != "EV001" {
		t.Fatalf("create request not forwarded: %+v", stub.created)
	}

	var envelope map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if envelope["message"] != "EV Station created successfully" {
		t.Fatalf("unexpected message: %v", envelope["message"])
	}
}

func TestCreateStationMissingField(t *testing.T) {
	stub := &stubStation{}
	w := doJSON(newTestApp(stub), "POST", "/create/ev-station", `{"station_id":"EV001"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if stub.created != nil {
		t.Fatalf("repository must not be called on invalid input")
	}
}

func TestGetStationByIDNotFound(t *testing.T) {
	stub := &stubStation{
		getByIDErr: web.NewRequestError(errors.New("ev station not found"), http.StatusNotFound),
	}

	w := httptest.NewRecorder()
	newTestApp(stub).ServeHTTP(w, httptest.NewRequest("GET", "/getEvStationById/EV404", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestDeleteStation(t *testing.T) {
	stub := &stubStation{}
	w := doJSON(newTestApp(stub), "DELETE", "/deleteEvStation/EV001", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if stub.deleted != "EV001" {
		t.Fatalf("expected delete of EV001, got %q", stub.deleted)
	}
}

func TestGetAllEnvelopeCount(t *testing.T) {
	stub := &stubStation{list: []station.GetDetailResponse{
		{StationID: "EV001"},
		{StationID: "EV002"},
	}}

	w := httptest.NewRecorder()
	newTestApp(stub).ServeHTTP(w, httptest.NewRequest("GET", "/get/ev-station", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var envelope struct {
		Success bool                        `json:"success"`
		Count   int                         `json:"count"`
		Data    []station.GetDetailResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !envelope.Success || envelope.Count != 2 {
		t.Fatalf("unexpected envelope: %s", w.Body.String())
	}
}

func TestGetQrCodeReturnsPNG(t *testing.T) {
	stub := &stubStation{}

	w := httptest.NewRecorder()
	newTestApp(stub).ServeHTTP(w, httptest.NewRequest("GET", "/station/qrcode?station_id=EV001", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	pngMagic := []byte{0x89, 'P', 'N', 'G'}
	if !bytes.HasPrefix(w.Body.Bytes(), pngMagic) {
		t.Fatalf("response is not a png")
	}
}
