package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"evfleet/backend/foundation/web"
	"evfleet/backend/internal/repository/postgres/employee"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubEmployee struct {
	signInErr error
}

func (s *stubEmployee) SignUp(ctx context.Context, request employee.SignUpRequest) (employee.SignUpResponse, error) {
	return employee.SignUpResponse{EmployeeID: "0412", Password: "038271"}, nil
}

func (s *stubEmployee) SignIn(ctx context.Context, request employee.SignInRequest) (employee.ProfileResponse, error) {
	if s.signInErr != nil {
		return employee.ProfileResponse{}, s.signInErr
	}
	return employee.ProfileResponse{EmployeeID: *request.EmployeeID}, nil
}

func newTestApp(stub *stubEmployee) *web.App {
	app := web.NewApp()
	controller := NewController(stub)
	app.Post("/signup", controller.SignUp)
	app.Post("/login", controller.SignIn)
	return app
}

func doPost(app *web.App, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	app.ServeHTTP(w, req)
	return w
}

func TestSignUpReturnsCredentials(t *testing.T) {
	body := `{"name":"Asha","email":"asha@example.com","phone_number":"9876543210"}`
	w := doPost(newTestApp(&stubEmployee{}), "/signup", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var envelope struct {
		Success bool                    `json:"success"`
		Data    employee.SignUpResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !envelope.Success {
		t.Fatalf("expected success envelope: %s", w.Body.String())
	}
	if len(envelope.Data.EmployeeID) != 4 || len(envelope.Data.Password) != 6 {
		t.Fatalf("unexpected credentials: %+v", envelope.Data)
	}
}

func TestSignUpRequiresContactFields(t *testing.T) {
	w := doPost(newTestApp(&stubEmployee{}), "/signup", `{"name":"Asha"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSignInSuccess(t *testing.T) {
	w := doPost(newTestApp(&stubEmployee{}), "/login", `{"employee_id":"0412","password":"038271"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var envelope map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if envelope["message"] != "Login successful" {
		t.Fatalf("unexpected message: %v", envelope["message"])
	}
	if data, ok := envelope["data"].(map[string]interface{}); !ok || data["password"] != nil {
		t.Fatalf("password must not appear in the profile: %s", w.Body.String())
	}
}

func TestSignInBadCredentials(t *testing.T) {
	stub := &stubEmployee{
		signInErr: web.NewRequestError(errors.New("invalid employee ID or password"), http.StatusUnauthorized),
	}
	w := doPost(newTestApp(stub), "/login", `{"employee_id":"0412","password":"000000"}`)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	var envelope map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if envelope["success"] != false {
		t.Fatalf("expected success=false, got %v", envelope["success"])
	}
}
