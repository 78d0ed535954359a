package auth

import (
	"net/http"

	"evfleet/backend/foundation/web"
	"evfleet/backend/internal/repository/postgres/employee"
)

type Controller struct {
	employee Employee
}

func NewController(employee Employee) *Controller {
	return &Controller{employee}
}

// SignUp creates an employee profile. The generated employee id and
// plaintext password appear in this response and nowhere else.
func (uc Controller) SignUp(c *web.Context) error {
	var request employee.SignUpRequest
	if err := c.BindFunc(&request, "Name", "Email", "PhoneNumber"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.employee.SignUp(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"message": "Employee created successfully",
		"data":    response,
	}, http.StatusCreated)
}

func (uc Controller) SignIn(c *web.Context) error {
	var request employee.SignInRequest
	if err := c.BindFunc(&request, "EmployeeID", "Password"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.employee.SignIn(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"success": true,
		"message": "Login successful",
		"data":    response,
	}, http.StatusOK)
}
