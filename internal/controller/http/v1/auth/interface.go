package auth

import (
	"context"

	"evfleet/backend/internal/repository/postgres/employee"
)

type Employee interface {
	SignUp(ctx context.Context, request employee.SignUpRequest) (employee.SignUpResponse, error)
	SignIn(ctx context.Context, request employee.SignInRequest) (employee.ProfileResponse, error)
}
