package employee

import (
	"context"
	"database/sql"
	"math/rand"
	"net/http"
	"strconv"
	"strings"

	"evfleet/backend/foundation/web"
	"evfleet/backend/internal/entity"
	"evfleet/backend/internal/pkg/repository/postgresql"

	"github.com/pkg/errors"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// randomDigits returns a numeric string of the given length, leading zeros
// allowed.
func randomDigits(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		b.WriteString(strconv.Itoa(rand.Intn(10)))
	}
	return b.String()
}

func (r Repository) generateUniqueValue(ctx context.Context, column string, length int) (string, error) {
	// Draw, check, retry. The 4-/6-digit spaces are sparse enough in
	// practice that this terminates after very few rounds.
	for {
		value := randomDigits(length)

		var exists bool
		query := "SELECT EXISTS (SELECT 1 FROM employemaster WHERE " + column + " = $1)"
		if err := r.QueryRowContext(ctx, query, value).Scan(&exists); err != nil {
			return "", errors.Wrapf(err, "checking %s uniqueness", column)
		}
		if !exists {
			return value, nil
		}
	}
}

// SignUp generates a unique 4-digit employee id and 6-digit password,
// stores the profile and returns both credentials once.
func (r Repository) SignUp(ctx context.Context, request SignUpRequest) (SignUpResponse, error) {
	if err := r.ValidateStruct(&request, "Name", "Email", "PhoneNumber"); err != nil {
		return SignUpResponse{}, err
	}

	employeeID, err := r.generateUniqueValue(ctx, "employee_id", 4)
	if err != nil {
		return SignUpResponse{}, web.NewRequestError(err, http.StatusInternalServerError)
	}

	password, err := r.generateUniqueValue(ctx, "password", 6)
	if err != nil {
		return SignUpResponse{}, web.NewRequestError(err, http.StatusInternalServerError)
	}

	row := entity.Employee{
		EmployeeID:  &employeeID,
		Name:        request.Name,
		Age:         request.Age,
		Gender:      request.Gender,
		Address:     request.Address,
		Email:       request.Email,
		PhoneNumber: request.PhoneNumber,
		Password:    &password,
		Latitude:    request.Latitude,
		Longitude:   request.Longitude,
		Pincode:     request.Pincode,
		State:       request.State,
		City:        request.City,
	}

	if _, err = r.NewInsert().Model(&row).Exec(ctx); err != nil {
		return SignUpResponse{}, web.NewRequestError(errors.Wrap(err, "creating employee"), http.StatusInternalServerError)
	}

	return SignUpResponse{EmployeeID: employeeID, Password: password}, nil
}

// SignIn does an exact-match plaintext credential lookup and returns the
// profile without the password column.
func (r Repository) SignIn(ctx context.Context, request SignInRequest) (ProfileResponse, error) {
	if err := r.ValidateStruct(&request, "EmployeeID", "Password"); err != nil {
		return ProfileResponse{}, err
	}

	query := `
		SELECT
			employee_id,
			name,
			age,
			gender,
			address,
			email,
			phone_number,
			latitude,
			longitude,
			pincode,
			state,
			city
		FROM employemaster
		WHERE employee_id = $1 AND password = $2
	`

	var detail ProfileResponse
	err := r.QueryRowContext(ctx, query, *request.EmployeeID, *request.Password).Scan(
		&detail.EmployeeID,
		&detail.Name,
		&detail.Age,
		&detail.Gender,
		&detail.Address,
		&detail.Email,
		&detail.PhoneNumber,
		&detail.Latitude,
		&detail.Longitude,
		&detail.Pincode,
		&detail.State,
		&detail.City,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return ProfileResponse{}, web.NewRequestError(errors.New("invalid employee ID or password"), http.StatusUnauthorized)
	}
	if err != nil {
		return ProfileResponse{}, web.NewRequestError(errors.Wrap(err, "selecting employee"), http.StatusInternalServerError)
	}

	return detail, nil
}
