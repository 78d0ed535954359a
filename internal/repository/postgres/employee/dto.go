package employee

type SignUpRequest struct {
	Name        *string  `json:"name"         form:"name"`
	Age         *int     `json:"age"          form:"age"`
	Gender      *string  `json:"gender"       form:"gender"`
	Address     *string  `json:"address"      form:"address"`
	Email       *string  `json:"email"        form:"email"`
	PhoneNumber *string  `json:"phone_number" form:"phone_number"`
	Latitude    *float64 `json:"latitude"     form:"latitude"`
	Longitude   *float64 `json:"longitude"    form:"longitude"`
	Pincode     *string  `json:"pincode"      form:"pincode"`
	State       *string  `json:"state"        form:"state"`
	City        *string  `json:"city"         form:"city"`
}

// SignUpResponse is the only place the generated plaintext credentials are
// ever returned.
type SignUpResponse struct {
	EmployeeID string `json:"employee_id"`
	Password   string `json:"password"`
}

type SignInRequest struct {
	EmployeeID *string `json:"employee_id" form:"employee_id"`
	Password   *string `json:"password"    form:"password"`
}

// ProfileResponse is the employee row minus the password column.
type ProfileResponse struct {
	EmployeeID  string   `json:"employee_id"`
	Name        *string  `json:"name"`
	Age         *int     `json:"age"`
	Gender      *string  `json:"gender"`
	Address     *string  `json:"address"`
	Email       *string  `json:"email"`
	PhoneNumber *string  `json:"phone_number"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Pincode     *string  `json:"pincode"`
	State       *string  `json:"state"`
	City        *string  `json:"city"`
}
