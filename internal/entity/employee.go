package entity

import (
	"github.com/uptrace/bun"
)

type Employee struct {
	bun.BaseModel `bun:"table:employemaster"`

	EmployeeID  *string  `json:"employee_id"  bun:"employee_id,pk"`
	Name        *string  `json:"name"         bun:"name"`
	Age         *int     `json:"age"          bun:"age"`
	Gender      *string  `json:"gender"       bun:"gender"`
	Address     *string  `json:"address"      bun:"address"`
	Email       *string  `json:"email"        bun:"email"`
	PhoneNumber *string  `json:"phone_number" bun:"phone_number"`
	Password    *string  `json:"password,omitempty" bun:"password"`
	Latitude    *float64 `json:"latitude"     bun:"latitude"`
	Longitude   *float64 `json:"longitude"    bun:"longitude"`
	Pincode     *string  `json:"pincode"      bun:"pincode"`
	State       *string  `json:"state"        bun:"state"`
	City        *string  `json:"city"         bun:"city"`
}
