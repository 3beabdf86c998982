package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusCompleted OrderStatus = "Completed"
	StatusRejected  OrderStatus = "Rejected"
)

type Part struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Version  int             `json:"version"` // bumped on every update
}

type Order struct {
	ID        int64       `json:"id"`
	Customer  string      `json:"customer"` // username at creation time
	Item      string      `json:"item"`     // part name copied at creation time
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // bcrypt hash
	Role     Role   `json:"role"`
}
