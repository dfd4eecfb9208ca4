package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// IPOStatusUpcoming is the status assigned to a listing when the caller
// does not supply one.
const IPOStatusUpcoming = "upcoming"

// IPO is a row in the ipos table. Only Name and Symbol are required;
// the remaining columns are nullable.
type IPO struct {
	ID            int64
	Name          string
	Symbol        string
	CompanyName   *string
	OfferingPrice decimal.NullDecimal
	TotalShares   *int64
	IPODate       *time.Time
	Status        string
	Description   *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
