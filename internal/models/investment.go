package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvestmentStatusPending is the status assigned to a new investment when
// the caller does not supply one.
const InvestmentStatusPending = "pending"

// Investment is a row in the past_investments ledger.
type Investment struct {
	ID              int64
	UserID          int64
	IPOID           int64
	SharesPurchased int64
	PurchasePrice   decimal.Decimal
	SoldDate        time.Time
	Status          string
}

// InvestmentRecord is an investment joined with identifying fields of its
// IPO, as returned by the list-for-user query.
type InvestmentRecord struct {
	Investment
	IPOName string
	Symbol  string
	IPODate *time.Time
}
