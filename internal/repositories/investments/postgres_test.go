package investments

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"

	"github.com/dkhamitov/ipotracker/internal/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const (
	insertQ           = `(?s)^INSERT\s+INTO\s+past_investments\s*\(user_id,\s*ipo_id,\s*shares_purchased,\s*purchase_price,\s*sold_date,\s*status\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*COALESCE\(\$5,\s*CURRENT_TIMESTAMP\),\s*\$6\)\s*RETURNING\s+investment_id\s*$`
	updateWithDateQ   = `(?s)^UPDATE\s+past_investments\s+SET\s+status\s*=\s*\$1,\s*sold_date\s*=\s*\$2\s+WHERE\s+investment_id\s*=\s*\$3\s+AND\s+user_id\s*=\s*\$4\s*$`
	updateStatusOnlyQ = `(?s)^UPDATE\s+past_investments\s+SET\s+status\s*=\s*\$1\s+WHERE\s+investment_id\s*=\s*\$2\s+AND\s+user_id\s*=\s*\$3\s*$`
	listQ             = `(?s)^SELECT\s+pi\.investment_id,.*FROM\s+past_investments\s+AS\s+pi\s+JOIN\s+ipos\s+AS\s+i\s+ON\s+pi\.ipo_id\s*=\s*i\.ipo_id\s+WHERE\s+pi\.user_id\s*=\s*\$1\s+ORDER\s+BY\s+pi\.sold_date\s+DESC\s*$`
)

func TestAdd_WithSoldDate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	price := decimal.RequireFromString("18.25")
	sold := time.Date(2024, 7, 1, 15, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"investment_id"}).AddRow(int64(3))
	mock.ExpectQuery(insertQ).
		WithArgs(int64(1), int64(7), int64(100), price, sold, "pending").
		WillReturnRows(rows)

	inv := &models.Investment{UserID: 1, IPOID: 7, SharesPurchased: 100, PurchasePrice: price, Status: "pending"}
	id, err := repo.Add(context.Background(), inv, &sold)
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if id != 3 || inv.ID != 3 {
		t.Fatalf("unexpected id: %d", id)
	}
}

func TestAdd_DefaultsSoldDate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	price := decimal.RequireFromString("18.25")

	rows := sqlmock.NewRows([]string{"investment_id"}).AddRow(int64(4))
	mock.ExpectQuery(insertQ).
		WithArgs(int64(1), int64(7), int64(100), price, nil, "pending").
		WillReturnRows(rows)

	inv := &models.Investment{UserID: 1, IPOID: 7, SharesPurchased: 100, PurchasePrice: price, Status: "pending"}
	id, err := repo.Add(context.Background(), inv, nil)
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if id != 4 {
		t.Fatalf("unexpected id: %d", id)
	}
}

func TestAdd_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQ).
		WillReturnError(errors.New("fk violation"))

	inv := &models.Investment{UserID: 999, IPOID: 7, SharesPurchased: 1, PurchasePrice: decimal.New(1, 0), Status: "pending"}
	_, err := repo.Add(context.Background(), inv, nil)
	if err == nil || !regexp.MustCompile(`db error: .*fk violation`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestUpdateStatus_WithSoldDate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	sold := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(updateWithDateQ).
		WithArgs("sold", sold, int64(3), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateStatus(context.Background(), 3, 1, "sold", &sold); err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
}

func TestUpdateStatus_StatusOnly(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(updateStatusOnlyQ).
		WithArgs("sold", int64(3), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateStatus(context.Background(), 3, 1, "sold", nil); err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
}

func TestUpdateStatus_NoMatchIsStillSuccess(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(updateStatusOnlyQ).
		WithArgs("sold", int64(3), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.UpdateStatus(context.Background(), 3, 2, "sold", nil); err != nil {
		t.Fatalf("UpdateStatus with zero matches must succeed, got %v", err)
	}
}

func TestUpdateStatus_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(updateStatusOnlyQ).
		WithArgs("sold", int64(3), int64(1)).
		WillReturnError(errors.New("db down"))

	err := repo.UpdateStatus(context.Background(), 3, 1, "sold", nil)
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestListByUser_Rows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	s1 := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	s2 := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	ipoDate := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"investment_id", "user_id", "ipo_id", "shares_purchased", "purchase_price",
		"sold_date", "status", "ipo_name", "symbol", "ipo_date",
	}).
		AddRow(int64(3), int64(1), int64(7), int64(100), "18.25", s1, "sold", "Acme Robotics", "ACME", ipoDate).
		AddRow(int64(2), int64(1), int64(8), int64(50), "30.00", s2, "pending", "Globex", "GLBX", nil)

	mock.ExpectQuery(listQ).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].ID != 3 || got[0].Status != "sold" || got[0].IPOName != "Acme Robotics" {
		t.Fatalf("unexpected first record: %+v", got[0])
	}
	if !got[0].PurchasePrice.Equal(decimal.RequireFromString("18.25")) {
		t.Fatalf("unexpected purchase price: %v", got[0].PurchasePrice)
	}
	if !got[0].SoldDate.After(got[1].SoldDate) {
		t.Fatalf("rows must come back in descending sold_date order")
	}
	if got[1].IPODate != nil {
		t.Fatalf("expected nil ipo date on second record, got %v", got[1].IPODate)
	}
}

func TestListByUser_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listQ).
		WithArgs(int64(1)).
		WillReturnError(errors.New("db down"))

	_, err := repo.ListByUser(context.Background(), 1)
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
