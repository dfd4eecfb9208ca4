package models

import "time"

// WatchlistEntry is a row in the ongoing_watchlist join table. One entry
// means one user following one IPO; the schema permits the same pair to
// appear more than once.
type WatchlistEntry struct {
	ID         int64
	UserID     int64
	IPOID      int64
	ExpiryDate *time.Time
}

// WatchlistItem is a watchlist row joined with the followed IPO's details,
// as returned by the list-for-user query.
type WatchlistItem struct {
	WatchlistID int64
	ExpiryDate  *time.Time
	IPO         IPO
}
