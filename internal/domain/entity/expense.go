package entity

import "time"

// Expense is a single spending record owned by exactly one user. Amount is
// kept in the currency's minor unit (cents) to avoid floating point drift.
type Expense struct {
	ID          int64     // Unique identifier of the expense row.
	UserID      int64     // Owning user; every read and write is scoped by it.
	Title       string    // Short label, e.g. "Groceries".
	Category    string    // Free-form category used for filtering.
	Amount      int64     // Amount in cents.
	Date        time.Time // When the expense occurred (not when it was recorded).
	Description string    // Optional longer note.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
