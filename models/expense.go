package models

// Expense is a single dated outlay owned by a user. Dates are stored
// and exchanged as ISO "YYYY-MM-DD" strings.
type Expense struct {
	ID       int64   `json:"id"`
	User     int64   `json:"user"`
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	Category string  `json:"category"`
}

type CreateExpenseRequest struct {
	User     int64    `json:"user" binding:"required"`
	Title    string   `json:"title" binding:"required"`
	Amount   *float64 `json:"amount" binding:"required,gte=0"`
	Date     string   `json:"date" binding:"required,datetime=2006-01-02"`
	Category string   `json:"category" binding:"required"`
}

// UpdateExpenseRequest carries a partial update: nil fields keep their
// current values.
type UpdateExpenseRequest struct {
	User     *int64   `json:"user" binding:"omitempty"`
	Title    *string  `json:"title" binding:"omitempty"`
	Amount   *float64 `json:"amount" binding:"omitempty,gte=0"`
	Date     *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Category *string  `json:"category" binding:"omitempty"`
}

// CategoryTotal is one row of the monthly category summary.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}
