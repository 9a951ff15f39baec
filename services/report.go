package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/beuelvinc/pageloot-hw/models"
)

// ReportService answers the read-only expense queries: date-range
// filtering and the monthly per-category summary.
type ReportService struct {
	db *sql.DB
}

func NewReportService(db *sql.DB) *ReportService {
	return &ReportService{db: db}
}

// ExpensesByDateRange returns the user's expenses whose date falls in
// the inclusive range [start, end]. Dates are ISO "YYYY-MM-DD" strings,
// so the range comparison is a plain BETWEEN. An unknown user yields an
// empty result, not an error.
func (s *ReportService) ExpensesByDateRange(ctx context.Context, userID int64, start, end string) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, title, amount, date, category
		FROM expenses
		WHERE user_id = ? AND date BETWEEN ? AND ?
		ORDER BY id
	`, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses by date range: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.User, &e.Title, &e.Amount, &e.Date, &e.Category); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// CategorySummary groups the user's expenses for the given month and
// year by category and sums the amounts. Categories with no expenses in
// the period are omitted.
func (s *ReportService) CategorySummary(ctx context.Context, userID int64, month, year int) ([]models.CategoryTotal, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT category, SUM(amount)
		FROM expenses
		WHERE user_id = ? AND strftime('%Y', date) = ? AND strftime('%m', date) = ?
		GROUP BY category
	`, userID, fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month))
	if err != nil {
		return nil, fmt.Errorf("failed to query category summary: %w", err)
	}
	defer rows.Close()

	summary := []models.CategoryTotal{}
	for rows.Next() {
		var t models.CategoryTotal
		if err := rows.Scan(&t.Category, &t.Total); err != nil {
			return nil, fmt.Errorf("failed to scan category total: %w", err)
		}
		summary = append(summary, t)
	}
	return summary, rows.Err()
}
