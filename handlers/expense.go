package handlers

import (
	"database/sql"
	"log"
	"net/http"
	"strconv"

	"github.com/beuelvinc/pageloot-hw/models"

	"github.com/gin-gonic/gin"
)

type ExpenseHandler struct {
	DB *sql.DB
}

// ListExpenses returns every expense across all users.
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	rows, err := h.DB.QueryContext(c.Request.Context(),
		`SELECT id, user_id, title, amount, date, category FROM expenses`)
	if err != nil {
		log.Printf("Error listing expenses: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expenses"})
		return
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.User, &e.Title, &e.Amount, &e.Date, &e.Category); err != nil {
			log.Printf("Error scanning expense: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expenses"})
			return
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		log.Printf("Error iterating expenses: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expenses"})
		return
	}

	log.Printf("%d expenses fetched", len(expenses))
	c.JSON(http.StatusOK, expenses)
}

func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req models.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fieldErrors(err))
		return
	}

	exists, err := h.userExists(c, req.User)
	if err != nil {
		log.Printf("Error checking user %d: %v", req.User, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create expense"})
		return
	}
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{
			"user": []string{"Invalid user id " + strconv.FormatInt(req.User, 10) + " - object does not exist."},
		})
		return
	}

	result, err := h.DB.ExecContext(c.Request.Context(),
		`INSERT INTO expenses (user_id, title, amount, date, category) VALUES (?, ?, ?, ?, ?)`,
		req.User, req.Title, *req.Amount, req.Date, req.Category,
	)
	if err != nil {
		log.Printf("Error creating expense: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create expense"})
		return
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Printf("Error reading new expense id: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create expense"})
		return
	}

	expense := models.Expense{
		ID:       id,
		User:     req.User,
		Title:    req.Title,
		Amount:   *req.Amount,
		Date:     req.Date,
		Category: req.Category,
	}
	log.Printf("Expense %q created with id %d", expense.Title, expense.ID)
	c.JSON(http.StatusCreated, expense)
}

func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	id, ok := expenseID(c)
	if !ok {
		return
	}

	expense, err := h.fetchExpense(c, id)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found."})
		return
	}
	if err != nil {
		log.Printf("Error fetching expense %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expense"})
		return
	}

	c.JSON(http.StatusOK, expense)
}

// UpdateExpense applies a partial update: only fields present in the
// request body change, everything else keeps its stored value.
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	id, ok := expenseID(c)
	if !ok {
		return
	}

	expense, err := h.fetchExpense(c, id)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found."})
		return
	}
	if err != nil {
		log.Printf("Error fetching expense %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expense"})
		return
	}

	var req models.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fieldErrors(err))
		return
	}

	if req.User != nil {
		exists, err := h.userExists(c, *req.User)
		if err != nil {
			log.Printf("Error checking user %d: %v", *req.User, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update expense"})
			return
		}
		if !exists {
			c.JSON(http.StatusBadRequest, gin.H{
				"user": []string{"Invalid user id " + strconv.FormatInt(*req.User, 10) + " - object does not exist."},
			})
			return
		}
		expense.User = *req.User
	}
	if req.Title != nil {
		expense.Title = *req.Title
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.Date != nil {
		expense.Date = *req.Date
	}
	if req.Category != nil {
		expense.Category = *req.Category
	}

	_, err = h.DB.ExecContext(c.Request.Context(),
		`UPDATE expenses SET user_id = ?, title = ?, amount = ?, date = ?, category = ? WHERE id = ?`,
		expense.User, expense.Title, expense.Amount, expense.Date, expense.Category, expense.ID,
	)
	if err != nil {
		log.Printf("Error updating expense %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update expense"})
		return
	}

	log.Printf("Expense %d updated", id)
	c.JSON(http.StatusOK, expense)
}

func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id, ok := expenseID(c)
	if !ok {
		return
	}

	if _, err := h.fetchExpense(c, id); err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found."})
			return
		}
		log.Printf("Error fetching expense %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expense"})
		return
	}

	if _, err := h.DB.ExecContext(c.Request.Context(), `DELETE FROM expenses WHERE id = ?`, id); err != nil {
		log.Printf("Error deleting expense %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expense"})
		return
	}

	log.Printf("Expense %d deleted", id)
	c.Status(http.StatusNoContent)
}

// expenseID parses the :id path segment. A non-numeric id can never
// match a stored expense, so it reports not-found directly.
func expenseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found."})
		return 0, false
	}
	return id, true
}

func (h *ExpenseHandler) fetchExpense(c *gin.Context, id int64) (models.Expense, error) {
	var e models.Expense
	err := h.DB.QueryRowContext(c.Request.Context(),
		`SELECT id, user_id, title, amount, date, category FROM expenses WHERE id = ?`, id,
	).Scan(&e.ID, &e.User, &e.Title, &e.Amount, &e.Date, &e.Category)
	return e, err
}

func (h *ExpenseHandler) userExists(c *gin.Context, userID int64) (bool, error) {
	var n int
	err := h.DB.QueryRowContext(c.Request.Context(),
		`SELECT COUNT(*) FROM users WHERE id = ?`, userID).Scan(&n)
	return n > 0, err
}
