package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/beuelvinc/pageloot-hw/services"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: service}
}

// ExpensesByDateRange lists one user's expenses inside an inclusive
// date range. Both start_date and end_date are required.
func (h *ReportHandler) ExpensesByDateRange(c *gin.Context) {
	userID, ok := reportUserID(c)
	if !ok {
		return
	}

	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate == "" || endDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both start_date and end_date are required."})
		return
	}
	if !validDate(startDate) || !validDate(endDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dates must use the YYYY-MM-DD format."})
		return
	}

	expenses, err := h.Service.ExpensesByDateRange(c.Request.Context(), userID, startDate, endDate)
	if err != nil {
		log.Printf("Error querying date range for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expenses"})
		return
	}

	log.Printf("%d expenses fetched for user %d from %s to %s", len(expenses), userID, startDate, endDate)
	c.JSON(http.StatusOK, expenses)
}

// CategorySummary returns per-category totals for one user in a given
// month and year. Both month and year are required.
func (h *ReportHandler) CategorySummary(c *gin.Context) {
	userID, ok := reportUserID(c)
	if !ok {
		return
	}

	monthStr := c.Query("month")
	yearStr := c.Query("year")
	if monthStr == "" || yearStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both month and year are required."})
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Month must be an integer between 1 and 12."})
		return
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Year must be an integer."})
		return
	}

	summary, err := h.Service.CategorySummary(c.Request.Context(), userID, month, year)
	if err != nil {
		log.Printf("Error building category summary for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}

	log.Printf("Category summary generated for user %d for %d/%d", userID, month, year)
	c.JSON(http.StatusOK, summary)
}

func reportUserID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found."})
		return 0, false
	}
	return id, true
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
