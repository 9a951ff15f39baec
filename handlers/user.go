package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/beuelvinc/pageloot-hw/models"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	DB *sql.DB
}

// ListUsers returns every user in store order.
func (h *UserHandler) ListUsers(c *gin.Context) {
	rows, err := h.DB.QueryContext(c.Request.Context(), `SELECT id, username, email FROM users`)
	if err != nil {
		log.Printf("Error listing users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email); err != nil {
			log.Printf("Error scanning user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		log.Printf("Error iterating users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	log.Printf("%d users fetched", len(users))
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fieldErrors(err))
		return
	}

	result, err := h.DB.ExecContext(c.Request.Context(),
		`INSERT INTO users (username, email) VALUES (?, ?)`,
		req.Username, req.Email,
	)
	if err != nil {
		log.Printf("Error creating user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Printf("Error reading new user id: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	user := models.User{ID: id, Username: req.Username, Email: req.Email}
	log.Printf("User %s created with id %d", user.Username, user.ID)
	c.JSON(http.StatusCreated, user)
}
