package handlers

import (
	"log"
	"net/http"
	"strconv"

	"restaurant-api/middleware"
	"restaurant-api/models"

	"github.com/gin-gonic/gin"
)

// parseID reads a numeric id path parameter; responds 400 itself on garbage.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func httpStatus(s models.Status) int {
	switch s {
	case models.StatusCreated:
		return http.StatusCreated
	case models.StatusUpdated, models.StatusDeleted:
		return http.StatusOK
	case models.StatusNotFound:
		return http.StatusNotFound
	case models.StatusReferenceNotFound, models.StatusInvalid:
		return http.StatusBadRequest
	case models.StatusDuplicate, models.StatusConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeResult maps a service outcome onto an HTTP response. Successful
// mutations are logged with the acting staff user.
func writeResult(c *gin.Context, res models.Result, message string) {
	code := httpStatus(res.Status)
	switch res.Status {
	case models.StatusCreated:
		logMutation(c, message)
		c.JSON(code, gin.H{"message": message, "id": res.CreatedID})
	case models.StatusUpdated, models.StatusDeleted:
		logMutation(c, message)
		c.JSON(code, gin.H{"message": message})
	default:
		c.JSON(code, gin.H{"error": res.Message()})
	}
}

func logMutation(c *gin.Context, message string) {
	if userID := middleware.GetUserID(c); userID != 0 {
		log.Printf("%s %s: %s (user %d)", c.Request.Method, c.Request.URL.Path, message, userID)
	}
}
