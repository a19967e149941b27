package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/servilimp/servilimp-app/utils"
)

// sessionUser resolves the authenticated caller placed into the context by
// the auth middleware. Handlers receive an explicit (id, role) pair instead
// of poking at ambient state themselves.
func sessionUser(c *gin.Context) (uint, string, error) {
	idValue, exists := c.Get("user_id")
	if !exists {
		return 0, "", errors.New("no active session")
	}
	userID, ok := idValue.(uint)
	if !ok || userID == 0 {
		return 0, "", errors.New("invalid session user")
	}

	roleValue, _ := c.Get("role")
	role, _ := roleValue.(string)
	return userID, role, nil
}

// applyDateRange narrows a list query by the optional start_date/end_date
// parameters (YYYY-MM-DD, end date inclusive). On a malformed date it
// answers 400 and reports false so the handler can bail out.
func applyDateRange(c *gin.Context, query *gorm.DB, column string) (*gorm.DB, bool) {
	const layout = "2006-01-02"

	if startDate := c.Query("start_date"); startDate != "" {
		start, err := time.Parse(layout, startDate)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid start_date: %s", startDate))
			return nil, false
		}
		query = query.Where(column+" >= ?", start)
	}
	if endDate := c.Query("end_date"); endDate != "" {
		end, err := time.Parse(layout, endDate)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid end_date: %s", endDate))
			return nil, false
		}
		query = query.Where(column+" < ?", end.AddDate(0, 0, 1))
	}
	return query, true
}
