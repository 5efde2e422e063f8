//go:build unit

package api_test

import (
	"net/http"
	"time"

	"grooming-salon/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// fakeAuth stands in for RequireAuth: any Authorization header logs in as
// the given user.
func fakeAuth(userID uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Next()
	}
}

// sameInstant matches a time.Time by instant, ignoring its location.
type sameInstant time.Time

func (m sameInstant) Matches(x any) bool {
	t, ok := x.(time.Time)
	return ok && t.Equal(time.Time(m))
}

func (m sameInstant) String() string {
	return "is the same instant as " + time.Time(m).String()
}
