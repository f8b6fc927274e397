//go:build unit

package api_test

import (
	"net/http"

	"travel-booking/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// fakeAuth stands in for RequireAuth: any Authorization header authenticates as the given identity.
func fakeAuth(id uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", id)
		c.Set("user_role", role)
		c.Next()
	}
}

// metricsSpy records the outcomes handlers report.
type metricsSpy struct {
	bookings []string
	verified []string
}

func (m *metricsSpy) BookingOutcome(outcome string) { m.bookings = append(m.bookings, outcome) }

func (m *metricsSpy) PaymentVerified(status string, changed bool) {
	if changed {
		status += ":changed"
	}
	m.verified = append(m.verified, status)
}

func strPtr(s string) *string { return &s }
