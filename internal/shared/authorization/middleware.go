package authorization

import (
	"github.com/gin-gonic/gin"
)

// RequireRoles aborts the request unless the authenticated role is one
// of the allowed roles. Used for operator endpoints such as the overdue
// sweep trigger.
func RequireRoles(roles ...Role) gin.HandlerFunc {
	allowed := make(map[Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		role := Role(c.GetString("user_role"))
		if !allowed[role] {
			c.JSON(403, gin.H{
				"error": "insufficient role",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireStaff aborts the request for students and oversight roles.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := Role(c.GetString("user_role"))
		if !role.IsValid() || role.IsStudent() || role.IsOversight() {
			c.JSON(403, gin.H{
				"error": "staff access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
