package authorization

import (
	"github.com/gin-gonic/gin"
)

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString("user_role")
		if userRole != string(RoleAdmin) {
			c.JSON(403, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireStaff allows staff and admin roles through.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := UserRole(c.GetString("user_role"))
		if !userRole.CanViewAllTickets() {
			c.JSON(403, gin.H{
				"error": "staff access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CanAccessTicket reports whether a user may see a ticket: staff and admin
// see everything, customers only their own (matched by email).
func CanAccessTicket(userEmail string, userRole UserRole, customerEmail string) bool {
	if userRole.CanViewAllTickets() {
		return true
	}
	return userEmail == customerEmail
}
