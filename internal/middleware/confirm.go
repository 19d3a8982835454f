// internal/middleware/confirm.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/grocer/internal/utils"
)

const ConfirmHeader = "X-Confirm"

// ConfirmationRequired guards destructive routes. The caller must send
// "X-Confirm: yes" or "?confirm=true"; otherwise the request is answered with 428.
func ConfirmationRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.ToLower(strings.TrimSpace(c.GetHeader(ConfirmHeader)))
		query := strings.ToLower(c.Query("confirm"))

		if header != "yes" && header != "true" && query != "true" {
			utils.ConfirmationRequiredResponse(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
