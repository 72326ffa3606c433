package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Failure carries a payload the client still renders, flagged
// unsuccessful. Used for terminal page states that are not errors in
// the transport sense.
func Failure(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// RedirectHome signals the client to navigate home after a bounded
// delay. Used for broken-navigation guards and confirmation failures.
func RedirectHome(c *gin.Context, statusCode int, code string, message string, delaySeconds int) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
		"redirect": gin.H{
			"to":            "/",
			"after_seconds": delaySeconds,
		},
	})
}
