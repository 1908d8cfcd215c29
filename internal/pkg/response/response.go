package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
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

// ValidationError carries the list of human-readable messages; the first
// one is what single-line UI surfaces show.
func ValidationError(c *gin.Context, messages []string) {
	c.JSON(422, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "VALIDATION_FAILED",
			"message": first(messages),
			"details": messages,
		},
	})
}

func first(messages []string) string {
	if len(messages) == 0 {
		return "Validation failed"
	}
	return messages[0]
}
