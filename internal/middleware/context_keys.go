package middleware

import "github.com/gin-gonic/gin"

// subjectKey is the key used to store the authenticated caller's id.
const subjectKey = contextKey("subject")

// GetSubjectFromContext retrieves the authenticated subject (the JWT "sub"
// claim) from the Gin context. It returns the subject and a boolean
// indicating if it was found.
func GetSubjectFromContext(c *gin.Context) (string, bool) {
	if val, exists := c.Get(string(subjectKey)); exists {
		subject, ok := val.(string)
		return subject, ok
	}
	// check in the request context as well
	if subject, ok := c.Request.Context().Value(subjectKey).(string); ok {
		return subject, true
	}
	return "", false
}
