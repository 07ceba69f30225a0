package middleware

import "github.com/labstack/echo/v4"

// CallerID returns the authenticated caller identity stored in the context
// by JWTAuth. It returns "" on unauthenticated routes; callers that require
// an identity must treat the empty string as anonymous.
func CallerID(c echo.Context) string {
	if v, ok := c.Get("user_id").(string); ok {
		return v
	}
	return ""
}
