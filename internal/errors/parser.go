package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrorInfo is a parsed error: a stable code plus a user-facing message
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError converts database and infrastructure errors into a stable code
// and a message that does not leak internals. context names the entity the
// caller was working with ("order", "distributor profile", ...).
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "Something went wrong",
		}
	}

	errStr := strings.ToLower(err.Error())

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: notFoundMessage(context),
		}
	}

	// Postgres constraint violations
	if strings.Contains(errStr, "duplicate key") || strings.Contains(errStr, "unique constraint") {
		return ErrorInfo{
			Code:    ResourceAlreadyExists,
			Message: fmt.Sprintf("A %s with these details already exists", entityName(context)),
		}
	}
	if strings.Contains(errStr, "foreign key constraint") {
		return ErrorInfo{
			Code:    ResourceConflict,
			Message: "This record references data that no longer exists",
		}
	}
	if strings.Contains(errStr, "violates not-null constraint") {
		return ErrorInfo{
			Code:    ValidationRequired,
			Message: "A required field was left empty",
		}
	}

	// Connectivity
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "timeout") {
		return ErrorInfo{
			Code:    InternalDatabaseError,
			Message: "A backing service is unreachable. Please try again shortly",
		}
	}

	return ErrorInfo{
		Code:    InternalServerError,
		Message: "Something went wrong. Please try again shortly",
	}
}

// ParseAndRespond parses an error and writes the standard response
func ParseAndRespond(c *gin.Context, statusCode int, err error, context string) {
	info := ParseError(err, context)
	RespondWithError(c, statusCode, info.Code, info.Message)
}

func notFoundMessage(context string) string {
	if context == "" {
		return "The requested record was not found"
	}
	return fmt.Sprintf("The requested %s was not found", entityName(context))
}

func entityName(context string) string {
	// contexts arrive as verb phrases ("create order"); keep the last word
	parts := strings.Fields(context)
	if len(parts) == 0 {
		return "record"
	}
	return parts[len(parts)-1]
}
