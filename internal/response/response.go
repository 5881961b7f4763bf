package response

import (
	"github.com/gin-gonic/gin"
)

// SuccessResponse wraps a single entity representation.
type SuccessResponse struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

// ListResponse wraps a page of entity representations. Total is the number
// of rows matching the filter, ignoring pagination.
type ListResponse struct {
	Items    interface{} `json:"items"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Message  string      `json:"message"`
}

// ErrorDetail carries the machine-readable error code and message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// SendSuccess sends a single-entity envelope.
func SendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, SuccessResponse{
		Data:    data,
		Message: "Success",
	})
}

// SendList sends a list envelope.
func SendList(c *gin.Context, statusCode int, items interface{}, total int64, page, pageSize int) {
	c.JSON(statusCode, ListResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Message:  "Success",
	})
}

// SendError sends an error envelope.
func SendError(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}
