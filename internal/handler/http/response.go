package http

import "github.com/gin-gonic/gin"

// Response is the envelope of every JSON reply that is not a listing.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, Response{Success: false, Message: message})
}

func SuccessResponse(c *gin.Context, code int, message string) {
	c.JSON(code, Response{Success: true, Message: message})
}
