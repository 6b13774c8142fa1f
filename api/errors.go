package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	errorInternalServer    = ErrorResponse{Code: 999, Message: "internal server error"}
	errorInvalidParameters = ErrorResponse{Code: 1000, Message: "invalid parameters"}
	errorUnknownToilet     = ErrorResponse{Code: 1001, Message: "toilet not found"}
	errorDataUnavailable   = ErrorResponse{Code: 1002, Message: "toilet data unavailable, try again later"}
	errorUnknownLocation   = ErrorResponse{Code: 1003, Message: "location not found"}
	errorInvalidReview     = ErrorResponse{Code: 1004, Message: "invalid review"}
	errorReviewNotSaved    = ErrorResponse{Code: 1005, Message: "review could not be saved, try again later"}
)

// abortWithEncoding aborts the request with the error response and logs
// the underlying errors.
func abortWithEncoding(c *gin.Context, code int, resp ErrorResponse, errs ...error) {
	for _, err := range errs {
		log.WithFields(logrus.Fields{
			"prefix": "gin",
			"status": code,
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"error":  err.Error(),
		}).Warn("request aborted")
	}

	c.AbortWithStatusJSON(code, gin.H{"error": resp})
}
