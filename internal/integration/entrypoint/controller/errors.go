package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/quantum-finance/backend/internal/domain/error"
	"github.com/quantum-finance/backend/internal/integration/entrypoint/dto"
)

// respondError maps domain errors to HTTP status codes and writes the error
// body. Coded domain errors carry their code through to the client.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := ""
	message := "Internal server error"

	var validationErr *domainerror.ValidationError
	var transactionErr *domainerror.TransactionError
	var storageErr *domainerror.StorageError

	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
		code = string(validationErr.Code)
		message = validationErr.Message
	case errors.Is(err, domainerror.ErrTransactionNotFound):
		status = http.StatusNotFound
		code = string(domainerror.ErrCodeTransactionNotFound)
		message = "Transaction not found"
	case errors.Is(err, domainerror.ErrDuplicateTransactionID):
		status = http.StatusConflict
		code = string(domainerror.ErrCodeDuplicateTransactionID)
		message = "Transaction already exists"
	case errors.As(err, &transactionErr):
		status = http.StatusBadRequest
		code = string(transactionErr.Code)
		message = transactionErr.Message
	case errors.As(err, &storageErr):
		code = string(storageErr.Code)
		message = "Storage failure"
	}

	c.JSON(status, dto.ErrorResponse{Error: message, Code: code})
}
