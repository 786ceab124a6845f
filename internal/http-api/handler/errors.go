package handler

import (
	"errors"
	"net/http"

	"bookhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// statusFor maps service sentinels onto HTTP statuses. Unknown errors are
// store failures and become 500s.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrBookNotFound),
		errors.Is(err, service.ErrListNotFound),
		errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrFragmentNotFound),
		errors.Is(err, service.ErrRatingNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrPageOutOfRange),
		errors.Is(err, service.ErrInvalidScore),
		errors.Is(err, service.ErrWrongPassword),
		errors.Is(err, service.ErrExternalUser):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUserExists),
		errors.Is(err, service.ErrListExists):
		return http.StatusConflict
	case errors.Is(err, service.ErrFavoritesProtected):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}
