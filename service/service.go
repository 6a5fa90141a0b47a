package service

import (
	"errors"
	"net/http"

	"bookshelf/cache"
	"bookshelf/db"
	"bookshelf/library"
	"bookshelf/models"
	"github.com/gin-gonic/gin"
)

// Service holds what the HTTP handlers need.
type Service struct {
	Library  models.Library
	Requests cache.RequestCacher
}

func NewService(lib models.Library, cacher cache.RequestCacher) *Service {
	return &Service{lib, cacher}
}

// statusFor maps engine and storage errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, library.ErrInvalidQuery),
		errors.Is(err, library.ErrMissingField),
		errors.Is(err, library.ErrFieldNotAllowed):
		return http.StatusBadRequest
	case errors.Is(err, library.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, db.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(statusFor(err), gin.H{"message": err.Error()})
}
