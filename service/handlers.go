package service

import (
	"fmt"
	"net/http"

	"bookshelf/models"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

func (s *Service) ListBooks(c *gin.Context) {
	query := map[string]string{}
	for key, values := range c.Request.URL.Query() {
		query[key] = ""
		if len(values) > 0 {
			query[key] = values[0]
		}
	}

	books, err := s.Library.ListBooks(c.Request.Context(), query)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, books)
}

func (s *Service) GetBookById(c *gin.Context) {
	id := c.Param("bookId")

	book, err := s.Library.GetBook(c.Request.Context(), models.Id(id))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, book)
}

func (s *Service) CreateBook(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	book, err := s.Library.CreateBook(c.Request.Context(), payload)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, book)
}

func (s *Service) UpdateBookById(c *gin.Context) {
	id := c.Param("bookId")

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	book, err := s.Library.UpdateBook(c.Request.Context(), models.Id(id), updates)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, book)
}

func (s *Service) DeleteBookById(c *gin.Context) {
	id := c.Param("bookId")

	if err := s.Library.DeleteBook(c.Request.Context(), models.Id(id)); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func (s *Service) Store(c *gin.Context) {
	stats, err := s.Library.Stats(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (s *Service) Activity(c *gin.Context) {
	username := c.Param("username")

	userRequests, err := s.Requests.Read(username)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": err.Error(),
		})
		return
	}

	userRequestsRaw := make([]models.UserRequest, 0, len(userRequests))
	for _, request := range userRequests {
		var userRequest models.UserRequest
		if err := json.Unmarshal([]byte(request), &userRequest); err != nil {
			_ = c.Error(fmt.Errorf("activity entry for %s: %w", username, err))
			continue
		}
		userRequestsRaw = append(userRequestsRaw, userRequest)
	}

	c.JSON(http.StatusOK, userRequestsRaw)
}
