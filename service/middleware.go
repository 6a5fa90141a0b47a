package service

import (
	"log"

	"bookshelf/models"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const (
	HEADER_REQUEST_ID = "X-Request-ID"
	HEADER_USERNAME   = "X-Username"
	KEY_REQUEST_ID    = "request_id"
)

// RequestId tags every request with an id, reusing the one the client sent.
func RequestId(c *gin.Context) {
	id := c.GetHeader(HEADER_REQUEST_ID)
	if id == "" {
		id = uuid.New().String()
	}
	c.Set(KEY_REQUEST_ID, id)
	c.Header(HEADER_REQUEST_ID, id)
	c.Next()
}

// CacheUserRequest records the request in the user's activity log.
func (s *Service) CacheUserRequest(c *gin.Context) {
	username := c.GetHeader(HEADER_USERNAME)
	if username == "" {
		c.Next()
		return
	}

	userRequest := models.UserRequest{
		RequestId: c.GetString(KEY_REQUEST_ID),
		Method:    c.Request.Method,
		Route:     c.Request.URL.Path,
	}

	// Not failing a request if there's a problem caching it
	request, err := json.Marshal(userRequest)
	if err == nil {
		err = s.Requests.Write(username, request)
	}
	if err != nil {
		log.Printf("caching request for %s failed: %v", username, err)
	}

	c.Next()
}
