package service

import (
	"github.com/gin-gonic/gin"
)

func SetupRoutes(s *Service) *gin.Engine {
	routes := gin.Default()
	routes.Use(RequestId)

	routes.GET("/activity/:username", s.Activity)

	cachedRoutes := routes.Group("/")
	{
		cachedRoutes.Use(s.CacheUserRequest)

		cachedRoutes.GET("/books", s.ListBooks)
		cachedRoutes.POST("/books", s.CreateBook)
		cachedRoutes.GET("/books/:bookId", s.GetBookById)
		cachedRoutes.PUT("/books/:bookId", s.UpdateBookById)
		cachedRoutes.DELETE("/books/:bookId", s.DeleteBookById)
		cachedRoutes.GET("/store", s.Store)
	}

	return routes
}
