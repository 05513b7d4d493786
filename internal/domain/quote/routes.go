package quote

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the quote routes. None of them require auth.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	quotes := r.Group("/quotes")
	{
		quotes.POST("", handler.CreateQuote)
		quotes.GET("", handler.ListQuotes)
		quotes.GET("/:id", handler.GetQuote)
		quotes.PATCH("/:id", handler.UpdateQuote)
	}
}
