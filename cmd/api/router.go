package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"book-library-api/internal/shared/middleware"
	"book-library-api/pkg/container"
)

func setupRouter(c *container.Container) *gin.Engine {
	if c.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
	)

	router.GET("/health", healthCheck(c))

	auth := middleware.Auth(c.JWTManager)

	v1 := router.Group("/api/v1")
	{
		authors := v1.Group("/authors")
		{
			authors.GET("", c.AuthorHandler.List)
			authors.GET("/:id", c.AuthorHandler.Get)
			authors.GET("/:id/books", c.BookHandler.ListByAuthor)
			authors.POST("", auth, middleware.RequireJSON(), c.AuthorHandler.Create)
			authors.PUT("/:id", auth, middleware.RequireJSON(), c.AuthorHandler.Update)
			authors.DELETE("/:id", auth, c.AuthorHandler.Delete)
		}

		books := v1.Group("/books")
		{
			books.GET("", c.BookHandler.List)
			books.GET("/:id", c.BookHandler.Get)
			books.POST("", auth, middleware.RequireJSON(), c.BookHandler.Create)
			books.PUT("/:id", auth, middleware.RequireJSON(), c.BookHandler.Update)
			books.DELETE("/:id", auth, c.BookHandler.Delete)
		}

		v1.GET("/votes", c.VoteHandler.List)

		vote := v1.Group("/vote")
		{
			vote.GET("/:book_id", c.VoteHandler.ListForBook)
			vote.POST("", auth, middleware.RequireJSON(), c.VoteHandler.Create)
			vote.PUT("/:id", auth, middleware.RequireJSON(), c.VoteHandler.Update)
			vote.DELETE("/:id", auth, c.VoteHandler.Delete)
		}

		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", middleware.RequireJSON(), c.UserHandler.Register)
			authGroup.POST("/login", middleware.RequireJSON(), c.UserHandler.Login)
			authGroup.GET("/me", auth, c.UserHandler.Me)
			authGroup.PUT("/update/data", auth, middleware.RequireJSON(), c.UserHandler.UpdateData)
			authGroup.PUT("/update/password", auth, middleware.RequireJSON(), c.UserHandler.UpdatePassword)
			authGroup.POST("/reset/password", middleware.RequireJSON(), c.UserHandler.SendResetLink)
			authGroup.PUT("/reset/:hash", middleware.RequireJSON(), c.UserHandler.ResetPassword)
		}
	}

	return router
}

func healthCheck(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		checks := gin.H{"database": "ok", "redis": "ok"}

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			checks["database"] = err.Error()
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			checks["redis"] = err.Error()
		}

		ctx.JSON(status, gin.H{
			"name":    c.Config.App.Name,
			"version": c.Config.App.Version,
			"checks":  checks,
		})
	}
}
