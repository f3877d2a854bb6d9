package container

import (
	"context"
	"fmt"

	"book-library-api/internal/config"
	authorhandler "book-library-api/internal/domains/author/handler"
	authorrepo "book-library-api/internal/domains/author/repository"
	authorservice "book-library-api/internal/domains/author/service"
	bookhandler "book-library-api/internal/domains/book/handler"
	bookrepo "book-library-api/internal/domains/book/repository"
	bookservice "book-library-api/internal/domains/book/service"
	"book-library-api/internal/domains/stats"
	userhandler "book-library-api/internal/domains/user/handler"
	userrepo "book-library-api/internal/domains/user/repository"
	userservice "book-library-api/internal/domains/user/service"
	votehandler "book-library-api/internal/domains/vote/handler"
	voterepo "book-library-api/internal/domains/vote/repository"
	voteservice "book-library-api/internal/domains/vote/service"
	infracache "book-library-api/internal/infrastructure/cache"
	"book-library-api/internal/infrastructure/database"
	"book-library-api/internal/infrastructure/email"
	"book-library-api/pkg/jwt"
	"book-library-api/pkg/logger"
)

// Container wires every layer together at startup
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  *infracache.RedisCache

	JWTManager   *jwt.Manager
	EmailService email.EmailService
	Stats        stats.Service

	AuthorHandler *authorhandler.AuthorHandler
	BookHandler   *bookhandler.BookHandler
	VoteHandler   *votehandler.VoteHandler
	UserHandler   *userhandler.UserHandler
}

// New builds the container: config -> infrastructure -> domains
func New(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("database initialization failed: %w", err)
	}

	redisCache := infracache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(ctx); err != nil {
		db.Pool.Close()
		return nil, fmt.Errorf("redis initialization failed: %w", err)
	}

	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiryMinutes)
	emailService := email.NewDevEmailService(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From)
	statsService := stats.NewService()

	authorRepository := authorrepo.NewPostgresRepository(db.Pool)
	bookRepository := bookrepo.NewPostgresRepository(db.Pool)
	voteRepository := voterepo.NewPostgresRepository(db.Pool)
	userRepository := userrepo.NewPostgresRepository(db.Pool)

	authorService := authorservice.NewAuthorService(authorRepository, cfg.App.PerPage)
	bookService := bookservice.NewBookService(bookRepository, statsService, db.Pool, redisCache, cfg.App.PerPage)
	voteService := voteservice.NewVoteService(voteRepository, statsService, db.Pool, redisCache, cfg.App.PerPage)
	userService := userservice.NewUserService(userRepository, jwtManager, emailService, cfg.App.BaseURL)

	return &Container{
		Config:       cfg,
		DB:           db,
		Cache:        redisCache,
		JWTManager:   jwtManager,
		EmailService: emailService,
		Stats:        statsService,

		AuthorHandler: authorhandler.NewAuthorHandler(authorService),
		BookHandler:   bookhandler.NewBookHandler(bookService),
		VoteHandler:   votehandler.NewVoteHandler(voteService),
		UserHandler:   userhandler.NewUserHandler(userService),
	}, nil
}

// Close releases infrastructure connections
func (c *Container) Close() {
	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Error("failed to close redis connection", err)
		}
	}
}
