package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/crypto/bcrypt"

	"book-library-api/internal/config"
	"book-library-api/internal/domains/author"
	"book-library-api/internal/domains/stats"
	infradb "book-library-api/internal/infrastructure/database"
	"book-library-api/pkg/database"
	"book-library-api/pkg/logger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type sampleAuthor struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	BirthDate string `json:"birth_date"`
}

type sampleBook struct {
	Title         string `json:"title"`
	ISBN          int64  `json:"isbn"`
	NumberOfPages int    `json:"number_of_pages"`
	Description   string `json:"description"`
	AuthorID      int64  `json:"author_id"`
}

type sampleUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sampleVote struct {
	Points  int    `json:"points"`
	Comment string `json:"comment"`
	BookID  int64  `json:"book_id"`
	UserID  int64  `json:"user_id"`
}

func connect(ctx context.Context) (*infradb.PostgresDB, error) {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	db := infradb.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// addData loads the samples in one transaction and recomputes every book's
// aggregates at the end, so a partial load never leaves stale scores behind.
func addData(ctx context.Context) error {
	var authors []sampleAuthor
	var books []sampleBook
	var users []sampleUser
	var votes []sampleVote

	if err := readSamples("authors.json", &authors); err != nil {
		return err
	}
	if err := readSamples("books.json", &books); err != nil {
		return err
	}
	if err := readSamples("users.json", &users); err != nil {
		return err
	}
	if err := readSamples("votes.json", &votes); err != nil {
		return err
	}

	db, err := connect(ctx)
	if err != nil {
		return err
	}
	defer db.Pool.Close()

	statsService := stats.NewService()

	err = database.WithTransaction(ctx, db.Pool, func(tx pgx.Tx) error {
		for _, a := range authors {
			birthDate, err := time.Parse(author.BirthDateFormat, a.BirthDate)
			if err != nil {
				return fmt.Errorf("invalid birth_date %q: %w", a.BirthDate, err)
			}
			_, err = tx.Exec(ctx,
				`INSERT INTO authors (first_name, last_name, birth_date, author_average_score)
				 VALUES ($1, $2, $3, 0)`,
				a.FirstName, a.LastName, birthDate)
			if err != nil {
				return fmt.Errorf("failed to insert author: %w", err)
			}
		}

		for _, b := range books {
			_, err := tx.Exec(ctx,
				`INSERT INTO books (title, isbn, number_of_pages, description, author_id,
				                    number_of_votes, score_sum, average_book_score)
				 VALUES ($1, $2, $3, $4, $5, 0, 0, 0)`,
				b.Title, b.ISBN, b.NumberOfPages, b.Description, b.AuthorID)
			if err != nil {
				return fmt.Errorf("failed to insert book %q: %w", b.Title, err)
			}
		}

		for _, u := range users {
			hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			_, err = tx.Exec(ctx,
				`INSERT INTO users (username, email, password) VALUES ($1, $2, $3)`,
				u.Username, u.Email, string(hash))
			if err != nil {
				return fmt.Errorf("failed to insert user %q: %w", u.Username, err)
			}
		}

		bookIDs := make(map[int64]struct{})
		for _, v := range votes {
			_, err := tx.Exec(ctx,
				`INSERT INTO votes (points, comment, book_id, user_id)
				 VALUES ($1, $2, $3, $4)`,
				v.Points, v.Comment, v.BookID, v.UserID)
			if err != nil {
				return fmt.Errorf("failed to insert vote: %w", err)
			}
			bookIDs[v.BookID] = struct{}{}
		}

		ids := make([]int64, 0, len(bookIDs))
		for id := range bookIDs {
			ids = append(ids, id)
		}
		return statsService.RecomputeBookStats(ctx, tx, ids...)
	})
	if err != nil {
		return err
	}

	logger.Info("sample data loaded", map[string]interface{}{
		"authors": len(authors),
		"books":   len(books),
		"users":   len(users),
		"votes":   len(votes),
	})

	return nil
}

func removeData(ctx context.Context) error {
	db, err := connect(ctx)
	if err != nil {
		return err
	}
	defer db.Pool.Close()

	_, err = db.Pool.Exec(ctx,
		`TRUNCATE authors, books, votes, users, hash_reset RESTART IDENTITY CASCADE`)
	if err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}

	logger.Info("all data removed", nil)
	return nil
}

func readSamples(name string, dest interface{}) error {
	data, err := os.ReadFile(filepath.Join(samplesDir, name))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}
