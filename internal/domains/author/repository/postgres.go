package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"book-library-api/internal/domains/author"
	"book-library-api/internal/shared/query"
)

type postgresAuthorRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresAuthorRepository{pool: pool}
}

var authorColumns = []interface{}{
	"id", "first_name", "last_name", "birth_date", "author_average_score",
}

func (r *postgresAuthorRepository) List(ctx context.Context, p query.Params) ([]*author.Author, int, error) {
	desc := author.Descriptor()

	countSQL, countArgs, err := query.BuildCount(desc, p)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count authors: %w", err)
	}

	selectSQL, selectArgs, err := query.BuildSelect(desc, p, authorColumns...)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, selectSQL, selectArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	var authors []*author.Author
	for rows.Next() {
		a := &author.Author{}
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.BirthDate, &a.AuthorAverageScore); err != nil {
			return nil, 0, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read authors: %w", err)
	}

	return authors, total, nil
}

func (r *postgresAuthorRepository) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	a := &author.Author{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, first_name, last_name, birth_date, author_average_score
		 FROM authors WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.FirstName, &a.LastName, &a.BirthDate, &a.AuthorAverageScore)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	return a, nil
}

func (r *postgresAuthorRepository) ListBooks(ctx context.Context, authorID int64) ([]author.BookSummary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, isbn, number_of_pages, description,
		        number_of_votes, score_sum, average_book_score
		 FROM books WHERE author_id = $1
		 ORDER BY id`,
		authorID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list author books: %w", err)
	}
	defer rows.Close()

	var books []author.BookSummary
	for rows.Next() {
		var b author.BookSummary
		err := rows.Scan(&b.ID, &b.Title, &b.ISBN, &b.NumberOfPages, &b.Description,
			&b.NumberOfVotes, &b.ScoreSum, &b.AverageBookScore)
		if err != nil {
			return nil, fmt.Errorf("failed to scan author book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read author books: %w", err)
	}

	return books, nil
}

func (r *postgresAuthorRepository) Create(ctx context.Context, a *author.Author) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO authors (first_name, last_name, birth_date, author_average_score)
		 VALUES ($1, $2, $3, 0)
		 RETURNING id, author_average_score`,
		a.FirstName, a.LastName, a.BirthDate,
	).Scan(&a.ID, &a.AuthorAverageScore)

	if err != nil {
		return fmt.Errorf("failed to create author: %w", err)
	}

	return nil
}

func (r *postgresAuthorRepository) Update(ctx context.Context, a *author.Author) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE authors SET first_name = $2, last_name = $3, birth_date = $4 WHERE id = $1`,
		a.ID, a.FirstName, a.LastName, a.BirthDate,
	)
	if err != nil {
		return fmt.Errorf("failed to update author: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}

	return nil
}

func (r *postgresAuthorRepository) Delete(ctx context.Context, id int64) error {
	// books are removed by ON DELETE CASCADE
	tag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}

	return nil
}
