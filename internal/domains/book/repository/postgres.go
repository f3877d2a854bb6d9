package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"book-library-api/internal/domains/book"
	"book-library-api/internal/shared/query"
	"book-library-api/pkg/database"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type postgresBookRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresBookRepository{pool: pool}
}

var bookColumns = []interface{}{
	"id", "title", "isbn", "number_of_pages", "description",
	"author_id", "number_of_votes", "score_sum", "average_book_score",
}

func (r *postgresBookRepository) List(ctx context.Context, p query.Params) ([]*book.Book, int, error) {
	desc := book.Descriptor()

	countSQL, countArgs, err := query.BuildCount(desc, p)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	selectSQL, selectArgs, err := query.BuildSelect(desc, p, bookColumns...)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, selectSQL, selectArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	var books []*book.Book
	for rows.Next() {
		b := &book.Book{}
		err := rows.Scan(&b.ID, &b.Title, &b.ISBN, &b.NumberOfPages, &b.Description,
			&b.AuthorID, &b.NumberOfVotes, &b.ScoreSum, &b.AverageBookScore)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read books: %w", err)
	}

	if err := r.fillAuthorNames(ctx, books); err != nil {
		return nil, 0, err
	}

	return books, total, nil
}

// fillAuthorNames resolves the nested author block for a page of books with
// one batched lookup instead of a join inside the generated query.
func (r *postgresBookRepository) fillAuthorNames(ctx context.Context, books []*book.Book) error {
	if len(books) == 0 {
		return nil
	}

	seen := make(map[int64]struct{}, len(books))
	ids := make([]int64, 0, len(books))
	for _, b := range books {
		if _, ok := seen[b.AuthorID]; ok {
			continue
		}
		seen[b.AuthorID] = struct{}{}
		ids = append(ids, b.AuthorID)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, first_name, last_name FROM authors WHERE id = ANY($1)`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("failed to load book authors: %w", err)
	}
	defer rows.Close()

	type name struct{ first, last string }
	names := make(map[int64]name, len(ids))
	for rows.Next() {
		var id int64
		var n name
		if err := rows.Scan(&id, &n.first, &n.last); err != nil {
			return fmt.Errorf("failed to scan book author: %w", err)
		}
		names[id] = n
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read book authors: %w", err)
	}

	for _, b := range books {
		n := names[b.AuthorID]
		b.AuthorFirstName, b.AuthorLastName = n.first, n.last
	}

	return nil
}

func (r *postgresBookRepository) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	b := &book.Book{}
	err := r.pool.QueryRow(ctx,
		`SELECT b.id, b.title, b.isbn, b.number_of_pages, b.description,
		        b.author_id, b.number_of_votes, b.score_sum, b.average_book_score,
		        a.first_name, a.last_name
		 FROM books b
		 JOIN authors a ON a.id = b.author_id
		 WHERE b.id = $1`,
		id,
	).Scan(&b.ID, &b.Title, &b.ISBN, &b.NumberOfPages, &b.Description,
		&b.AuthorID, &b.NumberOfVotes, &b.ScoreSum, &b.AverageBookScore,
		&b.AuthorFirstName, &b.AuthorLastName)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	return b, nil
}

func (r *postgresBookRepository) Create(ctx context.Context, q database.Queryer, b *book.Book) error {
	err := q.QueryRow(ctx,
		`INSERT INTO books (title, isbn, number_of_pages, description, author_id,
		                    number_of_votes, score_sum, average_book_score)
		 VALUES ($1, $2, $3, $4, $5, 0, 0, 0)
		 RETURNING id`,
		b.Title, b.ISBN, b.NumberOfPages, b.Description, b.AuthorID,
	).Scan(&b.ID)

	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to create book: %w", err)
	}

	return nil
}

func (r *postgresBookRepository) Update(ctx context.Context, q database.Queryer, b *book.Book) (int64, error) {
	var oldAuthorID int64
	err := q.QueryRow(ctx,
		`SELECT author_id FROM books WHERE id = $1 FOR UPDATE`,
		b.ID,
	).Scan(&oldAuthorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, book.ErrBookNotFound
		}
		return 0, fmt.Errorf("failed to lock book: %w", err)
	}

	_, err = q.Exec(ctx,
		`UPDATE books
		 SET title = $2, isbn = $3, number_of_pages = $4, description = $5, author_id = $6
		 WHERE id = $1`,
		b.ID, b.Title, b.ISBN, b.NumberOfPages, b.Description, b.AuthorID,
	)
	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return 0, mapped
		}
		return 0, fmt.Errorf("failed to update book: %w", err)
	}

	return oldAuthorID, nil
}

func (r *postgresBookRepository) Delete(ctx context.Context, q database.Queryer, id int64) (int64, error) {
	// votes are removed by ON DELETE CASCADE
	var authorID int64
	err := q.QueryRow(ctx,
		`DELETE FROM books WHERE id = $1 RETURNING author_id`,
		id,
	).Scan(&authorID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, book.ErrBookNotFound
		}
		return 0, fmt.Errorf("failed to delete book: %w", err)
	}

	return authorID, nil
}

func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return book.ErrIsbnTaken
	case pgForeignKeyViolation:
		return book.ErrAuthorNotFound
	}
	return nil
}
