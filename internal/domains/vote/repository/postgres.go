package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"book-library-api/internal/domains/vote"
	"book-library-api/internal/shared/query"
	"book-library-api/pkg/database"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type postgresVoteRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) vote.Repository {
	return &postgresVoteRepository{pool: pool}
}

var voteColumns = []interface{}{
	"id", "points", "comment", "book_id", "user_id",
}

func (r *postgresVoteRepository) List(ctx context.Context, p query.Params) ([]*vote.Vote, int, error) {
	desc := vote.Descriptor()

	countSQL, countArgs, err := query.BuildCount(desc, p)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count votes: %w", err)
	}

	selectSQL, selectArgs, err := query.BuildSelect(desc, p, voteColumns...)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, selectSQL, selectArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list votes: %w", err)
	}
	defer rows.Close()

	var votes []*vote.Vote
	for rows.Next() {
		v := &vote.Vote{}
		if err := rows.Scan(&v.ID, &v.Points, &v.Comment, &v.BookID, &v.UserID); err != nil {
			return nil, 0, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read votes: %w", err)
	}

	return votes, total, nil
}

func (r *postgresVoteRepository) GetByID(ctx context.Context, q database.Queryer, id int64) (*vote.Vote, error) {
	v := &vote.Vote{}
	err := q.QueryRow(ctx,
		`SELECT id, points, comment, book_id, user_id FROM votes WHERE id = $1`,
		id,
	).Scan(&v.ID, &v.Points, &v.Comment, &v.BookID, &v.UserID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, vote.ErrVoteNotFound
		}
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}

	return v, nil
}

func (r *postgresVoteRepository) GetByUserAndBook(ctx context.Context, q database.Queryer, userID, bookID int64) (*vote.Vote, error) {
	v := &vote.Vote{}
	err := q.QueryRow(ctx,
		`SELECT id, points, comment, book_id, user_id
		 FROM votes WHERE user_id = $1 AND book_id = $2`,
		userID, bookID,
	).Scan(&v.ID, &v.Points, &v.Comment, &v.BookID, &v.UserID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, vote.ErrVoteNotFound
		}
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}

	return v, nil
}

func (r *postgresVoteRepository) Create(ctx context.Context, q database.Queryer, v *vote.Vote) error {
	err := q.QueryRow(ctx,
		`INSERT INTO votes (points, comment, book_id, user_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		v.Points, v.Comment, v.BookID, v.UserID,
	).Scan(&v.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return vote.ErrAlreadyVoted
			case pgForeignKeyViolation:
				return vote.ErrBookNotFound
			}
		}
		return fmt.Errorf("failed to create vote: %w", err)
	}

	return nil
}

func (r *postgresVoteRepository) Update(ctx context.Context, q database.Queryer, v *vote.Vote) error {
	tag, err := q.Exec(ctx,
		`UPDATE votes SET points = $2, comment = $3 WHERE id = $1`,
		v.ID, v.Points, v.Comment,
	)
	if err != nil {
		return fmt.Errorf("failed to update vote: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return vote.ErrVoteNotFound
	}

	return nil
}

func (r *postgresVoteRepository) Delete(ctx context.Context, q database.Queryer, id int64) (int64, error) {
	var bookID int64
	err := q.QueryRow(ctx,
		`DELETE FROM votes WHERE id = $1 RETURNING book_id`,
		id,
	).Scan(&bookID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, vote.ErrVoteNotFound
		}
		return 0, fmt.Errorf("failed to delete vote: %w", err)
	}

	return bookID, nil
}
