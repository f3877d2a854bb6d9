package service

import (
	"context"
	"net/url"

	"book-library-api/internal/domains/author"
	"book-library-api/internal/shared/query"
	"book-library-api/pkg/logger"
)

type authorService struct {
	repo    author.Repository
	perPage int
}

func NewAuthorService(repo author.Repository, perPage int) author.Service {
	return &authorService{repo: repo, perPage: perPage}
}

func (s *authorService) List(ctx context.Context, values url.Values, path string) ([]map[string]interface{}, query.Pagination, error) {
	params := query.Parse(values, author.Descriptor(), s.perPage)

	authors, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, query.Pagination{}, err
	}

	records := make([]map[string]interface{}, 0, len(authors))
	for _, a := range authors {
		records = append(records, a.Project(params.Fields))
	}

	return records, query.Paginate(total, params, path), nil
}

func (s *authorService) Get(ctx context.Context, id int64) (*author.Author, []author.BookSummary, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	books, err := s.repo.ListBooks(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return a, books, nil
}

func (s *authorService) Create(ctx context.Context, req author.UpsertRequest) (*author.Author, error) {
	a := &author.Author{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: req.ParsedBirthDate(),
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	logger.Info("author created", map[string]interface{}{
		"author_id": a.ID,
	})

	return a, nil
}

func (s *authorService) Update(ctx context.Context, id int64, req author.UpsertRequest) (*author.Author, error) {
	a := &author.Author{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: req.ParsedBirthDate(),
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}

	// re-read so the response carries the derived score
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("author deleted", map[string]interface{}{
		"author_id": id,
	})

	return nil
}
