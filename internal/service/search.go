package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/guttosm/recipe-service/internal/domain/model"
	"github.com/guttosm/recipe-service/internal/forkify"
	"github.com/guttosm/recipe-service/internal/session"
	"github.com/rs/zerolog/log"
)

// SearchService runs keyword searches and pages through their results.
type SearchService interface {
	// Search queries the upstream API, stores the results in the session and
	// returns the requested page.
	Search(ctx context.Context, sess *session.Session, query string, page int) (model.ResultsPage, error)
	// Page returns a page of the session's stored results.
	Page(sess *session.Session, page int) model.ResultsPage
}

// SearchServiceImpl implements SearchService.
type SearchServiceImpl struct {
	source  forkify.Source
	perPage int
}

// NewSearchService creates a new search service.
func NewSearchService(source forkify.Source, perPage int) SearchService {
	if perPage <= 0 {
		perPage = model.DefaultResultsPerPage
	}
	return &SearchServiceImpl{
		source:  source,
		perPage: perPage,
	}
}

// Search runs query for sess. A result arriving after a newer search started
// is discarded with session.ErrStaleResult.
func (s *SearchServiceImpl) Search(ctx context.Context, sess *session.Session, query string, page int) (model.ResultsPage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return model.ResultsPage{}, ErrEmptyQuery
	}

	gen := sess.BeginSearch()

	results, err := s.source.Search(ctx, query)
	if err != nil {
		log.Warn().
			Err(err).
			Str("query", query).
			Msg("recipe search failed")
		return model.ResultsPage{}, fmt.Errorf("failed to search %q: %w", query, err)
	}

	if err := sess.CommitSearch(gen, query, results); err != nil {
		log.Info().
			Str("client_id", sess.ClientID()).
			Str("query", query).
			Uint64("generation", gen).
			Msg("discarding superseded search")
		return model.ResultsPage{}, err
	}

	return model.Paginate(query, results, page, s.perPage), nil
}

// Page returns a page of the stored results.
func (s *SearchServiceImpl) Page(sess *session.Session, page int) model.ResultsPage {
	return sess.ResultsPage(page, s.perPage)
}
