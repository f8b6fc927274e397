package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"travel-booking/internal/infra"
)

type ReviewQueries interface {
	ListByListing(ctx context.Context, slug string, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error)
}

type ReviewReadStore interface {
	// ListByListingSlug returns an empty slice for an unknown slug.
	ListByListingSlug(ctx context.Context, slug string, after *Keyset, limit int32) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	listings ListingReadStore
	repo     ReviewReadStore
}

func NewReviewQueries(listings ListingReadStore, repo ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{listings: listings, repo: repo}
}

func (q *reviewQueriesImpl) ListByListing(ctx context.Context, slug string, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := ParseCursor(cursor)
	if err != nil {
		return nil, nil, err
	}

	var rows []*ReviewView
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := q.listings.FindBySlug(gctx, slug)
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = q.repo.ListByListingSlug(gctx, slug, after, int32(limit+1))
		return err
	})
	if err := g.Wait(); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrListingNotFound
		}
		return nil, nil, err
	}

	reviews, next := page(rows, limit, reviewKey)
	return reviews, next, nil
}

func reviewKey(r *ReviewView) (time.Time, uuid.UUID) { return r.CreatedAt, r.ID }
