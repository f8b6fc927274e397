package queries

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"travel-booking/internal/infra"
)

// reviews shown inline on the listing detail page
const detailReviewLimit = 10

type ListingFilter struct {
	Location      string
	AvailableOnly bool
}

type ListingQueries interface {
	List(ctx context.Context, filter ListingFilter, cursor *Cursor, limit int) ([]*ListingView, *Cursor, error)
	GetBySlug(ctx context.Context, slug string) (*ListingDetailView, error)
}

type ListingReadStore interface {
	List(ctx context.Context, filter ListingFilter, after *Keyset, limit int32) ([]*ListingView, error)
	FindBySlug(ctx context.Context, slug string) (*ListingView, error)
}

type listingQueriesImpl struct {
	listings ListingReadStore
	reviews  ReviewReadStore
}

func NewListingQueries(listings ListingReadStore, reviews ReviewReadStore) ListingQueries {
	return &listingQueriesImpl{listings: listings, reviews: reviews}
}

func (q *listingQueriesImpl) List(ctx context.Context, filter ListingFilter, cursor *Cursor, limit int) ([]*ListingView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := ParseCursor(cursor)
	if err != nil {
		return nil, nil, err
	}
	filter.Location = strings.TrimSpace(filter.Location)

	rows, err := q.listings.List(ctx, filter, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	listings, next := page(rows, limit, listingKey)
	return listings, next, nil
}

// GetBySlug loads the listing and its latest reviews concurrently.
func (q *listingQueriesImpl) GetBySlug(ctx context.Context, slug string) (*ListingDetailView, error) {
	var (
		listing *ListingView
		reviews []*ReviewView
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		listing, err = q.listings.FindBySlug(gctx, slug)
		return err
	})
	g.Go(func() error {
		var err error
		reviews, err = q.reviews.ListByListingSlug(gctx, slug, nil, detailReviewLimit+1)
		return err
	})
	if err := g.Wait(); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	reviews, next := page(reviews, detailReviewLimit, reviewKey)
	if reviews == nil {
		reviews = []*ReviewView{}
	}
	return &ListingDetailView{ListingView: *listing, Reviews: reviews, NextReview: next}, nil
}

func listingKey(l *ListingView) (time.Time, uuid.UUID) { return l.CreatedAt, l.ID }
