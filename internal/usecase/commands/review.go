package commands

import (
	"context"

	"travel-booking/internal/domain/access"
	"travel-booking/internal/domain/listing"
	domreview "travel-booking/internal/domain/review"
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReviewInput struct {
	Rating  int
	Comment string
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, actor access.Actor, listingSlug string, in ReviewInput) (uuid.UUID, error)
	UpdateReview(ctx context.Context, actor access.Actor, listingSlug string, reviewID uuid.UUID, in ReviewInput) error
	DeleteReview(ctx context.Context, actor access.Actor, listingSlug string, reviewID uuid.UUID) error
}

type reviewCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, clock: clk}
}

func (uc *reviewCommandsImpl) CreateReview(ctx context.Context, actor access.Actor, listingSlug string, in ReviewInput) (uuid.UUID, error) {
	rating, comment, err := parseReviewInput(in)
	if err != nil {
		return uuid.Nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := findListing(ctx, tx, listingSlug)
		if err != nil {
			return err
		}

		rev := domreview.NewReview(l.ID(), actor.ID, rating, comment, uc.clock.Now())
		if err := tx.Reviews().Create(ctx, tx.DB(), rev); err != nil {
			return err
		}
		createdID = rev.ID()
		return tx.RatingStats().RecalcListingRatingStats(ctx, tx.DB(), l.ID())
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (uc *reviewCommandsImpl) UpdateReview(ctx context.Context, actor access.Actor, listingSlug string, reviewID uuid.UUID, in ReviewInput) error {
	rating, comment, err := parseReviewInput(in)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, err := uc.loadOwned(ctx, tx, actor, listingSlug, reviewID)
		if err != nil {
			return err
		}
		rev.Update(rating, comment, uc.clock.Now())
		if err := tx.Reviews().Update(ctx, tx.DB(), rev); err != nil {
			return err
		}
		return tx.RatingStats().RecalcListingRatingStats(ctx, tx.DB(), rev.ListingID())
	})
}

func (uc *reviewCommandsImpl) DeleteReview(ctx context.Context, actor access.Actor, listingSlug string, reviewID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, err := uc.loadOwned(ctx, tx, actor, listingSlug, reviewID)
		if err != nil {
			return err
		}
		if err := tx.Reviews().Delete(ctx, tx.DB(), rev.ID()); err != nil {
			return err
		}
		return tx.RatingStats().RecalcListingRatingStats(ctx, tx.DB(), rev.ListingID())
	})
}

// loadOwned returns the review only when it belongs to the listing in the URL.
func (uc *reviewCommandsImpl) loadOwned(ctx context.Context, tx shared.Tx, actor access.Actor, listingSlug string, reviewID uuid.UUID) (*domreview.Review, error) {
	l, err := findListing(ctx, tx, listingSlug)
	if err != nil {
		return nil, err
	}
	rev, err := tx.Reviews().FindByIDForUpdate(ctx, tx.DB(), reviewID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	if rev.ListingID() != l.ID() {
		return nil, ErrReviewNotFound
	}
	if !access.CanModify(actor, rev) {
		return nil, access.ErrForbidden
	}
	return rev, nil
}

func findListing(ctx context.Context, tx shared.Tx, rawSlug string) (*listing.Listing, error) {
	slug, err := listing.ParseSlug(rawSlug)
	if err != nil {
		return nil, ErrListingNotFound
	}
	l, err := tx.Listings().FindBySlug(ctx, tx.DB(), slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return l, nil
}

func parseReviewInput(in ReviewInput) (domreview.Rating, domreview.Comment, error) {
	rating, err := domreview.NewRating(in.Rating)
	if err != nil {
		return domreview.Rating{}, domreview.Comment{}, err
	}
	comment, err := domreview.NewComment(in.Comment)
	if err != nil {
		return domreview.Rating{}, domreview.Comment{}, err
	}
	return rating, comment, nil
}
