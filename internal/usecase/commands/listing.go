package commands

import (
	"context"

	"travel-booking/internal/domain/access"
	"travel-booking/internal/domain/listing"
	"travel-booking/internal/domain/money"
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/patch"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// maxSlugAttempts bounds the numeric suffix search for a free slug.
const maxSlugAttempts = 50

type CreateListingInput struct {
	Name          string
	Description   string
	Location      string
	PricePerNight string
}

type UpdateListingInput struct {
	Name          *string
	Description   *string
	Location      *string
	PricePerNight *string
}

type ListingResult struct {
	ID   uuid.UUID
	Slug string
}

type ListingCommands interface {
	Create(ctx context.Context, actor access.Actor, in CreateListingInput) (*ListingResult, error)
	Update(ctx context.Context, actor access.Actor, slug string, in UpdateListingInput) (*ListingResult, error)
	SetAvailability(ctx context.Context, actor access.Actor, slug string, available bool) error
	Delete(ctx context.Context, actor access.Actor, slug string) error
}

type listingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewListingCommands(uow shared.UnitOfWork, clk clock.Clock) ListingCommands {
	return &listingCommandsImpl{uow: uow, clock: clk}
}

func (uc *listingCommandsImpl) Create(ctx context.Context, actor access.Actor, in CreateListingInput) (*ListingResult, error) {
	details, err := listing.NewDetails(in.Name, in.Description, in.Location)
	if err != nil {
		return nil, err
	}
	price, err := parsePrice(in.PricePerNight)
	if err != nil {
		return nil, err
	}
	base, err := listing.NewSlug(details.Name())
	if err != nil {
		return nil, err
	}

	var created *listing.Listing
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		slug, err := uc.freeSlug(ctx, tx.Reads(), base)
		if err != nil {
			return err
		}
		l, err := listing.NewListing(actor.ID, slug, details, price, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Listings().Create(ctx, tx.DB(), l); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrSlugTaken
			}
			return err
		}
		created = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ListingResult{ID: created.ID(), Slug: created.Slug().String()}, nil
}

// freeSlug returns base, or base-2, base-3, ... whichever is not yet used.
func (uc *listingCommandsImpl) freeSlug(ctx context.Context, reads shared.CommandReads, base listing.Slug) (listing.Slug, error) {
	candidate := base
	for n := 2; n <= maxSlugAttempts+1; n++ {
		exists, err := reads.ListingSlugExists(ctx, candidate.String())
		if err != nil {
			return listing.Slug{}, err
		}
		if !exists {
			return candidate, nil
		}
		candidate = base.WithSuffix(n)
	}
	return listing.Slug{}, ErrSlugTaken
}

func (uc *listingCommandsImpl) Update(ctx context.Context, actor access.Actor, slug string, in UpdateListingInput) (*ListingResult, error) {
	var updated *listing.Listing
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := uc.loadOwned(ctx, tx, actor, slug)
		if err != nil {
			return err
		}

		current := l.Details()
		details, err := listing.NewDetails(
			patch.Coalesce(in.Name, current.Name()),
			patch.Coalesce(in.Description, current.Description()),
			patch.Coalesce(in.Location, current.Location()),
		)
		if err != nil {
			return err
		}

		price := l.PricePerNight()
		if in.PricePerNight != nil {
			if price, err = parsePrice(*in.PricePerNight); err != nil {
				return err
			}
		}

		locked, err := tx.Reads().ListingHasConfirmedBookings(ctx, l.ID())
		if err != nil {
			return err
		}

		if err := l.Revise(details, price, locked, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Listings().Update(ctx, tx.DB(), l); err != nil {
			return err
		}
		updated = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ListingResult{ID: updated.ID(), Slug: updated.Slug().String()}, nil
}

func (uc *listingCommandsImpl) SetAvailability(ctx context.Context, actor access.Actor, slug string, available bool) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := uc.loadOwned(ctx, tx, actor, slug)
		if err != nil {
			return err
		}
		l.SetAvailability(available, uc.clock.Now())
		return tx.Listings().Update(ctx, tx.DB(), l)
	})
}

func (uc *listingCommandsImpl) Delete(ctx context.Context, actor access.Actor, slug string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := uc.loadOwned(ctx, tx, actor, slug)
		if err != nil {
			return err
		}
		if err := tx.Listings().Delete(ctx, tx.DB(), l.ID()); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrListingHasBookings
			}
			return err
		}
		return nil
	})
}

func (uc *listingCommandsImpl) loadOwned(ctx context.Context, tx shared.Tx, actor access.Actor, slug string) (*listing.Listing, error) {
	l, err := findListing(ctx, tx, slug)
	if err != nil {
		return nil, err
	}
	if !access.CanModify(actor, l) {
		return nil, access.ErrForbidden
	}
	return l, nil
}

func parsePrice(s string) (money.Money, error) {
	price, err := money.Parse(s)
	if err != nil || !price.IsPositive() {
		return money.Money{}, listing.ErrInvalidPrice
	}
	return price, nil
}
