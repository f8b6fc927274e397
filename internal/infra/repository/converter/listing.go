package converter

import (
	"travel-booking/internal/domain/listing"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/pkg/pgconv"
)

func ListingFromRow(row db.Listings) (*listing.Listing, error) {
	slug, err := listing.ParseSlug(row.Slug)
	if err != nil {
		return nil, errs.Wrapf(err, "listing %s", row.ID)
	}
	details, err := listing.NewDetails(row.Name, row.Description, row.Location)
	if err != nil {
		return nil, errs.Wrapf(err, "listing %s", row.ID)
	}
	price, err := MoneyFromNumeric(row.PricePerNight)
	if err != nil {
		return nil, errs.Wrapf(err, "listing %s price", row.ID)
	}

	return listing.ReconstructListing(
		row.ID,
		row.OwnerID,
		slug,
		details,
		price,
		row.IsAvailable,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func ListingToCreateParams(l *listing.Listing) db.CreateListingParams {
	return db.CreateListingParams{
		ID:            l.ID(),
		OwnerID:       l.OwnerID(),
		Name:          l.Details().Name(),
		Slug:          l.Slug().String(),
		Description:   l.Details().Description(),
		Location:      l.Details().Location(),
		PricePerNight: MoneyToNumeric(l.PricePerNight()),
		IsAvailable:   l.IsAvailable(),
		CreatedAt:     pgconv.TimeToPgtype(l.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(l.UpdatedAt()),
	}
}

func ListingToUpdateParams(l *listing.Listing) db.UpdateListingParams {
	return db.UpdateListingParams{
		ID:            l.ID(),
		Name:          l.Details().Name(),
		Description:   l.Details().Description(),
		Location:      l.Details().Location(),
		PricePerNight: MoneyToNumeric(l.PricePerNight()),
		IsAvailable:   l.IsAvailable(),
		UpdatedAt:     pgconv.TimeToPgtype(l.UpdatedAt()),
	}
}
