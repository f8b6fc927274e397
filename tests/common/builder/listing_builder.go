//go:build unit || e2e

package builder

import (
	"time"

	"travel-booking/internal/domain/listing"
	"travel-booking/internal/domain/money"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/pkg/pgconv"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ListingBuilder struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Name          string
	Slug          string
	Description   string
	Location      string
	PricePerNight string
	IsAvailable   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewListingBuilder() *ListingBuilder {
	now := time.Now()
	return &ListingBuilder{
		ID:            uuid.New(),
		OwnerID:       uuid.New(),
		Name:          "Lakeside Cabin",
		Slug:          "lakeside-cabin",
		Description:   "Quiet cabin by the lake",
		Location:      "Bishoftu",
		PricePerNight: "100.00",
		IsAvailable:   true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (l *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(l)
	return l
}

// Build methods
func (l *ListingBuilder) BuildDomain() (*listing.Listing, error) {
	slug, err := listing.ParseSlug(l.Slug)
	if err != nil {
		return nil, err
	}
	details, err := listing.NewDetails(l.Name, l.Description, l.Location)
	if err != nil {
		return nil, err
	}
	price, err := money.Parse(l.PricePerNight)
	if err != nil {
		return nil, err
	}
	return listing.ReconstructListing(l.ID, l.OwnerID, slug, details, price, l.IsAvailable, l.CreatedAt, l.UpdatedAt), nil
}

func (l *ListingBuilder) BuildInfra() db.Listings {
	return db.Listings{
		ID:            l.ID,
		OwnerID:       l.OwnerID,
		Name:          l.Name,
		Slug:          l.Slug,
		Description:   l.Description,
		Location:      l.Location,
		PricePerNight: pgconv.DecimalToNumeric(decimal.RequireFromString(l.PricePerNight)),
		IsAvailable:   l.IsAvailable,
		CreatedAt:     pgconv.TimeToPgtype(l.CreatedAt),
		UpdatedAt:     pgconv.TimeToPgtype(l.UpdatedAt),
	}
}

func (l *ListingBuilder) BuildDetailRow() db.ListingDetailRow {
	return db.ListingDetailRow{
		Listings:       l.BuildInfra(),
		OwnerUsername:  "host",
		OwnerFirstName: "Host",
		OwnerLastName:  "Owner",
	}
}

func (l *ListingBuilder) BuildView() *queries.ListingView {
	return &queries.ListingView{
		ID:            l.ID,
		Name:          l.Name,
		Slug:          l.Slug,
		Description:   l.Description,
		Location:      l.Location,
		PricePerNight: decimal.RequireFromString(l.PricePerNight),
		IsAvailable:   l.IsAvailable,
		Owner: queries.UserSummary{
			ID:        l.OwnerID,
			Username:  "host",
			FirstName: "Host",
			LastName:  "Owner",
		},
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

// Fluent builder methods
func (l *ListingBuilder) WithID(id uuid.UUID) *ListingBuilder {
	l.ID = id
	return l
}

func (l *ListingBuilder) WithOwnerID(ownerID uuid.UUID) *ListingBuilder {
	l.OwnerID = ownerID
	return l
}

func (l *ListingBuilder) WithSlug(slug string) *ListingBuilder {
	l.Slug = slug
	return l
}

func (l *ListingBuilder) WithPrice(price string) *ListingBuilder {
	l.PricePerNight = price
	return l
}

func (l *ListingBuilder) AsUnavailable() *ListingBuilder {
	l.IsAvailable = false
	return l
}
