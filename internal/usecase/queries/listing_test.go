//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"travel-booking/internal/infra"
	"travel-booking/internal/usecase/queries"
	"travel-booking/tests/common/builder"
	queriesmock "travel-booking/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListingQueries_List(t *testing.T) {
	t.Run("trims location and fetches one extra row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		listings := queriesmock.NewMockListingReadStore(ctrl)
		reviews := queriesmock.NewMockReviewReadStore(ctrl)

		view := builder.NewListingBuilder().BuildView()
		listings.EXPECT().
			List(gomock.Any(), queries.ListingFilter{Location: "Bishoftu", AvailableOnly: true}, gomock.Nil(), int32(queries.DefaultListLimit+1)).
			Return([]*queries.ListingView{view}, nil)

		got, next, err := queries.NewListingQueries(listings, reviews).
			List(context.Background(), queries.ListingFilter{Location: "  Bishoftu ", AvailableOnly: true}, nil, 0)

		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Nil(t, next)
	})

	t.Run("limit is capped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		listings := queriesmock.NewMockListingReadStore(ctrl)
		reviews := queriesmock.NewMockReviewReadStore(ctrl)

		listings.EXPECT().
			List(gomock.Any(), gomock.Any(), gomock.Nil(), int32(queries.MaxListLimit+1)).
			Return([]*queries.ListingView{}, nil)

		_, _, err := queries.NewListingQueries(listings, reviews).List(context.Background(), queries.ListingFilter{}, nil, 10_000)

		require.NoError(t, err)
	})
}

func TestListingQueries_GetBySlug(t *testing.T) {
	t.Run("success: listing with inline reviews and a review cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		listings := queriesmock.NewMockListingReadStore(ctrl)
		reviews := queriesmock.NewMockReviewReadStore(ctrl)

		lb := builder.NewListingBuilder()
		listings.EXPECT().FindBySlug(gomock.Any(), lb.Slug).Return(lb.BuildView(), nil)

		base := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
		rows := make([]*queries.ReviewView, 0, 11)
		for i := 0; i < 11; i++ {
			rb := builder.NewReviewBuilder().WithListingID(lb.ID)
			rb.CreatedAt = base.Add(-time.Duration(i) * time.Hour)
			rows = append(rows, rb.BuildView())
		}
		reviews.EXPECT().ListByListingSlug(gomock.Any(), lb.Slug, gomock.Nil(), int32(11)).Return(rows, nil)

		got, err := queries.NewListingQueries(listings, reviews).GetBySlug(context.Background(), lb.Slug)

		require.NoError(t, err)
		assert.Equal(t, lb.ID, got.ID)
		assert.Len(t, got.Reviews, 10)
		require.NotNil(t, got.NextReview)
		after, err := queries.ParseCursor(got.NextReview)
		require.NoError(t, err)
		assert.Equal(t, rows[9].ID, after.ID)
	})

	t.Run("success: no reviews gives an empty slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		listings := queriesmock.NewMockListingReadStore(ctrl)
		reviews := queriesmock.NewMockReviewReadStore(ctrl)

		lb := builder.NewListingBuilder()
		listings.EXPECT().FindBySlug(gomock.Any(), lb.Slug).Return(lb.BuildView(), nil)
		reviews.EXPECT().ListByListingSlug(gomock.Any(), lb.Slug, gomock.Nil(), int32(11)).Return(nil, nil)

		got, err := queries.NewListingQueries(listings, reviews).GetBySlug(context.Background(), lb.Slug)

		require.NoError(t, err)
		assert.NotNil(t, got.Reviews)
		assert.Empty(t, got.Reviews)
		assert.Nil(t, got.NextReview)
	})

	t.Run("error: unknown slug", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		listings := queriesmock.NewMockListingReadStore(ctrl)
		reviews := queriesmock.NewMockReviewReadStore(ctrl)

		listings.EXPECT().FindBySlug(gomock.Any(), "missing").Return(nil, infra.WrapRepoErr("missing", nil, infra.KindNotFound))
		reviews.EXPECT().ListByListingSlug(gomock.Any(), "missing", gomock.Nil(), gomock.Any()).Return([]*queries.ReviewView{}, nil).AnyTimes()

		_, err := queries.NewListingQueries(listings, reviews).GetBySlug(context.Background(), "missing")

		assert.ErrorIs(t, err, queries.ErrListingNotFound)
	})
}

func TestReviewQueries_ListByListing(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		listings := queriesmock.NewMockListingReadStore(ctrl)
		reviews := queriesmock.NewMockReviewReadStore(ctrl)

		lb := builder.NewListingBuilder()
		listings.EXPECT().FindBySlug(gomock.Any(), lb.Slug).Return(lb.BuildView(), nil)
		reviews.EXPECT().ListByListingSlug(gomock.Any(), lb.Slug, gomock.Nil(), int32(6)).
			Return([]*queries.ReviewView{builder.NewReviewBuilder().BuildView()}, nil)

		got, next, err := queries.NewReviewQueries(listings, reviews).ListByListing(context.Background(), lb.Slug, nil, 5)

		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Nil(t, next)
	})

	t.Run("error: unknown listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		listings := queriesmock.NewMockListingReadStore(ctrl)
		reviews := queriesmock.NewMockReviewReadStore(ctrl)

		listings.EXPECT().FindBySlug(gomock.Any(), "missing").Return(nil, infra.WrapRepoErr("missing", nil, infra.KindNotFound))
		reviews.EXPECT().ListByListingSlug(gomock.Any(), "missing", gomock.Nil(), gomock.Any()).Return([]*queries.ReviewView{}, nil).AnyTimes()

		_, _, err := queries.NewReviewQueries(listings, reviews).ListByListing(context.Background(), "missing", nil, 5)

		assert.ErrorIs(t, err, queries.ErrListingNotFound)
	})
}
