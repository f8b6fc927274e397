//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"travel-booking/internal/domain/review"
	"travel-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReviewBuilder)
	errIs  error
}

func TestReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewReviewBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.ListingID, actual.ListingID())
		assert.Equal(t, b.AuthorID, actual.Principal())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.Equal(t, "Lovely stay, great host!", actual.Comment().String())
	})

	t.Run("rating validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "below minimum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(0) },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "minimum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(1) },
			},
			{
				name:   "maximum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(5) },
			},
			{
				name:   "above maximum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(6) },
				errIs:  review.ErrInvalidRating,
			},
		})
	})

	t.Run("comment validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "single character",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("a") },
			},
			{
				name:   "maximum length counted in characters",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("ä", review.MaxCommentLength)) },
			},
			{
				name:   "empty",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("") },
				errIs:  review.ErrEmptyComment,
			},
			{
				name:   "whitespace only",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(" \t ") },
				errIs:  review.ErrEmptyComment,
			},
			{
				name:   "too long",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("a", review.MaxCommentLength+1)) },
				errIs:  review.ErrCommentTooLong,
			},
		})
	})

	t.Run("comment trimming", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().WithComment("  Trimmed comment  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Trimmed comment", actual.Comment().String())
	})

	t.Run("update", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)

		rating, _ := review.NewRating(3)
		comment, _ := review.NewComment("Average")
		later := actual.CreatedAt().Add(time.Hour)
		actual.Update(rating, comment, later)

		assert.Equal(t, 3, actual.Rating().Value())
		assert.Equal(t, "Average", actual.Comment().String())
		assert.Equal(t, later, actual.UpdatedAt())
		assert.NotEqual(t, actual.CreatedAt(), actual.UpdatedAt())
	})
}

func TestAverage(t *testing.T) {
	assert.Nil(t, review.Average(nil))
	assert.Nil(t, review.AverageOf(0, 0))

	testCases := []struct {
		ratings  []int
		expected string
	}{
		{ratings: []int{5}, expected: "5"},
		{ratings: []int{4, 5}, expected: "4.5"},
		{ratings: []int{5, 4, 4}, expected: "4.33"},
		{ratings: []int{5, 5, 4}, expected: "4.67"},
		{ratings: []int{1, 2, 2}, expected: "1.67"},
	}
	for _, tc := range testCases {
		avg := review.Average(tc.ratings)
		require.NotNil(t, avg)
		assert.Equal(t, tc.expected, avg.String(), "ratings %v", tc.ratings)
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReviewBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
