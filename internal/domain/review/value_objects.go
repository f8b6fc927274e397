package review

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	MinRating        = 1
	MaxRating        = 5
	MaxCommentLength = 1000
)

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < MinRating || v > MaxRating {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

type Comment struct {
	text string
}

func NewComment(s string) (Comment, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Comment{}, ErrEmptyComment
	}
	if utf8.RuneCountInString(t) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: t}, nil
}

func (c Comment) String() string { return c.text }

// Average returns the mean rating rounded to two places, or nil when there are no ratings.
func Average(ratings []int) *decimal.Decimal {
	if len(ratings) == 0 {
		return nil
	}
	var sum int64
	for _, r := range ratings {
		sum += int64(r)
	}
	return AverageOf(sum, int64(len(ratings)))
}

// AverageOf is Average for pre-aggregated sums.
func AverageOf(sum, count int64) *decimal.Decimal {
	if count <= 0 {
		return nil
	}
	avg := decimal.NewFromInt(sum).DivRound(decimal.NewFromInt(count), 2)
	return &avg
}
