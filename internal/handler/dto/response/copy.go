package response

import (
	"time"

	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

// Money goes out with two decimals; a time lands in a string field only for calendar dates.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				d, ok := src.(decimal.Decimal)
				if !ok {
					return nil, errs.New("expected decimal.Decimal")
				}
				return d.StringFixed(2), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				t, ok := src.(time.Time)
				if !ok {
					return nil, errs.New("expected time.Time")
				}
				return t.Format(DateLayout), nil
			},
		},
	},
}

// mustCopy panics on a mapping mismatch, which only a programming error can cause.
func mustCopy(dst, src any) {
	if err := copier.CopyWithOption(dst, src, copyOption); err != nil {
		panic(errs.Wrap(err, "response mapping"))
	}
}

func formatRating(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(2)
	return &s
}

// Page is the envelope for cursor-paginated lists.
type Page[T any] struct {
	Results    []T    `json:"results"`
	NextCursor string `json:"next_cursor,omitempty"`
}

func NewPage[T any](results []T, next *queries.Cursor) Page[T] {
	if results == nil {
		results = []T{}
	}
	p := Page[T]{Results: results}
	if next != nil {
		p.NextCursor = next.After
	}
	return p
}

func mapAll[S any, D any](src []S, fn func(S) D) []D {
	out := make([]D, len(src))
	for i, s := range src {
		out[i] = fn(s)
	}
	return out
}
