package review

import (
	"bagstore/internal/product"

	"github.com/shopspring/decimal"
)

// Summarize averages product review ratings to one decimal; "0.0" when there
// are none.
func Summarize(reviews []product.Review) Summary {
	if len(reviews) == 0 {
		return Summary{Average: "0.0"}
	}

	var sum int64
	for _, r := range reviews {
		sum += int64(r.ReviewRating.RatingValue)
	}
	avg := decimal.NewFromInt(sum).Div(decimal.NewFromInt(int64(len(reviews))))
	return Summary{Average: avg.StringFixed(1), Count: len(reviews)}
}

// Average is the mean rating of a feed's reviews, used when the source
// gives no overall rating.
func Average(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum int64
	for _, r := range reviews {
		sum += int64(r.Rating)
	}
	avg, _ := decimal.NewFromInt(sum).Div(decimal.NewFromInt(int64(len(reviews)))).Round(1).Float64()
	return avg
}
