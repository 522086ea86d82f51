package review

// Review is one storefront testimonial, either from Google Places or the
// static list shipped with the store.
type Review struct {
	Author          string `json:"author"`
	Rating          int    `json:"rating"`
	Text            string `json:"text"`
	RelativeTime    string `json:"relativeTime,omitempty"`
	Time            int64  `json:"time,omitempty"`
	ProfilePhotoURL string `json:"profilePhotoUrl,omitempty"`
}

const (
	SourceGoogle = "google"
	SourceStatic = "static"
)

type Feed struct {
	Source  string   `json:"source"`
	Rating  float64  `json:"rating"`
	Total   int      `json:"total"`
	Reviews []Review `json:"reviews"`
}

// Summary is the rating badge shown next to a product title.
type Summary struct {
	Average string `json:"average"`
	Count   int    `json:"count"`
}

type placeDetailsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
	Result       struct {
		Rating           float64        `json:"rating"`
		UserRatingsTotal int            `json:"user_ratings_total"`
		Reviews          []placesReview `json:"reviews"`
	} `json:"result"`
}

type placesReview struct {
	AuthorName              string `json:"author_name"`
	Rating                  int    `json:"rating"`
	Text                    string `json:"text"`
	RelativeTimeDescription string `json:"relative_time_description"`
	Time                    int64  `json:"time"`
	ProfilePhotoURL         string `json:"profile_photo_url"`
}
