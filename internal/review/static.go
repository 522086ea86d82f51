package review

import (
	"fmt"

	"bagstore/internal/utils"
)

// DefaultReviews is the testimonial list used when no reviews file is set.
// It returns a fresh slice on every call.
func DefaultReviews() []Review {
	return []Review{
		{Author: "Nagammai Ramaiah", Rating: 5, Text: "Nice quality bags. Looks like the photo online. Perfect size and sturdy to hold our heavy return gift item. Loved the customized printing option - printing was clear and I loved it. Ordered online and communicated through whatsapp, the process was very smooth. Delivered on time. Will definitely recommend to friends and will use again in the future."},
		{Author: "Kodaikkaavirinaadan Urkalan", Rating: 5, Text: "Thamboolam Bags provided best service with professional quality. The communication was easy and response was quick. Even in case of short notice, the order was delivered on time and was helpful for me to pack the thamboolam bags. It's a smart choice for the customer's looking for quality with value for money."},
		{Author: "Ramya Vijayakumar", Rating: 5, Text: "Customer-friendly and very easy to work with! Customized bags were received from India in excellent condition. Bags are beautiful. The delivery was prompt. We highly recommend weddingbag.in to all!"},
		{Author: "Alekya Rao", Rating: 5, Text: "I really loved the bags received them exactly as I designed them... Affordable and good quality are the key words your looking for... Don't hesitate and go for it..."},
		{Author: "Meenatchi Arunkumar", Rating: 5, Text: "A quick search in google landed on this webpage and while contacted them through phone and whatsapp msg,finalised a bag and did confirmed.what we received was better than we expected .Orders first day and received the parcel on next day.Kudos.Keep it up"},
		{Author: "Rakesh R", Rating: 5, Text: "The bag quality was good and it's worth for the money what we spent 😊 the way of response and fulfill the commitment is great 👏👏 Keep it up …"},
		{Author: "Seralathan Shanmugam", Rating: 4, Text: "Good and kind response for an outstation enquiry. Quality of the bags was very good. Delivery was on time and dependable  . Keep it up 👋🙏 Seralathan Chennai"},
		{Author: "Kalle Sarvani", Rating: 5, Text: "Prompt service...received the customized jute bags as expected...trust worthy...kudos to Hari...😊😊 …"},
	}
}

// LoadFile reads a JSON array of reviews. An empty path yields the defaults.
func LoadFile(path string) ([]Review, error) {
	if path == "" {
		return DefaultReviews(), nil
	}
	var out []Review
	if err := utils.LoadJSONFile(path, &out); err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}
	return out, nil
}
