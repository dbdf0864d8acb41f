package catalog

import "fmt"

// Product is one record in the fixed catalog. Prices are fixed-point
// cents; OriginalPriceCents is zero unless the record is discounted, in
// which case it is strictly greater than PriceCents.
type Product struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Artist             string   `json:"artist"`
	PriceCents         int64    `json:"price_cents"`
	OriginalPriceCents int64    `json:"original_price_cents,omitempty"`
	Image              string   `json:"image"`
	Genre              string   `json:"genre"`
	Year               int      `json:"year"`
	Description        string   `json:"description"`
	Tracklist          []string `json:"tracklist"`
	InStock            bool     `json:"in_stock"`
	IsNew              bool     `json:"is_new,omitempty"`
	IsBestSeller       bool     `json:"is_best_seller,omitempty"`
	IsSale             bool     `json:"is_sale,omitempty"`
	Reviews            []Review `json:"reviews"`
}

// Review ids are sequence-local to their parent product, never a global
// key.
type Review struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
	Avatar  string `json:"avatar"`
}

type reviewer struct {
	name    string
	comment string
	avatar  string
}

var reviewPool = [...]reviewer{
	{
		name:    "Alex Thompson",
		comment: "Incredible pressing quality! The sound is warm and rich.",
		avatar:  "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop&crop=face",
	},
	{
		name:    "Maria Garcia",
		comment: "Shipped quickly and arrived in perfect condition.",
		avatar:  "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=100&h=100&fit=crop&crop=face",
	},
	{
		name:    "James Wilson",
		comment: "A must-have for any serious collector. Absolutely love it!",
		avatar:  "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop&crop=face",
	},
	{
		name:    "Emily Chen",
		comment: "The artwork is stunning and the vinyl sounds amazing.",
		avatar:  "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=100&h=100&fit=crop&crop=face",
	},
	{
		name:    "David Brown",
		comment: "Great value for money. Will definitely buy more!",
		avatar:  "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=100&h=100&fit=crop&crop=face",
	},
}

var reviewMonths = [...]string{"Jan", "Feb", "Mar", "Apr", "May"}

// generateReviews derives a product's review list from its id, so the
// same catalog always carries the same reviews across restarts.
func generateReviews(productID int) []Review {
	n := 2 + productID%3

	reviews := make([]Review, 0, n)
	for i := 0; i < n; i++ {
		rv := reviewPool[(productID+i)%len(reviewPool)]
		reviews = append(reviews, Review{
			ID:      i + 1,
			Name:    rv.name,
			Rating:  4 + i%2,
			Comment: rv.comment,
			Date:    fmt.Sprintf("%s %d, 2024", reviewMonths[i%len(reviewMonths)], 10+i),
			Avatar:  rv.avatar,
		})
	}
	return reviews
}
