// internal/models/product.go
package models

type Review struct {
	ID      int64  `json:"id" yaml:"id"`
	Author  string `json:"author" yaml:"author"`
	Rating  int    `json:"rating" yaml:"rating"`
	Comment string `json:"comment" yaml:"comment"`
}

type Product struct {
	ID       int64    `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Price    float64  `json:"price" yaml:"price"`
	Category string   `json:"category" yaml:"category"`
	Image    string   `json:"image" yaml:"image"`
	Reviews  []Review `json:"reviews" yaml:"reviews"`
}

// ProductFields are the mutable fields of a product, as written by the admin form.
type ProductFields struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Image    string  `json:"image"`
}

// AverageRating is the arithmetic mean of the review ratings, or 0 without reviews.
func (p Product) AverageRating() float64 {
	if len(p.Reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range p.Reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(p.Reviews))
}

// Clone returns a copy that shares no review storage with p.
func (p Product) Clone() Product {
	out := p
	out.Reviews = make([]Review, len(p.Reviews))
	copy(out.Reviews, p.Reviews)
	return out
}
