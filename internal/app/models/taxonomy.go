package models

// TagCount is a tag name with its denormalized question count, as returned
// by tag search.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int64  `json:"count"`
}

// Category is a flat lookup entity with a denormalized question count.
type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
