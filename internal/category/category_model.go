package category

import "time"

// Category is a top-level shop section shown in the mega menu.
type Category struct {
	ID          string    `json:"id" firestore:"-"`
	Name        string    `json:"name" firestore:"name"`
	Slug        string    `json:"slug" firestore:"slug"`
	ImageURL    string    `json:"imageUrl" firestore:"imageUrl"`
	Description string    `json:"description" firestore:"description"`
	Order       int       `json:"order" firestore:"order"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// Subcategory belongs to exactly one category.
type Subcategory struct {
	ID         string    `json:"id" firestore:"-"`
	Name       string    `json:"name" firestore:"name"`
	Slug       string    `json:"slug" firestore:"slug"`
	CategoryID string    `json:"categoryId" firestore:"categoryId"`
	Order      int       `json:"order" firestore:"order"`
	CreatedAt  time.Time `json:"createdAt" firestore:"createdAt"`
}
