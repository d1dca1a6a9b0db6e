package area

import "time"

// Area is one serviceable delivery area: a named locality with its pincodes
// and city zone. The admin panel maintains this table.
type Area struct {
	ID        string    `json:"id" firestore:"-"`
	Name      string    `json:"name" firestore:"name"`
	Pincodes  []string  `json:"pincodes" firestore:"pincodes"`
	Zone      string    `json:"zone" firestore:"zone"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}
