package review

import "time"

type Review struct {
	ID           string    `json:"id" firestore:"-"`
	ProductID    string    `json:"productId" firestore:"productId"`
	UserID       string    `json:"userId,omitempty" firestore:"userId"`
	CustomerName string    `json:"customerName" firestore:"customerName"`
	Rating       int       `json:"rating" firestore:"rating"`
	Comment      string    `json:"comment,omitempty" firestore:"comment,omitempty"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt"`
}
