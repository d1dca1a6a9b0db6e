package product

import "time"

// PersonalizationOptions describes what a personalizable product lets the
// customer customize.
type PersonalizationOptions struct {
	AllowName        bool `json:"allowName" firestore:"allowName"`
	AllowImage       bool `json:"allowImage" firestore:"allowImage"`
	AllowMessage     bool `json:"allowMessage" firestore:"allowMessage"`
	MaxMessageLength int  `json:"maxMessageLength" firestore:"maxMessageLength"`
}

// Product is the canonical catalog record. Optional source fields (legacy
// imageUrl, missing subcategory, absent personalization block) are normalized
// at the repository decode boundary so the filter and cart logic never see
// them.
type Product struct {
	ID                     string                  `json:"id" firestore:"id"`
	Name                   string                  `json:"name" firestore:"name"`
	Description            string                  `json:"description" firestore:"description"`
	Instructions           string                  `json:"instructions,omitempty" firestore:"instructions,omitempty"`
	DeliveryInfo           string                  `json:"deliveryInfo,omitempty" firestore:"deliveryInfo,omitempty"`
	Price                  float64                 `json:"price" firestore:"price"`
	Category               string                  `json:"category" firestore:"category"`
	Subcategory            string                  `json:"subcategory,omitempty" firestore:"subcategory,omitempty"`
	Images                 []string                `json:"images" firestore:"images"`
	Tags                   []string                `json:"tags,omitempty" firestore:"tags,omitempty"`
	IsPersonalizable       bool                    `json:"isPersonalizable" firestore:"isPersonalizable"`
	PersonalizationOptions *PersonalizationOptions `json:"personalizationOptions,omitempty" firestore:"personalizationOptions,omitempty"`
	AverageRating          float64                 `json:"averageRating" firestore:"averageRating"`
	ReviewCount            int                     `json:"reviewCount" firestore:"reviewCount"`
	CreatedAt              time.Time               `json:"createdAt" firestore:"createdAt"`
	UpdatedAt              time.Time               `json:"updatedAt" firestore:"updatedAt"`
}
