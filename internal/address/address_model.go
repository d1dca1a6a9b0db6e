package address

import "time"

// Address is a customer delivery address. Area and pincode come from the
// serviceable-area table; serviceability is checked at save time, not at
// checkout.
type Address struct {
	ID            string    `json:"id" firestore:"-"`
	UserID        string    `json:"userId" firestore:"userId"`
	FullName      string    `json:"fullName" firestore:"fullName"`
	PhoneNumber   string    `json:"phoneNumber" firestore:"phoneNumber"`
	HouseNumber   string    `json:"houseNumber" firestore:"houseNumber"`
	BuildingName  string    `json:"buildingName,omitempty" firestore:"buildingName,omitempty"`
	Street        string    `json:"street" firestore:"street"`
	Landmark      string    `json:"landmark,omitempty" firestore:"landmark,omitempty"`
	Area          string    `json:"area" firestore:"area"`
	Pincode       string    `json:"pincode" firestore:"pincode"`
	AddressType   string    `json:"addressType,omitempty" firestore:"addressType,omitempty"`
	IsDefault     bool      `json:"isDefault" firestore:"isDefault"`
	CreatedAt     time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" firestore:"updatedAt"`
}
