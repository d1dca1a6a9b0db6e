package address

type SaveAddressRequest struct {
	FullName     string `json:"fullName" validate:"required"`
	PhoneNumber  string `json:"phoneNumber" validate:"required,min=10"`
	HouseNumber  string `json:"houseNumber" validate:"required"`
	BuildingName string `json:"buildingName"`
	Street       string `json:"street" validate:"required"`
	Landmark     string `json:"landmark"`
	Pincode      string `json:"pincode" validate:"required,len=6"`
	AddressType  string `json:"addressType" validate:"omitempty,oneof=home work other"`
	IsDefault    bool   `json:"isDefault"`
}
