package area

type AreaRequest struct {
	Name     string   `json:"name" validate:"required"`
	Pincodes []string `json:"pincodes" validate:"required,min=1"`
	Zone     string   `json:"zone" validate:"required"`
}

type PincodeResponse struct {
	Pincode     string `json:"pincode"`
	Serviceable bool   `json:"serviceable"`
	Area        string `json:"area,omitempty"`
	Zone        string `json:"zone,omitempty"`
}
