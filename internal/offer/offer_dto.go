package offer

type SaveOfferRequest struct {
	Provider       string  `json:"provider" validate:"required"`
	Logo           string  `json:"logo"`
	Description    string  `json:"description" validate:"required"`
	Discount       string  `json:"discount" validate:"required"`
	MinTransaction float64 `json:"minTransaction" validate:"gte=0"`
	Code           string  `json:"code"`
	Link           string  `json:"link" validate:"omitempty,url"`
}

type ApplicableOffersResponse struct {
	Total  float64 `json:"total"`
	Offers []Offer `json:"offers"`
}
