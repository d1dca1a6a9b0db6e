package cart

type AddItemRequest struct {
	ProductID       string           `json:"productId" validate:"required"`
	Quantity        int              `json:"quantity" validate:"omitempty,min=1"`
	Personalization *Personalization `json:"personalization,omitempty"`
}

type CartResponse struct {
	Items []Item  `json:"items"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

type CartCountResponse struct {
	Count int `json:"count"`
}

func NewCartResponse(items []Item) CartResponse {
	if items == nil {
		items = []Item{}
	}
	return CartResponse{
		Items: items,
		Count: Count(items),
		Total: Total(items),
	}
}
