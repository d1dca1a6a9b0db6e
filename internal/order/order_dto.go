package order

type CheckoutRequest struct {
	CustomerName string `json:"customerName" validate:"required"`
	Phone        string `json:"phone" validate:"required,min=10"`
	AddressID    string `json:"addressId"`
	Note         string `json:"note"`
}

type CheckoutResponse struct {
	Order       Order  `json:"order"`
	WhatsAppURL string `json:"whatsappUrl"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type ListOrdersQuery struct {
	Status string `form:"status"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

type ListOrdersResponse struct {
	Orders []Order `json:"orders"`
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
}
