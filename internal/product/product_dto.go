package product

// ListQuery carries the filter inputs exactly as the storefront sends them;
// the service turns it into a catalog.FilterSpec.
type ListQuery struct {
	Search        string   `form:"search"`
	MinPrice      *float64 `form:"minPrice"`
	MaxPrice      *float64 `form:"maxPrice"`
	Categories    []string `form:"categories"`
	Subcategories []string `form:"subcategories"`
	// Category is the legacy single-select dropdown value.
	Category string `form:"category"`
}

type CreateProductRequest struct {
	Name                   string                  `json:"name" validate:"required"`
	Description            string                  `json:"description" validate:"required"`
	Instructions           string                  `json:"instructions"`
	DeliveryInfo           string                  `json:"deliveryInfo"`
	Price                  float64                 `json:"price" validate:"min=0"`
	Category               string                  `json:"category" validate:"required"`
	Subcategory            string                  `json:"subcategory"`
	Images                 []string                `json:"images"`
	Tags                   []string                `json:"tags"`
	IsPersonalizable       bool                    `json:"isPersonalizable"`
	PersonalizationOptions *PersonalizationOptions `json:"personalizationOptions"`
}

type UpdateProductRequest struct {
	Name                   string                  `json:"name" validate:"required"`
	Description            string                  `json:"description" validate:"required"`
	Instructions           string                  `json:"instructions"`
	DeliveryInfo           string                  `json:"deliveryInfo"`
	Price                  float64                 `json:"price" validate:"min=0"`
	Category               string                  `json:"category" validate:"required"`
	Subcategory            string                  `json:"subcategory"`
	Images                 []string                `json:"images"`
	Tags                   []string                `json:"tags"`
	IsPersonalizable       bool                    `json:"isPersonalizable"`
	PersonalizationOptions *PersonalizationOptions `json:"personalizationOptions"`
}

type ListResponse struct {
	Products []Product `json:"products"`
	// Matched/TotalCatalog let the storefront render "showing X of Y".
	Matched      int `json:"matched"`
	TotalCatalog int `json:"totalCatalog"`
}

type UploadImageResponse struct {
	URL string `json:"url"`
}
