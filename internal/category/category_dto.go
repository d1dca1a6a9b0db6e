package category

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type UpdateCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type CreateSubcategoryRequest struct {
	Name       string `json:"name" validate:"required"`
	Slug       string `json:"slug" validate:"required"`
	CategoryID string `json:"categoryId" validate:"required"`
	Order      int    `json:"order"`
}
