package handler

// Create requests: required fields enforced by validation tags.
// Update requests: every field is a pointer — nil means "leave unchanged",
// a present zero value means "set to zero". Unknown fields are rejected by
// the strict binder.

type createCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	IsActive    bool   `json:"is_active"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type createProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Categories  []string `json:"categories" validate:"required"`
	Images      []string `json:"images"`
	IsActive    bool     `json:"is_active"`
}

type updateProductRequest struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Stock       *int      `json:"stock,omitempty"`
	Categories  *[]string `json:"categories,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	IsActive    *bool     `json:"is_active,omitempty"`
}

type createBlogRequest struct {
	Title      string   `json:"title" validate:"required"`
	Content    string   `json:"content" validate:"required"`
	Image      string   `json:"image"`
	Categories []string `json:"categories" validate:"required"`
	IsActive   bool     `json:"is_active"`
}

type updateBlogRequest struct {
	Title      *string   `json:"title,omitempty"`
	Content    *string   `json:"content,omitempty"`
	Image      *string   `json:"image,omitempty"`
	Categories *[]string `json:"categories,omitempty"`
	IsActive   *bool     `json:"is_active,omitempty"`
}

type createBlogCategoryRequest struct {
	Name     string `json:"name" validate:"required"`
	IsActive bool   `json:"is_active"`
}

type updateBlogCategoryRequest struct {
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type updateSettingsRequest struct {
	Title       *string `json:"title,omitempty"`
	Logo        *string `json:"logo,omitempty"`
	Currency    *string `json:"currency,omitempty"`
	AnalyticsID *string `json:"analytics_id,omitempty"`
}
