package ports

import (
	"context"

	"github.com/merchantry/storefront-api/internal/core/domain"
)

// CreateCategoryInput and friends carry validated, unsanitized input from
// the transport layer. The service owns sanitization and slug derivation.
type CreateCategoryInput struct {
	Name        string
	Description string
	Image       string
	IsActive    bool
}

type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	Categories  []string
	Images      []string
	IsActive    bool
}

type CreateBlogInput struct {
	Title      string
	Content    string
	Image      string
	Categories []string
	IsActive   bool
}

type CreateBlogCategoryInput struct {
	Name     string
	IsActive bool
}

type UpdateSettingsInput struct {
	Title       *string
	Logo        *string
	Currency    *string
	AnalyticsID *string
}

// CatalogService implements the guarded back-office mutations over
// storefront content plus the public read surface.
type CatalogService interface {
	CreateCategory(ctx context.Context, in CreateCategoryInput) (*domain.Category, error)
	GetCategory(ctx context.Context, slug string, activeOnly bool) (*domain.Category, error)
	ListCategories(ctx context.Context, activeOnly bool) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, slug string, patch CategoryPatch) (*domain.Category, error)
	DeleteCategory(ctx context.Context, slug string) error

	CreateProduct(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	GetProduct(ctx context.Context, slug string, activeOnly bool) (*domain.Product, error)
	ListProducts(ctx context.Context, activeOnly bool) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, slug string, patch ProductPatch) (*domain.Product, error)
	DeleteProduct(ctx context.Context, slug string) error

	CreateBlog(ctx context.Context, in CreateBlogInput) (*domain.Blog, error)
	GetBlog(ctx context.Context, slug string, activeOnly bool) (*domain.Blog, error)
	ListBlogs(ctx context.Context, activeOnly bool) ([]domain.Blog, error)
	UpdateBlog(ctx context.Context, slug string, patch BlogPatch) (*domain.Blog, error)
	DeleteBlog(ctx context.Context, slug string) error

	CreateBlogCategory(ctx context.Context, in CreateBlogCategoryInput) (*domain.BlogCategory, error)
	ListBlogCategories(ctx context.Context, activeOnly bool) ([]domain.BlogCategory, error)
	UpdateBlogCategory(ctx context.Context, slug string, patch BlogCategoryPatch) (*domain.BlogCategory, error)
	DeleteBlogCategory(ctx context.Context, slug string) error

	GetSettings(ctx context.Context) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, in UpdateSettingsInput) (*domain.Settings, error)
}
