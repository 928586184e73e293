package ports

import (
	"context"

	"github.com/merchantry/storefront-api/internal/core/domain"
)

// CategoryPatch, ProductPatch, BlogPatch, and BlogCategoryPatch are explicit
// optional-field updates. A nil field means "leave unchanged"; a non-nil
// pointer to a zero value means "set to zero".
type CategoryPatch struct {
	Name        *string
	Description *string
	Image       *string
	IsActive    *bool
}

type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
	Categories  *[]string
	Images      *[]string
	IsActive    *bool
}

type BlogPatch struct {
	Title      *string
	Content    *string
	Image      *string
	Categories *[]string
	IsActive   *bool
}

type BlogCategoryPatch struct {
	Name     *string
	IsActive *bool
}

// CatalogRepository persists storefront content. Each collection enforces a
// unique index on slug; inserts return domain.ErrSlugExists on collision and
// lookups return domain.ErrNotFound when the slug is absent.
type CatalogRepository interface {
	CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error)
	FindCategory(ctx context.Context, slug string) (*domain.Category, error)
	ListCategories(ctx context.Context, activeOnly bool) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, slug string, patch CategoryPatch) (*domain.Category, error)
	DeleteCategory(ctx context.Context, slug string) error

	CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindProduct(ctx context.Context, slug string) (*domain.Product, error)
	ListProducts(ctx context.Context, activeOnly bool) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, slug string, patch ProductPatch) (*domain.Product, error)
	DeleteProduct(ctx context.Context, slug string) error

	CreateBlog(ctx context.Context, b *domain.Blog) (*domain.Blog, error)
	FindBlog(ctx context.Context, slug string) (*domain.Blog, error)
	ListBlogs(ctx context.Context, activeOnly bool) ([]domain.Blog, error)
	UpdateBlog(ctx context.Context, slug string, patch BlogPatch) (*domain.Blog, error)
	DeleteBlog(ctx context.Context, slug string) error

	CreateBlogCategory(ctx context.Context, bc *domain.BlogCategory) (*domain.BlogCategory, error)
	ListBlogCategories(ctx context.Context, activeOnly bool) ([]domain.BlogCategory, error)
	UpdateBlogCategory(ctx context.Context, slug string, patch BlogCategoryPatch) (*domain.BlogCategory, error)
	DeleteBlogCategory(ctx context.Context, slug string) error
}

// SettingsRepository persists the single site-settings document.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, s *domain.Settings) (*domain.Settings, error)
}
