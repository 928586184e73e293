package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/merchantry/storefront-api/internal/core/domain"
	"github.com/merchantry/storefront-api/internal/core/ports"
	"github.com/merchantry/storefront-api/internal/pkg/credential"
)

// CatalogService implements the storefront content operations. Role checks
// happen at the transport layer; the service assumes the caller was already
// authorized and owns sanitization and slug derivation.
type CatalogService struct {
	catalog  ports.CatalogRepository
	settings ports.SettingsRepository
	audit    ports.AuditRecorder
	logger   zerolog.Logger
}

func NewCatalogService(
	catalog ports.CatalogRepository,
	settings ports.SettingsRepository,
	audit ports.AuditRecorder,
	logger zerolog.Logger,
) *CatalogService {
	return &CatalogService{catalog: catalog, settings: settings, audit: audit, logger: logger}
}

// --- Categories ---

func (s *CatalogService) CreateCategory(ctx context.Context, in ports.CreateCategoryInput) (*domain.Category, error) {
	name := credential.Name(in.Name)
	slug := credential.Slug(name)
	if name == "" || slug == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	created, err := s.catalog.CreateCategory(ctx, &domain.Category{
		Name:        name,
		Slug:        slug,
		Description: in.Description,
		Image:       in.Image,
		IsActive:    in.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}
	s.recordWrite("category", slug, "add")
	return created, nil
}

// GetCategory fetches a category by slug. With activeOnly set, an inactive
// category answers ErrNotFound so unpublished content stays invisible on
// the public routes.
func (s *CatalogService) GetCategory(ctx context.Context, slug string, activeOnly bool) (*domain.Category, error) {
	category, err := s.catalog.FindCategory(ctx, slug)
	if err != nil {
		return nil, err
	}
	if activeOnly && !category.IsActive {
		return nil, domain.ErrNotFound
	}
	return category, nil
}

func (s *CatalogService) ListCategories(ctx context.Context, activeOnly bool) ([]domain.Category, error) {
	return s.catalog.ListCategories(ctx, activeOnly)
}

func (s *CatalogService) UpdateCategory(ctx context.Context, slug string, patch ports.CategoryPatch) (*domain.Category, error) {
	if patch.Name != nil {
		name := credential.Name(*patch.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		patch.Name = &name
	}
	updated, err := s.catalog.UpdateCategory(ctx, slug, patch)
	if err != nil {
		return nil, err
	}
	s.recordWrite("category", slug, "edit")
	return updated, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, slug string) error {
	if err := s.catalog.DeleteCategory(ctx, slug); err != nil {
		return err
	}
	s.recordWrite("category", slug, "delete")
	return nil
}

// --- Products ---

func (s *CatalogService) CreateProduct(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	name := credential.Name(in.Name)
	slug := credential.Slug(name)
	if name == "" || slug == "" || in.Price < 0 || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	created, err := s.catalog.CreateProduct(ctx, &domain.Product{
		Name:        name,
		Slug:        slug,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Categories:  in.Categories,
		Images:      in.Images,
		IsActive:    in.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}
	s.recordWrite("product", slug, "add")
	return created, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, slug string, activeOnly bool) (*domain.Product, error) {
	product, err := s.catalog.FindProduct(ctx, slug)
	if err != nil {
		return nil, err
	}
	if activeOnly && !product.IsActive {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, activeOnly bool) ([]domain.Product, error) {
	return s.catalog.ListProducts(ctx, activeOnly)
}

func (s *CatalogService) UpdateProduct(ctx context.Context, slug string, patch ports.ProductPatch) (*domain.Product, error) {
	if patch.Name != nil {
		name := credential.Name(*patch.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		patch.Name = &name
	}
	if patch.Price != nil && *patch.Price < 0 {
		return nil, domain.ErrInvalidInput
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	updated, err := s.catalog.UpdateProduct(ctx, slug, patch)
	if err != nil {
		return nil, err
	}
	s.recordWrite("product", slug, "edit")
	return updated, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, slug string) error {
	if err := s.catalog.DeleteProduct(ctx, slug); err != nil {
		return err
	}
	s.recordWrite("product", slug, "delete")
	return nil
}

// --- Blogs ---

func (s *CatalogService) CreateBlog(ctx context.Context, in ports.CreateBlogInput) (*domain.Blog, error) {
	title := credential.Name(in.Title)
	slug := credential.Slug(title)
	if title == "" || slug == "" || in.Content == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	created, err := s.catalog.CreateBlog(ctx, &domain.Blog{
		Title:      title,
		Slug:       slug,
		Content:    in.Content,
		Image:      in.Image,
		Categories: in.Categories,
		IsActive:   in.IsActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, err
	}
	s.recordWrite("blog", slug, "add")
	return created, nil
}

func (s *CatalogService) GetBlog(ctx context.Context, slug string, activeOnly bool) (*domain.Blog, error) {
	blog, err := s.catalog.FindBlog(ctx, slug)
	if err != nil {
		return nil, err
	}
	if activeOnly && !blog.IsActive {
		return nil, domain.ErrNotFound
	}
	return blog, nil
}

func (s *CatalogService) ListBlogs(ctx context.Context, activeOnly bool) ([]domain.Blog, error) {
	return s.catalog.ListBlogs(ctx, activeOnly)
}

func (s *CatalogService) UpdateBlog(ctx context.Context, slug string, patch ports.BlogPatch) (*domain.Blog, error) {
	if patch.Title != nil {
		title := credential.Name(*patch.Title)
		if title == "" {
			return nil, domain.ErrInvalidInput
		}
		patch.Title = &title
	}
	updated, err := s.catalog.UpdateBlog(ctx, slug, patch)
	if err != nil {
		return nil, err
	}
	s.recordWrite("blog", slug, "edit")
	return updated, nil
}

func (s *CatalogService) DeleteBlog(ctx context.Context, slug string) error {
	if err := s.catalog.DeleteBlog(ctx, slug); err != nil {
		return err
	}
	s.recordWrite("blog", slug, "delete")
	return nil
}

// --- Blog categories ---

func (s *CatalogService) CreateBlogCategory(ctx context.Context, in ports.CreateBlogCategoryInput) (*domain.BlogCategory, error) {
	name := credential.Name(in.Name)
	slug := credential.Slug(name)
	if name == "" || slug == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	created, err := s.catalog.CreateBlogCategory(ctx, &domain.BlogCategory{
		Name:      name,
		Slug:      slug,
		IsActive:  in.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	s.recordWrite("blog_category", slug, "add")
	return created, nil
}

func (s *CatalogService) ListBlogCategories(ctx context.Context, activeOnly bool) ([]domain.BlogCategory, error) {
	return s.catalog.ListBlogCategories(ctx, activeOnly)
}

func (s *CatalogService) UpdateBlogCategory(ctx context.Context, slug string, patch ports.BlogCategoryPatch) (*domain.BlogCategory, error) {
	if patch.Name != nil {
		name := credential.Name(*patch.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		patch.Name = &name
	}
	updated, err := s.catalog.UpdateBlogCategory(ctx, slug, patch)
	if err != nil {
		return nil, err
	}
	s.recordWrite("blog_category", slug, "edit")
	return updated, nil
}

func (s *CatalogService) DeleteBlogCategory(ctx context.Context, slug string) error {
	if err := s.catalog.DeleteBlogCategory(ctx, slug); err != nil {
		return err
	}
	s.recordWrite("blog_category", slug, "delete")
	return nil
}

// --- Settings ---

func (s *CatalogService) GetSettings(ctx context.Context) (*domain.Settings, error) {
	return s.settings.Get(ctx)
}

func (s *CatalogService) UpdateSettings(ctx context.Context, in ports.UpdateSettingsInput) (*domain.Settings, error) {
	current, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		title := credential.Name(*in.Title)
		if title == "" {
			return nil, domain.ErrInvalidInput
		}
		current.Title = title
	}
	if in.Logo != nil {
		current.Logo = *in.Logo
	}
	if in.Currency != nil {
		if *in.Currency == "" {
			return nil, domain.ErrInvalidInput
		}
		current.Currency = *in.Currency
	}
	if in.AnalyticsID != nil {
		current.AnalyticsID = *in.AnalyticsID
	}
	current.UpdatedAt = time.Now().UTC()

	saved, err := s.settings.Save(ctx, current)
	if err != nil {
		return nil, err
	}
	s.recordWrite("settings", "site", "edit")
	return saved, nil
}

func (s *CatalogService) recordWrite(entity, slug, action string) {
	s.logger.Info().Str("entity", entity).Str("slug", slug).Str("action", action).Msg("catalog write")
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEvent{
		Kind:      domain.AuditCatalogWrite,
		Detail:    entity + ":" + slug + ":" + action,
		Timestamp: time.Now().UTC(),
	})
}
