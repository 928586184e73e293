package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/merchantry/storefront-api/internal/core/domain"
	"github.com/merchantry/storefront-api/internal/core/ports"
)

// stubCatalogRepo keeps categories and products in maps keyed by slug and
// applies patches the way the Mongo repository does: nil means unchanged.
type stubCatalogRepo struct {
	categories map[string]*domain.Category
	products   map[string]*domain.Product
	blogs      map[string]*domain.Blog
	blogCats   map[string]*domain.BlogCategory
}

func newStubCatalogRepo() *stubCatalogRepo {
	return &stubCatalogRepo{
		categories: map[string]*domain.Category{},
		products:   map[string]*domain.Product{},
		blogs:      map[string]*domain.Blog{},
		blogCats:   map[string]*domain.BlogCategory{},
	}
}

func (r *stubCatalogRepo) CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	if _, ok := r.categories[c.Slug]; ok {
		return nil, domain.ErrSlugExists
	}
	cp := *c
	r.categories[c.Slug] = &cp
	return &cp, nil
}

func (r *stubCatalogRepo) FindCategory(ctx context.Context, slug string) (*domain.Category, error) {
	c, ok := r.categories[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubCatalogRepo) ListCategories(ctx context.Context, activeOnly bool) ([]domain.Category, error) {
	var out []domain.Category
	for _, c := range r.categories {
		if activeOnly && !c.IsActive {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCatalogRepo) UpdateCategory(ctx context.Context, slug string, patch ports.CategoryPatch) (*domain.Category, error) {
	c, ok := r.categories[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	if patch.Image != nil {
		c.Image = *patch.Image
	}
	if patch.IsActive != nil {
		c.IsActive = *patch.IsActive
	}
	cp := *c
	return &cp, nil
}

func (r *stubCatalogRepo) DeleteCategory(ctx context.Context, slug string) error {
	if _, ok := r.categories[slug]; !ok {
		return domain.ErrNotFound
	}
	delete(r.categories, slug)
	return nil
}

func (r *stubCatalogRepo) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if _, ok := r.products[p.Slug]; ok {
		return nil, domain.ErrSlugExists
	}
	cp := *p
	r.products[p.Slug] = &cp
	return &cp, nil
}

func (r *stubCatalogRepo) FindProduct(ctx context.Context, slug string) (*domain.Product, error) {
	p, ok := r.products[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubCatalogRepo) ListProducts(ctx context.Context, activeOnly bool) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.products {
		if activeOnly && !p.IsActive {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubCatalogRepo) UpdateProduct(ctx context.Context, slug string, patch ports.ProductPatch) (*domain.Product, error) {
	p, ok := r.products[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Categories != nil {
		p.Categories = *patch.Categories
	}
	if patch.Images != nil {
		p.Images = *patch.Images
	}
	if patch.IsActive != nil {
		p.IsActive = *patch.IsActive
	}
	cp := *p
	return &cp, nil
}

func (r *stubCatalogRepo) DeleteProduct(ctx context.Context, slug string) error {
	if _, ok := r.products[slug]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, slug)
	return nil
}

func (r *stubCatalogRepo) CreateBlog(ctx context.Context, b *domain.Blog) (*domain.Blog, error) {
	if _, ok := r.blogs[b.Slug]; ok {
		return nil, domain.ErrSlugExists
	}
	cp := *b
	r.blogs[b.Slug] = &cp
	return &cp, nil
}

func (r *stubCatalogRepo) FindBlog(ctx context.Context, slug string) (*domain.Blog, error) {
	b, ok := r.blogs[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *stubCatalogRepo) ListBlogs(ctx context.Context, activeOnly bool) ([]domain.Blog, error) {
	var out []domain.Blog
	for _, b := range r.blogs {
		if activeOnly && !b.IsActive {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *stubCatalogRepo) UpdateBlog(ctx context.Context, slug string, patch ports.BlogPatch) (*domain.Blog, error) {
	b, ok := r.blogs[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if patch.Title != nil {
		b.Title = *patch.Title
	}
	if patch.Content != nil {
		b.Content = *patch.Content
	}
	if patch.Image != nil {
		b.Image = *patch.Image
	}
	if patch.Categories != nil {
		b.Categories = *patch.Categories
	}
	if patch.IsActive != nil {
		b.IsActive = *patch.IsActive
	}
	cp := *b
	return &cp, nil
}

func (r *stubCatalogRepo) DeleteBlog(ctx context.Context, slug string) error {
	if _, ok := r.blogs[slug]; !ok {
		return domain.ErrNotFound
	}
	delete(r.blogs, slug)
	return nil
}

func (r *stubCatalogRepo) CreateBlogCategory(ctx context.Context, bc *domain.BlogCategory) (*domain.BlogCategory, error) {
	if _, ok := r.blogCats[bc.Slug]; ok {
		return nil, domain.ErrSlugExists
	}
	cp := *bc
	r.blogCats[bc.Slug] = &cp
	return &cp, nil
}

func (r *stubCatalogRepo) ListBlogCategories(ctx context.Context, activeOnly bool) ([]domain.BlogCategory, error) {
	var out []domain.BlogCategory
	for _, bc := range r.blogCats {
		if activeOnly && !bc.IsActive {
			continue
		}
		out = append(out, *bc)
	}
	return out, nil
}

func (r *stubCatalogRepo) UpdateBlogCategory(ctx context.Context, slug string, patch ports.BlogCategoryPatch) (*domain.BlogCategory, error) {
	bc, ok := r.blogCats[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if patch.Name != nil {
		bc.Name = *patch.Name
	}
	if patch.IsActive != nil {
		bc.IsActive = *patch.IsActive
	}
	cp := *bc
	return &cp, nil
}

func (r *stubCatalogRepo) DeleteBlogCategory(ctx context.Context, slug string) error {
	if _, ok := r.blogCats[slug]; !ok {
		return domain.ErrNotFound
	}
	delete(r.blogCats, slug)
	return nil
}

type stubSettingsRepo struct {
	current *domain.Settings
}

func (r *stubSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	if r.current == nil {
		return &domain.Settings{Title: "Storefront", Currency: "USD"}, nil
	}
	cp := *r.current
	return &cp, nil
}

func (r *stubSettingsRepo) Save(ctx context.Context, s *domain.Settings) (*domain.Settings, error) {
	cp := *s
	r.current = &cp
	return &cp, nil
}

func newCatalogService(repo *stubCatalogRepo, settings *stubSettingsRepo) *CatalogService {
	return NewCatalogService(repo, settings, nil, zerolog.Nop())
}

func TestCreateCategory_DerivesSlugFromName(t *testing.T) {
	svc := newCatalogService(newStubCatalogRepo(), &stubSettingsRepo{})

	created, err := svc.CreateCategory(context.Background(), ports.CreateCategoryInput{
		Name:     "  Summer  Sale! ",
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Name != "Summer  Sale!" {
		t.Fatalf("unexpected name: %q", created.Name)
	}
	if created.Slug != "summer-sale" {
		t.Fatalf("unexpected slug: %q", created.Slug)
	}
}

func TestCreateCategory_DuplicateSlug(t *testing.T) {
	svc := newCatalogService(newStubCatalogRepo(), &stubSettingsRepo{})

	if _, err := svc.CreateCategory(context.Background(), ports.CreateCategoryInput{Name: "Shoes"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	// Different raw spellings of the same name collapse to one slug.
	_, err := svc.CreateCategory(context.Background(), ports.CreateCategoryInput{Name: "  SHOES "})
	if err != domain.ErrSlugExists {
		t.Fatalf("expected ErrSlugExists, got %v", err)
	}
}

func TestCreateCategory_BlankNameRejected(t *testing.T) {
	svc := newCatalogService(newStubCatalogRepo(), &stubSettingsRepo{})

	_, err := svc.CreateCategory(context.Background(), ports.CreateCategoryInput{Name: "  \x00\x01 "})
	if err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdateProduct_PatchSemantics(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := newCatalogService(repo, &stubSettingsRepo{})

	created, err := svc.CreateProduct(context.Background(), ports.CreateProductInput{
		Name:        "Desk Lamp",
		Description: "warm light",
		Price:       29.90,
		Stock:       10,
		IsActive:    true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Absent fields stay untouched; present zero values are applied.
	zeroStock := 0
	inactive := false
	updated, err := svc.UpdateProduct(context.Background(), created.Slug, ports.ProductPatch{
		Stock:    &zeroStock,
		IsActive: &inactive,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Stock != 0 || updated.IsActive {
		t.Fatalf("zero-value fields not applied: %+v", updated)
	}
	if updated.Name != "Desk Lamp" || updated.Price != 29.90 || updated.Description != "warm light" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestUpdateProduct_NegativeValuesRejected(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := newCatalogService(repo, &stubSettingsRepo{})

	created, err := svc.CreateProduct(context.Background(), ports.CreateProductInput{Name: "Mug", Price: 5})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	negative := -1.0
	if _, err := svc.UpdateProduct(context.Background(), created.Slug, ports.ProductPatch{Price: &negative}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for negative price, got %v", err)
	}
	negStock := -3
	if _, err := svc.UpdateProduct(context.Background(), created.Slug, ports.ProductPatch{Stock: &negStock}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for negative stock, got %v", err)
	}
}

func TestListProducts_ActiveOnlyFiltering(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := newCatalogService(repo, &stubSettingsRepo{})

	if _, err := svc.CreateProduct(context.Background(), ports.CreateProductInput{Name: "Visible", IsActive: true}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CreateProduct(context.Background(), ports.CreateProductInput{Name: "Hidden", IsActive: false}); err != nil {
		t.Fatalf("create: %v", err)
	}

	public, err := svc.ListProducts(context.Background(), true)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(public) != 1 || public[0].Name != "Visible" {
		t.Fatalf("public listing should hide inactive products: %+v", public)
	}

	all, err := svc.ListProducts(context.Background(), false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin listing should include inactive products: %+v", all)
	}
}

func TestGetProduct_InactiveHiddenFromPublic(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := newCatalogService(repo, &stubSettingsRepo{})

	created, err := svc.CreateProduct(context.Background(), ports.CreateProductInput{
		Name:     "Draft Chair",
		IsActive: false,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Public lookup by slug must behave as if the product does not exist.
	if _, err := svc.GetProduct(context.Background(), created.Slug, true); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound for inactive product on public path, got %v", err)
	}

	got, err := svc.GetProduct(context.Background(), created.Slug, false)
	if err != nil {
		t.Fatalf("staff lookup failed: %v", err)
	}
	if got.Slug != created.Slug {
		t.Fatalf("unexpected product: %+v", got)
	}
}

func TestGetCategoryAndBlog_InactiveHiddenFromPublic(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := newCatalogService(repo, &stubSettingsRepo{})

	category, err := svc.CreateCategory(context.Background(), ports.CreateCategoryInput{Name: "Hidden Cat"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	if _, err := svc.GetCategory(context.Background(), category.Slug, true); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound for inactive category, got %v", err)
	}

	blog, err := svc.CreateBlog(context.Background(), ports.CreateBlogInput{Title: "Hidden Post", Content: "body"})
	if err != nil {
		t.Fatalf("create blog: %v", err)
	}
	if _, err := svc.GetBlog(context.Background(), blog.Slug, true); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound for inactive blog, got %v", err)
	}
}

func TestDeleteCategory_NotFound(t *testing.T) {
	svc := newCatalogService(newStubCatalogRepo(), &stubSettingsRepo{})

	if err := svc.DeleteCategory(context.Background(), "ghost"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateSettings_PartialPatch(t *testing.T) {
	settings := &stubSettingsRepo{}
	svc := newCatalogService(newStubCatalogRepo(), settings)

	title := "My Shop"
	updated, err := svc.UpdateSettings(context.Background(), ports.UpdateSettingsInput{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "My Shop" {
		t.Fatalf("title not applied: %+v", updated)
	}
	if updated.Currency != "USD" {
		t.Fatalf("currency should keep its default: %+v", updated)
	}

	empty := ""
	if _, err := svc.UpdateSettings(context.Background(), ports.UpdateSettingsInput{Currency: &empty}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for empty currency, got %v", err)
	}
}
