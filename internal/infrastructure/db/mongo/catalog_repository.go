package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/merchantry/storefront-api/internal/core/domain"
	"github.com/merchantry/storefront-api/internal/core/ports"
)

const (
	collectionCategories     = "categories"
	collectionProducts       = "products"
	collectionBlogs          = "blogs"
	collectionBlogCategories = "blog_categories"
)

// CatalogRepository implements ports.CatalogRepository on MongoDB. Each
// collection carries a unique slug index; duplicate inserts surface as
// domain.ErrSlugExists.
type CatalogRepository struct {
	db *mongo.Database
}

func NewCatalogRepository(db *mongo.Database) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// --- Categories ---

func (r *CatalogRepository) CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	if c.ID == "" {
		c.ID = primitive.NewObjectID().Hex()
	}
	return c, r.insert(ctx, collectionCategories, c)
}

func (r *CatalogRepository) FindCategory(ctx context.Context, slug string) (*domain.Category, error) {
	var c domain.Category
	if err := r.findBySlug(ctx, collectionCategories, slug, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CatalogRepository) ListCategories(ctx context.Context, activeOnly bool) ([]domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.db.Collection(collectionCategories).Find(ctx, listFilter(activeOnly), listOptions())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []domain.Category
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CatalogRepository) UpdateCategory(ctx context.Context, slug string, patch ports.CategoryPatch) (*domain.Category, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	setIfString(set, "name", patch.Name)
	setIfString(set, "description", patch.Description)
	setIfString(set, "image", patch.Image)
	setIfBool(set, "is_active", patch.IsActive)

	var c domain.Category
	if err := r.updateBySlug(ctx, collectionCategories, slug, set, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CatalogRepository) DeleteCategory(ctx context.Context, slug string) error {
	return r.deleteBySlug(ctx, collectionCategories, slug)
}

// --- Products ---

func (r *CatalogRepository) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if p.ID == "" {
		p.ID = primitive.NewObjectID().Hex()
	}
	return p, r.insert(ctx, collectionProducts, p)
}

func (r *CatalogRepository) FindProduct(ctx context.Context, slug string) (*domain.Product, error) {
	var p domain.Product
	if err := r.findBySlug(ctx, collectionProducts, slug, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CatalogRepository) ListProducts(ctx context.Context, activeOnly bool) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.db.Collection(collectionProducts).Find(ctx, listFilter(activeOnly), listOptions())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []domain.Product
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CatalogRepository) UpdateProduct(ctx context.Context, slug string, patch ports.ProductPatch) (*domain.Product, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	setIfString(set, "name", patch.Name)
	setIfString(set, "description", patch.Description)
	setIfBool(set, "is_active", patch.IsActive)
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Stock != nil {
		set["stock"] = *patch.Stock
	}
	if patch.Categories != nil {
		set["categories"] = *patch.Categories
	}
	if patch.Images != nil {
		set["images"] = *patch.Images
	}

	var p domain.Product
	if err := r.updateBySlug(ctx, collectionProducts, slug, set, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CatalogRepository) DeleteProduct(ctx context.Context, slug string) error {
	return r.deleteBySlug(ctx, collectionProducts, slug)
}

// --- Blogs ---

func (r *CatalogRepository) CreateBlog(ctx context.Context, b *domain.Blog) (*domain.Blog, error) {
	if b.ID == "" {
		b.ID = primitive.NewObjectID().Hex()
	}
	return b, r.insert(ctx, collectionBlogs, b)
}

func (r *CatalogRepository) FindBlog(ctx context.Context, slug string) (*domain.Blog, error) {
	var b domain.Blog
	if err := r.findBySlug(ctx, collectionBlogs, slug, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *CatalogRepository) ListBlogs(ctx context.Context, activeOnly bool) ([]domain.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.db.Collection(collectionBlogs).Find(ctx, listFilter(activeOnly), listOptions())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []domain.Blog
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CatalogRepository) UpdateBlog(ctx context.Context, slug string, patch ports.BlogPatch) (*domain.Blog, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	setIfString(set, "title", patch.Title)
	setIfString(set, "content", patch.Content)
	setIfString(set, "image", patch.Image)
	setIfBool(set, "is_active", patch.IsActive)
	if patch.Categories != nil {
		set["categories"] = *patch.Categories
	}

	var b domain.Blog
	if err := r.updateBySlug(ctx, collectionBlogs, slug, set, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *CatalogRepository) DeleteBlog(ctx context.Context, slug string) error {
	return r.deleteBySlug(ctx, collectionBlogs, slug)
}

// --- Blog categories ---

func (r *CatalogRepository) CreateBlogCategory(ctx context.Context, bc *domain.BlogCategory) (*domain.BlogCategory, error) {
	if bc.ID == "" {
		bc.ID = primitive.NewObjectID().Hex()
	}
	return bc, r.insert(ctx, collectionBlogCategories, bc)
}

func (r *CatalogRepository) ListBlogCategories(ctx context.Context, activeOnly bool) ([]domain.BlogCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.db.Collection(collectionBlogCategories).Find(ctx, listFilter(activeOnly), listOptions())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []domain.BlogCategory
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CatalogRepository) UpdateBlogCategory(ctx context.Context, slug string, patch ports.BlogCategoryPatch) (*domain.BlogCategory, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	setIfString(set, "name", patch.Name)
	setIfBool(set, "is_active", patch.IsActive)

	var bc domain.BlogCategory
	if err := r.updateBySlug(ctx, collectionBlogCategories, slug, set, &bc); err != nil {
		return nil, err
	}
	return &bc, nil
}

func (r *CatalogRepository) DeleteBlogCategory(ctx context.Context, slug string) error {
	return r.deleteBySlug(ctx, collectionBlogCategories, slug)
}

// EnsureIndexes creates the unique slug index on every content collection.
func (r *CatalogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for _, name := range []string{collectionCategories, collectionProducts, collectionBlogs, collectionBlogCategories} {
		_, err := r.db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// --- shared helpers ---

func (r *CatalogRepository) insert(ctx context.Context, collection string, doc any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrSlugExists
		}
		return err
	}
	return nil
}

func (r *CatalogRepository) findBySlug(ctx context.Context, collection, slug string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := r.db.Collection(collection).FindOne(ctx, bson.M{"slug": slug}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrNotFound
	}
	return err
}

func (r *CatalogRepository) updateBySlug(ctx context.Context, collection, slug string, set bson.M, out any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.db.Collection(collection).
		FindOneAndUpdate(ctx, bson.M{"slug": slug}, bson.M{"$set": set}, opts).
		Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrNotFound
	}
	return err
}

func (r *CatalogRepository) deleteBySlug(ctx context.Context, collection, slug string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.Collection(collection).DeleteOne(ctx, bson.M{"slug": slug})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func listFilter(activeOnly bool) bson.M {
	if activeOnly {
		return bson.M{"is_active": true}
	}
	return bson.M{}
}

func listOptions() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
}

func setIfString(set bson.M, key string, v *string) {
	if v != nil {
		set[key] = *v
	}
}

func setIfBool(set bson.M, key string, v *bool) {
	if v != nil {
		set[key] = *v
	}
}
