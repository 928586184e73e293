package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/merchantry/storefront-api/internal/api/metrics"
	"github.com/merchantry/storefront-api/internal/core/ports"
)

// CatalogHandler serves the storefront content routes. Authentication and
// role policy are applied by middleware on the admin route group; the
// public read routes list active content only.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// --- Categories ---

// ListCategories returns active categories on the public route and all
// categories under /admin.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	activeOnly := !isAdminRoute(c)
	categories, err := h.catalog.ListCategories(c.Request().Context(), activeOnly)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, categories)
}

// GetCategory serves the public detail route; inactive categories are
// indistinguishable from absent ones here.
func (h *CatalogHandler) GetCategory(c echo.Context) error {
	category, err := h.catalog.GetCategory(c.Request().Context(), c.Param("slug"), !isAdminRoute(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, category)
}

// CreateCategory adds a category.
//
// @Summary      Create category
// @Tags         catalog
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      createCategoryRequest  true  "Category"
// @Success      201   {object}  successEnvelope
// @Failure      409   {object}  envelope
// @Router       /admin/categories [post]
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.catalog.CreateCategory(c.Request().Context(), ports.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("category", "add").Inc()
	return respond(c, http.StatusCreated, category)
}

func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	var req updateCategoryRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	category, err := h.catalog.UpdateCategory(c.Request().Context(), c.Param("slug"), ports.CategoryPatch{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("category", "edit").Inc()
	return respond(c, http.StatusOK, category)
}

func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	if err := h.catalog.DeleteCategory(c.Request().Context(), c.Param("slug")); err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("category", "delete").Inc()
	return respondMessage(c, http.StatusOK, "category deleted")
}

// --- Products ---

func (h *CatalogHandler) ListProducts(c echo.Context) error {
	activeOnly := !isAdminRoute(c)
	products, err := h.catalog.ListProducts(c.Request().Context(), activeOnly)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.catalog.GetProduct(c.Request().Context(), c.Param("slug"), !isAdminRoute(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, product)
}

// CreateProduct adds a product.
//
// @Summary      Create product
// @Tags         catalog
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      createProductRequest  true  "Product"
// @Success      201   {object}  successEnvelope
// @Failure      409   {object}  envelope
// @Router       /admin/products [post]
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.catalog.CreateProduct(c.Request().Context(), ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Categories:  req.Categories,
		Images:      req.Images,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("product", "add").Inc()
	return respond(c, http.StatusCreated, product)
}

func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	var req updateProductRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	product, err := h.catalog.UpdateProduct(c.Request().Context(), c.Param("slug"), ports.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Categories:  req.Categories,
		Images:      req.Images,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("product", "edit").Inc()
	return respond(c, http.StatusOK, product)
}

func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	if err := h.catalog.DeleteProduct(c.Request().Context(), c.Param("slug")); err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("product", "delete").Inc()
	return respondMessage(c, http.StatusOK, "product deleted")
}

// --- Blogs ---

func (h *CatalogHandler) ListBlogs(c echo.Context) error {
	activeOnly := !isAdminRoute(c)
	blogs, err := h.catalog.ListBlogs(c.Request().Context(), activeOnly)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, blogs)
}

func (h *CatalogHandler) GetBlog(c echo.Context) error {
	blog, err := h.catalog.GetBlog(c.Request().Context(), c.Param("slug"), !isAdminRoute(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, blog)
}

func (h *CatalogHandler) CreateBlog(c echo.Context) error {
	var req createBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	blog, err := h.catalog.CreateBlog(c.Request().Context(), ports.CreateBlogInput{
		Title:      req.Title,
		Content:    req.Content,
		Image:      req.Image,
		Categories: req.Categories,
		IsActive:   req.IsActive,
	})
	if err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("blog", "add").Inc()
	return respond(c, http.StatusCreated, blog)
}

func (h *CatalogHandler) UpdateBlog(c echo.Context) error {
	var req updateBlogRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	blog, err := h.catalog.UpdateBlog(c.Request().Context(), c.Param("slug"), ports.BlogPatch{
		Title:      req.Title,
		Content:    req.Content,
		Image:      req.Image,
		Categories: req.Categories,
		IsActive:   req.IsActive,
	})
	if err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("blog", "edit").Inc()
	return respond(c, http.StatusOK, blog)
}

func (h *CatalogHandler) DeleteBlog(c echo.Context) error {
	if err := h.catalog.DeleteBlog(c.Request().Context(), c.Param("slug")); err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("blog", "delete").Inc()
	return respondMessage(c, http.StatusOK, "blog deleted")
}

// --- Blog categories ---

func (h *CatalogHandler) ListBlogCategories(c echo.Context) error {
	activeOnly := !isAdminRoute(c)
	categories, err := h.catalog.ListBlogCategories(c.Request().Context(), activeOnly)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, categories)
}

func (h *CatalogHandler) CreateBlogCategory(c echo.Context) error {
	var req createBlogCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	bc, err := h.catalog.CreateBlogCategory(c.Request().Context(), ports.CreateBlogCategoryInput{
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	if err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("blog_category", "add").Inc()
	return respond(c, http.StatusCreated, bc)
}

func (h *CatalogHandler) UpdateBlogCategory(c echo.Context) error {
	var req updateBlogCategoryRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	bc, err := h.catalog.UpdateBlogCategory(c.Request().Context(), c.Param("slug"), ports.BlogCategoryPatch{
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	if err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("blog_category", "edit").Inc()
	return respond(c, http.StatusOK, bc)
}

func (h *CatalogHandler) DeleteBlogCategory(c echo.Context) error {
	if err := h.catalog.DeleteBlogCategory(c.Request().Context(), c.Param("slug")); err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("blog_category", "delete").Inc()
	return respondMessage(c, http.StatusOK, "blog category deleted")
}

// isAdminRoute reports whether the request came through the /admin group,
// where inactive content is visible.
func isAdminRoute(c echo.Context) bool {
	path := c.Path()
	return len(path) >= 6 && path[:6] == "/admin"
}
