package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/lumistore/backoffice/internal/upstream"
)

type (
	Product struct {
		ID          string   `json:"id"`
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Price       int64    `json:"price"`
		CategoryID  string   `json:"categoryId"`
		Live        bool     `json:"live"`
		ImageURLs   []string `json:"imageUrls"`
	}

	ProductInput struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Price       int64    `json:"price"`
		CategoryID  string   `json:"categoryId"`
		Live        bool     `json:"live"`
		ImageURLs   []string `json:"imageUrls"`
	}

	ProductPage struct {
		Items   []Product `json:"items"`
		Total   int       `json:"total"`
		Page    int       `json:"page"`
		PerPage int       `json:"perPage"`
	}

	Category struct {
		ID        string  `json:"id"`
		Name      string  `json:"name"`
		ParentID  *string `json:"parentId"`
		SortOrder int     `json:"sortOrder"`
	}

	CategoryInput struct {
		Name      string  `json:"name"`
		ParentID  *string `json:"parentId"`
		SortOrder int     `json:"sortOrder"`
	}

	Catalog struct {
		upstream *upstream.Client
	}
)

func NewCatalog(upstreamClient *upstream.Client) *Catalog {
	return &Catalog{upstream: upstreamClient}
}

func (s *Catalog) Products(ctx context.Context, page, perPage int) (ProductPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("perPage", strconv.Itoa(perPage))

	result, err := upstream.GetJSON[ProductPage](ctx, s.upstream, "/products", query)
	if err != nil {
		return ProductPage{}, fmt.Errorf("list products: %w", err)
	}
	return result, nil
}

func (s *Catalog) Product(ctx context.Context, id string) (Product, error) {
	result, err := upstream.GetJSON[Product](ctx, s.upstream, "/products/"+url.PathEscape(id), nil)
	if err != nil {
		return Product{}, fmt.Errorf("get product %s: %w", id, err)
	}
	return result, nil
}

func (s *Catalog) CreateProduct(ctx context.Context, in ProductInput) (Product, error) {
	result, err := upstream.PostJSON[Product](ctx, s.upstream, "/products", in)
	if err != nil {
		return Product{}, fmt.Errorf("create product: %w", err)
	}
	return result, nil
}

func (s *Catalog) UpdateProduct(ctx context.Context, id string, in ProductInput) (Product, error) {
	result, err := upstream.PutJSON[Product](ctx, s.upstream, "/products/"+url.PathEscape(id), in)
	if err != nil {
		return Product{}, fmt.Errorf("update product %s: %w", id, err)
	}
	return result, nil
}

func (s *Catalog) DeleteProduct(ctx context.Context, id string) error {
	if err := upstream.Delete(ctx, s.upstream, "/products/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	return nil
}

func (s *Catalog) Categories(ctx context.Context) ([]Category, error) {
	result, err := upstream.GetJSON[[]Category](ctx, s.upstream, "/categories", nil)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return result, nil
}

// CategoryTree assembles the flat upstream category list into the
// hierarchy the combobox renders.
func (s *Catalog) CategoryTree(ctx context.Context) ([]*CategoryNode, error) {
	categories, err := s.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return BuildCategoryTree(categories), nil
}

func (s *Catalog) CreateCategory(ctx context.Context, in CategoryInput) (Category, error) {
	result, err := upstream.PostJSON[Category](ctx, s.upstream, "/categories", in)
	if err != nil {
		return Category{}, fmt.Errorf("create category: %w", err)
	}
	return result, nil
}

func (s *Catalog) UpdateCategory(ctx context.Context, id string, in CategoryInput) (Category, error) {
	result, err := upstream.PutJSON[Category](ctx, s.upstream, "/categories/"+url.PathEscape(id), in)
	if err != nil {
		return Category{}, fmt.Errorf("update category %s: %w", id, err)
	}
	return result, nil
}

func (s *Catalog) DeleteCategory(ctx context.Context, id string) error {
	if err := upstream.Delete(ctx, s.upstream, "/categories/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("delete category %s: %w", id, err)
	}
	return nil
}
