package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumistore/backoffice/internal/catalog/app/service"
)

func ptr(s string) *string {
	return &s
}

func TestBuildCategoryTree_LinksChildrenToParents(t *testing.T) {
	t.Parallel()

	categories := []service.Category{
		{ID: "clothes", Name: "Clothes", SortOrder: 2},
		{ID: "shoes", Name: "Shoes", SortOrder: 1},
		{ID: "shirts", Name: "Shirts", ParentID: ptr("clothes"), SortOrder: 2},
		{ID: "jackets", Name: "Jackets", ParentID: ptr("clothes"), SortOrder: 1},
		{ID: "sneakers", Name: "Sneakers", ParentID: ptr("shoes")},
	}

	roots := service.BuildCategoryTree(categories)

	require.Len(t, roots, 2)
	assert.Equal(t, "shoes", roots[0].ID)
	assert.Equal(t, "clothes", roots[1].ID)

	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, "sneakers", roots[0].Children[0].ID)

	require.Len(t, roots[1].Children, 2)
	assert.Equal(t, "jackets", roots[1].Children[0].ID, "siblings ordered by sort order")
	assert.Equal(t, "shirts", roots[1].Children[1].ID)
}

func TestBuildCategoryTree_PromotesOrphansToRoot(t *testing.T) {
	t.Parallel()

	categories := []service.Category{
		{ID: "orphan", Name: "Orphan", ParentID: ptr("missing")},
		{ID: "self", Name: "Self", ParentID: ptr("self")},
	}

	roots := service.BuildCategoryTree(categories)

	require.Len(t, roots, 2)
	assert.Equal(t, "orphan", roots[0].ID)
	assert.Equal(t, "self", roots[1].ID)
	assert.Empty(t, roots[1].Children)
}

func TestBuildCategoryTree_SortsSiblingsByNameOnEqualOrder(t *testing.T) {
	t.Parallel()

	categories := []service.Category{
		{ID: "b", Name: "Bags"},
		{ID: "a", Name: "Accessories"},
	}

	roots := service.BuildCategoryTree(categories)

	require.Len(t, roots, 2)
	assert.Equal(t, "Accessories", roots[0].Name)
	assert.Equal(t, "Bags", roots[1].Name)
}
