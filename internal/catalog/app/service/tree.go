package service

import "sort"

type CategoryNode struct {
	Category
	Children []*CategoryNode `json:"children"`
}

// BuildCategoryTree links categories to their parents. A category whose
// parent is missing from the input is promoted to the root level rather
// than silently lost. Siblings are ordered by sort order, then name.
func BuildCategoryTree(categories []Category) []*CategoryNode {
	nodes := make(map[string]*CategoryNode, len(categories))
	for _, category := range categories {
		nodes[category.ID] = &CategoryNode{Category: category}
	}

	var roots []*CategoryNode
	for _, category := range categories {
		node := nodes[category.ID]
		if category.ParentID == nil {
			roots = append(roots, node)
			continue
		}

		parent, ok := nodes[*category.ParentID]
		if !ok || parent == node {
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	sortNodes(roots)
	for _, node := range nodes {
		sortNodes(node.Children)
	}

	return roots
}

func sortNodes(nodes []*CategoryNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].SortOrder != nodes[j].SortOrder {
			return nodes[i].SortOrder < nodes[j].SortOrder
		}
		return nodes[i].Name < nodes[j].Name
	})
}
