package domain

import "slices"

// TreeNode is a row of the sidebar tree. The root node has Kind KindUnknown.
type TreeNode struct {
	Kind       Kind
	ID         int
	Name       string
	Color      string
	Icon       string
	Children   []*TreeNode
	IsExpanded bool
	Parent     *TreeNode
}

// Ref returns the reference for the node's note or folder
func (n *TreeNode) Ref() Ref {
	return Ref{Kind: n.Kind, ID: n.ID}
}

// BuildTree assembles the sidebar: folders in order with their notes, then
// root notes in order.
func BuildTree(notes []Note, folders []Folder) *TreeNode {
	root := &TreeNode{Name: "root", IsExpanded: true}

	sorted := slices.Clone(folders)
	SortFolders(sorted)
	for _, f := range sorted {
		fn := &TreeNode{
			Kind:       KindFolder,
			ID:         f.ID,
			Name:       f.Name,
			Color:      f.Color,
			IsExpanded: f.IsExpanded,
			Parent:     root,
		}
		for _, n := range Siblings(notes, FolderRef(f.ID)) {
			fn.Children = append(fn.Children, noteNode(n, f.Color, fn))
		}
		root.Children = append(root.Children, fn)
	}

	for _, n := range Siblings(notes, nil) {
		root.Children = append(root.Children, noteNode(n, DefaultIconColor, root))
	}
	return root
}

func noteNode(n Note, color string, parent *TreeNode) *TreeNode {
	if color == "" {
		color = DefaultIconColor
	}
	return &TreeNode{
		Kind:   KindNote,
		ID:     n.ID,
		Name:   n.Name,
		Color:  color,
		Icon:   n.Icon,
		Parent: parent,
	}
}

// Flatten returns all visible nodes below the root (for list rendering)
func (n *TreeNode) Flatten() []*TreeNode {
	var result []*TreeNode
	for _, child := range n.Children {
		child.flattenRecursive(&result)
	}
	return result
}

func (n *TreeNode) flattenRecursive(result *[]*TreeNode) {
	*result = append(*result, n)
	if n.IsExpanded {
		for _, child := range n.Children {
			child.flattenRecursive(result)
		}
	}
}

// Depth returns the depth of this node below the root
func (n *TreeNode) Depth() int {
	depth := 0
	current := n.Parent
	for current != nil && current.Parent != nil {
		depth++
		current = current.Parent
	}
	return depth
}
