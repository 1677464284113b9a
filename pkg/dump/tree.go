// File: pkg/dump/tree.go
package dump

import (
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

type treeNode struct {
	name     string
	dir      bool
	children map[string]*treeNode
}

func newTreeNode(name string, dir bool) *treeNode {
	return &treeNode{name: name, dir: dir, children: map[string]*treeNode{}}
}

func (n *treeNode) insert(parts []string) {
	if len(parts) == 0 {
		return
	}
	child, ok := n.children[parts[0]]
	if !ok {
		child = newTreeNode(parts[0], len(parts) > 1)
		n.children[parts[0]] = child
	}
	if len(parts) > 1 {
		child.dir = true
		child.insert(parts[1:])
	}
}

// RenderTree renders paths as a directory tree under a root labelled label.
// Directories come first, then files, each group sorted case-insensitively.
func RenderTree(label string, paths []string) string {
	root := newTreeNode(label, true)
	for _, p := range paths {
		clean := path.Clean(filepath.ToSlash(p))
		if clean == "." || clean == "/" {
			continue
		}
		root.insert(strings.Split(strings.TrimPrefix(clean, "/"), "/"))
	}

	var treeBuilder strings.Builder
	treeBuilder.WriteString(label + "/\n")
	if subtree := renderChildren(root, ""); subtree != "" {
		treeBuilder.WriteString(subtree)
		treeBuilder.WriteString("\n")
	}
	return treeBuilder.String()
}

func renderChildren(n *treeNode, prefix string) string {
	entries := make([]*treeNode, 0, len(n.children))
	for _, child := range n.children {
		entries = append(entries, child)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].dir != entries[j].dir {
			return entries[i].dir
		}
		li, lj := strings.ToLower(entries[i].name), strings.ToLower(entries[j].name)
		if li != lj {
			return li < lj
		}
		return entries[i].name < entries[j].name
	})

	var output []string
	for i, entry := range entries {
		connector := "├── "
		extension := "│   "
		if i == len(entries)-1 {
			connector = "└── "
			extension = "    "
		}

		if entry.dir {
			output = append(output, fmt.Sprintf("%s%s%s/", prefix, connector, entry.name))
			if subtree := renderChildren(entry, prefix+extension); subtree != "" {
				output = append(output, subtree)
			}
			continue
		}
		output = append(output, prefix+connector+entry.name)
	}

	return strings.Join(output, "\n")
}
