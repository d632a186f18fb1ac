package ui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
)

// Formatter formats and displays output
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to stdout
func NewFormatter() *Formatter {
	return &Formatter{out: os.Stdout}
}

// SetOutput redirects formatter output
func (f *Formatter) SetOutput(w io.Writer) {
	f.out = w
}

// PrintPath prints a resolved advanced log path
func (f *Formatter) PrintPath(path string) {
	fmt.Fprintln(f.out, path)
}

// PrintSuccess prints a confirmation message
func (f *Formatter) PrintSuccess(msg string) {
	color.New(color.FgGreen).Fprintf(f.out, "✓ %s\n", msg)
}

// PrintContext prints the current suite chain and test name
func (f *Formatter) PrintContext(suites []string, testName string) {
	if len(suites) == 0 {
		color.New(color.FgYellow).Fprintln(f.out, "No suite is set")
	} else {
		fmt.Fprintf(f.out, "%s %s\n", color.CyanString("suite:"), strings.Join(suites, " > "))
	}
	if testName != "" {
		fmt.Fprintf(f.out, "%s %s\n", color.CyanString("test: "), testName)
	}
}

// TreeNode represents a node in the log folder tree
type TreeNode struct {
	Name     string
	Path     string
	Children map[string]*TreeNode
	IsFile   bool
}

// SortedChildren returns the children ordered folders first, then by name
func (n *TreeNode) SortedChildren() []*TreeNode {
	children := make([]*TreeNode, 0, len(n.Children))
	for _, child := range n.Children {
		children = append(children, child)
	}
	sort.Slice(children, func(i, j int) bool {
		if children[i].IsFile != children[j].IsFile {
			return !children[i].IsFile
		}
		return children[i].Name < children[j].Name
	})
	return children
}

// BuildTree arranges files found under root into a tree. Files outside
// root are ignored.
func BuildTree(root string, files []string) *TreeNode {
	tree := &TreeNode{
		Name:     filepath.Base(root),
		Path:     root,
		Children: make(map[string]*TreeNode),
	}

	for _, file := range files {
		rel, err := filepath.Rel(root, file)
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			continue
		}

		parts := strings.Split(rel, string(filepath.Separator))
		current := tree
		for i, part := range parts {
			if current.Children[part] == nil {
				current.Children[part] = &TreeNode{
					Name:     part,
					Path:     filepath.Join(current.Path, part),
					Children: make(map[string]*TreeNode),
					IsFile:   i == len(parts)-1,
				}
			}
			current = current.Children[part]
		}
	}
	return tree
}

// PrintTree prints the advanced log hierarchy under root
func (f *Formatter) PrintTree(root string, files []string) {
	if len(files) == 0 {
		color.New(color.FgYellow).Fprintln(f.out, "No advanced logs found")
		return
	}

	tree := BuildTree(root, files)
	color.New(color.FgCyan).Fprintln(f.out, tree.Path)
	f.printTreeNode(tree, "")

	fmt.Fprintln(f.out)
	color.New(color.FgGreen).Fprintf(f.out, "✓ %d log file(s)\n", len(files))
}

func (f *Formatter) printTreeNode(node *TreeNode, prefix string) {
	children := node.SortedChildren()
	for i, child := range children {
		connector := "├── "
		nextPrefix := prefix + "│   "
		if i == len(children)-1 {
			connector = "└── "
			nextPrefix = prefix + "    "
		}

		if child.IsFile {
			fmt.Fprintf(f.out, "%s%s%s\n", prefix, connector, color.YellowString(child.Name))
			continue
		}
		fmt.Fprintf(f.out, "%s%s%s\n", prefix, connector, color.CyanString(child.Name))
		f.printTreeNode(child, nextPrefix)
	}
}
