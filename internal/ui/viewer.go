package ui

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// maxPreviewBytes caps how much of a log file the viewer loads
const maxPreviewBytes = 256 * 1024

// Viewer displays the advanced log hierarchy
type Viewer interface {
	View(root string, files []string) error
}

// LogViewer browses advanced logs in an interactive TUI
type LogViewer struct{}

// NewLogViewer creates a new LogViewer
func NewLogViewer() *LogViewer {
	return &LogViewer{}
}

// View shows the folder tree on the left and the selected file on the right
func (lv *LogViewer) View(root string, files []string) error {
	app := tview.NewApplication()

	tree := BuildTree(root, files)
	rootNode := tview.NewTreeNode(tree.Path).
		SetColor(tcell.ColorTurquoise).
		SetReference(tree)
	addTreeNodes(rootNode, tree)

	treeView := tview.NewTreeView().
		SetRoot(rootNode).
		SetCurrentNode(rootNode)
	treeView.SetBorder(true).SetTitle(" Advanced Logs ")

	pathView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	contentView := tview.NewTextView().
		SetDynamicColors(false).
		SetWrap(true).
		SetWordWrap(true)
	contentView.SetBorder(true)

	showNode := func(node *tview.TreeNode) {
		ref, ok := node.GetReference().(*TreeNode)
		if !ok {
			return
		}
		pathView.SetText(fmt.Sprintf("[cyan]path:[white] [yellow]%s[white]", tview.Escape(ref.Path)))
		if !ref.IsFile {
			contentView.SetText(fmt.Sprintf("%d item(s)", len(ref.Children)))
			return
		}
		contentView.SetText(readPreview(ref.Path))
		contentView.ScrollToBeginning()
	}

	treeView.SetChangedFunc(showNode)
	treeView.SetSelectedFunc(func(node *tview.TreeNode) {
		ref, ok := node.GetReference().(*TreeNode)
		if !ok {
			return
		}
		if ref.IsFile {
			app.SetFocus(contentView)
			return
		}
		node.SetExpanded(!node.IsExpanded())
	})

	contentView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(treeView)
			return nil
		}
		return event
	})

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlC || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			app.Stop()
			return nil
		}
		return event
	})

	header := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" Advanced logs (%d files) | ↑↓ navigate, Enter open/expand, ← back, q to exit ", len(files)))

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(pathView, 1, 0, false).
		AddItem(contentView, 0, 1, false)

	body := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(treeView, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 1, 0, false).
		AddItem(body, 0, 1, true)

	showNode(rootNode)

	if err := app.SetRoot(layout, true).SetFocus(treeView).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func addTreeNodes(target *tview.TreeNode, node *TreeNode) {
	for _, child := range node.SortedChildren() {
		item := tview.NewTreeNode(child.Name).
			SetReference(child).
			SetSelectable(true)
		if child.IsFile {
			item.SetColor(tcell.ColorYellow)
		} else {
			item.SetColor(tcell.ColorDarkCyan)
			addTreeNodes(item, child)
		}
		target.AddChild(item)
	}
}

func readPreview(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Sprintf("cannot open %s: %v", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxPreviewBytes+1))
	if err != nil {
		return fmt.Sprintf("cannot read %s: %v", path, err)
	}
	if len(data) > maxPreviewBytes {
		cut := maxPreviewBytes
		for cut > 0 && !utf8.RuneStart(data[cut]) {
			cut--
		}
		return string(data[:cut]) + "\n... (truncated)"
	}
	return string(data)
}
