package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/isobus-tools/vtpool/internal/check"
	"github.com/isobus-tools/vtpool/internal/object"
	"github.com/isobus-tools/vtpool/internal/pool"
	"github.com/isobus-tools/vtpool/internal/project"
	"github.com/isobus-tools/vtpool/internal/ui"
)

type treeNode struct {
	ID       uint16     `json:"id"`
	Type     string     `json:"type,omitempty"`
	Name     string     `json:"name,omitempty"`
	Missing  bool       `json:"missing,omitempty"`
	Cycle    bool       `json:"cycle,omitempty"`
	Children []treeNode `json:"children,omitempty"`
}

var treeCmd = &cobra.Command{
	Use:   "tree <file>",
	Short: "Show the reference tree below the working set",
	Long: `Walks every reference edge from the working set: children, masks,
variables, attributes and macro bindings.

References to objects that are not in the pool show as "missing". An
object referenced from several parents appears under each of them;
reference cycles are cut where they close.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		proj, _, err := loadEditorProject(args[0])
		if err != nil {
			return reportError(err)
		}

		p := proj.Staged()
		ws, ok := p.WorkingSet()
		if !ok {
			if isJSONOutput() {
				outputSuccessWithWarnings(map[string]interface{}{
					"objects": p.Len(),
				}, []Warning{{Code: check.CodeNoWorkingSet, Message: "pool has no working set"}}, nil)
				return nil
			}
			fmt.Println(ui.Warning("Pool has no working set; nothing to walk."))
			fmt.Println(ui.Hint(fmt.Sprintf("The pool holds %d object(s); run 'vtp objects' to list them", p.Len())))
			return nil
		}

		root := buildTree(proj, p, ws, map[object.ObjectID]bool{})

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"tree": root}, &Meta{Count: p.Len()})
			return nil
		}

		printTree(root, "", true, true)
		return nil
	},
}

// buildTree expands obj's reference edges depth-first. ancestors holds
// the ids on the path from the root so cycles terminate.
func buildTree(proj *project.Project, p *pool.Pool, obj object.Object, ancestors map[object.ObjectID]bool) treeNode {
	id := obj.GetID()
	node := treeNode{
		ID:   uint16(id),
		Type: obj.Type().String(),
		Name: proj.DisplayName(obj),
	}

	ancestors[id] = true
	defer delete(ancestors, id)

	for _, ref := range obj.ReferencedIDs() {
		child, ok := p.Get(ref)
		if !ok {
			node.Children = append(node.Children, treeNode{ID: uint16(ref), Missing: true})
			continue
		}
		if ancestors[ref] {
			node.Children = append(node.Children, treeNode{
				ID:    uint16(ref),
				Type:  child.Type().String(),
				Name:  proj.DisplayName(child),
				Cycle: true,
			})
			continue
		}
		node.Children = append(node.Children, buildTree(proj, p, child, ancestors))
	}
	return node
}

func printTree(node treeNode, prefix string, last, root bool) {
	connector := "├─ "
	childPrefix := prefix + "│  "
	if last {
		connector = "└─ "
		childPrefix = prefix + "   "
	}
	if root {
		connector = ""
		childPrefix = ""
	}

	fmt.Printf("%s%s%s\n", prefix, connector, treeLabel(node))

	for i, child := range node.Children {
		printTree(child, childPrefix, i == len(node.Children)-1, false)
	}
}

func treeLabel(node treeNode) string {
	if node.Missing {
		return ui.Errorf("missing object %d", node.ID)
	}
	label := node.Name
	// Unnamed objects already display as "{id}: {type}".
	if !strings.HasPrefix(label, fmt.Sprintf("%d:", node.ID)) {
		label += ui.Hint(fmt.Sprintf(" (%s %d)", node.Type, node.ID))
	}
	if node.Cycle {
		label += ui.Hint(" (cycle)")
	}
	return label
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
