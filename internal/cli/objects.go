package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/isobus-tools/vtpool/internal/object"
	"github.com/isobus-tools/vtpool/internal/project"
	"github.com/isobus-tools/vtpool/internal/ui"
)

var (
	objectsType   string
	objectsSort   string
	objectsFilter string
)

type objectView struct {
	ID   uint16 `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
	Refs int    `json:"refs"`
}

var objectsCmd = &cobra.Command{
	Use:   "objects <file>",
	Short: "List the objects in a pool or project",
	Long: `Lists objects with their ids, types and display names.

Unnamed objects display as "{id}: {type}". The listing reads .iop pools
and .vtp projects; custom names only exist in projects.

Examples:
  vtp objects terminal.vtp
  vtp objects terminal.vtp --type DataMask
  vtp objects terminal.vtp --sort name --filter screen`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		proj, _, err := loadEditorProject(args[0])
		if err != nil {
			return reportError(err)
		}

		if objectsSort != "" {
			key, err := project.ParseSortKey(objectsSort)
			if err != nil {
				return handleErrorMsg(ErrInvalidInput, err.Error(), "")
			}
			proj.SortObjects(key)
		}

		objs := proj.FilterObjects(objectsFilter)

		if objectsType != "" {
			t, err := parseTypeArg(objectsType)
			if err != nil {
				return reportError(err)
			}
			filtered := objs[:0:0]
			for _, obj := range objs {
				if obj.Type() == t {
					filtered = append(filtered, obj)
				}
			}
			objs = filtered
		}

		if isJSONOutput() {
			views := make([]objectView, 0, len(objs))
			for _, obj := range objs {
				views = append(views, objectView{
					ID:   uint16(obj.GetID()),
					Type: obj.Type().String(),
					Name: proj.DisplayName(obj),
					Refs: len(obj.ReferencedIDs()),
				})
			}
			outputSuccess(map[string]interface{}{"objects": views}, &Meta{Count: len(views)})
			return nil
		}

		if len(objs) == 0 {
			fmt.Println("No objects found.")
			return nil
		}

		display := ui.NewDisplayContext()
		layout := ui.ObjectsLayout
		if display.Narrow() {
			layout = ui.ObjectsNarrowLayout
		}
		table := ui.NewObjectsTable(display, layout)
		nameWidth := table.ColumnWidth("name")
		for _, obj := range objs {
			cells := []string{
				obj.GetID().String(),
				obj.Type().String(),
				ui.TruncateWithEllipsis(proj.DisplayName(obj), nameWidth),
			}
			if !display.Narrow() {
				cells = append(cells, refsSummary(obj))
			}
			table.AddRow(cells...)
		}
		fmt.Print(table.Render())
		fmt.Printf("\n%d object(s)\n", len(objs))
		return nil
	},
}

func refsSummary(obj object.Object) string {
	refs := obj.ReferencedIDs()
	if len(refs) == 0 {
		return ""
	}
	return fmt.Sprintf("%d refs", len(refs))
}

func init() {
	objectsCmd.Flags().StringVarP(&objectsType, "type", "t", "", "Only show objects of this type")
	objectsCmd.Flags().StringVarP(&objectsSort, "sort", "s", "", "Sort order: id, name or type")
	objectsCmd.Flags().StringVarP(&objectsFilter, "filter", "f", "", "Only show objects whose name contains this text")
	rootCmd.AddCommand(objectsCmd)
}
