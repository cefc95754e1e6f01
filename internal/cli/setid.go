package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/isobus-tools/vtpool/internal/check"
	"github.com/isobus-tools/vtpool/internal/pool"
	"github.com/isobus-tools/vtpool/internal/ui"
)

var setIDCmd = &cobra.Command{
	Use:   "set-id <file> <old> <new>",
	Short: "Renumber an object",
	Long: `Changes an object's numeric id, keeping its pool position and, in
project files, its name.

References held by other objects are not rewritten. After renumbering
an object that others point at, 'vtp check' reports the dangling edges.

Examples:
  vtp set-id sprayer.vtp 1000 1001
  vtp set-id sprayer.iop 2000 2100`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		oldID, err := parseObjectID(args[1])
		if err != nil {
			return reportError(err)
		}
		newID, err := parseObjectID(args[2])
		if err != nil {
			return reportError(err)
		}

		proj, f, err := loadEditorProject(path)
		if err != nil {
			return reportError(err)
		}

		if err := proj.RenumberObject(oldID, newID); err != nil {
			switch {
			case errors.Is(err, pool.ErrNotFound):
				return handleError(ErrObjectNotFound, err,
					fmt.Sprintf("Run 'vtp objects %s' to list ids", path))
			case errors.Is(err, pool.ErrIDInUse):
				return handleError(ErrIDInUse, err,
					"Pick a free id; 'vtp objects' shows what is taken")
			}
			return handleError(ErrInvalidInput, err, "")
		}
		proj.CommitPool()

		if f != nil {
			err = writeProjectFile(path, proj.File(f.VTVersion))
		} else {
			err = writePoolFile(path, proj.Pool())
		}
		if err != nil {
			return reportError(err)
		}
		if f != nil {
			touchRecent(path)
		}

		// Renumbering never rewrites inbound references, so count what now
		// dangles and say so.
		refsLeft := 0
		for _, obj := range proj.Pool().Objects() {
			for _, ref := range obj.ReferencedIDs() {
				if ref == oldID {
					refsLeft++
				}
			}
		}

		if isJSONOutput() {
			data := map[string]interface{}{
				"file":            path,
				"old_id":          uint16(oldID),
				"new_id":          uint16(newID),
				"references_left": refsLeft,
			}
			var warnings []Warning
			if refsLeft > 0 {
				warnings = append(warnings, objectWarning(check.CodeDanglingRef, oldID,
					"%d reference(s) still point at %s", refsLeft, oldID))
			}
			outputSuccessWithWarnings(data, warnings, nil)
			return nil
		}

		fmt.Println(ui.Successf("Renumbered %s to %s in %s", oldID, newID, ui.FilePath(path)))
		if refsLeft > 0 {
			fmt.Println(ui.Warningf("%d reference(s) still point at %s; run 'vtp check %s'",
				refsLeft, oldID, path))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setIDCmd)
}
