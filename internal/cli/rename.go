package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/isobus-tools/vtpool/internal/pool"
	"github.com/isobus-tools/vtpool/internal/projfile"
	"github.com/isobus-tools/vtpool/internal/ui"
)

var renameClear bool

var renameCmd = &cobra.Command{
	Use:   "rename <project.vtp> <id> [name]",
	Short: "Name an object",
	Long: `Assigns a custom name to an object, or clears one with --clear.

Names live in the project file, never in the pool bytes, so renaming
works only on .vtp files and leaves the exported .iop untouched. Names
must be unique within the project.

Examples:
  vtp rename sprayer.vtp 1000 "Main Screen"
  vtp rename sprayer.vtp 1000 --clear`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if !strings.EqualFold(filepath.Ext(path), projfile.Extension) {
			return handleErrorMsg(ErrInvalidInput,
				fmt.Sprintf("names are stored in %s project files, not in pool bytes", projfile.Extension),
				fmt.Sprintf("Run 'vtp import %s' first, then rename objects in the project", path))
		}

		id, err := parseObjectID(args[1])
		if err != nil {
			return reportError(err)
		}

		switch {
		case renameClear && len(args) == 3:
			return handleErrorMsg(ErrInvalidInput, "cannot combine --clear with a new name", "")
		case !renameClear && len(args) < 3:
			return handleErrorMsg(ErrMissingArgument, "missing the new name",
				"Provide a name, or pass --clear to remove the current one")
		}

		proj, f, err := loadEditorProject(path)
		if err != nil {
			return reportError(err)
		}

		obj, ok := proj.Staged().Get(id)
		if !ok {
			return handleErrorMsg(ErrObjectNotFound,
				fmt.Sprintf("no object %s in %s", id, path),
				fmt.Sprintf("Run 'vtp objects %s' to list ids", path))
		}

		var previous string
		if renameClear {
			previous = proj.DisplayName(obj)
			proj.Meta().Info(id).ClearName()
		} else {
			name := args[2]
			if err := proj.Rename(id, name); err != nil {
				if errors.Is(err, pool.ErrNotFound) {
					return handleError(ErrObjectNotFound, err, "")
				}
				return handleError(ErrNameInvalid, err,
					"Names must be non-empty and unique in the project")
			}
		}

		if err := writeProjectFile(path, proj.File(f.VTVersion)); err != nil {
			return reportError(err)
		}
		touchRecent(path)

		if isJSONOutput() {
			data := map[string]interface{}{
				"file":      path,
				"object_id": uint16(id),
			}
			if renameClear {
				data["cleared"] = true
				data["name"] = proj.DisplayName(obj)
			} else {
				data["name"] = args[2]
			}
			outputSuccess(data, nil)
			return nil
		}

		if renameClear {
			fmt.Println(ui.Successf("Cleared the name of %s (was %q)", proj.DisplayName(obj), previous))
		} else {
			fmt.Println(ui.Successf("Named object %s %q", id, args[2]))
		}
		return nil
	},
}

func init() {
	renameCmd.Flags().BoolVar(&renameClear, "clear", false, "Remove the custom name")
	rootCmd.AddCommand(renameCmd)
}
