package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/isobus-tools/vtpool/internal/projfile"
	"github.com/isobus-tools/vtpool/internal/slugs"
	"github.com/isobus-tools/vtpool/internal/ui"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <project.vtp>",
	Short: "Export a project's pool as a raw .iop file",
	Long: `Writes the object pool of a .vtp project as a raw ISO 11783-6 .iop file.

The default output name is a slug of the working set's display name, so
a project whose working set is named "Sprayer Terminal" exports as
sprayer-terminal.iop.

Examples:
  vtp export terminal.vtp
  vtp export terminal.vtp -o dist/pool.iop`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inPath := args[0]
		if !strings.EqualFold(filepath.Ext(inPath), projfile.Extension) {
			return handleErrorMsg(ErrInvalidInput,
				fmt.Sprintf("%s is not a project file", inPath),
				"Export takes a .vtp project; raw pools need no export")
		}

		proj, f, err := loadEditorProject(inPath)
		if err != nil {
			return reportError(err)
		}

		outPath := exportOutput
		if outPath == "" {
			name := strings.TrimSuffix(filepath.Base(inPath), filepath.Ext(inPath))
			if ws, ok := f.Pool.WorkingSet(); ok {
				name = proj.DisplayName(ws)
			}
			outPath = filepath.Join(filepath.Dir(inPath), slugs.PoolFile(name))
		}

		if err := writePoolFile(outPath, f.Pool); err != nil {
			return reportError(err)
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"file":    outPath,
				"objects": f.Pool.Len(),
			}, &Meta{Count: f.Pool.Len()})
			return nil
		}

		fmt.Println(ui.Successf("Exported %d object(s) to %s", f.Pool.Len(), ui.FilePath(outPath)))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output path (default: slug of the working set name)")
	rootCmd.AddCommand(exportCmd)
}
