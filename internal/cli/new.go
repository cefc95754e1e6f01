package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/isobus-tools/vtpool/internal/project"
	"github.com/isobus-tools/vtpool/internal/slugs"
	"github.com/isobus-tools/vtpool/internal/ui"
)

var (
	newOutput    string
	newVTVersion int
	newForce     bool
)

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create an empty project file",
	Long: `Creates an empty .vtp project file with default geometry.

The name determines the output filename unless -o is given. Objects are
added by importing a pool or through an editor; a fresh project starts
with an empty pool.

Examples:
  vtp new                          # Creates untitled.vtp
  vtp new "Sprayer Terminal"       # Creates sprayer-terminal.vtp
  vtp new -o panels/main.vtp --vt-version 4`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := "Untitled"
		if len(args) == 1 {
			name = args[0]
		}

		version, err := resolveVTVersion(cmd, "vt-version", nil)
		if err != nil {
			return reportError(err)
		}

		outPath := newOutput
		if outPath == "" {
			outPath = slugs.ProjectFile(name)
		}

		if _, err := os.Stat(outPath); err == nil && !newForce {
			return handleErrorMsg(ErrFileExists,
				fmt.Sprintf("file already exists: %s", outPath),
				"Pass --force to overwrite it")
		}

		proj := project.New()
		f := proj.File(version)
		if err := writeProjectFile(outPath, f); err != nil {
			return reportError(err)
		}
		touchRecent(outPath)

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"file":       outPath,
				"vt_version": uint8(version),
				"mask_size":  f.MaskSize,
				"soft_key": map[string]uint16{
					"width":  f.SoftKeySize.Width,
					"height": f.SoftKeySize.Height,
				},
			}, nil)
			return nil
		}

		fmt.Println(ui.Successf("Created %s (%s, mask %d, soft key %dx%d)",
			ui.FilePath(outPath), version, f.MaskSize, f.SoftKeySize.Width, f.SoftKeySize.Height))
		return nil
	},
}

func init() {
	newCmd.Flags().StringVarP(&newOutput, "output", "o", "", "Output path (default: slug of the name)")
	newCmd.Flags().IntVar(&newVTVersion, "vt-version", 0, "Target VT version (2-6, default from config)")
	newCmd.Flags().BoolVar(&newForce, "force", false, "Overwrite an existing file")
	rootCmd.AddCommand(newCmd)
}
