package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/isobus-tools/vtpool/internal/project"
	"github.com/isobus-tools/vtpool/internal/projfile"
	"github.com/isobus-tools/vtpool/internal/ui"
)

var (
	importOutput     string
	importSmartNames bool
	importVTVersion  int
)

var importCmd = &cobra.Command{
	Use:   "import <pool.iop>",
	Short: "Import a raw object pool into a project file",
	Long: `Imports an ISO 11783-6 .iop object pool and wraps it in a .vtp project.

Mask and soft key geometry are derived from the pool content. Unless
smart naming is disabled, every object gets a readable default name
("Main Screen", "F1 Key", "Container 2") the way an editor would assign
them one at a time.

Examples:
  vtp import sprayer.iop                    # Creates sprayer.vtp
  vtp import sprayer.iop -o terminal.vtp
  vtp import sprayer.iop --smart-names=false
  vtp import sprayer.iop --vt-version 5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inPath := args[0]
		if strings.EqualFold(filepath.Ext(inPath), projfile.Extension) {
			return handleErrorMsg(ErrInvalidInput,
				fmt.Sprintf("%s is already a project file", inPath),
				"Import takes a raw .iop pool; open the project directly instead")
		}

		p, _, err := readAnyPool(inPath)
		if err != nil {
			return reportError(err)
		}

		version, err := resolveVTVersion(cmd, "vt-version", nil)
		if err != nil {
			return reportError(err)
		}

		smartNames := getConfig().SmartNamesEnabled()
		if cmd.Flags().Changed("smart-names") {
			smartNames = importSmartNames
		}

		var spinner *ui.Spinner
		if !isJSONOutput() && smartNames {
			spinner = ui.NewSpinner("Naming objects")
			spinner.Start()
		}

		proj := project.FromPool(p)
		named := 0
		if smartNames {
			named = proj.ApplySmartNames()
		}

		if spinner != nil {
			spinner.Stop()
		}

		outPath := importOutput
		if outPath == "" {
			base := strings.TrimSuffix(filepath.Base(inPath), filepath.Ext(inPath))
			outPath = filepath.Join(filepath.Dir(inPath), base+projfile.Extension)
		}

		f := proj.File(version)
		if err := writeProjectFile(outPath, f); err != nil {
			return reportError(err)
		}
		touchRecent(outPath)

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"file":       outPath,
				"objects":    p.Len(),
				"named":      named,
				"vt_version": uint8(version),
				"mask_size":  f.MaskSize,
				"soft_key": map[string]uint16{
					"width":  f.SoftKeySize.Width,
					"height": f.SoftKeySize.Height,
				},
			}, &Meta{Count: p.Len()})
			return nil
		}

		fmt.Println(ui.Successf("Imported %d object(s) into %s", p.Len(), ui.FilePath(outPath)))
		if named > 0 {
			fmt.Printf("  named %d object(s)\n", named)
		}
		fmt.Printf("  %s, mask %d, soft key %dx%d\n",
			version, f.MaskSize, f.SoftKeySize.Width, f.SoftKeySize.Height)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVarP(&importOutput, "output", "o", "", "Output path (default: input name with .vtp)")
	importCmd.Flags().BoolVar(&importSmartNames, "smart-names", true, "Assign default names to imported objects")
	importCmd.Flags().IntVar(&importVTVersion, "vt-version", 0, "Target VT version (2-6, default from config)")
	rootCmd.AddCommand(importCmd)
}
