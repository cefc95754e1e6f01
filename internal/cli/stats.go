package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/isobus-tools/vtpool/internal/iop"
	"github.com/isobus-tools/vtpool/internal/object"
	"github.com/isobus-tools/vtpool/internal/ui"
)

type typeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

var statsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Show object pool statistics",
	Long: `Displays an inventory of a pool or project: object counts by type,
encoded size, geometry and name coverage.

Examples:
  vtp stats sprayer.vtp
  vtp stats sprayer.iop --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		proj, f, err := loadEditorProject(path)
		if err != nil {
			return reportError(err)
		}
		version, err := resolveVTVersion(cmd, "vt-version", f)
		if err != nil {
			return reportError(err)
		}

		p := proj.Staged()

		encoded, err := iop.Encode(p)
		if err != nil {
			return reportError(&cliError{code: ErrPoolInvalid, err: err})
		}

		maskSize, softKey := p.MinimumMaskSizes()
		derived := f == nil
		if f != nil {
			maskSize, softKey = f.MaskSize, f.SoftKeySize
		}

		named := len(proj.Meta().CustomNames())

		counts := make(map[object.ObjectType]int)
		for _, obj := range p.Objects() {
			counts[obj.Type()]++
		}
		types := make([]typeCount, 0, len(counts))
		for t, n := range counts {
			types = append(types, typeCount{Type: t.String(), Count: n})
		}
		sort.Slice(types, func(i, j int) bool {
			if types[i].Count != types[j].Count {
				return types[i].Count > types[j].Count
			}
			return types[i].Type < types[j].Type
		})

		wsName := ""
		if ws, ok := p.WorkingSet(); ok {
			wsName = proj.DisplayName(ws)
		}

		if isJSONOutput() {
			data := map[string]interface{}{
				"file":       path,
				"objects":    p.Len(),
				"bytes":      len(encoded),
				"vt_version": uint8(version),
				"mask_size":  maskSize,
				"soft_key": map[string]uint16{
					"width":  softKey.Width,
					"height": softKey.Height,
				},
				"named": named,
				"types": types,
			}
			if wsName != "" {
				data["working_set"] = wsName
			}
			outputSuccess(data, &Meta{Count: p.Len()})
			return nil
		}

		label := func(s string) string { return ui.Muted.Render(fmt.Sprintf("%-12s", s)) }
		accent := func(s string) string { return ui.Accent.Render(s) }

		fmt.Println(ui.Header("Pool Statistics"))
		fmt.Printf("%s %s\n", label("File:"), accent(path))
		fmt.Printf("%s %s\n", label("Objects:"), accent(fmt.Sprintf("%d", p.Len())))
		fmt.Printf("%s %s\n", label("Encoded:"), accent(fmt.Sprintf("%d bytes", len(encoded))))
		fmt.Printf("%s %s\n", label("VT version:"), accent(version.String()))
		geometry := fmt.Sprintf("mask %d, soft key %dx%d", maskSize, softKey.Width, softKey.Height)
		if derived {
			geometry += " (derived)"
		}
		fmt.Printf("%s %s\n", label("Geometry:"), accent(geometry))
		fmt.Printf("%s %s\n", label("Named:"), accent(fmt.Sprintf("%d of %d", named, p.Len())))
		if wsName != "" {
			fmt.Printf("%s %s\n", label("Working set:"), accent(wsName))
		}

		if len(types) > 0 {
			fmt.Println()
			fmt.Println(ui.Header("By Type"))
			table := ui.NewTable(2)
			for _, tc := range types {
				table.AddRow(tc.Type, fmt.Sprintf("%d", tc.Count))
			}
			fmt.Print(table.String())
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("vt-version", 0, "VT version to report against (default: file header or config)")
	rootCmd.AddCommand(statsCmd)
}
