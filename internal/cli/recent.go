package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/isobus-tools/vtpool/internal/config"
	"github.com/isobus-tools/vtpool/internal/ui"
)

var recentClear bool

type recentProjectView struct {
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently opened project files",
	Long: `List recently opened project files, newest first.

Commands that read or write a project record it in state.toml.
Pass --clear to forget the whole list.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		statePath := getStatePath()
		state, err := config.LoadState(statePath)
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}

		if recentClear {
			state.RecentProjects = nil
			if err := config.SaveState(statePath, state); err != nil {
				return handleError(ErrFileWriteError, err, "")
			}
			if isJSONOutput() {
				outputSuccess(map[string]interface{}{
					"state_path": statePath,
					"cleared":    true,
				}, nil)
				return nil
			}
			fmt.Println(ui.Successf("Cleared recent projects."))
			return nil
		}

		views := make([]recentProjectView, 0, len(state.RecentProjects))
		for _, p := range state.RecentProjects {
			_, statErr := os.Stat(p)
			views = append(views, recentProjectView{Path: p, Exists: statErr == nil})
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"state_path": statePath,
				"projects":   views,
			}, &Meta{Count: len(views)})
			return nil
		}

		if len(views) == 0 {
			fmt.Println("No recent projects.")
			fmt.Printf("state: %s\n", statePath)
			return nil
		}

		for i, v := range views {
			line := fmt.Sprintf("%2d. %s", i+1, v.Path)
			if !v.Exists {
				line += " " + ui.Muted.Render("(missing)")
			}
			fmt.Println(line)
		}
		fmt.Println()
		fmt.Printf("state: %s\n", statePath)

		return nil
	},
}

func init() {
	recentCmd.Flags().BoolVar(&recentClear, "clear", false, "Forget the recent project list")
	rootCmd.AddCommand(recentCmd)
}
