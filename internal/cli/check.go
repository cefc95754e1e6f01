package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/isobus-tools/vtpool/internal/check"
	"github.com/isobus-tools/vtpool/internal/object"
	"github.com/isobus-tools/vtpool/internal/ui"
)

var checkStrict bool

// issueView is the JSON shape of one validation finding, shared by check
// and watch.
type issueView struct {
	Level    string  `json:"level"`
	Code     string  `json:"code"`
	ObjectID *uint16 `json:"object_id,omitempty"`
	Message  string  `json:"message"`
}

func issueViews(issues []check.Issue) []issueView {
	views := make([]issueView, 0, len(issues))
	for _, issue := range issues {
		view := issueView{
			Level:   issue.Level.String(),
			Code:    issue.Code,
			Message: issue.Message,
		}
		if issue.ObjectID != object.NullID {
			id := uint16(issue.ObjectID)
			view.ObjectID = &id
		}
		views = append(views, view)
	}
	return views
}

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate an object pool",
	Long: `Checks a pool or project for broken references, disallowed
parent/child placements and macro bindings that can never fire.

Errors name constructs a terminal rejects; warnings name constructs a
terminal tolerates but ignores. The exit code is 1 when errors are
found, or with --strict when warnings are found.`,
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
		issues := check.NewValidator(version, proj.DisplayName).ValidatePool(p)
		errorCount, warningCount := check.Counts(issues)

		if isJSONOutput() {
			resp := Response{
				OK: errorCount == 0,
				Data: map[string]interface{}{
					"file":       path,
					"vt_version": uint8(version),
					"objects":    p.Len(),
					"errors":     errorCount,
					"warnings":   warningCount,
					"issues":     issueViews(issues),
				},
			}
			if errorCount > 0 {
				resp.Error = &ErrorInfo{
					Code:    ErrValidationFailed,
					Message: fmt.Sprintf("pool has %d validation error(s)", errorCount),
				}
			}
			outputJSON(resp)
		} else {
			fmt.Printf("Checking %s (%s)\n", ui.FilePath(path), version)

			for _, issue := range issues {
				subject := "pool"
				if issue.ObjectID != object.NullID {
					subject = issue.ObjectID.String()
				}
				fmt.Printf("%s: %s - %s\n", issue.Level, subject, issue.Message)
			}

			fmt.Println()
			if errorCount == 0 && warningCount == 0 {
				fmt.Println(ui.Successf("No issues found in %d object(s).", p.Len()))
			} else {
				fmt.Printf("Issues found %s in %d object(s).\n",
					ui.ErrorWarningCounts(errorCount, warningCount), p.Len())
			}
		}

		if errorCount > 0 || (checkStrict && warningCount > 0) {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Treat warnings as errors")
	checkCmd.Flags().Int("vt-version", 0, "VT version to validate against (default: file header or config)")
	rootCmd.AddCommand(checkCmd)
}
