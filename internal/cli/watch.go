package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/isobus-tools/vtpool/internal/check"
	"github.com/isobus-tools/vtpool/internal/object"
	"github.com/isobus-tools/vtpool/internal/projfile"
	"github.com/isobus-tools/vtpool/internal/ui"
	"github.com/isobus-tools/vtpool/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-validate a pool whenever it changes",
	Long: `Watches a pool or project file and runs validation after every write.

This runs in the foreground and pairs with a code generator or an
external editor saving the file. Rapid write bursts are debounced; a
result block is printed once the file settles. With --json each result
is one JSON envelope per line.

Examples:
  vtp watch sprayer.vtp
  vtp watch build/pool.iop --vt-version 4
  vtp watch sprayer.vtp --json | jq .ok`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Bool("debug", false, "Enable debug logging")
	watchCmd.Flags().Int("vt-version", 0, "VT version to validate against (default: file header or config)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	path := args[0]

	revalidate := func(event string) {
		watchReport(cmd, path, event)
	}

	w, err := watcher.New(watcher.Config{
		Path:  path,
		Debug: debug,
		OnChange: func(string) {
			revalidate("change")
		},
		OnRemove: func(string) {
			if isJSONOutput() {
				outputJSONLine(Response{
					OK: false,
					Error: &ErrorInfo{
						Code:    ErrFileNotFound,
						Message: fmt.Sprintf("%s was removed", path),
					},
					Data: map[string]interface{}{"file": path, "event": "remove"},
				})
				return
			}
			fmt.Println(ui.Warningf("%s %s was removed; waiting for it to come back",
				watchStamp(), path))
		},
	})
	if err != nil {
		return handleError(ErrInvalidInput, err, "")
	}

	// Graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		if !isJSONOutput() {
			fmt.Println("\nStopping watch...")
		}
		cancel()
	}()

	if strings.EqualFold(filepath.Ext(path), projfile.Extension) {
		touchRecent(path)
	}

	if !isJSONOutput() {
		fmt.Printf("Watching %s\n", ui.FilePath(path))
		fmt.Println("Press Ctrl+C to stop")
	}

	revalidate("initial")

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return handleError(ErrInternal, err, "")
	}
	return nil
}

// watchReport runs one validation pass and prints a result block.
func watchReport(cmd *cobra.Command, path, event string) {
	proj, f, err := loadEditorProject(path)
	if err != nil {
		if isJSONOutput() {
			var ce *cliError
			code := ErrInternal
			if errors.As(err, &ce) {
				code = ce.code
			}
			outputJSONLine(Response{
				OK:    false,
				Error: &ErrorInfo{Code: code, Message: err.Error()},
				Data:  map[string]interface{}{"file": path, "event": event},
			})
			return
		}
		fmt.Println(ui.Errorf("%s %v", watchStamp(), err))
		return
	}

	version, err := resolveVTVersion(cmd, "vt-version", f)
	if err != nil {
		if isJSONOutput() {
			outputJSONLine(Response{
				OK:    false,
				Error: &ErrorInfo{Code: ErrConfigInvalid, Message: err.Error()},
				Data:  map[string]interface{}{"file": path, "event": event},
			})
			return
		}
		fmt.Println(ui.Errorf("%s %v", watchStamp(), err))
		return
	}

	p := proj.Staged()
	issues := check.NewValidator(version, proj.DisplayName).ValidatePool(p)
	errorCount, warningCount := check.Counts(issues)

	if isJSONOutput() {
		resp := Response{
			OK: errorCount == 0,
			Data: map[string]interface{}{
				"file":       path,
				"event":      event,
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
		outputJSONLine(resp)
		return
	}

	if len(issues) == 0 {
		fmt.Println(ui.Successf("%s %s: no issues (%d objects, %s)",
			watchStamp(), path, p.Len(), version))
		return
	}

	fmt.Printf("%s %s: issues found %s\n",
		watchStamp(), path, ui.ErrorWarningCounts(errorCount, warningCount))
	for _, issue := range issues {
		subject := "pool"
		if issue.ObjectID != object.NullID {
			subject = issue.ObjectID.String()
		}
		fmt.Printf("  %s: %s - %s\n", issue.Level, subject, issue.Message)
	}
}

func watchStamp() string {
	return time.Now().Format("15:04:05")
}
