package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/isobus-tools/vtpool/internal/config"
)

type globalConfigContext struct {
	cfg          *config.Config
	configPath   string
	statePath    string
	configExists bool
}

var (
	configSetVTVersion   int
	configSetSmartNames  bool
	configSetStateFile   string
	configSetUIAccent    string
	configSetUICodeTheme string

	configUnsetVTVersion   bool
	configUnsetSmartNames  bool
	configUnsetStateFile   bool
	configUnsetUIAccent    bool
	configUnsetUICodeTheme bool
)

func loadGlobalConfigAllowMissingWithPath() (*config.Config, string, bool, error) {
	resolvedPath := config.ResolveConfigPath(configPath)

	if _, err := os.Stat(resolvedPath); err != nil {
		if os.IsNotExist(err) {
			return &config.Config{}, resolvedPath, false, nil
		}
		return nil, "", false, err
	}

	loadedCfg, err := config.LoadFrom(resolvedPath)
	if err != nil {
		return nil, "", false, err
	}
	if loadedCfg == nil {
		loadedCfg = &config.Config{}
	}

	return loadedCfg, resolvedPath, true, nil
}

func loadGlobalConfigContextAllowMissing() (*globalConfigContext, error) {
	loadedCfg, resolvedConfigPath, exists, err := loadGlobalConfigAllowMissingWithPath()
	if err != nil {
		return nil, err
	}

	return &globalConfigContext{
		cfg:          loadedCfg,
		configPath:   resolvedConfigPath,
		statePath:    config.ResolveStatePath(statePathFlag, resolvedConfigPath, loadedCfg),
		configExists: exists,
	}, nil
}

func configData(ctx *globalConfigContext) map[string]interface{} {
	return map[string]interface{}{
		"config_path": ctx.configPath,
		"state_path":  ctx.statePath,
		"exists":      ctx.configExists,
		"vt_version":  ctx.cfg.VTVersion,
		"smart_names": ctx.cfg.SmartNames,
		"state_file":  strings.TrimSpace(ctx.cfg.StateFile),
		"ui": map[string]interface{}{
			"accent":     strings.TrimSpace(ctx.cfg.UI.Accent),
			"code_theme": strings.TrimSpace(ctx.cfg.UI.CodeTheme),
		},
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	ctx, err := loadGlobalConfigContextAllowMissing()
	if err != nil {
		return handleError(ErrConfigInvalid, err, "")
	}

	if isJSONOutput() {
		outputSuccess(configData(ctx), nil)
		return nil
	}

	if !ctx.configExists {
		fmt.Printf("Config file does not exist: %s\n", ctx.configPath)
		fmt.Println("Run 'vtp config init' to create it.")
		return nil
	}

	fmt.Printf("config: %s\n", ctx.configPath)
	fmt.Printf("state:  %s\n", ctx.statePath)

	if ctx.cfg.VTVersion != 0 {
		fmt.Printf("vt_version: %d\n", ctx.cfg.VTVersion)
	}
	if ctx.cfg.SmartNames != nil {
		fmt.Printf("smart_names: %t\n", *ctx.cfg.SmartNames)
	}
	if v := strings.TrimSpace(ctx.cfg.StateFile); v != "" {
		fmt.Printf("state_file: %s\n", v)
	}
	if v := strings.TrimSpace(ctx.cfg.UI.Accent); v != "" {
		fmt.Printf("ui.accent: %s\n", v)
	}
	if v := strings.TrimSpace(ctx.cfg.UI.CodeTheme); v != "" {
		fmt.Printf("ui.code_theme: %s\n", v)
	}

	return nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage global vtp config.toml settings",
	Long: `Manage global vtp config.toml settings.

Use this to initialize, inspect, and edit machine-level configuration.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default global config.toml if missing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		targetPath := config.ResolveConfigPath(configPath)
		_, statErr := os.Stat(targetPath)
		existed := statErr == nil
		if statErr != nil && !os.IsNotExist(statErr) {
			return handleError(ErrFileReadError, statErr, "")
		}

		createdPath, err := config.CreateDefaultAt(targetPath)
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"config_path": createdPath,
				"created":     !existed,
			}, nil)
			return nil
		}

		if existed {
			fmt.Printf("Config already exists: %s\n", createdPath)
		} else {
			fmt.Printf("Created config: %s\n", createdPath)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set one or more global config.toml fields",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := loadGlobalConfigContextAllowMissing()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}

		changed := make([]string, 0, 5)

		if cmd.Flags().Changed("vt-version") {
			if configSetVTVersion < 2 || configSetVTVersion > 6 {
				return handleErrorMsg(ErrInvalidInput, "vt-version must be between 2 and 6", "")
			}
			ctx.cfg.VTVersion = configSetVTVersion
			changed = append(changed, "vt_version")
		}

		if cmd.Flags().Changed("smart-names") {
			value := configSetSmartNames
			ctx.cfg.SmartNames = &value
			changed = append(changed, "smart_names")
		}

		if cmd.Flags().Changed("state-file") {
			value := strings.TrimSpace(configSetStateFile)
			if value == "" {
				return handleErrorMsg(ErrInvalidInput, "state-file cannot be empty; use 'vtp config unset --state-file' to clear it", "")
			}
			ctx.cfg.StateFile = value
			changed = append(changed, "state_file")
		}

		if cmd.Flags().Changed("ui-accent") {
			value := strings.TrimSpace(configSetUIAccent)
			if value == "" {
				return handleErrorMsg(ErrInvalidInput, "ui-accent cannot be empty; use 'vtp config unset --ui-accent' to clear it", "")
			}
			ctx.cfg.UI.Accent = value
			changed = append(changed, "ui.accent")
		}

		if cmd.Flags().Changed("ui-code-theme") {
			value := strings.TrimSpace(configSetUICodeTheme)
			if value == "" {
				return handleErrorMsg(ErrInvalidInput, "ui-code-theme cannot be empty; use 'vtp config unset --ui-code-theme' to clear it", "")
			}
			ctx.cfg.UI.CodeTheme = value
			changed = append(changed, "ui.code_theme")
		}

		if len(changed) == 0 {
			return handleErrorMsg(ErrMissingArgument, "no fields provided; set at least one --vt-version/--smart-names/--state-file/--ui-accent/--ui-code-theme", "")
		}

		if err := config.SaveTo(ctx.configPath, ctx.cfg); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		ctx.configExists = true
		if isJSONOutput() {
			data := configData(ctx)
			data["changed"] = changed
			outputSuccess(data, nil)
			return nil
		}

		fmt.Printf("Updated config: %s\n", ctx.configPath)
		fmt.Printf("changed: %s\n", strings.Join(changed, ", "))
		return nil
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset",
	Short: "Clear one or more global config.toml fields",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := loadGlobalConfigContextAllowMissing()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}
		if !ctx.configExists {
			return handleErrorMsg(ErrFileNotFound, fmt.Sprintf("config file not found: %s", ctx.configPath), "Run 'vtp config init' first")
		}

		changed := make([]string, 0, 5)
		if configUnsetVTVersion {
			ctx.cfg.VTVersion = 0
			changed = append(changed, "vt_version")
		}
		if configUnsetSmartNames {
			ctx.cfg.SmartNames = nil
			changed = append(changed, "smart_names")
		}
		if configUnsetStateFile {
			ctx.cfg.StateFile = ""
			changed = append(changed, "state_file")
		}
		if configUnsetUIAccent {
			ctx.cfg.UI.Accent = ""
			changed = append(changed, "ui.accent")
		}
		if configUnsetUICodeTheme {
			ctx.cfg.UI.CodeTheme = ""
			changed = append(changed, "ui.code_theme")
		}

		if len(changed) == 0 {
			return handleErrorMsg(ErrMissingArgument, "no fields selected; pass one or more unset flags", "")
		}

		if err := config.SaveTo(ctx.configPath, ctx.cfg); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			data := configData(ctx)
			data["changed"] = changed
			outputSuccess(data, nil)
			return nil
		}

		fmt.Printf("Updated config: %s\n", ctx.configPath)
		fmt.Printf("cleared: %s\n", strings.Join(changed, ", "))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current global config.toml values",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	})

	configSetCmd.Flags().IntVar(&configSetVTVersion, "vt-version", 0, "Set default VT version for new projects (2-6)")
	configSetCmd.Flags().BoolVar(&configSetSmartNames, "smart-names", true, "Enable or disable generated names on import")
	configSetCmd.Flags().StringVar(&configSetStateFile, "state-file", "", "Set state.toml path (absolute or relative to config directory)")
	configSetCmd.Flags().StringVar(&configSetUIAccent, "ui-accent", "", "Set UI accent color (ANSI 0-255 or #RRGGBB)")
	configSetCmd.Flags().StringVar(&configSetUICodeTheme, "ui-code-theme", "", "Set markdown code theme name")

	configUnsetCmd.Flags().BoolVar(&configUnsetVTVersion, "vt-version", false, "Clear vt_version")
	configUnsetCmd.Flags().BoolVar(&configUnsetSmartNames, "smart-names", false, "Clear smart_names")
	configUnsetCmd.Flags().BoolVar(&configUnsetStateFile, "state-file", false, "Clear state_file")
	configUnsetCmd.Flags().BoolVar(&configUnsetUIAccent, "ui-accent", false, "Clear ui.accent")
	configUnsetCmd.Flags().BoolVar(&configUnsetUICodeTheme, "ui-code-theme", false, "Clear ui.code_theme")

	rootCmd.AddCommand(configCmd)
}
