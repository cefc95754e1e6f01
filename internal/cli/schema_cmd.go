package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/isobus-tools/vtpool/internal/schema"
	"github.com/isobus-tools/vtpool/internal/ui"
)

var (
	schemaTypeName   string
	schemaDumpFormat string
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Inspect the object relationship tables",
	Long: `Shows which children each object type admits per VT version and
which macro events it can raise.

Examples:
  vtp schema allowed --type DataMask
  vtp schema allowed --type WorkingSet --vt-version 4
  vtp schema events --type Key
  vtp schema dump --format json`,
}

var schemaAllowedCmd = &cobra.Command{
	Use:   "allowed",
	Short: "List the children a type admits",
	RunE: func(cmd *cobra.Command, args []string) error {
		if schemaTypeName == "" {
			return handleErrorMsg(ErrMissingArgument, "specify a type with --type",
				"Run 'vtp schema dump' to list object types")
		}
		t, err := parseTypeArg(schemaTypeName)
		if err != nil {
			return reportError(err)
		}
		version, err := resolveVTVersion(cmd, "vt-version", nil)
		if err != nil {
			return reportError(err)
		}

		allowed := schema.AllowedChildren(t, version)
		names := make([]string, len(allowed))
		for i, c := range allowed {
			names[i] = c.String()
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"type":       t.String(),
				"vt_version": uint8(version),
				"children":   names,
			}, &Meta{Count: len(names)})
			return nil
		}

		if len(names) == 0 {
			fmt.Printf("A %s holds no children at %s.\n", t, version)
			return nil
		}
		fmt.Println(ui.Header(fmt.Sprintf("%s children (%s)", t, version)))
		list := ui.NewList()
		for _, name := range names {
			list.Add(name)
		}
		fmt.Print(list.String())
		return nil
	},
}

var schemaEventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List the macro events a type can raise",
	RunE: func(cmd *cobra.Command, args []string) error {
		if schemaTypeName == "" {
			return handleErrorMsg(ErrMissingArgument, "specify a type with --type",
				"Run 'vtp schema dump' to list object types")
		}
		t, err := parseTypeArg(schemaTypeName)
		if err != nil {
			return reportError(err)
		}

		events := schema.PossibleEvents(t)

		if isJSONOutput() {
			type eventView struct {
				Code uint8  `json:"code"`
				Name string `json:"name"`
			}
			views := make([]eventView, len(events))
			for i, e := range events {
				views[i] = eventView{Code: uint8(e), Name: e.String()}
			}
			outputSuccess(map[string]interface{}{
				"type":   t.String(),
				"events": views,
			}, &Meta{Count: len(views)})
			return nil
		}

		if len(events) == 0 {
			fmt.Printf("A %s raises no macro events.\n", t)
			return nil
		}
		fmt.Println(ui.Header(fmt.Sprintf("%s events", t)))
		table := ui.NewTable(2)
		for _, e := range events {
			table.AddRow(fmt.Sprintf("%d", uint8(e)), e.String())
		}
		fmt.Print(table.String())
		return nil
	},
}

var schemaDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump the full relationship and event tables",
	Long: `Writes the complete schema: every object type with its wire code,
the children it admits per VT version, and the events it raises.

The default output is YAML; --format json writes plain JSON instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		specs := schema.Dump()

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"types": specs}, &Meta{Count: len(specs)})
			return nil
		}

		switch schemaDumpFormat {
		case "yaml":
			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			if err := enc.Encode(specs); err != nil {
				return handleError(ErrInternal, err, "")
			}
			return enc.Close()
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(specs)
		}
		return handleErrorMsg(ErrInvalidInput,
			fmt.Sprintf("unknown format %q (want yaml or json)", schemaDumpFormat), "")
	},
}

func init() {
	schemaAllowedCmd.Flags().StringVarP(&schemaTypeName, "type", "t", "", "Object type name or wire code")
	schemaAllowedCmd.Flags().Int("vt-version", 0, "VT version (default from config)")
	schemaEventsCmd.Flags().StringVarP(&schemaTypeName, "type", "t", "", "Object type name or wire code")
	schemaDumpCmd.Flags().StringVar(&schemaDumpFormat, "format", "yaml", "Output format: yaml or json")

	schemaCmd.AddCommand(schemaAllowedCmd)
	schemaCmd.AddCommand(schemaEventsCmd)
	schemaCmd.AddCommand(schemaDumpCmd)
	rootCmd.AddCommand(schemaCmd)
}
