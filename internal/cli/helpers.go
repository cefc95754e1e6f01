package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/isobus-tools/vtpool/internal/atomicfile"
	"github.com/isobus-tools/vtpool/internal/config"
	"github.com/isobus-tools/vtpool/internal/iop"
	"github.com/isobus-tools/vtpool/internal/object"
	"github.com/isobus-tools/vtpool/internal/pool"
	"github.com/isobus-tools/vtpool/internal/project"
	"github.com/isobus-tools/vtpool/internal/projfile"
)

// PoolExtension is the raw object pool file suffix.
const PoolExtension = ".iop"

// cliError pairs an error with the envelope code and suggestion the CLI
// should report it under.
type cliError struct {
	code       string
	suggestion string
	err        error
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }

func failf(code, suggestion, format string, args ...interface{}) error {
	return &cliError{code: code, suggestion: suggestion, err: fmt.Errorf(format, args...)}
}

// reportError routes an error through the JSON/text envelope machinery,
// honouring the code a cliError carries.
func reportError(err error) error {
	var ce *cliError
	if errors.As(err, &ce) {
		return handleError(ce.code, err, ce.suggestion)
	}
	return handleError(ErrInternal, err, "")
}

// readAnyPool loads an object pool from an .iop or .vtp file. For
// project files the returned *projfile.File carries the header state;
// for raw pools it is nil.
func readAnyPool(path string) (*pool.Pool, *projfile.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, failf(ErrFileNotFound, "", "file not found: %s", path)
		}
		return nil, nil, &cliError{code: ErrFileReadError, err: err}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case projfile.Extension:
		f, err := projfile.Unmarshal(data)
		if err != nil {
			return nil, nil, &cliError{
				code:       ErrProjectInvalid,
				suggestion: "The file is not a readable vtp project; re-export it or import the .iop again",
				err:        fmt.Errorf("reading %s: %w", path, err),
			}
		}
		return f.Pool, f, nil
	case PoolExtension:
		p, err := iop.Decode(data)
		if err != nil {
			return nil, nil, &cliError{
				code:       ErrPoolInvalid,
				suggestion: "The pool does not follow the ISO 11783-6 object layouts",
				err:        fmt.Errorf("decoding %s: %w", path, err),
			}
		}
		return p, nil, nil
	}
	return nil, nil, failf(ErrInvalidInput, "",
		"unsupported file type %q (want %s or %s)", filepath.Ext(path), PoolExtension, projfile.Extension)
}

// loadEditorProject builds a project around the pool in path, with names
// attached when the file is a project file.
func loadEditorProject(path string) (*project.Project, *projfile.File, error) {
	p, f, err := readAnyPool(path)
	if err != nil {
		return nil, nil, err
	}
	if f != nil {
		return project.FromFile(f), f, nil
	}
	return project.FromPool(p), nil, nil
}

func writeProjectFile(path string, f *projfile.File) error {
	data, err := f.Marshal()
	if err != nil {
		return &cliError{code: ErrFileWriteError, err: fmt.Errorf("writing %s: %w", path, err)}
	}
	if err := atomicfile.WriteFile(path, data, 0o644); err != nil {
		return &cliError{code: ErrFileWriteError, err: err}
	}
	return nil
}

func writePoolFile(path string, p *pool.Pool) error {
	data, err := iop.Encode(p)
	if err != nil {
		return &cliError{code: ErrPoolInvalid, err: fmt.Errorf("encoding %s: %w", path, err)}
	}
	if err := atomicfile.WriteFile(path, data, 0o644); err != nil {
		return &cliError{code: ErrFileWriteError, err: err}
	}
	return nil
}

// parseObjectID parses a numeric object id argument.
func parseObjectID(arg string) (object.ObjectID, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(arg), 10, 16)
	if err != nil {
		return object.NullID, failf(ErrInvalidInput, "", "invalid object id %q (want 0 through 65534)", arg)
	}
	id, err := object.NewObjectID(uint16(n))
	if err != nil {
		return object.NullID, failf(ErrIDReserved, "", "object id 65535 is reserved for NULL")
	}
	return id, nil
}

// parseTypeArg resolves a --type argument by name or numeric code.
func parseTypeArg(arg string) (object.ObjectType, error) {
	if t, ok := object.TypeByName(arg); ok {
		return t, nil
	}
	if n, err := strconv.ParseUint(strings.TrimSpace(arg), 10, 8); err == nil {
		if t, ok := object.ParseObjectType(uint8(n)); ok {
			return t, nil
		}
	}
	return 0, failf(ErrTypeNotFound, "Run 'vtp schema dump' to list object types",
		"unknown object type %q", arg)
}

// resolveVTVersion picks the VT version for a command: an explicit flag
// wins, then the project header, then config, then the default.
func resolveVTVersion(cmd *cobra.Command, flagName string, f *projfile.File) (object.VTVersion, error) {
	if cmd.Flags().Changed(flagName) {
		n, err := cmd.Flags().GetInt(flagName)
		if err != nil {
			return 0, &cliError{code: ErrInternal, err: err}
		}
		if n < 0 || n > 255 {
			return 0, failf(ErrInvalidInput, "", "unsupported VT version %d", n)
		}
		v, err := object.ParseVTVersion(uint8(n))
		if err != nil {
			return 0, &cliError{code: ErrInvalidInput, err: err}
		}
		return v, nil
	}
	if f != nil {
		return f.VTVersion, nil
	}
	v, err := getConfig().Version()
	if err != nil {
		return 0, &cliError{code: ErrConfigInvalid, err: err}
	}
	return v, nil
}

// touchRecent records a project path in the recent-files state. Failures
// never fail the command.
func touchRecent(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	statePath := getStatePath()
	if statePath == "" {
		return
	}
	state, err := config.LoadState(statePath)
	if err != nil {
		state = &config.State{Version: config.StateVersion}
	}
	state.Touch(abs)
	if err := config.SaveState(statePath, state); err != nil && !isJSONOutput() {
		fmt.Printf("  (state update failed: %v)\n", err)
	}
}
