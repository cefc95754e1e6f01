// Package editor runs the headless editing loop. A Session owns the
// project state and the file loader; one Tick per frame applies a finished
// load if one arrived and then commits staged changes, reporting what a
// caller would need to repaint.
package editor

import (
	"fmt"

	"github.com/isobus-tools/vtpool/internal/atomicfile"
	"github.com/isobus-tools/vtpool/internal/iop"
	"github.com/isobus-tools/vtpool/internal/loader"
	"github.com/isobus-tools/vtpool/internal/object"
	"github.com/isobus-tools/vtpool/internal/project"
	"github.com/isobus-tools/vtpool/internal/projfile"
)

// LoadReason says how the bytes of a pending read are interpreted once they
// arrive.
type LoadReason uint8

const (
	LoadNone LoadReason = iota
	LoadPool
	LoadProject
)

func (r LoadReason) String() string {
	switch r {
	case LoadNone:
		return "none"
	case LoadPool:
		return "pool"
	case LoadProject:
		return "project"
	}
	return fmt.Sprintf("LoadReason(%d)", uint8(r))
}

// Options configure a new session.
type Options struct {
	// SmartNamesOnImport runs batch naming over pools loaded from raw .iop
	// files, so unnamed objects get readable defaults.
	SmartNamesOnImport bool

	// Version is the VT version used for schema decisions and written into
	// saved project files. Zero means object.DefaultVersion.
	Version object.VTVersion
}

// Session drives one open project. Not safe for concurrent use; everything
// happens on the tick loop.
type Session struct {
	project *project.Project
	files   *loader.Loader

	smartNames bool
	version    object.VTVersion

	pendingReason LoadReason
	pendingPath   string
}

// NewSession starts a session around an empty project.
func NewSession(opts Options) *Session {
	if opts.Version == 0 {
		opts.Version = object.DefaultVersion
	}
	return &Session{
		project:    project.New(),
		files:      loader.New(),
		smartNames: opts.SmartNamesOnImport,
		version:    opts.Version,
	}
}

// Project returns the session's editing state.
func (s *Session) Project() *project.Project { return s.project }

// Version returns the VT version in effect. Loading a project file adopts
// the version it was saved with.
func (s *Session) Version() object.VTVersion { return s.version }

// PendingLoad reports the read currently awaited, if any.
func (s *Session) PendingLoad() (string, LoadReason) {
	return s.pendingPath, s.pendingReason
}

// OpenPool requests path to be read and decoded as a raw object pool. A new
// request supersedes a pending one; the superseded result is discarded when
// it arrives.
func (s *Session) OpenPool(path string) {
	s.pendingReason = LoadPool
	s.pendingPath = path
	s.files.Request(path)
}

// OpenProject requests path to be read as a project container.
func (s *Session) OpenProject(path string) {
	s.pendingReason = LoadProject
	s.pendingPath = path
	s.files.Request(path)
}

// TickReport says what changed during one tick.
type TickReport struct {
	PoolChanged      bool
	SelectionChanged bool

	// LoadedPath is the file applied this tick, empty when none.
	LoadedPath string
	LoadErr    error
}

// Changed reports whether anything happened this tick.
func (r TickReport) Changed() bool {
	return r.PoolChanged || r.SelectionChanged || r.LoadedPath != "" || r.LoadErr != nil
}

// Tick runs one editor frame: apply a finished load if one arrived, then
// fold staged pool and selection changes into the committed state.
func (s *Session) Tick() TickReport {
	var report TickReport
	if res, ok := s.files.Poll(); ok {
		s.applyLoad(res, &report)
	}
	report.PoolChanged = s.project.CommitPool()
	report.SelectionChanged = s.project.CommitSelection()
	return report
}

func (s *Session) applyLoad(res loader.Result, report *TickReport) {
	if s.pendingReason == LoadNone || res.Path != s.pendingPath {
		// A newer request superseded this one.
		return
	}
	reason := s.pendingReason
	s.pendingReason = LoadNone
	s.pendingPath = ""

	if res.Err != nil {
		report.LoadErr = res.Err
		return
	}

	switch reason {
	case LoadPool:
		p, err := iop.Decode(res.Data)
		if err != nil {
			report.LoadErr = fmt.Errorf("loading pool %s: %w", res.Path, err)
			return
		}
		pr := project.FromPool(p)
		if s.smartNames {
			pr.ApplySmartNames()
		}
		s.project = pr
	case LoadProject:
		f, err := projfile.Unmarshal(res.Data)
		if err != nil {
			report.LoadErr = fmt.Errorf("loading project %s: %w", res.Path, err)
			return
		}
		s.project = project.FromFile(f)
		s.version = f.VTVersion
	}
	report.LoadedPath = res.Path
}

// SaveProject writes the committed state to path as a project container.
func (s *Session) SaveProject(path string) error {
	data, err := s.project.File(s.version).Marshal()
	if err != nil {
		return fmt.Errorf("saving project: %w", err)
	}
	if err := atomicfile.WriteFile(path, data, 0); err != nil {
		return fmt.Errorf("saving project: %w", err)
	}
	return nil
}

// ExportPool writes the committed pool to path as raw .iop bytes.
func (s *Session) ExportPool(path string) error {
	data, err := iop.Encode(s.project.Pool())
	if err != nil {
		return fmt.Errorf("exporting pool: %w", err)
	}
	if err := atomicfile.WriteFile(path, data, 0); err != nil {
		return fmt.Errorf("exporting pool: %w", err)
	}
	return nil
}
