package domain

import "sort"

// FileAnalysis is the lightweight per-file record computed once by the
// analysis adapter and shared read-only across all rule checkers.
type FileAnalysis struct {
	HasParse          bool     `json:"has_parse"`
	HasAuth           bool     `json:"has_auth"`
	HasTryCatch       bool     `json:"has_try_catch"`
	HasLoadingState   bool     `json:"has_loading_state"`
	HasErrorState     bool     `json:"has_error_state"`
	Mutations         []string `json:"mutations,omitempty"`
	Invalidates       []string `json:"invalidates,omitempty"`
	HasFormValidation bool     `json:"has_form_validation"`
	TotalLines        int      `json:"total_lines"`
	Functions         []string `json:"functions,omitempty"`
	HasExport         bool     `json:"has_export"`
}

// ProjectSnapshot is the immutable read-only view of a project handed to each
// rule checker. File contents are read at most once per analysis run.
type ProjectSnapshot struct {
	RootPath string
	Files    map[string]string
	Analysis map[string]*FileAnalysis
}

// SourcePaths returns the analyzed file paths in stable sorted order so
// checker output does not depend on map iteration.
func (s *ProjectSnapshot) SourcePaths() []string {
	paths := make([]string, 0, len(s.Files))
	for p := range s.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Contract is an externally defined property set an entity is expected to
// conform to, optionally paired with a golden example payload.
type Contract struct {
	Entity     string         `json:"entity" yaml:"entity"`
	Properties []string       `json:"properties" yaml:"properties"`
	Golden     map[string]any `json:"golden,omitempty" yaml:"golden,omitempty"`
}
