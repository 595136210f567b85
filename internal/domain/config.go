package domain

import "fmt"

// ValidRules enumerates the rule names recognized in skip lists.
var ValidRules = []string{
	"Type-Database Alignment", "Hook-Database Pattern", "Error Handling",
	"Loading States", "API Type Safety", "Registry Usage",
	"Cache Invalidation", "Form Validation", "Auth Guards",
	"File Size Warnings", "Duplicate Functions", "Export Completeness",
	"Contract Compliance",
}

// ProjectConfig holds project-level configuration loaded from .observer.yaml.
type ProjectConfig struct {
	ExcludePaths   []string   `yaml:"exclude_paths"   json:"exclude_paths,omitempty"`
	ProtectedPaths []string   `yaml:"protected_paths" json:"protected_paths,omitempty"`
	HookDirs       []string   `yaml:"hook_dirs"       json:"hook_dirs,omitempty"`
	MaxFileLines   int        `yaml:"max_file_lines"  json:"max_file_lines,omitempty"`
	MinScore       int        `yaml:"min_score"       json:"min_score,omitempty"`
	Skip           SkipConfig `yaml:"skip"            json:"skip,omitempty"`
}

// SkipConfig specifies rules to exclude from a run.
type SkipConfig struct {
	Rules []string `yaml:"rules" json:"rules,omitempty"`
}

// DefaultConfig returns the configuration used when no .observer.yaml exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		ProtectedPaths: []string{"admin", "dashboard", "account", "settings", "api"},
		HookDirs:       []string{"hooks", "src/hooks"},
		MaxFileLines:   400,
	}
}

// IsSkippedRule reports whether the named rule is excluded.
func (c ProjectConfig) IsSkippedRule(name string) bool {
	for _, s := range c.Skip.Rules {
		if s == name {
			return true
		}
	}
	return false
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	for _, r := range c.Skip.Rules {
		if !isValidRule(r) {
			return fmt.Errorf("unknown rule %q in skip.rules", r)
		}
	}
	if len(c.Skip.Rules) >= len(ValidRules) {
		return fmt.Errorf("cannot skip all rules (must have at least one active)")
	}
	if c.MaxFileLines < 0 {
		return fmt.Errorf("max_file_lines must be non-negative, got %d", c.MaxFileLines)
	}
	if c.MinScore < 0 || c.MinScore > 100 {
		return fmt.Errorf("min_score must be between 0 and 100, got %d", c.MinScore)
	}
	return nil
}

func isValidRule(name string) bool {
	for _, r := range ValidRules {
		if r == name {
			return true
		}
	}
	return false
}
