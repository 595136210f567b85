package application

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/observerdev/observer/internal/domain"
	"github.com/observerdev/observer/internal/domain/classify"
	"github.com/observerdev/observer/internal/domain/insights"
	"github.com/observerdev/observer/internal/domain/rules"
	"github.com/observerdev/observer/internal/domain/scoring"
)

// AnalyzeService orchestrates the analysis pipeline:
// scan → per-file analysis → run checkers → aggregate → classify → score.
type AnalyzeService struct {
	scanner      domain.ProjectScanner
	analyzer     domain.FileAnalyzer
	configLoader domain.ConfigLoader
	contracts    domain.ContractLoader
	git          domain.GitInfo
}

func NewAnalyzeService(
	scanner domain.ProjectScanner,
	analyzer domain.FileAnalyzer,
	configLoader domain.ConfigLoader,
	contracts domain.ContractLoader,
	git domain.GitInfo,
) *AnalyzeService {
	return &AnalyzeService{
		scanner:      scanner,
		analyzer:     analyzer,
		configLoader: configLoader,
		contracts:    contracts,
		git:          git,
	}
}

// Analyze runs the full pipeline for a project. The only fatal condition is a
// project root that does not exist; everything below that boundary is
// recovered into the report.
func (s *AnalyzeService) Analyze(projectPath string) (*domain.Report, error) {
	if info, err := os.Stat(projectPath); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("project root %s does not exist", projectPath)
	}

	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	scan, err := s.scanner.Scan(projectPath, cfg.ExcludePaths...)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	files, analysis, err := s.analyzer.Analyze(scan.RootPath, scan.SourceFiles)
	if err != nil {
		return nil, fmt.Errorf("analyzing files: %w", err)
	}

	snap := &domain.ProjectSnapshot{
		RootPath: scan.RootPath,
		Files:    files,
		Analysis: analysis,
	}

	// Contracts are optional; a project without them simply skips the
	// contract checker's units.
	contracts, err := s.contracts.Load(projectPath)
	if err != nil {
		contracts = nil
	}

	core := runCheckers(rules.Canonical(cfg), cfg, snap)
	extended := runCheckers(rules.Extended(cfg, contracts), cfg, snap)

	summary := domain.Summarize(core, extended)
	issues := domain.Aggregate(summary.Results)
	buckets := classify.Classify(issues)

	blockers, structural, compliance := classify.Counts(buckets)

	report := &domain.Report{
		Timestamp: time.Now(),
		Health:    scoring.BucketScore(blockers, structural, compliance),
		Summary:   summary,
		Buckets:   buckets,
		Insights:  insights.Analyze(buckets),
	}

	// Commit metadata is best-effort; uncommitted or untracked projects
	// still produce a full report.
	if s.git != nil {
		if hash, err := s.git.CommitHash(projectPath); err == nil {
			report.CommitHash = hash
		}
	}
	return report, nil
}

// runCheckers fans the checkers out as independent tasks and joins the
// results in fixed index order, so concurrency never changes the output.
func runCheckers(checkers []rules.Checker, cfg domain.ProjectConfig, snap *domain.ProjectSnapshot) []domain.ValidationResult {
	results := make([]domain.ValidationResult, len(checkers))

	var g errgroup.Group
	for i, c := range checkers {
		if cfg.IsSkippedRule(c.Rule()) {
			results[i] = rules.Skipped(c)
			continue
		}
		g.Go(func() error {
			results[i] = rules.Run(c, snap)
			return nil
		})
	}
	_ = g.Wait() // checkers never return errors; failures become issues

	return results
}
