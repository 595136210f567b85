package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/observerdev/observer/internal/domain"
)

// ContractCompliance compares each contract's property set against its golden
// example payload. The checkable unit is a single contract property.
type ContractCompliance struct {
	Contracts []domain.Contract
}

func (ContractCompliance) Rule() string { return "Contract Compliance" }
func (ContractCompliance) Number() int  { return 13 }

func (c ContractCompliance) Check(*domain.ProjectSnapshot) domain.ValidationResult {
	var cov domain.Coverage
	var issues []domain.Issue

	for _, contract := range c.Contracts {
		if contract.Golden == nil {
			cov.Total++
			cov.Checked++
			issues = append(issues, domain.Issue{
				File:     contractFile(contract.Entity),
				Rule:     c.Rule(),
				Category: domain.CategoryContract,
				Severity: domain.SeverityCritical,
				Type:     "missing_contracts",
				Message:  fmt.Sprintf("contract %s has no golden example", contract.Entity),
			})
			continue
		}

		for _, prop := range contract.Properties {
			cov.Total++
			cov.Checked++

			if _, ok := contract.Golden[prop]; ok {
				cov.Passed++
				continue
			}
			issues = append(issues, domain.Issue{
				File:       contractFile(contract.Entity),
				Rule:       c.Rule(),
				Category:   domain.CategoryContract,
				Severity:   domain.SeverityCritical,
				Type:       "missing_contracts",
				Message:    fmt.Sprintf("contract %s: property %q missing from golden example", contract.Entity, prop),
				Suggestion: "Add the property to the golden example or drop it from the contract",
			})
		}

		// Properties present in the example but absent from the contract are
		// drift in the other direction. Keys are sorted so reruns produce
		// identical output.
		keys := make([]string, 0, len(contract.Golden))
		for key := range contract.Golden {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if !containsProp(contract.Properties, key) {
				issues = append(issues, domain.Issue{
					File:     contractFile(contract.Entity),
					Rule:     c.Rule(),
					Category: domain.CategoryContract,
					Severity: domain.SeverityWarning,
					Message:  fmt.Sprintf("contract %s: golden example carries undeclared property %q", contract.Entity, key),
				})
			}
		}
	}

	return result(c, cov, issues)
}

func contractFile(entity string) string {
	return ".observer/contracts/" + strings.ToLower(entity) + ".yaml"
}

func containsProp(props []string, name string) bool {
	for _, p := range props {
		if p == name {
			return true
		}
	}
	return false
}
