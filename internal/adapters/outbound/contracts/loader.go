// Package contracts loads contract definitions and their golden example
// payloads from the project's .observer/contracts directory.
package contracts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/observerdev/observer/internal/domain"
)

const contractsDir = ".observer/contracts"

// Loader implements domain.ContractLoader over YAML contract files. A golden
// example may be inline in the contract or referenced as a sibling JSON file.
type Loader struct{}

func New() *Loader { return &Loader{} }

// contractDoc is the on-disk shape of a contract file.
type contractDoc struct {
	Entity     string         `yaml:"entity"`
	Properties []string       `yaml:"properties"`
	Golden     map[string]any `yaml:"golden"`
	GoldenFile string         `yaml:"golden_file"`
}

// Load reads all contract YAML files. A project without a contracts
// directory has no contracts; that is not an error.
func (l *Loader) Load(projectPath string) ([]domain.Contract, error) {
	dir := filepath.Join(projectPath, contractsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ".yaml") || strings.HasSuffix(e.Name(), ".yml") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var contracts []domain.Contract
	for _, name := range names {
		c, err := loadContract(dir, name)
		if err != nil {
			return nil, fmt.Errorf("loading contract %s: %w", name, err)
		}
		contracts = append(contracts, c)
	}
	return contracts, nil
}

func loadContract(dir, name string) (domain.Contract, error) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return domain.Contract{}, err
	}

	var doc contractDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return domain.Contract{}, err
	}
	if doc.Entity == "" {
		doc.Entity = strings.TrimSuffix(strings.TrimSuffix(name, ".yaml"), ".yml")
	}

	golden := doc.Golden
	if golden == nil && doc.GoldenFile != "" {
		raw, err := os.ReadFile(filepath.Join(dir, doc.GoldenFile))
		if err != nil {
			return domain.Contract{}, fmt.Errorf("golden example %s: %w", doc.GoldenFile, err)
		}
		if err := json.Unmarshal(raw, &golden); err != nil {
			return domain.Contract{}, fmt.Errorf("golden example %s: %w", doc.GoldenFile, err)
		}
	}

	return domain.Contract{
		Entity:     doc.Entity,
		Properties: doc.Properties,
		Golden:     golden,
	}, nil
}
