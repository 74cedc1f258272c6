// Package seed reads operator-maintained data files for the seed commands.
package seed

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"stratplan/internal/application/budget/usecases"
	"stratplan/internal/shared/logger"
)

// CostingFile is the layout of a costing seed file:
//
//	assumptions:
//	  - activity_type: Training
//	    location: Addis_Ababa
//	    cost_type: per_diem
//	    amount: 1200.00
//	    description: Daily allowance
type CostingFile struct {
	Assumptions []CostingRow `yaml:"assumptions"`
}

type CostingRow struct {
	ActivityType string `yaml:"activity_type"`
	Location     string `yaml:"location"`
	CostType     string `yaml:"cost_type"`
	Amount       string `yaml:"amount"`
	Description  string `yaml:"description"`
}

type CostingLoader struct {
	logger logger.Interface
}

func NewCostingLoader(logger logger.Interface) *CostingLoader {
	return &CostingLoader{logger: logger}
}

// LoadFile reads and parses the seed file at path.
func (l *CostingLoader) LoadFile(path string) ([]usecases.CostingEntry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read costing file: %w", err)
	}

	entries, err := ParseCosting(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	l.logger.Infow("loaded costing seed file", "file", path, "entries", len(entries))
	return entries, nil
}

// ParseCosting decodes a costing seed document. Amounts are parsed as exact
// decimals; the key fields are validated later by the import.
func ParseCosting(content []byte) ([]usecases.CostingEntry, error) {
	var file CostingFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("invalid costing yaml: %w", err)
	}
	if len(file.Assumptions) == 0 {
		return nil, fmt.Errorf("no assumptions found")
	}

	entries := make([]usecases.CostingEntry, 0, len(file.Assumptions))
	for i, row := range file.Assumptions {
		amount, err := decimal.NewFromString(strings.TrimSpace(row.Amount))
		if err != nil {
			return nil, fmt.Errorf("assumption %d: invalid amount %q", i+1, row.Amount)
		}
		entries = append(entries, usecases.CostingEntry{
			ActivityType: strings.TrimSpace(row.ActivityType),
			Location:     strings.TrimSpace(row.Location),
			CostType:     strings.TrimSpace(row.CostType),
			Amount:       amount,
			Description:  strings.TrimSpace(row.Description),
		})
	}
	return entries, nil
}
