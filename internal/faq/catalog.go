// Package faq holds the canned question/answer catalog and the semantic
// matcher that decides whether a free-text query is answered from it.
package faq

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Entry is one immutable catalog question/answer pair.
type Entry struct {
	Question string `toml:"question"`
	Answer   string `toml:"answer"`
}

// DefaultCatalog is the built-in answer set used when no catalog file
// overrides it. Declaration order is the tie-break order for matching.
var DefaultCatalog = []Entry{
	{
		Question: "how to save on groceries",
		Answer:   "Try meal planning, bulk buying, and using discount coupons.",
	},
	{
		Question: "how much should i save monthly",
		Answer:   "A good rule is to save at least 20% of your income.",
	},
	{
		Question: "how to reduce electricity bill",
		Answer:   "Use energy-efficient appliances, unplug devices, and optimize usage.",
	},
	{
		Question: "best way to track expenses",
		Answer:   "Use budgeting apps or maintain an expense tracker.",
	},
	{
		Question: "how to reduce transportation cost",
		Answer:   "Use public transport, carpool, or opt for fuel-efficient vehicles.",
	},
}

type catalogFile struct {
	FAQ []Entry `toml:"faq"`
}

// LoadCatalog reads a TOML catalog file ([[faq]] tables with question and
// answer keys). A missing file falls back to DefaultCatalog.
func LoadCatalog(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultCatalog, nil
		}
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var cf catalogFile
	if err := toml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if len(cf.FAQ) == 0 {
		return DefaultCatalog, nil
	}
	for i, e := range cf.FAQ {
		if e.Question == "" || e.Answer == "" {
			return nil, fmt.Errorf("catalog entry %d: question and answer are both required", i+1)
		}
	}
	return cf.FAQ, nil
}
