// Package landscape models the CNCF landscape catalog.
//
// The catalog is the upstream landscape.yml: categories containing
// subcategories containing items. Items are picked in three stages:
// random category, then random subcategory, then random item, so sparse
// categories stay as likely to surface as crowded ones.
package landscape

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/snona-tech/one-cloud-native-a-day/internal/yamlutil"
)

// Sentinel errors for catalog operations.
var (
	ErrEmptyCatalog = errors.New("landscape catalog has no items")
	ErrAllArchived  = errors.New("all sampled items are archived")
)

// ProjectArchived marks items that left the landscape.
const ProjectArchived = "archived"

// maxPickAttempts bounds the archived-skip loop. A catalog where a
// hundred straight samples are archived is a data problem worth
// surfacing rather than spinning on.
const maxPickAttempts = 100

// Item is one landscape entry, flattened with its category path.
type Item struct {
	Name        string
	Project     string
	Category    string
	Subcategory string
	Description string
	HomepageURL string
	RepoURL     string
	Crunchbase  string
	Logo        string
}

// Archived reports whether the item left the landscape.
func (i Item) Archived() bool {
	return strings.EqualFold(i.Project, ProjectArchived)
}

// document mirrors the upstream YAML layout.
type document struct {
	Landscape []category `yaml:"landscape"`
}

type category struct {
	Name          string        `yaml:"name"`
	Subcategories []subcategory `yaml:"subcategories"`
}

type subcategory struct {
	Name  string    `yaml:"name"`
	Items []rawItem `yaml:"items"`
}

type rawItem struct {
	Name        string `yaml:"name"`
	Project     string `yaml:"project"`
	Description string `yaml:"description"`
	HomepageURL string `yaml:"homepage_url"`
	RepoURL     string `yaml:"repo_url"`
	Crunchbase  string `yaml:"crunchbase"`
	Logo        string `yaml:"logo"`
}

// Catalog is a parsed landscape document.
type Catalog struct {
	categories []category
}

// Parse decodes landscape YAML. Unknown fields are ignored; the upstream
// schema is not ours to pin down.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yamlutil.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing landscape: %w", err)
	}

	c := &Catalog{}
	for _, cat := range doc.Landscape {
		if len(cat.Subcategories) == 0 {
			continue
		}
		c.categories = append(c.categories, cat)
	}
	if len(c.categories) == 0 {
		return nil, ErrEmptyCatalog
	}
	return c, nil
}

// Len returns the total number of items.
func (c *Catalog) Len() int {
	n := 0
	for _, cat := range c.categories {
		for _, sub := range cat.Subcategories {
			n += len(sub.Items)
		}
	}
	return n
}

// Pick returns one random item using category-weighted sampling.
func (c *Catalog) Pick(rng *rand.Rand) (Item, error) {
	for attempt := 0; attempt < maxPickAttempts; attempt++ {
		cat := c.categories[rng.IntN(len(c.categories))]
		if len(cat.Subcategories) == 0 {
			continue
		}
		sub := cat.Subcategories[rng.IntN(len(cat.Subcategories))]
		if len(sub.Items) == 0 {
			continue
		}
		raw := sub.Items[rng.IntN(len(sub.Items))]
		return flatten(raw, cat.Name, sub.Name), nil
	}
	return Item{}, ErrEmptyCatalog
}

// PickActive returns a random item that is not archived.
func (c *Catalog) PickActive(rng *rand.Rand) (Item, error) {
	for attempt := 0; attempt < maxPickAttempts; attempt++ {
		item, err := c.Pick(rng)
		if err != nil {
			return Item{}, err
		}
		if !item.Archived() {
			return item, nil
		}
	}
	return Item{}, ErrAllArchived
}

// flatten attaches the category path to a raw item.
func flatten(raw rawItem, categoryName, subcategoryName string) Item {
	return Item{
		Name:        raw.Name,
		Project:     raw.Project,
		Category:    categoryName,
		Subcategory: subcategoryName,
		Description: raw.Description,
		HomepageURL: raw.HomepageURL,
		RepoURL:     raw.RepoURL,
		Crunchbase:  raw.Crunchbase,
		Logo:        raw.Logo,
	}
}
