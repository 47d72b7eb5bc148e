// Package skillsdb provides the skill-category database used by the
// extraction layer. The database is loaded once at startup into an immutable
// value and injected where needed; nothing in the scoring path depends on it.
package skillsdb

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// DB is an immutable skill-category database. Lookups are case-insensitive.
type DB struct {
	categories map[string][]string
	allSkills  map[string]struct{}
}

// Load reads a skill database from a JSON file mapping category names to
// skill lists. A missing path (or empty string) yields the built-in default
// database rather than an error; a present but unreadable or malformed file
// is an error, since silently replacing a curated database would mask
// operator mistakes.
func Load(path string) (*DB, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read skills database %s: %w", path, err)
	}

	var categories map[string][]string
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("failed to parse skills database %s: %w", path, err)
	}
	if len(categories) == 0 {
		return Default(), nil
	}

	return build(categories), nil
}

// Default returns the built-in skill database.
func Default() *DB {
	return build(defaultCategories)
}

// build constructs an immutable DB from a category map, lowercasing skills
// and collapsing duplicates.
func build(categories map[string][]string) *DB {
	db := &DB{
		categories: make(map[string][]string, len(categories)),
		allSkills:  make(map[string]struct{}),
	}
	for category, skills := range categories {
		cleaned := make([]string, 0, len(skills))
		seen := make(map[string]struct{}, len(skills))
		for _, s := range skills {
			s = strings.ToLower(strings.TrimSpace(s))
			if s == "" {
				continue
			}
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			cleaned = append(cleaned, s)
			db.allSkills[s] = struct{}{}
		}
		sort.Strings(cleaned)
		db.categories[category] = cleaned
	}
	return db
}

// Categories returns the category names in sorted order.
func (db *DB) Categories() []string {
	out := make([]string, 0, len(db.categories))
	for c := range db.categories {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// SkillsFor returns the skills in a category, or nil for an unknown one.
// The returned slice must not be modified.
func (db *DB) SkillsFor(category string) []string {
	return db.categories[category]
}

// Contains reports whether the database knows the skill (case-insensitive).
func (db *DB) Contains(skill string) bool {
	_, ok := db.allSkills[strings.ToLower(strings.TrimSpace(skill))]
	return ok
}

// AllSkills returns every known skill, lowercased and sorted.
func (db *DB) AllSkills() []string {
	out := make([]string, 0, len(db.allSkills))
	for s := range db.allSkills {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Size returns the number of distinct skills in the database.
func (db *DB) Size() int {
	return len(db.allSkills)
}
