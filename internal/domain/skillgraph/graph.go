package skillgraph

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Graph is an immutable, one-directional skill adjacency table. A lookup
// answers "which skills is this skill transferable to" one hop deep; no
// transitive closure is ever computed, and the relation need not be
// symmetric.
type Graph struct {
	adjacent map[string][]string
}

// New builds a Graph from a raw adjacency table, normalizing every key and
// value to lowercase trimmed form and dropping empty entries.
func New(table map[string][]string) *Graph {
	adjacent := make(map[string][]string, len(table))
	for skill, related := range table {
		key := Normalize(skill)
		if key == "" {
			continue
		}
		seen := make(map[string]struct{}, len(related))
		out := make([]string, 0, len(related))
		for _, r := range related {
			n := Normalize(r)
			if n == "" || n == key {
				continue
			}
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
		sort.Strings(out)
		adjacent[key] = out
	}
	return &Graph{adjacent: adjacent}
}

// Default returns the built-in skill relationship table.
func Default() *Graph {
	return New(defaultRelationships)
}

// LoadFile reads an adjacency table from a JSON object of the shape
// {"skill": ["related", ...]}. The file is a versioned knowledge base that
// can be updated independently of the scoring logic.
func LoadFile(path string) (*Graph, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read skill graph: %w", err)
	}
	var table map[string][]string
	if err := json.Unmarshal(b, &table); err != nil {
		return nil, fmt.Errorf("parse skill graph: %w", err)
	}
	return New(table), nil
}

// Related returns a copy of the one-hop neighbors of the given skill.
// Unknown skills yield an empty slice, never an error.
func (g *Graph) Related(skill string) []string {
	if g == nil {
		return []string{}
	}
	v, ok := g.adjacent[Normalize(skill)]
	if !ok {
		return []string{}
	}
	out := make([]string, len(v))
	copy(out, v)
	return out
}

// ReachableFrom returns the union of one-hop neighbors of all given skills.
func (g *Graph) ReachableFrom(skills []string) map[string]struct{} {
	out := make(map[string]struct{})
	if g == nil {
		return out
	}
	for _, s := range skills {
		for _, r := range g.adjacent[Normalize(s)] {
			out[r] = struct{}{}
		}
	}
	return out
}

// Len reports the number of skills with at least one outgoing relation.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}
	return len(g.adjacent)
}

// Normalize lowercases and trims a skill name for lookup and comparison.
func Normalize(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}
