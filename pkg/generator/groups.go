package generator

import (
	"sort"
	"strings"

	"github.com/Sean-Koval/ai-dlc/pkg/schema"
)

// rootGroup collects root-level scalar variables that belong to no entity.
const rootGroup = "root"

// variableGroups is an ephemeral view over a schema.VariableMap: top-level
// entity names mapped to their direct child properties, plus the set of
// array-marked top-level names. It is recomputed per generation call and
// never shared.
type variableGroups struct {
	entities map[string]map[string]string
	arrays   map[string]bool
	vars     schema.VariableMap
}

// groupVariables splits every dotted path on its first separator: the head
// names the entity, the remainder (which may itself be dotted) becomes a
// property. Root-level scalars gather under the "root" pseudo-group and
// root-level arrays under the array set.
func groupVariables(vars schema.VariableMap) variableGroups {
	groups := variableGroups{
		entities: map[string]map[string]string{},
		arrays:   map[string]bool{},
		vars:     vars,
	}

	for path, varType := range vars {
		if parent, child, found := strings.Cut(path, "."); found {
			props := groups.entities[parent]
			if props == nil {
				props = map[string]string{}
				groups.entities[parent] = props
			}
			props[child] = varType
			continue
		}
		if varType == schema.TypeArray {
			groups.arrays[path] = true
			continue
		}
		props := groups.entities[rootGroup]
		if props == nil {
			props = map[string]string{}
			groups.entities[rootGroup] = props
		}
		props[path] = varType
	}

	return groups
}

func (g variableGroups) empty() bool {
	return len(g.entities) == 0 && len(g.arrays) == 0
}

// mainEntity returns the first directive naming either a grouped entity or an
// array-marked variable, or "" when none matches.
func (g variableGroups) mainEntity(directives []string) string {
	for _, directive := range directives {
		if _, ok := g.entities[directive]; ok {
			return directive
		}
		if g.arrays[directive] {
			return directive
		}
	}
	return ""
}

// entityNames returns the grouped entity names in lexicographic order. Go
// maps carry no insertion order, so every derived ordering here is sorted to
// keep generation byte-for-byte deterministic.
func (g variableGroups) entityNames() []string {
	names := make([]string, 0, len(g.entities))
	for name := range g.entities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (g variableGroups) arrayNames() []string {
	names := make([]string, 0, len(g.arrays))
	for name := range g.arrays {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// availableNames enumerates every top-level name for error messages: grouped
// entities first, then array variables.
func (g variableGroups) availableNames() []string {
	return append(g.entityNames(), g.arrayNames()...)
}

// childPaths returns the sorted suffixes of variable-map keys prefixed with
// entity + ".". Used when an array entity carries flattened element fields.
func (g variableGroups) childPaths(entity string) []string {
	prefix := entity + "."
	var suffixes []string
	for path := range g.vars {
		if strings.HasPrefix(path, prefix) {
			suffixes = append(suffixes, path[len(prefix):])
		}
	}
	sort.Strings(suffixes)
	return suffixes
}

func sortedPropertyNames(props map[string]string) []string {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
