package generator

import "fmt"

// genericTemplate is the fallback strategy: a markdown section per entity,
// looping when the entity is also array-marked, plus root-level scalars as
// top-level bullets. Groups are emitted in lexicographic order.
func genericTemplate(groups variableGroups) []string {
	parts := []string{"# Generated Template"}

	for _, group := range groups.entityNames() {
		props := groups.entities[group]
		if group == rootGroup {
			for _, prop := range sortedPropertyNames(props) {
				parts = append(parts, fmt.Sprintf("- %s: {{ %s }}", capitalize(prop), prop))
			}
			continue
		}

		parts = append(parts, fmt.Sprintf("## %s", capitalize(group)))
		if groups.arrays[group] {
			parts = append(parts, fmt.Sprintf("{%% for item in %s %%}", group))
			for _, prop := range sortedPropertyNames(props) {
				parts = append(parts, fmt.Sprintf("- %s: {{ item.%s }}", capitalize(prop), prop))
			}
			parts = append(parts, "{% endfor %}")
		} else {
			for _, prop := range sortedPropertyNames(props) {
				parts = append(parts, fmt.Sprintf("- %s: {{ %s.%s }}", capitalize(prop), group, prop))
			}
		}
	}

	if len(groups.entities) == 0 {
		parts = append(parts,
			"",
			"## Content",
			"",
			"{% for item in items | default([]) %}",
			"- {{ item }}",
			"{% endfor %}",
		)
	}

	return parts
}
