package generator

import "fmt"

// tableTemplate renders an HTML table over the main entity. Column headers
// come from directives that name real properties, falling back to every
// property of the entity, then to directives themselves, then to a generic
// name/value pair.
func tableTemplate(directives []string, groups variableGroups) []string {
	parts := []string{"<table>", "  <thead>", "    <tr>"}

	main := groups.mainEntity(directives)
	if main == "" {
		if names := groups.arrayNames(); len(names) > 0 {
			main = names[0]
		}
	}

	var columns []string
	switch {
	case main != "" && groups.entities[main] != nil:
		props := groups.entities[main]
		for _, directive := range directives {
			if _, ok := props[directive]; ok {
				columns = append(columns, directive)
			}
		}
		if len(columns) == 0 {
			columns = sortedPropertyNames(props)
		}
	case main != "":
		columns = groups.childPaths(main)
		if len(columns) == 0 {
			for _, directive := range directives {
				if directive != "table" && directive != main {
					columns = append(columns, directive)
				}
			}
		}
	default:
		for _, directive := range directives {
			if directive != "table" {
				columns = append(columns, directive)
			}
		}
	}

	if len(columns) == 0 {
		columns = []string{"name", "value"}
	}

	for _, column := range columns {
		parts = append(parts, fmt.Sprintf("      <th>%s</th>", capitalize(column)))
	}
	parts = append(parts, "    </tr>", "  </thead>", "  <tbody>")

	loopOver := main
	if loopOver == "" {
		loopOver = "items"
	}
	parts = append(parts,
		fmt.Sprintf("    {%% for item in %s %%}", loopOver),
		"      <tr>",
	)
	for _, column := range columns {
		parts = append(parts, fmt.Sprintf("        <td>{{ item.%s }}</td>", column))
	}
	parts = append(parts,
		"      </tr>",
		"    {% endfor %}",
		"  </tbody>",
		"</table>",
	)

	return parts
}
