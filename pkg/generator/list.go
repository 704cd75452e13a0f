package generator

import "fmt"

// listTemplate renders an HTML unordered list over the main entity. Three
// shapes are handled: an entity with grouped properties, a bare array whose
// element fields appear as flattened child paths, and a generic fallback
// looping over "items" when nothing in the schema matches.
func listTemplate(directives []string, groups variableGroups) []string {
	parts := []string{"<ul>"}

	main := groups.mainEntity(directives)
	if main == "" {
		if names := groups.arrayNames(); len(names) > 0 {
			main = names[0]
		} else if names := groups.entityNames(); len(names) > 0 {
			main = names[0]
		}
	}

	switch {
	case main != "" && groups.entities[main] != nil:
		props := groups.entities[main]
		itemVar := singularize(main)
		parts = append(parts, fmt.Sprintf("{%% for %s in %s %%}", itemVar, main))

		var relevant []string
		for _, directive := range directives {
			if _, ok := props[directive]; ok {
				relevant = append(relevant, directive)
			}
		}
		if len(relevant) == 0 {
			relevant = sortedPropertyNames(props)
		}

		refs := make([]string, len(relevant))
		for i, prop := range relevant {
			refs[i] = fmt.Sprintf("{{ %s.%s }}", itemVar, prop)
		}
		parts = append(parts, "  <li>"+joinInline(refs)+"</li>", "{% endfor %}")

	case main != "" && groups.arrays[main]:
		parts = append(parts, fmt.Sprintf("{%% for item in %s %%}", main))
		if children := groups.childPaths(main); len(children) > 0 {
			refs := make([]string, len(children))
			for i, prop := range children {
				refs[i] = fmt.Sprintf("{{ item.%s }}", prop)
			}
			parts = append(parts, "  <li>"+joinInline(refs)+"</li>")
		} else {
			parts = append(parts, "  <li>{{ item }}</li>")
		}
		parts = append(parts, "{% endfor %}")

	default:
		parts = append(parts,
			"{% for item in items %}",
			"  <li>{{ item }}</li>",
			"{% endfor %}",
		)
	}

	return append(parts, "</ul>")
}

func joinInline(refs []string) string {
	out := refs[0]
	for _, ref := range refs[1:] {
		out += " - " + ref
	}
	return out
}
