package generator

import "fmt"

// productManagerTemplate emits a markdown skeleton for breaking an idea into
// user stories, tasks, a timeline and resources. When the schema groups an
// "idea" entity, its properties replace the free-form idea placeholder.
func productManagerTemplate(groups variableGroups) []string {
	idea := []string{`{% if idea %}{{ idea }}{% else %}[Describe the idea here]{% endif %}`}
	if props := groups.entities["idea"]; len(props) > 0 {
		idea = idea[:0]
		for _, prop := range sortedPropertyNames(props) {
			idea = append(idea, fmt.Sprintf("- %s: {{ idea.%s }}", capitalize(prop), prop))
		}
	}

	parts := []string{
		`# {{ role | default("Product Manager") }} - {{ task | default("Break Down Ideas") }}`,
		"",
		"## Instructions",
		"Please break down the following idea into structured components:",
		"",
		"## Idea",
	}
	parts = append(parts, idea...)
	parts = append(parts,
		"",
		"## User Stories",
		"{% for i in range(3) %}",
		"- As a [user type], I want [goal], so that [benefit]",
		"{% endfor %}",
		"",
		"## Tasks",
		"{% for i in range(5) %}",
		"- [ ] Task {{ i+1 }}: [Describe task]",
		"{% endfor %}",
		"",
		"## Timeline",
		"- Start date: [Date]",
		"- Milestones:",
		"  {% for i in range(3) %}",
		"  - Milestone {{ i+1 }}: [Description] - [Date]",
		"  {% endfor %}",
		"- Completion date: [Date]",
		"",
		"## Resources Needed",
		"{% for i in range(3) %}",
		"- [Resource type]: [Description]",
		"{% endfor %}",
	)
	return parts
}

// apiDocumentationTemplate emits a markdown skeleton for documenting an HTTP
// API. The endpoints section adapts to the schema: a loop over an "endpoints"
// collection by default, or an inline single-endpoint block when only an
// "endpoint" entity is grouped.
func apiDocumentationTemplate(groups variableGroups) []string {
	parts := []string{
		"# API Documentation",
		"",
		"## Overview",
		"{% if api %}{{ api.description }}{% else %}[Provide a brief description of the API]{% endif %}",
		"",
		"## Base URL",
		"{% if api %}{{ api.base_url }}{% else %}[Base URL for all endpoints]{% endif %}",
		"",
		"## Authentication",
		"{% if api and api.authentication %}{{ api.authentication }}{% else %}[Describe authentication methods]{% endif %}",
		"",
		"## Endpoints",
		"",
	}

	_, hasEndpoints := groups.entities["endpoints"]
	_, hasEndpoint := groups.entities["endpoint"]
	if !hasEndpoints && hasEndpoint {
		parts = append(parts, singleEndpointSection()...)
	} else {
		parts = append(parts, endpointLoopSection()...)
	}

	parts = append(parts,
		"",
		"## Error Codes",
		"",
		"| Code | Description |",
		"|------|-------------|",
		"{% for error in errors | default([]) %}",
		"| {{ error.code }} | {{ error.description }} |",
		"{% endfor %}",
	)
	return parts
}

func endpointLoopSection() []string {
	return []string{
		"{% for endpoint in endpoints | default([]) %}",
		`### {{ endpoint.name | default("Endpoint") }}`,
		"",
		"**URL**: `{{ endpoint.url | default(\"/path/to/resource\") }}`",
		"",
		"**Method**: `{{ endpoint.method | default(\"GET\") }}`",
		"",
		`**Description**: {{ endpoint.description | default("Description of what this endpoint does") }}`,
		"",
		"{% if endpoint.parameters %}",
		"**Parameters**:",
		"",
		"| Name | Type | Required | Description |",
		"|------|------|----------|-------------|",
		"{% for param in endpoint.parameters %}",
		"| {{ param.name }} | {{ param.type }} | {{ param.required }} | {{ param.description }} |",
		"{% endfor %}",
		"{% endif %}",
		"",
		"**Response**:",
		"",
		"```json",
		"{{ endpoint.response | default(\"{\\n  \\\"status\\\": \\\"success\\\",\\n  \\\"data\\\": {}\\n}\") }}",
		"```",
		"",
		"{% endfor %}",
	}
}

func singleEndpointSection() []string {
	return []string{
		"### Endpoint",
		"",
		"**URL**: `{% if endpoint %}{{ endpoint.url }}{% else %}/path/to/resource{% endif %}`",
		"",
		"**Method**: `{% if endpoint %}{{ endpoint.method }}{% else %}GET{% endif %}`",
		"",
		"**Description**: {% if endpoint %}{{ endpoint.description }}{% else %}Description of what this endpoint does{% endif %}",
		"",
		"{% if endpoint and endpoint.parameters %}",
		"**Parameters**:",
		"",
		"| Name | Type | Required | Description |",
		"|------|------|----------|-------------|",
		"{% for param in endpoint.parameters %}",
		"| {{ param.name }} | {{ param.type }} | {{ param.required }} | {{ param.description }} |",
		"{% endfor %}",
		"{% endif %}",
		"",
		"**Response**:",
		"",
		"```json",
		"{% if endpoint and endpoint.response %}{{ endpoint.response }}{% else %}{\n  \"status\": \"success\",\n  \"data\": {}\n}{% endif %}",
		"```",
	}
}
