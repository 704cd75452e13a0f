package generator

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Sean-Koval/ai-dlc/pkg/intent"
	"github.com/Sean-Koval/ai-dlc/pkg/schema"
)

func TestGenerateListTemplate(t *testing.T) {
	gen := New(WithSkipSchemaValidation(true))

	got, err := gen.Generate(
		intent.Intent{Directives: []string{"list", "users", "emails"}},
		schema.VariableMap{"users": "array", "users.name": "string", "users.email": "string"},
	)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	want := strings.Join([]string{
		"<ul>",
		"{% for user in users %}",
		"  <li>{{ user.email }} - {{ user.name }}</li>",
		"{% endfor %}",
		"</ul>",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Generate() mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateListFiltersPropertiesByDirectives(t *testing.T) {
	gen := New(WithSkipSchemaValidation(true))

	got, err := gen.Generate(
		intent.Intent{Directives: []string{"list", "users", "email"}},
		schema.VariableMap{"users": "array", "users.name": "string", "users.email": "string"},
	)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if !strings.Contains(got, "<li>{{ user.email }}</li>") {
		t.Fatalf("Generate() = %q, want list item restricted to email", got)
	}
	if strings.Contains(got, "user.name") {
		t.Fatalf("Generate() = %q, want name column omitted", got)
	}
}

func TestGenerateListWithoutMatchingEntity(t *testing.T) {
	gen := New(WithSkipSchemaValidation(true))

	got, err := gen.Generate(
		intent.Intent{Directives: []string{"list"}},
		schema.VariableMap{},
	)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	want := strings.Join([]string{
		"<ul>",
		"{% for item in items %}",
		"  <li>{{ item }}</li>",
		"{% endfor %}",
		"</ul>",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Generate() mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateTableTemplate(t *testing.T) {
	gen := New(WithSkipSchemaValidation(true))

	got, err := gen.Generate(
		intent.Intent{Directives: []string{"table", "products", "name", "price"}},
		schema.VariableMap{"products": "array", "products.name": "string", "products.price": "number"},
	)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	want := strings.Join([]string{
		"<table>",
		"  <thead>",
		"    <tr>",
		"      <th>Name</th>",
		"      <th>Price</th>",
		"    </tr>",
		"  </thead>",
		"  <tbody>",
		"    {% for item in products %}",
		"      <tr>",
		"        <td>{{ item.name }}</td>",
		"        <td>{{ item.price }}</td>",
		"      </tr>",
		"    {% endfor %}",
		"  </tbody>",
		"</table>",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Generate() mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateTableFallbackColumns(t *testing.T) {
	gen := New(WithSkipSchemaValidation(true))

	got, err := gen.Generate(
		intent.Intent{Directives: []string{"table"}},
		schema.VariableMap{},
	)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for _, want := range []string{
		"      <th>Name</th>",
		"      <th>Value</th>",
		"    {% for item in items %}",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("Generate() = %q, want it to contain %q", got, want)
		}
	}
}

func TestGenerateProductManagerTemplate(t *testing.T) {
	gen := New(WithSkipSchemaValidation(true))

	got, err := gen.Generate(
		intent.Intent{Role: "product manager", Task: "break down ideas into user stories"},
		schema.VariableMap{},
	)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for _, want := range []string{
		"## User Stories",
		"## Tasks",
		"## Timeline",
		"## Resources Needed",
		"{% for i in range(3) %}",
		"{% if idea %}{{ idea }}{% else %}[Describe the idea here]{% endif %}",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("Generate() missing %q in:\n%s", want, got)
		}
	}
}

func TestGenerateProductManagerTemplateWithIdeaSchema(t *testing.T) {
	gen := New(WithSkipSchemaValidation(true))

	got, err := gen.Generate(
		intent.Intent{Role: "product manager", Task: "break down feature ideas"},
		schema.VariableMap{"idea.title": "string", "idea.summary": "string"},
	)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for _, want := range []string{
		"- Summary: {{ idea.summary }}",
		"- Title: {{ idea.title }}",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("Generate() missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "[Describe the idea here]") {
		t.Fatalf("Generate() kept the idea placeholder despite schema properties:\n%s", got)
	}
}

func TestGenerateAPIDocumentationTemplate(t *testing.T) {
	gen := New(WithSkipSchemaValidation(true))

	got, err := gen.Generate(
		intent.Intent{Role: "developer", Task: "generate API documentation"},
		schema.VariableMap{"endpoints": "array", "endpoints.url": "string"},
	)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for _, want := range []string{
		"# API Documentation",
		"{% for endpoint in endpoints | default([]) %}",
		"## Error Codes",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("Generate() missing %q in:\n%s", want, got)
		}
	}
}

func TestGenerateAPIDocumentationSingleEndpoint(t *testing.T) {
	gen := New(WithSkipSchemaValidation(true))

	got, err := gen.Generate(
		intent.Intent{Role: "developer", Task: "generate api documentation"},
		schema.VariableMap{"endpoint.url": "string", "endpoint.method": "string"},
	)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if strings.Contains(got, "{% for endpoint in endpoints") {
		t.Fatalf("Generate() kept the endpoints loop for a single-endpoint schema:\n%s", got)
	}
	if !strings.Contains(got, "{% if endpoint %}{{ endpoint.url }}{% else %}/path/to/resource{% endif %}") {
		t.Fatalf("Generate() missing inline endpoint block:\n%s", got)
	}
}

func TestGenerateGenericTemplate(t *testing.T) {
	gen := New(WithSkipSchemaValidation(true))

	got, err := gen.Generate(
		intent.Intent{},
		schema.VariableMap{
			"title":          "string",
			"users":          "array",
			"users.name":     "string",
			"settings.theme": "string",
		},
	)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	want := strings.Join([]string{
		"# Generated Template",
		"- Title: {{ title }}",
		"## Settings",
		"- Theme: {{ settings.theme }}",
		"## Users",
		"{% for item in users %}",
		"- Name: {{ item.name }}",
		"{% endfor %}",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Generate() mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateGenericTemplateEmptySchema(t *testing.T) {
	gen := New(WithSkipSchemaValidation(true))

	got, err := gen.Generate(intent.Intent{}, schema.VariableMap{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	want := strings.Join([]string{
		"# Generated Template",
		"",
		"## Content",
		"",
		"{% for item in items | default([]) %}",
		"- {{ item }}",
		"{% endfor %}",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Generate() mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	gen := New(WithSkipSchemaValidation(true))
	in := intent.Intent{Directives: []string{"list", "users"}}
	vars := schema.VariableMap{
		"users":       "array",
		"users.name":  "string",
		"users.email": "string",
		"users.role":  "string",
	}

	first, err := gen.Generate(in, vars)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := gen.Generate(in, vars)
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if again != first {
			t.Fatalf("Generate() not deterministic:\nfirst: %q\nagain: %q", first, again)
		}
	}
}

func TestGenerateRejectsMissingCollection(t *testing.T) {
	gen := New()

	_, err := gen.Generate(
		intent.Intent{Directives: []string{"list", "widgets"}},
		schema.VariableMap{"users": "array", "users.name": "string"},
	)
	var mismatch *SchemaMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Generate() error = %v, want *SchemaMismatchError", err)
	}
	for _, want := range []string{`"widgets"`, "not found or is not an array", "Available variables: users"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("Generate() error = %q, want it to contain %q", err, want)
		}
	}
}

func TestGenerateRejectsMissingProperty(t *testing.T) {
	gen := New()

	_, err := gen.Generate(
		intent.Intent{Directives: []string{"list", "users", "salary"}},
		schema.VariableMap{"users": "array", "users.name": "string", "users.email": "string"},
	)
	var mismatch *SchemaMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Generate() error = %v, want *SchemaMismatchError", err)
	}
	for _, want := range []string{`property "salary"`, `Available properties for "users": email, name`} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("Generate() error = %q, want it to contain %q", err, want)
		}
	}
}

func TestValidateIntent(t *testing.T) {
	vars := schema.VariableMap{"users": "array", "users.name": "string"}

	if err := ValidateIntent(intent.Intent{Directives: []string{"list", "users", "name"}}, vars); err != nil {
		t.Fatalf("ValidateIntent() error = %v", err)
	}
	if err := ValidateIntent(intent.Intent{Directives: []string{"table", "orders"}}, vars); err == nil {
		t.Fatal("ValidateIntent() = nil, want a schema mismatch")
	}
	if err := ValidateIntent(intent.Intent{}, vars); err != nil {
		t.Fatalf("ValidateIntent() with no directives error = %v", err)
	}
	if err := ValidateIntent(intent.Intent{Directives: []string{"list", "anything"}}, schema.VariableMap{}); err != nil {
		t.Fatalf("ValidateIntent() with empty schema error = %v", err)
	}
}

func TestSingularize(t *testing.T) {
	cases := map[string]string{
		"users":    "user",
		"entries":  "entrie",
		"data":     "data",
		"s":        "s",
		"children": "children",
	}
	for in, want := range cases {
		if got := singularize(in); got != want {
			t.Errorf("singularize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCapitalize(t *testing.T) {
	cases := map[string]string{
		"name":      "Name",
		"base_url":  "Base_url",
		"API":       "Api",
		"":          "",
		"über":      "Über",
		"two words": "Two words",
	}
	for in, want := range cases {
		if got := capitalize(in); got != want {
			t.Errorf("capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}
