package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template.html")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTemplate(t *testing.T) {
	path := writeTemplate(t, "<html>{{DIRECTORY_PATH}}</html>")
	tmpl, err := loadTemplate(path)
	if err != nil {
		t.Fatal(err)
	}
	ExpectEqual(t, "<html>{{DIRECTORY_PATH}}</html>", tmpl)
}

func TestLoadTemplateMissing(t *testing.T) {
	if _, err := loadTemplate(filepath.Join(t.TempDir(), "nope.html")); err == nil {
		t.Error("missing template should fail")
	}
}

func TestLoadTemplateEmpty(t *testing.T) {
	if _, err := loadTemplate(writeTemplate(t, "")); err == nil {
		t.Error("empty template should fail")
	}
}

func TestProcessTemplate(t *testing.T) {
	tmpl := "<h1>{{DIRECTORY_PATH}}</h1>{{PARENT_DIRECTORY_LINK}}<table>{{DIRECTORY_ENTRIES}}</table>"
	out := processTemplate(tmpl, "docs", "<tr><td>row</td></tr>", true)
	ExpectEqual(t,
		"<h1>docs</h1>"+parentLinkHTML+"<table><tr><td>row</td></tr></table>",
		out)
}

func TestProcessTemplateNoParent(t *testing.T) {
	out := processTemplate("[{{PARENT_DIRECTORY_LINK}}]", "/", "", false)
	ExpectEqual(t, "[]", out)
}

func TestProcessTemplateRepeatedPlaceholder(t *testing.T) {
	// Every occurrence receives the same value.
	out := processTemplate("{{DIRECTORY_PATH}} and {{DIRECTORY_PATH}}", "x", "", false)
	ExpectEqual(t, "x and x", out)
}

func TestShippedTemplateRenders(t *testing.T) {
	tmpl, err := loadTemplate("directory_template.html")
	if err != nil {
		t.Fatal(err)
	}
	out := processTemplate(tmpl, "docs", "<tr><td>row</td></tr>", true)
	if strings.Contains(out, "{{") {
		t.Errorf("unsubstituted placeholder left in shipped template output")
	}
	for _, want := range []string{"docs", "<tr><td>row</td></tr>", "Parent Directory"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in rendered template", want)
		}
	}
}
