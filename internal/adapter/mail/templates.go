package mail

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"gopkg.in/yaml.v3"

	"crowdoo/internal/core/domain"
)

//go:embed templates.yaml
var defaultTemplates []byte

type rawTemplate struct {
	Subject string `yaml:"subject"`
	Body    string `yaml:"body"`
}

type compiled struct {
	subject *template.Template
	body    *template.Template
}

// Templates renders notifications into a subject and a plain text body.
type Templates struct {
	byKind map[domain.NotificationKind]compiled
}

// DefaultTemplates parses the embedded template set.
func DefaultTemplates() (*Templates, error) {
	return ParseTemplates(defaultTemplates)
}

// ParseTemplates reads a YAML document mapping notification kinds to
// subject and body templates.
func ParseTemplates(src []byte) (*Templates, error) {
	var raw map[string]rawTemplate
	if err := yaml.Unmarshal(src, &raw); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	t := &Templates{byKind: make(map[domain.NotificationKind]compiled, len(raw))}
	for kind, r := range raw {
		subject, err := template.New(kind + ".subject").Option("missingkey=zero").Parse(r.Subject)
		if err != nil {
			return nil, fmt.Errorf("template %s subject: %w", kind, err)
		}
		body, err := template.New(kind + ".body").Option("missingkey=zero").Parse(r.Body)
		if err != nil {
			return nil, fmt.Errorf("template %s body: %w", kind, err)
		}
		t.byKind[domain.NotificationKind(kind)] = compiled{subject: subject, body: body}
	}
	return t, nil
}

// Render fills the template of n.Kind with n.Data.
func (t *Templates) Render(n domain.Notification) (subject, body string, err error) {
	c, ok := t.byKind[n.Kind]
	if !ok {
		return "", "", fmt.Errorf("no template for %q", n.Kind)
	}
	var buf bytes.Buffer
	if err = c.subject.Execute(&buf, n.Data); err != nil {
		return "", "", err
	}
	subject = buf.String()
	buf.Reset()
	if err = c.body.Execute(&buf, n.Data); err != nil {
		return "", "", err
	}
	return subject, buf.String(), nil
}
