// Package richtext handles the HTML content of ticket descriptions,
// internal notes, and responses: sanitation of user-submitted markup, and
// conversion of model-generated markdown drafts into safe HTML.
package richtext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

type Service interface {
	// Sanitize strips unsafe markup from user-submitted HTML.
	Sanitize(htmlContent string) string
	// StripTags reduces HTML to plain text, used for CSV export.
	StripTags(htmlContent string) string
	// DraftToHTML normalizes an AI draft: markdown is converted to HTML,
	// already-HTML content passes through, and the result is sanitized.
	DraftToHTML(draft string) (string, error)
}

type serviceImpl struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	strict *bluemonday.Policy
}

func NewService() Service {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "span", "div", "pre")

	return &serviceImpl{
		md:     md,
		policy: policy,
		strict: bluemonday.StrictPolicy(),
	}
}

func (s *serviceImpl) Sanitize(htmlContent string) string {
	return s.policy.Sanitize(htmlContent)
}

func (s *serviceImpl) StripTags(htmlContent string) string {
	return strings.TrimSpace(s.strict.Sanitize(htmlContent))
}

func (s *serviceImpl) DraftToHTML(draft string) (string, error) {
	trimmed := strings.TrimSpace(draft)
	if trimmed == "" {
		return "", fmt.Errorf("empty draft")
	}

	// The completion endpoint is asked for HTML but models fall back to
	// markdown often enough that both must be handled.
	if strings.HasPrefix(trimmed, "<") {
		return s.policy.Sanitize(trimmed), nil
	}

	var buf bytes.Buffer
	if err := s.md.Convert([]byte(trimmed), &buf); err != nil {
		return "", fmt.Errorf("failed to convert draft markdown to HTML: %w", err)
	}
	return s.policy.Sanitize(buf.String()), nil
}
