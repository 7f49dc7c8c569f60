package usecases

import (
	"context"
	"fmt"
	"strings"

	"autocrm/internal/shared/errors"
	"autocrm/internal/shared/logger"
	"autocrm/internal/shared/services/richtext"
)

const draftSystemPrompt = "You are a senior product manager who writes clear, comprehensive, and technically accurate PRDs."

// ChatCompleter is the completion port implemented by the OpenAI client.
type ChatCompleter interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type CustomerHistoryItem struct {
	Title  string
	Status string
}

type GenerateDraftCommand struct {
	TicketTitle       string
	TicketDescription string
	CustomerEmail     string
	CustomerHistory   []CustomerHistoryItem
	AverageRating     *float64
}

type GenerateDraftResult struct {
	Draft string
}

// GenerateDraftUseCase produces a suggested reply for a ticket. The draft is
// returned to the caller only; nothing is persisted here. Single attempt,
// model errors go straight back to the client.
type GenerateDraftUseCase struct {
	completer ChatCompleter
	richtext  richtext.Service
	logger    logger.Interface
}

func NewGenerateDraftUseCase(
	completer ChatCompleter,
	richtextSvc richtext.Service,
	logger logger.Interface,
) *GenerateDraftUseCase {
	return &GenerateDraftUseCase{
		completer: completer,
		richtext:  richtextSvc,
		logger:    logger,
	}
}

func (uc *GenerateDraftUseCase) Execute(ctx context.Context, cmd GenerateDraftCommand) (*GenerateDraftResult, error) {
	if len(strings.TrimSpace(cmd.TicketTitle)) == 0 {
		return nil, errors.NewValidationError("ticket title is required")
	}

	raw, err := uc.completer.Complete(ctx, draftSystemPrompt, uc.buildPrompt(cmd))
	if err != nil {
		uc.logger.Errorw("draft generation failed", "error", err)
		return nil, errors.NewUnavailableError("draft generation failed")
	}

	draft, err := uc.richtext.DraftToHTML(raw)
	if err != nil {
		uc.logger.Errorw("draft post-processing failed", "error", err)
		return nil, errors.NewInternalError("draft generation returned unusable content")
	}

	uc.logger.Infow("draft generated", "title", cmd.TicketTitle, "length", len(draft))

	return &GenerateDraftResult{Draft: draft}, nil
}

func (uc *GenerateDraftUseCase) buildPrompt(cmd GenerateDraftCommand) string {
	var b strings.Builder

	fmt.Fprintf(&b, `Generate a detailed Product Requirements Document (PRD) for the following request:

TICKET DETAILS:
Title: %s
Description: %s
`, cmd.TicketTitle, cmd.TicketDescription)

	if len(cmd.CustomerHistory) > 0 || cmd.AverageRating != nil {
		b.WriteString("\nCUSTOMER CONTEXT:\n")
		for _, h := range cmd.CustomerHistory {
			fmt.Fprintf(&b, "- Previous ticket: %s (%s)\n", h.Title, h.Status)
		}
		if cmd.AverageRating != nil {
			fmt.Fprintf(&b, "- Average satisfaction rating: %.1f/5\n", *cmd.AverageRating)
		}
	}

	b.WriteString(`
Format the response as a structured PRD with HTML formatting using <h1>, <h2>, <p>, <ul>, and <li> tags for better readability. Follow this structure:

<h1>Product Requirements Document (PRD): [Product Name]</h1>

<h2>1. Overview</h2>
<p>[Brief description of the product/platform]</p>

<h2>2. Target Audience</h2>
<p>[Define the primary user base]</p>

<h2>3. Core Functionality</h2>
<p>[Main purpose and functionality]</p>

<h2>4. Key Features</h2>
<ul>
<li>[Feature 1]</li>
<li>[Feature 2]</li>
<li>[Feature 3]</li>
<li>[Feature 4]</li>
<li>[Feature 5]</li>
</ul>

<h2>5. Technical Requirements</h2>
<ul>
<li>Scalable architecture</li>
<li>Security measures</li>
<li>Platform support</li>
<li>Data synchronization</li>
<li>API integrations</li>
</ul>

<h2>6. User Experience Requirements</h2>
<ul>
<li>Navigation design</li>
<li>Performance targets</li>
<li>Responsive design</li>
<li>Accessibility</li>
<li>Error handling</li>
</ul>

<h2>7. Security Requirements</h2>
<ul>
<li>Authentication</li>
<li>Data privacy</li>
<li>Compliance needs</li>
<li>Security monitoring</li>
<li>Payment security (if applicable)</li>
</ul>

<h2>8. Performance Metrics</h2>
<ul>
<li>Uptime targets</li>
<li>Load times</li>
<li>User capacity</li>
<li>Caching strategy</li>
<li>Monitoring needs</li>
</ul>

<h2>9. Success Criteria</h2>
<ul>
<li>[Measurable metric 1]</li>
<li>[Measurable metric 2]</li>
<li>[Measurable metric 3]</li>
<li>[Measurable metric 4]</li>
</ul>

<h2>10. Timeline and Phases</h2>
<ul>
<li>Phase 1: Core Development</li>
<li>Phase 2: Beta Testing</li>
<li>Phase 3: Public Launch</li>
<li>Phase 4: Enhancements</li>
</ul>

<h2>11. Risks and Mitigation</h2>
<ul>
<li>Risk: [Risk 1] - Mitigation: [Strategy 1]</li>
<li>Risk: [Risk 2] - Mitigation: [Strategy 2]</li>
<li>Risk: [Risk 3] - Mitigation: [Strategy 3]</li>
</ul>

<h2>12. Future Considerations</h2>
<ul>
<li>[Future enhancement 1]</li>
<li>[Future enhancement 2]</li>
<li>[Future enhancement 3]</li>
<li>[Future enhancement 4]</li>
</ul>

Generate a comprehensive PRD following this structure, ensuring all sections are detailed and specific to the requested platform/product. Use proper HTML formatting for better readability.`)

	return b.String()
}
