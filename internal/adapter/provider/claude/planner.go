package claude

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/smartfocus/smartfocus-backend/internal/config"
	"github.com/smartfocus/smartfocus-backend/internal/domain"
)

// Planner turns free-form command text into a candidate action plan by
// calling Claude. It produces loosely-typed actions only; validation of the
// output against the action schema happens downstream.
type Planner struct {
	client  anthropic.Client
	model   string
	timeout time.Duration
	log     *slog.Logger
}

func New(cfg config.PlannerConfig, log *slog.Logger) *Planner {
	return &Planner{
		client:  anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:   cfg.Model,
		timeout: cfg.Timeout,
		log:     log.With(slog.String("service", "planner")),
	}
}

// Generate runs one planning call. A transport or model failure maps to
// ErrPlanningUnavailable; a response that cannot be parsed into an action
// list maps to ErrPlanRejected.
func (p *Planner) Generate(ctx context.Context, req domain.PlanRequest) ([]domain.RawAction, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: 2048,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(req))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPlanningUnavailable, err)
	}

	if len(msg.Content) == 0 {
		return nil, fmt.Errorf("%w: empty model response", domain.ErrPlanRejected)
	}

	actions, err := parsePlanResponse(msg.Content[0].Text)
	if err != nil {
		p.log.Warn("unparsable plan response", slog.String("error", err.Error()))
		return nil, err
	}

	p.log.Info("plan generated", slog.Int("actions", len(actions)))
	return actions, nil
}

// buildPrompt renders the planning prompt: the closed action schema, the
// user's subject catalog and today's date for relative-date phrases.
func buildPrompt(req domain.PlanRequest) string {
	var subjects string
	if len(req.SubjectNames) == 0 {
		subjects = "(none yet)"
	} else {
		subjects = "- " + strings.Join(req.SubjectNames, "\n- ")
	}

	return fmt.Sprintf(`You are a planning assistant for an academic organizer. The user manages subjects (courses) and events (exams, assignments, deadlines) that belong to subjects.

Translate the user's instruction into a JSON plan. Output ONLY a valid JSON object with this shape:

{"actions": [ <action>, ... ]}

Each action is an object with an "action" field naming one of the seven operations, plus its fields:

- CREATE_SUBJECT: requires "name"; optional "description"
- UPDATE_SUBJECT: requires "subject_ref" (name) or "subject_id"; at least one of "name", "description"
- DELETE_SUBJECT: requires "subject_ref" or "subject_id"
- CREATE_EVENT: requires "subject_ref" or "subject_id", "name", "due_at"; optional "description", "status"
- UPDATE_EVENT: requires "event_ref" plus "subject_ref", or "event_id"; at least one of "name", "due_at", "status", "description"
- DELETE_EVENT: requires "event_ref" plus "subject_ref", or "event_id"
- BULK_DELETE_EVENTS: requires "subject_ref" or "subject_id" (deletes every event of that subject, not the subject itself)

Rules:
- Today is %s. Resolve relative dates ("tomorrow", "next friday") to "YYYY-MM-DD".
- "status" is one of PENDING, PASSED, FAILED. Omit it for new events unless the user says otherwise.
- Refer to subjects by "subject_ref" with the name the user used; never invent identifiers.
- If an event's subject is created earlier in the same plan, still use "subject_ref" with that new subject's name.
- Emit at most %d actions. If the instruction asks for nothing actionable, emit {"actions": []}.
- Output ONLY the JSON, no markdown, no explanations.

The user's existing subjects:
%s

User instruction:
%s`,
		req.Today.Format("Monday, 2006-01-02"), req.MaxActions, subjects, req.CommandText)
}

// planEnvelope is the expected top-level response shape.
type planEnvelope struct {
	Actions []domain.RawAction `json:"actions"`
}

// parsePlanResponse extracts and decodes the action list from raw model
// output. Any shape problem maps to ErrPlanRejected.
func parsePlanResponse(text string) ([]domain.RawAction, error) {
	jsonStr, err := extractJSON(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPlanRejected, err)
	}

	var envelope planEnvelope
	if err := json.Unmarshal([]byte(jsonStr), &envelope); err != nil {
		return nil, fmt.Errorf("%w: decode plan: %v", domain.ErrPlanRejected, err)
	}
	if envelope.Actions == nil {
		return nil, fmt.Errorf("%w: response has no actions array", domain.ErrPlanRejected)
	}

	return envelope.Actions, nil
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
