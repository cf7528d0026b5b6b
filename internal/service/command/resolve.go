package command

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"

	"github.com/smartfocus/smartfocus-backend/internal/domain"
)

// tieEpsilon is the score margin within which two candidates count as a tie.
const tieEpsilon = 0.01

// matchBonus is the floor score for a candidate whose name starts with or
// contains the target as a whole word ("fisica" against "Física I").
const matchBonus = 0.9

type nameCandidate struct {
	id   uuid.UUID
	name string
}

// matchName resolves a name-based reference against a candidate set. Exact
// match on normalized names wins outright; otherwise the best similarity
// score above threshold wins. Multiple candidates tying above threshold fail
// with ErrAmbiguousReference rather than guessing.
func matchName(target string, candidates []nameCandidate, threshold float64) (uuid.UUID, error) {
	norm := domain.NormalizeName(target)
	if norm == "" {
		return uuid.Nil, domain.ErrNotFound
	}

	var exact []uuid.UUID
	for _, c := range candidates {
		if domain.NormalizeName(c.name) == norm {
			exact = append(exact, c.id)
		}
	}
	if len(exact) == 1 {
		return exact[0], nil
	}
	if len(exact) > 1 {
		return uuid.Nil, domain.ErrAmbiguousReference
	}

	best := uuid.Nil
	var bestScore, secondScore float64
	for _, c := range candidates {
		score := similarity(norm, domain.NormalizeName(c.name))
		switch {
		case score > bestScore:
			secondScore = bestScore
			best, bestScore = c.id, score
		case score > secondScore:
			secondScore = score
		}
	}

	if bestScore < threshold {
		return uuid.Nil, domain.ErrNotFound
	}
	if secondScore >= threshold && bestScore-secondScore < tieEpsilon {
		return uuid.Nil, domain.ErrAmbiguousReference
	}
	return best, nil
}

// similarity scores two normalized names in [0, 1]. The base score is the
// Levenshtein distance scaled by the longer length; a prefix or whole-word
// containment raises the floor to matchBonus so that "fisica" still finds
// "fisica i" and "fisica ii" (and ties between them).
func similarity(target, candidate string) float64 {
	if candidate == "" {
		return 0
	}
	dist := levenshtein.ComputeDistance(target, candidate)
	longer := max(len([]rune(target)), len([]rune(candidate)))
	score := 1.0 - float64(dist)/float64(longer)

	if strings.HasPrefix(candidate, target+" ") || containsWord(candidate, target) {
		score = max(score, matchBonus)
	}
	return score
}

func containsWord(candidate, target string) bool {
	return slices.Contains(strings.Fields(candidate), target)
}

// resolvePlan fills in concrete identifiers for every name-based reference in
// the plan. Resolution is per-action and independent: a failure lands in that
// action's ResolveErr and siblings keep resolving. A concrete identifier from
// the planner that does not belong to the user rejects the whole plan with
// ErrSecurityViolation.
func (s *Service) resolvePlan(ctx context.Context, userID uuid.UUID, subjects []*domain.Subject, plan []domain.PlannedAction) error {
	owned := make(map[uuid.UUID]bool, len(subjects))
	subjectCandidates := make([]nameCandidate, 0, len(subjects))
	for _, sub := range subjects {
		owned[sub.ID] = true
		subjectCandidates = append(subjectCandidates, nameCandidate{id: sub.ID, name: sub.Name})
	}

	// pending maps normalized names of CREATE_SUBJECT actions already seen to
	// their plan index, so later actions can reference a subject that will
	// only exist once the plan runs.
	pending := make(map[string]int)

	for i := range plan {
		a := &plan[i]

		if a.SubjectID != nil && !owned[*a.SubjectID] {
			return fmt.Errorf("%w: subject %s is not owned by the user", domain.ErrSecurityViolation, a.SubjectID)
		}
		if a.EventID != nil {
			if _, err := s.events.GetByID(ctx, userID, *a.EventID); err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return fmt.Errorf("%w: event %s is not owned by the user", domain.ErrSecurityViolation, a.EventID)
				}
				return fmt.Errorf("verify event %s: %w", a.EventID, err)
			}
		}

		if a.Kind == domain.ActionCreateSubject {
			pending[domain.NormalizeName(*a.Name)] = i
			continue
		}

		if a.NeedsSubject() && a.SubjectID == nil {
			if idx, ok := pending[domain.NormalizeName(a.SubjectRef)]; ok {
				a.PendingSubject = idx
			} else {
				id, err := matchName(a.SubjectRef, subjectCandidates, s.cfg.SimilarityThreshold)
				if err != nil {
					a.ResolveErr = fmt.Errorf("subject %q: %w", a.SubjectRef, err)
					continue
				}
				a.SubjectID = &id
			}
		}

		if a.EventRef != "" && a.EventID == nil {
			if err := s.resolveEventRef(ctx, userID, a); err != nil {
				a.ResolveErr = err
			}
		}
	}

	return nil
}

// resolveEventRef resolves an event name against the events of the action's
// already-resolved subject. An event under a subject that is itself created
// by this plan cannot exist yet.
func (s *Service) resolveEventRef(ctx context.Context, userID uuid.UUID, a *domain.PlannedAction) error {
	if a.PendingSubject >= 0 {
		return fmt.Errorf("event %q: %w", a.EventRef, domain.ErrNotFound)
	}

	events, err := s.events.ListBySubject(ctx, userID, *a.SubjectID)
	if err != nil {
		return fmt.Errorf("list events for subject %s: %w", a.SubjectID, err)
	}

	candidates := make([]nameCandidate, 0, len(events))
	for _, ev := range events {
		candidates = append(candidates, nameCandidate{id: ev.ID, name: ev.Name})
	}

	id, err := matchName(a.EventRef, candidates, s.cfg.SimilarityThreshold)
	if err != nil {
		return fmt.Errorf("event %q: %w", a.EventRef, err)
	}
	a.EventID = &id
	return nil
}
