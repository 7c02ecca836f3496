package exchange

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/jdramirez/giftmatch/internal/common/clock"
	"github.com/jdramirez/giftmatch/internal/models"
	assignmentRepo "github.com/jdramirez/giftmatch/internal/repositories/assignment"
	rosterRepo "github.com/jdramirez/giftmatch/internal/repositories/roster"
	"github.com/jdramirez/giftmatch/internal/roulette"
)

// service implements the Service interface
type service struct {
	rosterRepo     rosterRepo.Repository
	assignmentRepo assignmentRepo.Repository
	picker         roulette.Picker
	clock          clock.Clock

	// mu serializes every load-decide-save span. The reference behavior
	// let two concurrent first-time requests overwrite each other's
	// append; holding the lock across the span closes that race.
	mu sync.Mutex
}

// New creates a new exchange service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.RosterRepo == nil {
		return nil, ErrNilRosterRepo
	}
	if cfg.AssignmentRepo == nil {
		return nil, ErrNilAssignmentRepo
	}
	if cfg.Picker == nil {
		return nil, ErrNilPicker
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		rosterRepo:     cfg.RosterRepo,
		assignmentRepo: cfg.AssignmentRepo,
		picker:         cfg.Picker,
		clock:          cfg.Clock,
	}, nil
}

// AvailableNames returns roster names that have never requested a draw,
// in roster order
func (s *service) AvailableNames(ctx context.Context) (*AvailableNamesOutput, error) {
	roster, err := s.rosterRepo.GetRoster(ctx)
	if err != nil {
		return nil, err
	}

	history, err := s.assignmentRepo.GetAssignments(ctx)
	if err != nil {
		return nil, err
	}

	return &AvailableNamesOutput{
		Names: availableNames(roster, history),
	}, nil
}

// PartnerCandidates returns the legal partner pool for the requester,
// recomputed from the current history
func (s *service) PartnerCandidates(ctx context.Context, input *PartnerCandidatesInput) (*PartnerCandidatesOutput, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidParticipant
	}

	roster, err := s.rosterRepo.GetRoster(ctx)
	if err != nil {
		return nil, err
	}

	history, err := s.assignmentRepo.GetAssignments(ctx)
	if err != nil {
		return nil, err
	}

	return &PartnerCandidatesOutput{
		Candidates: partnerCandidates(strings.TrimSpace(input.Name), roster, history),
	}, nil
}

// GetOrCreateAssignment returns the requester's existing assignment or
// draws a new partner. Repeat requests never re-roll and never write.
func (s *service) GetOrCreateAssignment(ctx context.Context, input *GetOrCreateAssignmentInput) (*GetOrCreateAssignmentOutput, error) {
	if input == nil {
		return nil, ErrInvalidParticipant
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidParticipant
	}

	roster, err := s.rosterRepo.GetRoster(ctx)
	if err != nil {
		return nil, err
	}

	if !slices.Contains(roster, name) {
		return nil, ErrInvalidParticipant
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.assignmentRepo.GetAssignments(ctx)
	if err != nil {
		return nil, err
	}

	candidates := partnerCandidates(name, roster, history)

	if existing := findAssignment(history, name); existing != nil {
		return &GetOrCreateAssignmentOutput{
			Assignment: existing,
			Created:    false,
			Candidates: candidates,
		}, nil
	}

	partner := models.NoPartner()
	if len(candidates) > 0 {
		partner = models.PairedWith(candidates[s.picker.Pick(len(candidates))])
	}

	record := &models.Assignment{
		Name:      name,
		Partner:   partner,
		Timestamp: s.clock.Now().Truncate(time.Second),
	}

	history = append(history, record)
	if err := s.assignmentRepo.SaveAssignments(ctx, &assignmentRepo.SaveAssignmentsInput{
		Assignments: history,
	}); err != nil {
		return nil, err
	}

	return &GetOrCreateAssignmentOutput{
		Assignment: record,
		Created:    true,
		Candidates: candidates,
	}, nil
}

// ListAssignments returns the full history in insertion order
func (s *service) ListAssignments(ctx context.Context) (*ListAssignmentsOutput, error) {
	history, err := s.assignmentRepo.GetAssignments(ctx)
	if err != nil {
		return nil, err
	}

	return &ListAssignmentsOutput{
		Assignments: history,
	}, nil
}

// UpdateAssignment overwrites the partner of an existing assignment and
// refreshes its timestamp. The new partner is not checked against the
// roster or the consumed pool; this is the administrator's escape hatch.
func (s *service) UpdateAssignment(ctx context.Context, input *UpdateAssignmentInput) (*UpdateAssignmentOutput, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidInput
	}

	partner := strings.TrimSpace(input.Partner)
	if partner == "" {
		return nil, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.assignmentRepo.GetAssignments(ctx)
	if err != nil {
		return nil, err
	}

	record := findAssignment(history, strings.TrimSpace(input.Name))
	if record == nil {
		return nil, ErrNotFound
	}

	record.Partner = models.PairedWith(partner)
	record.Timestamp = s.clock.Now().Truncate(time.Second)

	if err := s.assignmentRepo.SaveAssignments(ctx, &assignmentRepo.SaveAssignmentsInput{
		Assignments: history,
	}); err != nil {
		return nil, err
	}

	return &UpdateAssignmentOutput{
		Assignment: record,
	}, nil
}

// DeleteAssignment removes an assignment. Partners already consumed by
// other records stay consumed; only pools computed after the delete see
// the name again.
func (s *service) DeleteAssignment(ctx context.Context, input *DeleteAssignmentInput) (*DeleteAssignmentOutput, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidInput
	}

	name := strings.TrimSpace(input.Name)

	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.assignmentRepo.GetAssignments(ctx)
	if err != nil {
		return nil, err
	}

	remaining := make([]*models.Assignment, 0, len(history))
	for _, a := range history {
		if a.Name != name {
			remaining = append(remaining, a)
		}
	}

	if len(remaining) == len(history) {
		return nil, ErrNotFound
	}

	if err := s.assignmentRepo.SaveAssignments(ctx, &assignmentRepo.SaveAssignmentsInput{
		Assignments: remaining,
	}); err != nil {
		return nil, err
	}

	return &DeleteAssignmentOutput{
		Name: name,
	}, nil
}

// availableNames filters the roster down to names with no assignment
func availableNames(roster []string, history []*models.Assignment) []string {
	used := make(map[string]bool, len(history))
	for _, a := range history {
		used[a.Name] = true
	}

	names := make([]string, 0, len(roster))
	for _, name := range roster {
		if !used[name] {
			names = append(names, name)
		}
	}
	return names
}

// partnerCandidates filters the roster down to names the requester can
// legally draw: not the requester, not already consumed as a partner
func partnerCandidates(requester string, roster []string, history []*models.Assignment) []string {
	consumed := make(map[string]bool, len(history))
	for _, a := range history {
		if !a.Partner.Unpaired && a.Partner.Name != "" {
			consumed[a.Partner.Name] = true
		}
	}

	candidates := make([]string, 0, len(roster))
	for _, name := range roster {
		if name != requester && !consumed[name] {
			candidates = append(candidates, name)
		}
	}
	return candidates
}

// findAssignment returns the record for name, or nil
func findAssignment(history []*models.Assignment, name string) *models.Assignment {
	for _, a := range history {
		if a.Name == name {
			return a
		}
	}
	return nil
}
