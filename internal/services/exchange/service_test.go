package exchange

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/jdramirez/giftmatch/internal/common/clock/mocks"
	"github.com/jdramirez/giftmatch/internal/models"
	assignmentRepo "github.com/jdramirez/giftmatch/internal/repositories/assignment"
	assignmentMocks "github.com/jdramirez/giftmatch/internal/repositories/assignment/mocks"
	rosterMocks "github.com/jdramirez/giftmatch/internal/repositories/roster/mocks"
	rouletteMocks "github.com/jdramirez/giftmatch/internal/roulette/mocks"
)

type ExchangeServiceTestSuite struct {
	suite.Suite
	mockCtrl           *gomock.Controller
	mockRosterRepo     *rosterMocks.MockRepository
	mockAssignmentRepo *assignmentMocks.MockRepository
	mockPicker         *rouletteMocks.MockPicker
	mockClock          *clockMocks.MockClock
	service            Service
	ctx                context.Context

	// Test data
	testTime   time.Time
	testRoster []string
}

func (s *ExchangeServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRosterRepo = rosterMocks.NewMockRepository(s.mockCtrl)
	s.mockAssignmentRepo = assignmentMocks.NewMockRepository(s.mockCtrl)
	s.mockPicker = rouletteMocks.NewMockPicker(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 12, 1, 18, 0, 0, 0, time.UTC)
	s.testRoster = []string{"Ana", "Beto", "Cruz"}

	// Set up the clock mock to return our test time
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		RosterRepo:     s.mockRosterRepo,
		AssignmentRepo: s.mockAssignmentRepo,
		Picker:         s.mockPicker,
		Clock:          s.mockClock,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *ExchangeServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestExchangeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeServiceTestSuite))
}

func (s *ExchangeServiceTestSuite) expectRoster() {
	s.mockRosterRepo.EXPECT().GetRoster(s.ctx).Return(s.testRoster, nil)
}

func (s *ExchangeServiceTestSuite) expectHistory(history []*models.Assignment) {
	s.mockAssignmentRepo.EXPECT().GetAssignments(s.ctx).Return(history, nil)
}

func (s *ExchangeServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Require().ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.Require().ErrorIs(err, ErrNilRosterRepo)

	_, err = New(&Config{RosterRepo: s.mockRosterRepo})
	s.Require().ErrorIs(err, ErrNilAssignmentRepo)

	_, err = New(&Config{RosterRepo: s.mockRosterRepo, AssignmentRepo: s.mockAssignmentRepo})
	s.Require().ErrorIs(err, ErrNilPicker)

	_, err = New(&Config{RosterRepo: s.mockRosterRepo, AssignmentRepo: s.mockAssignmentRepo, Picker: s.mockPicker})
	s.Require().ErrorIs(err, ErrNilClock)
}

func (s *ExchangeServiceTestSuite) TestAvailableNamesExcludesAssigned() {
	s.expectRoster()
	s.expectHistory([]*models.Assignment{
		{Name: "Beto", Partner: models.PairedWith("Ana"), Timestamp: s.testTime},
	})

	out, err := s.service.AvailableNames(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"Ana", "Cruz"}, out.Names)
}

func (s *ExchangeServiceTestSuite) TestPartnerCandidatesExcludesSelfAndConsumed() {
	s.expectRoster()
	s.expectHistory([]*models.Assignment{
		{Name: "Ana", Partner: models.PairedWith("Cruz"), Timestamp: s.testTime},
	})

	out, err := s.service.PartnerCandidates(s.ctx, &PartnerCandidatesInput{Name: "Beto"})
	s.Require().NoError(err)
	s.Equal([]string{"Ana"}, out.Candidates)
}

func (s *ExchangeServiceTestSuite) TestPartnerCandidatesIgnoresUnpairedRecords() {
	s.expectRoster()
	s.expectHistory([]*models.Assignment{
		{Name: "Cruz", Partner: models.NoPartner(), Timestamp: s.testTime},
	})

	// An unpaired record consumes nobody
	out, err := s.service.PartnerCandidates(s.ctx, &PartnerCandidatesInput{Name: "Ana"})
	s.Require().NoError(err)
	s.Equal([]string{"Beto", "Cruz"}, out.Candidates)
}

func (s *ExchangeServiceTestSuite) TestGetOrCreateRejectsBlankName() {
	_, err := s.service.GetOrCreateAssignment(s.ctx, &GetOrCreateAssignmentInput{Name: "   "})
	s.Require().ErrorIs(err, ErrInvalidParticipant)

	_, err = s.service.GetOrCreateAssignment(s.ctx, nil)
	s.Require().ErrorIs(err, ErrInvalidParticipant)
}

func (s *ExchangeServiceTestSuite) TestGetOrCreateRejectsUnknownName() {
	s.expectRoster()

	_, err := s.service.GetOrCreateAssignment(s.ctx, &GetOrCreateAssignmentInput{Name: "Dora"})
	s.Require().ErrorIs(err, ErrInvalidParticipant)
}

func (s *ExchangeServiceTestSuite) TestFirstRequestDrawsAndPersists() {
	s.expectRoster()
	s.expectHistory([]*models.Assignment{})

	// Candidates for Ana are [Beto, Cruz]; the picker selects Beto
	s.mockPicker.EXPECT().Pick(2).Return(0)

	var saved []*models.Assignment
	s.mockAssignmentRepo.EXPECT().
		SaveAssignments(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *assignmentRepo.SaveAssignmentsInput) error {
			saved = input.Assignments
			return nil
		})

	out, err := s.service.GetOrCreateAssignment(s.ctx, &GetOrCreateAssignmentInput{Name: "Ana"})
	s.Require().NoError(err)
	s.True(out.Created)
	s.Equal("Ana", out.Assignment.Name)
	s.Equal(models.PairedWith("Beto"), out.Assignment.Partner)
	s.Equal(s.testTime, out.Assignment.Timestamp)
	s.Equal([]string{"Beto", "Cruz"}, out.Candidates)

	s.Require().Len(saved, 1)
	s.Equal(out.Assignment, saved[0])
}

func (s *ExchangeServiceTestSuite) TestRepeatRequestIsIdempotent() {
	existing := &models.Assignment{
		Name:      "Ana",
		Partner:   models.PairedWith("Cruz"),
		Timestamp: s.testTime.Add(-time.Hour),
	}

	s.expectRoster()
	s.expectHistory([]*models.Assignment{existing})

	// No picker call and no save: the existing record is returned as-is
	out, err := s.service.GetOrCreateAssignment(s.ctx, &GetOrCreateAssignmentInput{Name: "Ana"})
	s.Require().NoError(err)
	s.False(out.Created)
	s.Equal(existing, out.Assignment)
	s.Equal(s.testTime.Add(-time.Hour), out.Assignment.Timestamp)
}

func (s *ExchangeServiceTestSuite) TestExhaustedPoolAssignsSentinel() {
	s.expectRoster()
	s.expectHistory([]*models.Assignment{
		{Name: "Ana", Partner: models.PairedWith("Beto"), Timestamp: s.testTime},
		{Name: "Beto", Partner: models.PairedWith("Ana"), Timestamp: s.testTime},
	})

	var saved []*models.Assignment
	s.mockAssignmentRepo.EXPECT().
		SaveAssignments(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *assignmentRepo.SaveAssignmentsInput) error {
			saved = input.Assignments
			return nil
		})

	// Ana and Beto are both consumed; Cruz cannot draw Cruz
	out, err := s.service.GetOrCreateAssignment(s.ctx, &GetOrCreateAssignmentInput{Name: "Cruz"})
	s.Require().NoError(err)
	s.True(out.Created)
	s.True(out.Assignment.Partner.Unpaired)
	s.Empty(out.Candidates)
	s.Len(saved, 3)
}

func (s *ExchangeServiceTestSuite) TestUpdateAssignmentNotFound() {
	s.expectHistory([]*models.Assignment{})

	_, err := s.service.UpdateAssignment(s.ctx, &UpdateAssignmentInput{Name: "Ana", Partner: "Beto"})
	s.Require().ErrorIs(err, ErrNotFound)
}

func (s *ExchangeServiceTestSuite) TestUpdateAssignmentRequiresPartner() {
	_, err := s.service.UpdateAssignment(s.ctx, &UpdateAssignmentInput{Name: "Ana", Partner: "  "})
	s.Require().ErrorIs(err, ErrInvalidInput)
}

func (s *ExchangeServiceTestSuite) TestUpdateAssignmentRequiresName() {
	_, err := s.service.UpdateAssignment(s.ctx, &UpdateAssignmentInput{Partner: "Beto"})
	s.Require().ErrorIs(err, ErrInvalidInput)
}

func (s *ExchangeServiceTestSuite) TestUpdateOverwritesPartnerAndTimestamp() {
	existing := &models.Assignment{
		Name:      "Ana",
		Partner:   models.PairedWith("Beto"),
		Timestamp: s.testTime.Add(-time.Hour),
	}

	s.expectHistory([]*models.Assignment{existing})

	var saved []*models.Assignment
	s.mockAssignmentRepo.EXPECT().
		SaveAssignments(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *assignmentRepo.SaveAssignmentsInput) error {
			saved = input.Assignments
			return nil
		})

	// "Dora" is not on the roster; admin overrides are not validated
	out, err := s.service.UpdateAssignment(s.ctx, &UpdateAssignmentInput{Name: "Ana", Partner: "Dora"})
	s.Require().NoError(err)
	s.Equal(models.PairedWith("Dora"), out.Assignment.Partner)
	s.Equal(s.testTime, out.Assignment.Timestamp)

	s.Require().Len(saved, 1)
	s.Equal(models.PairedWith("Dora"), saved[0].Partner)
}

func (s *ExchangeServiceTestSuite) TestDeleteAssignmentNotFound() {
	s.expectHistory([]*models.Assignment{
		{Name: "Beto", Partner: models.PairedWith("Cruz"), Timestamp: s.testTime},
	})

	_, err := s.service.DeleteAssignment(s.ctx, &DeleteAssignmentInput{Name: "Ana"})
	s.Require().ErrorIs(err, ErrNotFound)
}

func (s *ExchangeServiceTestSuite) TestDeleteAssignmentRequiresName() {
	_, err := s.service.DeleteAssignment(s.ctx, &DeleteAssignmentInput{Name: ""})
	s.Require().ErrorIs(err, ErrInvalidInput)
}

func (s *ExchangeServiceTestSuite) TestDeleteRemovesOnlyTarget() {
	s.expectHistory([]*models.Assignment{
		{Name: "Ana", Partner: models.PairedWith("Beto"), Timestamp: s.testTime},
		{Name: "Beto", Partner: models.PairedWith("Cruz"), Timestamp: s.testTime},
	})

	var saved []*models.Assignment
	s.mockAssignmentRepo.EXPECT().
		SaveAssignments(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *assignmentRepo.SaveAssignmentsInput) error {
			saved = input.Assignments
			return nil
		})

	out, err := s.service.DeleteAssignment(s.ctx, &DeleteAssignmentInput{Name: "Ana"})
	s.Require().NoError(err)
	s.Equal("Ana", out.Name)

	// Beto's record, and its consumed partner, are untouched
	s.Require().Len(saved, 1)
	s.Equal("Beto", saved[0].Name)
	s.Equal(models.PairedWith("Cruz"), saved[0].Partner)
}
