// Package consultation wires normalization, recommendation, advice and
// history into a single linear flow.
package consultation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/skin-advisor/internal/ai"
	"github.com/spigell/skin-advisor/internal/history"
	"github.com/spigell/skin-advisor/internal/logger"
	"github.com/spigell/skin-advisor/internal/skincare"
)

// AdviceDisabled is stored as advice when no advisor is configured.
const AdviceDisabled = "AI advice disabled"

// ErrEmptyIssue is returned by Start when the issue text is blank.
var ErrEmptyIssue = errors.New("skin issue must not be empty")

// Advisor produces free-text advice for a consultation.
type Advisor interface {
	Advise(ctx context.Context, req ai.Request) (string, error)
}

// Session holds the canonical values of a consultation in progress.
type Session struct {
	ID        string
	SkinType  skincare.SkinType
	Issue     skincare.Issue
	Questions []string
}

// Service runs consultations. Advisor and Recorder are optional.
type Service struct {
	resolver *skincare.Resolver
	advisor  Advisor
	recorder history.Recorder
	logger   *zap.Logger

	now   func() time.Time
	newID func() string
}

// Deps aggregates the collaborators of a Service.
type Deps struct {
	Resolver *skincare.Resolver
	Advisor  Advisor
	Recorder history.Recorder
	Logger   *zap.Logger
}

func New(deps Deps) *Service {
	resolver := deps.Resolver
	if resolver == nil {
		resolver = skincare.NewResolver(nil)
	}

	return &Service{
		resolver: resolver,
		advisor:  deps.Advisor,
		recorder: deps.Recorder,
		logger:   logger.WithFields(deps.Logger),
		now:      time.Now,
		newID:    func() string { return uuid.NewString() },
	}
}

// Start normalizes the raw user input and returns the questions to ask.
func (s *Service) Start(rawSkinType, rawIssue string) (*Session, error) {
	if strings.TrimSpace(rawIssue) == "" {
		return nil, ErrEmptyIssue
	}

	session := &Session{
		ID:       s.newID(),
		SkinType: skincare.NormalizeSkinType(rawSkinType),
		Issue:    skincare.NormalizeIssue(rawIssue),
	}
	session.Questions = skincare.FollowUpQuestions(session.Issue)

	s.sessionLogger(session).Info("consultation started",
		zap.String("raw_skin_type", strings.TrimSpace(rawSkinType)),
		zap.String("raw_issue", strings.TrimSpace(rawIssue)),
		zap.Bool("predefined_questions", skincare.HasPredefinedQuestions(session.Issue)),
		zap.Int("questions", len(session.Questions)),
	)

	return session, nil
}

// Complete resolves the recommendation, asks the advisor and appends the
// result to history. Advisor and history failures never fail the
// consultation: advice errors become the advice text and history errors are
// logged.
func (s *Service) Complete(ctx context.Context, session *Session, answers []skincare.Answer) (*history.Record, error) {
	if session == nil {
		return nil, errors.New("session is required")
	}

	log := s.sessionLogger(session)

	rec := s.resolver.Recommend(session.Issue, session.SkinType)
	for _, step := range rec.Steps {
		log.Debug("knowledge filter step",
			zap.String("name", step.Name),
			zap.Int("initial", step.Initial),
			zap.Int("dropped", step.Dropped),
			zap.Int("left", step.Left),
		)
	}
	log.Info("recommendation resolved", zap.String("tier", string(rec.Tier)), zap.Int("rows", len(rec.Rows)))

	record := &history.Record{
		ID:             session.ID,
		Timestamp:      s.now().UTC(),
		SkinType:       session.SkinType,
		Issue:          session.Issue,
		Answers:        append([]skincare.Answer(nil), answers...),
		Recommendation: rec.Text,
		Advice:         s.advise(ctx, log, session, answers),
	}

	if s.recorder != nil {
		if err := s.recorder.Append(record); err != nil {
			log.Warn("appending consultation to history", zap.Error(err))
		} else {
			log.Debug("consultation appended to history")
		}
	}

	return record, nil
}

func (s *Service) advise(ctx context.Context, log *zap.Logger, session *Session, answers []skincare.Answer) string {
	if s.advisor == nil {
		return AdviceDisabled
	}

	advice, err := s.advisor.Advise(ctx, ai.Request{
		Issue:    session.Issue,
		SkinType: session.SkinType,
		Answers:  answers,
	})
	if err != nil {
		log.Warn("generating advice", zap.Error(err))
		return AdviceError(err)
	}

	return advice
}

// AdviceError renders an advisor failure as displayable advice text.
func AdviceError(err error) string {
	return fmt.Sprintf("⚠️ AI error: %v", err)
}

func (s *Service) sessionLogger(session *Session) *zap.Logger {
	return logger.WithFields(s.logger, logger.SessionFields(session.ID, string(session.SkinType), string(session.Issue))...)
}
