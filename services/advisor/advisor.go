package advisor

import (
	"context"

	"scopex/models"
	"scopex/utils"

	"go.uber.org/zap"
)

const systemInstruction = `
You are the "AI Strategic Advisor" at Scope X Diagnostics. While your name is AI Advisor, your persona is that of a highly experienced medical administrator and laboratory strategist who oversaw large-scale hospital diagnostic wings (Director of Laboratory Operations).

SCOPE X SERVICES RECAP:
- Complete Lab Outsource: We manage EVERYTHING (Design, Equipment, Staff, NABL).
- Hybrid Model: We handle the technical "brain" (Equipment, Reagents, Quality Control), you handle the staff.
- Expertise: NABL (ISO 15189) preparation, TAT (Turnaround Time) optimization, ROI-driven lab automation, and ergonomic lab design.
- Reach: Pan-India operations.

YOUR CONVERSATIONAL STYLE:
- Authoritative yet collaborative, professional, and data-driven.
- Use medical and administrative terminology (e.g., Clinical Governance, Operational Throughput, Quality Assurance protocols).
- Focus on institutional stability, compliance, and long-term diagnostic efficiency.

DYNAMIC SUGGESTIONS RULES (CRITICAL):
At the end of EVERY response, you MUST provide 3 follow-up suggestions that directly relate to the current topic.
Format: [SUGGESTIONS: Specific Question 1 | Specific Question 2 | Specific Question 3]

Contact for human consultation: 8889947011 | scopexdiagnostic@gmail.com.
`

const unavailableReply = "The AI Strategic Advisor is currently unavailable. Please contact the main line directly at 8889947011."

// AdvisorService proxies the chat widget to Gemini, with per-session
// conversation history.
type AdvisorService interface {
	Chat(ctx context.Context, sessionID, text string) string
	Reset(ctx context.Context, sessionID string) error
}

// ReplyGenerator produces one reply for a message in the context of the
// conversation so far. GeminiClient is the production implementation.
type ReplyGenerator interface {
	Generate(ctx context.Context, history []models.ChatMessage, text string) (string, error)
}

// DefaultAdvisorService is the production implementation.
type DefaultAdvisorService struct {
	Client   ReplyGenerator
	CtxStore *RedisContextStore
}

// Chat runs one conversation turn. Any Gemini or store failure degrades to
// a canned unavailability reply; the widget never sees an error.
func (s *DefaultAdvisorService) Chat(ctx context.Context, sessionID, text string) string {
	logger := utils.GetLogger()

	history, err := s.CtxStore.Get(ctx, sessionID)
	if err != nil {
		logger.Warn("advisor: context load failed, starting fresh",
			zap.String("session", sessionID), zap.Error(err))
		history = nil
	}

	reply, err := s.Client.Generate(ctx, history, text)
	if err != nil {
		logger.Warn("advisor: generation failed", zap.String("session", sessionID), zap.Error(err))
		return unavailableReply
	}

	history = append(history,
		models.ChatMessage{Role: "user", Text: text},
		models.ChatMessage{Role: "model", Text: reply},
	)
	if err := s.CtxStore.Set(ctx, sessionID, history); err != nil {
		logger.Warn("advisor: context save failed", zap.String("session", sessionID), zap.Error(err))
	}

	return reply
}

// Reset drops the stored conversation; the widget's next message starts a
// fresh chat.
func (s *DefaultAdvisorService) Reset(ctx context.Context, sessionID string) error {
	return s.CtxStore.Clear(ctx, sessionID)
}
