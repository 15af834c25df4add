package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/lexjuris/ruling-analyzer/internal/domain"
	"github.com/lexjuris/ruling-analyzer/internal/llm"
)

// AnalysisService handles judicial-ruling analysis operations
type AnalysisService struct {
	extractor        domain.TextExtractor
	gateway          *llm.Gateway
	sessions         domain.SessionStore
	maxDocumentChars int
	maxBatchFiles    int
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(
	extractor domain.TextExtractor,
	gateway *llm.Gateway,
	sessions domain.SessionStore,
	maxDocumentChars int,
	maxBatchFiles int,
) *AnalysisService {
	return &AnalysisService{
		extractor:        extractor,
		gateway:          gateway,
		sessions:         sessions,
		maxDocumentChars: maxDocumentChars,
		maxBatchFiles:    maxBatchFiles,
	}
}

// AnalyzeDocument runs one category analysis over an uploaded ruling and
// opens a session for follow-up queries. A session is created on every call,
// even when the caller discards the id.
func (s *AnalysisService) AnalyzeDocument(ctx context.Context, doc domain.UploadedDocument, category domain.Category, question string) (*domain.AnalysisResult, error) {
	text, err := s.extractDocument(doc)
	if err != nil {
		return nil, err
	}

	prompt := llm.BuildPrompt(category, text, question)
	answer, err := s.gateway.Complete(ctx, llm.SystemInstruction, prompt)
	if err != nil {
		return nil, err
	}

	sessionID := s.sessions.Create(ctx, text, doc.Filename)
	sessionsCreatedTotal.Inc()
	s.sessions.Append(ctx, sessionID, category, questionRecord(question), answer)
	documentsAnalyzedTotal.WithLabelValues(string(category), "single").Inc()

	log.Info().
		Str("session_id", sessionID).
		Str("category", string(category)).
		Str("filename", doc.Filename).
		Msg("document analyzed")

	return &domain.AnalysisResult{
		SessionID: sessionID,
		Category:  category,
		Filename:  doc.Filename,
		Answer:    answer,
	}, nil
}

// AnalyzeBatch applies one category to an ordered set of rulings. The file
// cap is checked before any document is touched, and the first failure aborts
// the whole batch: callers get either every answer or none. Batch analyses do
// not open sessions.
func (s *AnalysisService) AnalyzeBatch(ctx context.Context, docs []domain.UploadedDocument, category domain.Category, question string) (*domain.BatchResult, error) {
	if len(docs) > s.maxBatchFiles {
		return nil, fmt.Errorf("%w: %d files, limit is %d", domain.ErrBatchTooLarge, len(docs), s.maxBatchFiles)
	}

	results := make([]domain.BatchEntry, 0, len(docs))
	for _, doc := range docs {
		text, err := s.extractDocument(doc)
		if err != nil {
			return nil, err
		}

		prompt := llm.BuildPrompt(category, text, question)
		answer, err := s.gateway.Complete(ctx, llm.SystemInstruction, prompt)
		if err != nil {
			return nil, err
		}

		results = append(results, domain.BatchEntry{
			Filename: doc.Filename,
			Answer:   answer,
		})
		documentsAnalyzedTotal.WithLabelValues(string(category), "batch").Inc()
	}

	log.Info().
		Str("category", string(category)).
		Int("count", len(results)).
		Msg("batch analyzed")

	return &domain.BatchResult{
		Category: category,
		Count:    len(results),
		Results:  results,
	}, nil
}

// AnalyzeSession runs a follow-up query against a stored session's document
// text, without re-uploading the file. The returned PriorQueries counts the
// history after this query is recorded, so it includes the query itself.
func (s *AnalysisService) AnalyzeSession(ctx context.Context, sessionID string, category domain.Category, question string) (*domain.SessionAnalysisResult, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	prompt := llm.BuildPrompt(category, session.DocumentText, question)
	answer, err := s.gateway.Complete(ctx, llm.SystemInstruction, prompt)
	if err != nil {
		return nil, err
	}

	prior := s.sessions.Append(ctx, sessionID, category, questionRecord(question), answer)
	documentsAnalyzedTotal.WithLabelValues(string(category), "session").Inc()

	log.Info().
		Str("session_id", sessionID).
		Str("category", string(category)).
		Int("prior_queries", prior).
		Msg("session query analyzed")

	return &domain.SessionAnalysisResult{
		SessionID:    sessionID,
		Category:     category,
		Filename:     session.Filename,
		Answer:       answer,
		PriorQueries: prior,
	}, nil
}

// GetSession returns a stored session with its full query history.
func (s *AnalysisService) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	return s.sessions.Get(ctx, sessionID)
}

// SessionCount returns the number of live sessions.
func (s *AnalysisService) SessionCount(ctx context.Context) int {
	return s.sessions.Count(ctx)
}

// extractDocument decodes and truncates one upload. Decoding failures
// surface as ErrDocumentUnreadable with the filename in the cause.
func (s *AnalysisService) extractDocument(doc domain.UploadedDocument) (string, error) {
	raw, err := s.extractor.ExtractText(doc.Data)
	if err != nil {
		log.Warn().Err(err).Str("filename", doc.Filename).Msg("document extraction failed")
		return "", fmt.Errorf("%w: %s: %v", domain.ErrDocumentUnreadable, doc.Filename, err)
	}
	return domain.TruncateText(raw, s.maxDocumentChars), nil
}

// questionRecord converts a submitted question to its stored form: nil when
// blank, the raw string otherwise.
func questionRecord(question string) *string {
	if strings.TrimSpace(question) == "" {
		return nil
	}
	return &question
}
