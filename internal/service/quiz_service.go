package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"quizforge/internal/config"
	"quizforge/internal/domain"
	"quizforge/internal/quiz"
)

// ParseInput is the DTO for document conversion requests.
type ParseInput struct {
	Filename string
	Data     []byte
}

// QuizService defines the document-to-records conversion contract.
type QuizService interface {
	Parse(ctx context.Context, input ParseInput) (*domain.ParseResult, error)
}

type quizService struct {
	upload config.UploadConfig
	parse  config.ParseConfig
}

// NewQuizService creates a new QuizService implementation.
func NewQuizService(upload config.UploadConfig, parse config.ParseConfig) QuizService {
	return &quizService{upload: upload, parse: parse}
}

// Parse runs one full document pass: line source, block segmentation, and
// per-block parsing. A single bad block is recorded as a failure and never
// aborts the pass; only an unreadable document does.
func (s *quizService) Parse(ctx context.Context, input ParseInput) (*domain.ParseResult, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Filename), "."))
	if _, ok := domain.AllowedExtensions[ext]; !ok {
		return nil, domain.ErrUnsupportedFileType
	}
	if int64(len(input.Data)) > s.upload.MaxFileSizeBytes() {
		return nil, domain.ErrFileTooLarge
	}

	lines, err := quiz.ReadLines(input.Filename, input.Data)
	if err != nil {
		log.Printf("quizService.Parse: failed to read %s: %v", input.Filename, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrUnreadableDocument, err)
	}

	blocks := quiz.SplitBlocks(lines)

	// Block parses are independent pure functions, so they run in parallel
	// under a bounded group. Outcomes are index-addressed to keep record
	// order equal to source block order.
	type outcome struct {
		rec  *domain.QuestionRecord
		fail *domain.BlockFailure
	}
	outcomes := make([]outcome, len(blocks))

	g, _ := errgroup.WithContext(ctx)
	limit := s.parse.Concurrency
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	for i, block := range blocks {
		g.Go(func() error {
			rec, perr := quiz.ParseBlock(block, i)
			if perr != nil {
				var be *quiz.BlockError
				if errors.As(perr, &be) {
					f := be.Failure()
					outcomes[i] = outcome{fail: &f}
				} else {
					outcomes[i] = outcome{fail: &domain.BlockFailure{
						Block:  i + 1,
						Kind:   domain.FailureStructural,
						Reason: perr.Error(),
					}}
				}
				return nil
			}
			outcomes[i] = outcome{rec: rec}
			return nil
		})
	}
	_ = g.Wait()

	result := &domain.ParseResult{}
	for _, o := range outcomes {
		if o.rec != nil {
			result.Questions = append(result.Questions, *o.rec)
			result.Parsed++
		} else if o.fail != nil {
			result.Failures = append(result.Failures, *o.fail)
			result.Failed++
		}
	}

	log.Printf("quizService.Parse: %s: %d blocks, %d parsed, %d failed",
		input.Filename, len(blocks), result.Parsed, result.Failed)

	return result, nil
}
