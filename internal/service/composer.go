package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lionreport/internal/cache"
	"lionreport/internal/model"
	"lionreport/internal/repository"
)

const summaryCacheTTL = 5 * time.Minute

// Summarizer condenses a week of daily logs into the four report
// sections. The static implementation below is a placeholder; an
// external-service-backed implementation can be substituted without
// touching the composer.
type Summarizer interface {
	Summarize(ctx context.Context, logs []model.DailyLog) (model.Summary, error)
}

// StaticSummarizer produces fixed placeholder text regardless of input.
type StaticSummarizer struct{}

func (StaticSummarizer) Summarize(_ context.Context, logs []model.DailyLog) (model.Summary, error) {
	return model.Summary{
		LastWeek:      "Summary of last week achievements.",
		Issues:        "Summary of issues faced.",
		Opportunities: "Summary of opportunities.",
		NextWeek:      "Summary of next week commitments.",
	}, nil
}

// Composer selects a user's logs for a work week and produces a Summary.
type Composer interface {
	Compose(ctx context.Context, userID uuid.UUID, weekStart, weekEnd time.Time) (model.Summary, error)
}

type composer struct {
	logRepo    repository.DailyLogRepository
	summarizer Summarizer
	cache      *cache.Client
	now        func() time.Time
}

// NewComposer creates a new report composer.
func NewComposer(logRepo repository.DailyLogRepository, summarizer Summarizer, cache *cache.Client) Composer {
	return &composer{
		logRepo:    logRepo,
		summarizer: summarizer,
		cache:      cache,
		now:        time.Now,
	}
}

// PreviousWorkWeek returns the Monday and Friday of the work week
// strictly preceding today's week: the most recent Monday more than
// seven days in the past and the Friday four days after it.
func PreviousWorkWeek(today time.Time) (start, end time.Time) {
	today = truncateToDate(today)
	// Days since Monday of the current week (Monday = 0).
	sinceMonday := (int(today.Weekday()) + 6) % 7
	start = today.AddDate(0, 0, -(sinceMonday + 7))
	end = start.AddDate(0, 0, 4)
	return start, end
}

// Compose fetches the user's logs in [weekStart, weekEnd] inclusive and
// summarizes them. Zero time values select the previous work week. An
// empty log set still yields a summary with defined placeholder fields.
func (c *composer) Compose(ctx context.Context, userID uuid.UUID, weekStart, weekEnd time.Time) (model.Summary, error) {
	if weekStart.IsZero() || weekEnd.IsZero() {
		weekStart, weekEnd = PreviousWorkWeek(c.now())
	}
	weekStart = truncateToDate(weekStart)
	weekEnd = truncateToDate(weekEnd)

	cacheKey := fmt.Sprintf("summary:%s:%s", userID, weekStart.Format("2006-01-02"))
	if data, _ := c.cache.Get(ctx, cacheKey); data != nil {
		var cached model.Summary
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	logs, err := c.logRepo.FindByUserAndDateRange(ctx, userID, weekStart, weekEnd)
	if err != nil {
		return model.Summary{}, fmt.Errorf("fetch week logs: %w", err)
	}

	summary, err := c.summarizer.Summarize(ctx, logs)
	if err != nil {
		return model.Summary{}, fmt.Errorf("summarize logs: %w", err)
	}

	if payload, err := json.Marshal(summary); err == nil {
		_ = c.cache.Set(ctx, cacheKey, payload, summaryCacheTTL)
	}

	return summary, nil
}
