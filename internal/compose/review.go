package compose

import (
	"math"
	"sort"
	"time"

	"github.com/abhisek/adaptiq/internal/mastery"
)

const (
	// ReviewGapDays is the practice gap after which a session is
	// biased toward review.
	ReviewGapDays = 21

	// reviewStaleDays is the minimum staleness of a topic before it
	// qualifies as a review candidate.
	reviewStaleDays = 21

	// reviewPKnownFloor excludes topics that were never solid enough
	// to be worth re-verifying.
	reviewPKnownFloor = 0.65

	// maxReviewTopics caps review candidates per session.
	maxReviewTopics = 3

	// reviewShare bounds the merged review bucket to roughly 30% of
	// session questions.
	reviewShare = 0.3
)

// ShouldEnterReviewMode reports whether the gap since the last session
// is long enough to bias composition toward review. A child with no
// session history has nothing to review.
func ShouldEnterReviewMode(lastSession, now time.Time) bool {
	if lastSession.IsZero() {
		return false
	}
	return now.Sub(lastSession).Hours()/24 >= ReviewGapDays
}

// SelectReviewTopics picks same-subject topics worth re-verifying
// after a gap: previously solid (pKnown at or above the floor) and
// stale for at least three weeks. Oldest first, capped at three.
func SelectReviewTopics(p *mastery.Profile, subjectID string, now time.Time) []string {
	type staleTopic struct {
		topic string
		last  time.Time
	}

	var candidates []staleTopic
	for topic, tm := range p.TopicMastery {
		if tm.SubjectID != subjectID {
			continue
		}
		if tm.PKnown < reviewPKnownFloor {
			continue
		}
		if tm.LastAttempt.IsZero() || now.Sub(tm.LastAttempt).Hours()/24 < reviewStaleDays {
			continue
		}
		candidates = append(candidates, staleTopic{topic: topic, last: tm.LastAttempt})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if !candidates[i].last.Equal(candidates[j].last) {
			return candidates[i].last.Before(candidates[j].last)
		}
		return candidates[i].topic < candidates[j].topic
	})

	var topics []string
	for i := 0; i < len(candidates) && i < maxReviewTopics; i++ {
		topics = append(topics, candidates[i].topic)
	}
	return topics
}

// MergeReviewTopics folds gap-review topics into the mix's review
// bucket, deduplicated against topics already present anywhere in the
// mix, and bounds the bucket to reviewShare of the session.
func MergeReviewTopics(m Mix, reviewTopics []string, sessionQuestions int) Mix {
	if len(reviewTopics) == 0 {
		return m
	}

	maxReview := int(math.Round(float64(sessionQuestions) * reviewShare))
	if maxReview < len(m.ReviewTopics) {
		maxReview = len(m.ReviewTopics) // never evict sampled review topics
	}

	present := make(map[string]bool)
	for _, t := range OrderTopics(m) {
		present[t] = true
	}

	for _, t := range reviewTopics {
		if len(m.ReviewTopics) >= maxReview {
			break
		}
		if present[t] {
			continue
		}
		m.ReviewTopics = append(m.ReviewTopics, t)
		present[t] = true
	}

	m.QuestionCount = len(m.ReviewTopics) + len(m.TargetTopics) + len(m.WeakTopics)
	return m
}
