package triage

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const (
	// DefaultSimilarityThreshold is the Jaccard score at or above which
	// an incoming report joins an existing similarity group.
	DefaultSimilarityThreshold = 0.35

	// DefaultCandidateWindow bounds the scan to the most recent prior
	// reports of the same type and category.
	DefaultCandidateWindow = 100

	// Group-size escalation thresholds.
	urgentMemberCount = 5
	highMemberCount   = 2
)

var tokenPattern = regexp.MustCompile(`[a-zA-Z0-9]{3,}`)

// Candidate is the read-only projection of a prior feedback item the
// deduplicator scores against.
type Candidate struct {
	ID              uint
	Subject         string
	Description     string
	SimilarityGroup string
}

// CandidateSource supplies the recent-item window and group counts.
// Reads may be slightly stale; grouping is advisory, not authoritative.
type CandidateSource interface {
	RecentCandidates(ctx context.Context, feedbackType, category string, limit int) ([]Candidate, error)
	CountGroup(ctx context.Context, group string) (int64, error)
}

// Deduplicator clusters near-duplicate reports by lexical similarity.
// It inherits the best match's group rather than computing transitive
// closure, so chains of near-duplicates converge on the earliest-seen
// group key and overlapping clusters are never merged.
type Deduplicator struct {
	source    CandidateSource
	threshold float64
	window    int
}

func NewDeduplicator(source CandidateSource, threshold float64, window int) *Deduplicator {
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}
	if window <= 0 {
		window = DefaultCandidateWindow
	}
	return &Deduplicator{
		source:    source,
		threshold: threshold,
		window:    window,
	}
}

// DetectGroup returns the similarity group for an incoming report, or
// "" when the text has no usable tokens. It never fails: candidate
// source errors degrade to "no group".
func (d *Deduplicator) DetectGroup(ctx context.Context, feedbackType, category, subject, description string) string {
	incoming := tokenize(subject + " " + description)
	if len(incoming) == 0 {
		return ""
	}

	candidates, err := d.source.RecentCandidates(ctx, feedbackType, category, d.window)
	if err != nil {
		// Grouping is advisory; a failed scan must not block submission.
		candidates = nil
	}

	var best *Candidate
	bestScore := 0.0
	for i := range candidates {
		score := jaccard(incoming, tokenize(candidates[i].Subject+" "+candidates[i].Description))
		if score > bestScore {
			bestScore = score
			best = &candidates[i]
		}
	}

	if best != nil && bestScore >= d.threshold {
		if best.SimilarityGroup != "" {
			return best.SimilarityGroup
		}
		return fmt.Sprintf("grp_%d", best.ID)
	}

	return deriveGroupKey(incoming)
}

// GroupSize returns the current member count of a group, 0 for the
// empty group or on source failure.
func (d *Deduplicator) GroupSize(ctx context.Context, group string) int64 {
	if group == "" {
		return 0
	}
	count, err := d.source.CountGroup(ctx, group)
	if err != nil {
		return 0
	}
	return count
}

// EscalateForSize applies count-based escalation to a known group
// size, the item being escalated included: five or more members force
// urgent, two or more raise low/medium to high. Never downgrades.
func EscalateForSize(size int64, base string) string {
	switch {
	case size >= urgentMemberCount:
		return PriorityUrgent
	case size >= highMemberCount && (base == PriorityLow || base == PriorityMedium):
		return PriorityHigh
	default:
		return base
	}
}

// tokenize extracts the set of lower-cased alphanumeric tokens of
// length >= 3.
func tokenize(text string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, t := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		tokens[t] = struct{}{}
	}
	return tokens
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	intersection := 0
	for t := range a {
		if _, ok := b[t]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

// deriveGroupKey hashes the sorted token set so byte-identical content
// always lands in the same fresh group.
func deriveGroupKey(tokens map[string]struct{}) string {
	sorted := make([]string, 0, len(tokens))
	for t := range tokens {
		sorted = append(sorted, t)
	}
	sort.Strings(sorted)

	sum := sha1.Sum([]byte(strings.Join(sorted, " ")))
	return "grp_" + hex.EncodeToString(sum[:])[:16]
}
