package search

import (
	"context"
	"fmt"
	"sort"

	"github.com/workerlens/transcript-archive/internal/store"
	"github.com/workerlens/transcript-archive/pkg/vectormath"
)

func (s *implSearcher) SearchInterview(ctx context.Context, interviewID, query string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = s.cfg.InterviewLimit
	}

	queryVector, err := s.provider.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	chunks, err := s.store.ChunksByInterview(ctx, interviewID)
	if err != nil {
		return nil, err
	}

	ranked, err := rankByCosine(queryVector, chunks, limit)
	if err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "Interview search %q over %d chunks returned %d results",
		query, len(chunks), len(ranked))
	return ranked, nil
}

func (s *implSearcher) SearchGlobal(ctx context.Context, query string, limit int) ([]GlobalResult, error) {
	return s.globalSearch(ctx, query, limit, false)
}

func (s *implSearcher) Nearest(ctx context.Context, query string, limit int) ([]GlobalResult, error) {
	return s.globalSearch(ctx, query, limit, true)
}

func (s *implSearcher) globalSearch(ctx context.Context, query string, limit int, euclidean bool) ([]GlobalResult, error) {
	if limit <= 0 {
		limit = s.cfg.GlobalLimit
	}

	queryVector, err := s.provider.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	chunks, err := s.store.AllChunks(ctx)
	if err != nil {
		return nil, err
	}

	ranked, err := rankGlobal(queryVector, chunks, limit, euclidean)
	if err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "Global search %q over %d chunks returned %d results",
		query, len(chunks), len(ranked))
	return ranked, nil
}

// rankByCosine orders chunks by ascending cosine distance to the query
// vector and keeps the top limit. Similarity is 1 - distance.
func rankByCosine(queryVector []float64, chunks []store.ChunkRow, limit int) ([]Result, error) {
	type scored struct {
		chunk    store.ChunkRow
		distance float64
	}

	ranked := make([]scored, 0, len(chunks))
	for _, c := range chunks {
		distance, err := vectormath.CosineDistance(queryVector, c.Vector)
		if err != nil {
			return nil, fmt.Errorf("chunk %s: %w", c.ID, err)
		}
		ranked = append(ranked, scored{chunk: c, distance: distance})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].distance < ranked[j].distance
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	results := make([]Result, 0, len(ranked))
	for _, r := range ranked {
		results = append(results, Result{
			ChunkID:    r.chunk.ID,
			Content:    r.chunk.Content,
			Speaker:    r.chunk.Speaker,
			StartTime:  r.chunk.StartTime,
			EndTime:    r.chunk.EndTime,
			Similarity: 1 - r.distance,
		})
	}
	return results, nil
}

func rankGlobal(queryVector []float64, chunks []store.GlobalChunkRow, limit int, euclidean bool) ([]GlobalResult, error) {
	type scored struct {
		chunk    store.GlobalChunkRow
		distance float64
	}

	ranked := make([]scored, 0, len(chunks))
	for _, c := range chunks {
		var distance float64
		var err error
		if euclidean {
			distance, err = vectormath.EuclideanDistance(queryVector, c.Vector)
		} else {
			distance, err = vectormath.CosineDistance(queryVector, c.Vector)
		}
		if err != nil {
			return nil, fmt.Errorf("chunk %s: %w", c.ID, err)
		}
		ranked = append(ranked, scored{chunk: c, distance: distance})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].distance < ranked[j].distance
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	results := make([]GlobalResult, 0, len(ranked))
	for _, r := range ranked {
		g := GlobalResult{
			Result: Result{
				ChunkID:   r.chunk.ID,
				Content:   r.chunk.Content,
				Speaker:   r.chunk.Speaker,
				StartTime: r.chunk.StartTime,
				EndTime:   r.chunk.EndTime,
			},
			InterviewID: r.chunk.InterviewID,
			Title:       r.chunk.Title,
			SubjectName: r.chunk.SubjectName,
		}
		if euclidean {
			// Raw-distance mode: Euclidean distance has no bounded
			// complement, so no similarity score is derived.
			g.Distance = r.distance
		} else {
			g.Similarity = 1 - r.distance
		}
		results = append(results, g)
	}
	return results, nil
}
