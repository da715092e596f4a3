package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "archive.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testInterview(title string) *Interview {
	return &Interview{
		ID:          uuid.NewString(),
		Title:       title,
		SubjectName: "Ruth",
		Interviewer: "Walter",
	}
}

func testChunks(interviewID string, n int) []ChunkRow {
	chunks := make([]ChunkRow, 0, n)
	for i := 0; i < n; i++ {
		chunks = append(chunks, ChunkRow{
			ID:          uuid.NewString(),
			InterviewID: interviewID,
			Sequence:    i + 1,
			Content:     "chunk content",
			Speaker:     "subject",
			Vector:      []float64{float64(i), 1, 2},
			StartTime:   float64(i * 10),
			EndTime:     float64(i*10 + 10),
		})
	}
	return chunks
}

func TestSaveInterviewRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	iv := testInterview("Mill interview")
	if err := s.SaveInterview(ctx, iv, testChunks(iv.ID, 3)); err != nil {
		t.Fatalf("SaveInterview() error = %v", err)
	}

	got, err := s.GetInterview(ctx, iv.ID)
	if err != nil {
		t.Fatalf("GetInterview() error = %v", err)
	}
	if got.Title != "Mill interview" || got.SubjectName != "Ruth" {
		t.Errorf("interview = %+v", got)
	}

	chunks, err := s.ChunksByInterview(ctx, iv.ID)
	if err != nil {
		t.Fatalf("ChunksByInterview() error = %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}
	for i, c := range chunks {
		if c.Sequence != i+1 {
			t.Errorf("chunk %d sequence = %d, want %d", i, c.Sequence, i+1)
		}
		if len(c.Vector) != 3 {
			t.Errorf("chunk %d vector not round-tripped: %v", i, c.Vector)
		}
	}
}

func TestSaveInterviewRollsBackOnDuplicateSequence(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	iv := testInterview("dup")
	chunks := testChunks(iv.ID, 2)
	chunks[1].Sequence = chunks[0].Sequence

	if err := s.SaveInterview(ctx, iv, chunks); err == nil {
		t.Fatal("SaveInterview() should fail on duplicate sequence")
	}

	// Nothing from the failed run may survive, interview included.
	if _, err := s.GetInterview(ctx, iv.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetInterview() after rollback error = %v, want ErrNotFound", err)
	}
}

func TestSaveChunksMissingParent(t *testing.T) {
	s := testStore(t)
	err := s.SaveChunks(context.Background(), "no-such-id", testChunks("no-such-id", 1))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("SaveChunks() error = %v, want ErrNotFound", err)
	}
}

func TestListInterviews(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for _, title := range []string{"first", "second"} {
		if err := s.SaveInterview(ctx, testInterview(title), nil); err != nil {
			t.Fatalf("SaveInterview() error = %v", err)
		}
	}

	interviews, err := s.ListInterviews(ctx)
	if err != nil {
		t.Fatalf("ListInterviews() error = %v", err)
	}
	if len(interviews) != 2 {
		t.Errorf("got %d interviews, want 2", len(interviews))
	}
}

func TestAllChunksJoinsParentFields(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	iv := testInterview("joined")
	if err := s.SaveInterview(ctx, iv, testChunks(iv.ID, 2)); err != nil {
		t.Fatalf("SaveInterview() error = %v", err)
	}

	all, err := s.AllChunks(ctx)
	if err != nil {
		t.Fatalf("AllChunks() error = %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d chunks, want 2", len(all))
	}
	for _, g := range all {
		if g.Title != "joined" || g.SubjectName != "Ruth" {
			t.Errorf("chunk missing parent fields: %+v", g)
		}
	}
}

func TestDeleteInterviewCascades(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	iv := testInterview("doomed")
	if err := s.SaveInterview(ctx, iv, testChunks(iv.ID, 2)); err != nil {
		t.Fatalf("SaveInterview() error = %v", err)
	}

	if err := s.DeleteInterview(ctx, iv.ID); err != nil {
		t.Fatalf("DeleteInterview() error = %v", err)
	}

	all, err := s.AllChunks(ctx)
	if err != nil {
		t.Fatalf("AllChunks() error = %v", err)
	}
	if len(all) != 0 {
		t.Errorf("chunks survived parent deletion: %d left", len(all))
	}
}

func TestDimensionError(t *testing.T) {
	err := &DimensionError{Want: 1536, Got: 3}
	var de *DimensionError
	if !errors.As(error(err), &de) {
		t.Error("DimensionError should be errors.As-able")
	}
	if de.Want != 1536 {
		t.Errorf("Want = %d", de.Want)
	}
}
