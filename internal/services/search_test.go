package services

import (
	"sort"
	"testing"
	"time"

	"github.com/P3chys/comments-seed/internal/models"
)

func TestToCommentDocumentsNormalizesDates(t *testing.T) {
	plus2 := time.FixedZone("", 2*60*60)
	comments := []models.Comment{
		// 09:30 UTC, later than the next comment despite the smaller wall clock.
		{ID: 1, Author: "Alice", Text: "Hi", Date: time.Date(2024, 1, 1, 11, 30, 0, 0, plus2), Likes: 3, Image: "a.png"},
		{ID: 2, Author: "Bob", Text: "Yo", Date: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), Likes: 0, Image: ""},
	}

	docs := toCommentDocuments(comments)
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].Date != "2024-01-01T09:30:00Z" {
		t.Errorf("date = %q; want 2024-01-01T09:30:00Z", docs[0].Date)
	}
	if docs[0].DateUnix != comments[0].Date.Unix() {
		t.Errorf("date_unix = %d; want %d", docs[0].DateUnix, comments[0].Date.Unix())
	}
	if docs[0].ID != 1 || docs[0].Author != "Alice" || docs[0].Text != "Hi" || docs[0].Likes != 3 || docs[0].Image != "a.png" {
		t.Errorf("fields not carried over: %+v", docs[0])
	}

	byDate := append([]commentDocument(nil), docs...)
	sort.Slice(byDate, func(i, j int) bool { return byDate[i].Date < byDate[j].Date })
	if byDate[0].ID != 2 {
		t.Errorf("string dates sort out of order: %+v", byDate)
	}
}
