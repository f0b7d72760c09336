package seed

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestParseDocument(t *testing.T) {
	doc, err := Parse([]byte(`{"comments":[
		{"id":1,"author":"Alice","text":"Hi","date":"2024-01-01T00:00:00Z","likes":3,"image":"a.png"},
		{"id":2,"author":"","text":"","date":"2024-01-02T00:00:00Z","likes":0,"image":""}
	]}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(doc.Comments) != 2 {
		t.Fatalf("expected 2 records, got %d", len(doc.Comments))
	}

	comment, err := doc.Comments[0].Comment(0)
	if err != nil {
		t.Fatalf("comment: %v", err)
	}
	if comment.ID != 1 || comment.Author != "Alice" || comment.Text != "Hi" || comment.Likes != 3 || comment.Image != "a.png" {
		t.Fatalf("unexpected comment %+v", comment)
	}
	if !comment.Date.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %v", comment.Date)
	}
}

func TestParseDocumentEmptyList(t *testing.T) {
	doc, err := Parse([]byte(`{"comments":[]}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(doc.Comments) != 0 {
		t.Fatalf("expected no records, got %d", len(doc.Comments))
	}
}

func TestParseDocumentMissingCommentsKey(t *testing.T) {
	for _, in := range []string{`{"items":[]}`, `{"comments":null}`} {
		_, err := Parse([]byte(in))
		var missing *MissingKeyError
		if !errors.As(err, &missing) {
			t.Fatalf("Parse(%q): expected MissingKeyError, got %v", in, err)
		}
		if !reflect.DeepEqual(missing.Keys, []string{"comments"}) {
			t.Fatalf("Parse(%q): missing keys = %v; want [comments]", in, missing.Keys)
		}
	}
}

func TestParseDocumentDefersRecordChecks(t *testing.T) {
	doc, err := Parse([]byte(`{"comments":[{"id":1},{"author":"b"}]}`))
	if err != nil {
		t.Fatalf("record keys must not be checked by Parse, got %v", err)
	}
	if len(doc.Comments) != 2 {
		t.Fatalf("expected 2 records, got %d", len(doc.Comments))
	}
}

func TestRecordCommentMissingKeys(t *testing.T) {
	testCases := []struct {
		name  string
		in    string
		index int
		want  []string
	}{
		{"Missing date", `{"id":1,"author":"a","text":"t","likes":0,"image":""}`, 0, []string{"comments[0].date"}},
		{"Several missing", `{"author":"b","text":"t","date":"2024-01-01","image":""}`, 1, []string{"comments[1].id", "comments[1].likes"}},
		{"Null record", `null`, 3, []string{"comments[3].id", "comments[3].author", "comments[3].text", "comments[3].date", "comments[3].likes", "comments[3].image"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var record Record
			if err := json.Unmarshal([]byte(tc.in), &record); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}

			_, err := record.Comment(tc.index)
			var missing *MissingKeyError
			if !errors.As(err, &missing) {
				t.Fatalf("expected MissingKeyError, got %v", err)
			}
			if !reflect.DeepEqual(missing.Keys, tc.want) {
				t.Fatalf("missing keys = %v; want %v", missing.Keys, tc.want)
			}
		})
	}
}

func TestRecordCommentBadDate(t *testing.T) {
	var record Record
	if err := json.Unmarshal([]byte(`{"id":1,"author":"a","text":"t","date":"garbage","likes":0,"image":""}`), &record); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	_, err := record.Comment(4)
	if err == nil || !strings.HasPrefix(err.Error(), "comments[4]: ") {
		t.Fatalf("expected error prefixed with record position, got %v", err)
	}
}

func TestParseDocumentMalformed(t *testing.T) {
	for _, in := range []string{`{"comments":[`, `[]`, `{"comments":[{"id":"one"}]}`, `{"comments":[]} trailing`} {
		_, err := Parse([]byte(in))
		if err == nil {
			t.Errorf("Parse(%q) expected error", in)
			continue
		}
		var missing *MissingKeyError
		if errors.As(err, &missing) {
			t.Errorf("Parse(%q) returned a missing-key error for malformed input", in)
		}
	}
}

func TestLoadFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comments.json")

	_, err := LoadFile(path)
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comments.json")
	if err := os.WriteFile(path, []byte(`{"comments":[{"id":7,"author":"a","text":"t","date":"2024-01-01T00:00:00Z","likes":1,"image":"i"}]}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	doc, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(doc.Comments) != 1 || *doc.Comments[0].ID != 7 {
		t.Fatalf("unexpected document %+v", doc)
	}
}
