package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/texttree/pkg/errors"
	treeio "github.com/matzehuels/texttree/pkg/io"
	"github.com/matzehuels/texttree/pkg/tree"
)

func sampleDoc() treeio.Document {
	return treeio.ToDocument(tree.WithChildNodes[tree.Text]("root",
		tree.Strings("a", "a1"),
		tree.NewString("b"),
	))
}

// exercise runs the behavior every backend must share.
func exercise(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	rec, err := s.Put(ctx, sampleDoc())
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := ValidateID(rec.ID); err != nil {
		t.Errorf("Put returned a non-UUID id: %v", err)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	got, err := s.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	n, err := treeio.FromDocument(got.Tree)
	if err != nil {
		t.Fatalf("stored document is invalid: %v", err)
	}
	if n.Count() != 4 || n.Child(0).Child(0).Label() != "a1" {
		t.Errorf("stored tree changed: count=%d", n.Count())
	}

	if err := s.Delete(ctx, rec.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, rec.ID); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Get after Delete = %v, want NOT_FOUND", err)
	}
	if err := s.Delete(ctx, rec.ID); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("second Delete = %v, want NOT_FOUND", err)
	}

	if _, err := s.Get(ctx, "../../etc/passwd"); !errors.Is(err, errors.ErrCodeInvalidID) {
		t.Errorf("Get(bad id) = %v, want INVALID_ID", err)
	}
	if _, err := s.Get(ctx, uuid.NewString()); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Get(unknown id) = %v, want NOT_FOUND", err)
	}

	if _, err := s.Put(ctx, treeio.Document{}); !errors.Is(err, errors.ErrCodeInvalidDocument) {
		t.Errorf("Put(invalid) = %v, want INVALID_DOCUMENT", err)
	}
}

func TestMemoryStore(t *testing.T) {
	exercise(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	exercise(t, s)
}

func TestMongoStore(t *testing.T) {
	uri := os.Getenv("TEXTTREE_TEST_MONGO")
	if uri == "" {
		t.Skip("TEXTTREE_TEST_MONGO not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s, err := NewMongoStore(ctx, MongoConfig{URI: uri, Collection: "trees_test"})
	if err != nil {
		t.Fatalf("NewMongoStore: %v", err)
	}
	defer s.Close()
	exercise(t, s)
}

func TestValidateID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{uuid.NewString(), true},
		{"", false},
		{"not-a-uuid", false},
		{"urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8", false},
		{"6BA7B810-9DAD-11D1-80B4-00C04FD430C8", false},
	}
	for _, tt := range tests {
		if err := ValidateID(tt.id); (err == nil) != tt.valid {
			t.Errorf("ValidateID(%q) = %v, want valid=%v", tt.id, err, tt.valid)
		}
	}
}
