package bestgram

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWordUnmarshalJSON(t *testing.T) {
	tests := []struct {
		data     string
		expected Word
		wantErr  bool
	}{
		{
			data:     `[["ก","บ"],5]`,
			expected: NewWord([]rune{'ก', 'บ'}, 5),
		},
		{
			data:     `[[],0]`,
			expected: NewWord([]rune{}, 0),
		},
		{
			data:    `[["ก"],5,9]`,
			wantErr: true,
		},
		{
			data:    `[["กบ"],5]`,
			wantErr: true,
		},
		{
			data:    `"not a word"`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("data = %v, expected = %v", tt.data, tt.expected), func(t *testing.T) {
			var got Word
			err := json.Unmarshal([]byte(tt.data), &got)
			if tt.wantErr {
				if err == nil {
					t.Errorf("json.Unmarshal(%v) expected an error, got none", tt.data)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Diff: (-want +got)\n%s", diff)
			}
		})
	}
}

func TestLoadCorpus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.json")
	content := `[[[[["ก","บ"],5],[["ข"],2]]],[[[["ค"],1]]]]`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadCorpus(path, 4096)
	if err != nil {
		t.Fatal(err)
	}
	expected := Corpus{
		CorpusDocument{
			Sentence{
				NewWord([]rune{'ก', 'บ'}, 5),
				NewWord([]rune{'ข'}, 2),
			},
		},
		CorpusDocument{
			Sentence{
				NewWord([]rune{'ค'}, 1),
			},
		},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("Diff: (-want +got)\n%s", diff)
	}
}

func TestLoadCorpusErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadCorpus(filepath.Join(t.TempDir(), "nope.json"), 4096); err == nil {
			t.Error("LoadCorpus() expected an error for a missing file, got none")
		}
	})
	t.Run("malformed content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "corpus.json")
		if err := os.WriteFile(path, []byte(`{"not":"a corpus"}`), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadCorpus(path, 4096); err == nil {
			t.Error("LoadCorpus() expected an error for malformed content, got none")
		}
	})
}
