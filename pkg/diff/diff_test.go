package diff

import (
	"strings"
	"testing"
)

func TestGenerateUnifiedDiff_IdenticalContent(t *testing.T) {
	expected := []byte("line1\nline2\nline3\n")
	actual := []byte("line1\nline2\nline3\n")

	result := GenerateUnifiedDiff(expected, actual, "expected", "actual")

	if result != "" {
		t.Errorf("Expected empty diff for identical content, got: %s", result)
	}
}

func TestGenerateUnifiedDiff_SingleLineChange(t *testing.T) {
	expected := []byte("line1\nline2\nline3\n")
	actual := []byte("line1\nmodified\nline3\n")

	result := GenerateUnifiedDiff(expected, actual, "expected", "actual")

	want := "--- expected\n+++ actual\n@@ -1,3 +1,3 @@\n line1\n-line2\n+modified\n line3\n"
	if result != want {
		t.Errorf("unexpected diff:\n%s\nwant:\n%s", result, want)
	}
}

func TestGenerateUnifiedDiff_SeparateHunks(t *testing.T) {
	var expected, actual []string
	for i := 0; i < 20; i++ {
		line := "line" + string(rune('a'+i))
		expected = append(expected, line)
		switch i {
		case 1, 17:
			actual = append(actual, strings.ToUpper(line))
		default:
			actual = append(actual, line)
		}
	}

	result := GenerateUnifiedDiff([]byte(strings.Join(expected, "\n")+"\n"), []byte(strings.Join(actual, "\n")+"\n"), "a", "b")

	if got := strings.Count(result, "@@ -"); got != 2 {
		t.Fatalf("expected 2 hunks, got %d:\n%s", got, result)
	}
	if !strings.Contains(result, "@@ -1,5 +1,5 @@") {
		t.Errorf("first hunk header missing:\n%s", result)
	}
	if !strings.Contains(result, "@@ -15,6 +15,6 @@") {
		t.Errorf("second hunk header missing:\n%s", result)
	}
	if strings.Contains(result, " linej\n") {
		t.Errorf("lines far from changes should be omitted:\n%s", result)
	}
}

func TestGenerateUnifiedDiff_Truncation(t *testing.T) {
	var expectedLines []string
	var actualLines []string

	for i := 0; i < 11000; i++ {
		expectedLines = append(expectedLines, "expected line")
		if i%2 == 0 {
			actualLines = append(actualLines, "actual line")
		} else {
			actualLines = append(actualLines, "expected line")
		}
	}

	expected := []byte(strings.Join(expectedLines, "\n"))
	actual := []byte(strings.Join(actualLines, "\n"))

	result := GenerateUnifiedDiff(expected, actual, "expected", "actual")

	if !strings.Contains(result, "truncated") {
		t.Error("Large diff should be truncated with truncation message")
	}

	lineCount := strings.Count(result, "\n")
	if lineCount > 10100 {
		t.Errorf("Truncated diff should not exceed ~10,000 lines, got %d", lineCount)
	}
}

func TestGenerateUnifiedDiff_EmptyContent(t *testing.T) {
	result := GenerateUnifiedDiff([]byte(""), []byte("new content\n"), "expected", "actual")

	if !strings.Contains(result, "@@ -1,0 +1,1 @@") {
		t.Errorf("unexpected hunk header:\n%s", result)
	}
	if !strings.Contains(result, "+new content") {
		t.Error("Diff should show added content")
	}
}

func TestGenerateUnifiedDiff_Labels(t *testing.T) {
	result := GenerateUnifiedDiff([]byte("old"), []byte("new"), "file1.txt", "file2.txt")

	if !strings.HasPrefix(result, "--- file1.txt\n+++ file2.txt\n") {
		t.Errorf("Diff should start with both labels, got:\n%s", result)
	}
}

func TestYAML(t *testing.T) {
	type hero struct {
		Greeting string `yaml:"greeting"`
		Headline string `yaml:"headline"`
	}

	out, stats, err := YAML(hero{"Hi", "I'm Alex"}, hero{"Hi", "I'm Sam"}, "current", "import.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats != (Stats{Added: 1, Removed: 1}) {
		t.Errorf("unexpected stats %+v", stats)
	}
	if !strings.Contains(out, "-headline: I'm Alex\n+headline: I'm Sam\n") {
		t.Errorf("unexpected diff:\n%s", out)
	}

	out, stats, err = YAML(hero{"Hi", "x"}, hero{"Hi", "x"}, "a", "b")
	if err != nil || out != "" || stats.Changed() {
		t.Errorf("expected no diff, got %q %+v %v", out, stats, err)
	}
}
