package docs

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const (
	bashSetup    = "bash setup"
	bashRun      = "bash run"
	consoleCheck = "console check"
	bashCheck    = "bash check"
)

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md can be loaded, and every topic file is
	// listed in readme.md.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)

	for scanner.Scan() {
		line := scanner.Text()
		matches := topicRegex.FindStringSubmatch(line)
		if len(matches) > 1 {
			topic := strings.TrimSpace(matches[1])
			topicsInReadme = append(topicsInReadme, topic)
		}
	}

	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
			if _, err := Title(topic); err != nil {
				t.Errorf("Title(%q): %v", topic, err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		if !slices.Contains(topicsInReadme, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestTitle(t *testing.T) {
	got, err := Title("getting-started")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Getting started" {
		t.Errorf("Title() = %q, want %q", got, "Getting started")
	}
	if _, err := Title("missing"); err == nil {
		t.Error("Title(missing) want an error")
	}
}

func TestGetTopicsStar(t *testing.T) {
	all, err := GetTopics("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"# Getting started", "# Backups", "# Configuration"} {
		if !strings.Contains(all, want) {
			t.Errorf("GetTopics(*) does not contain %q", want)
		}
	}
	if strings.Contains(all, "# bms help topics") {
		t.Error("GetTopics(*) contains the index")
	}
}

func TestCodeBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	files = append(files, "../README.md")

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			runBlocks(t, file)
		})
	}
}

// fence is a runnable fenced block of a markdown page.
type fence struct {
	kind string
	body string
	at   string // file:line of the info string
}

// fences returns the runnable fenced blocks of file, in page order.
func fences(t *testing.T, file string) []fence {
	t.Helper()
	src, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("reading %s: %v", file, err)
	}
	var found []fence
	root := goldmark.DefaultParser().Parse(text.NewReader(src))
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		code, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || code.Info == nil {
			return ast.WalkContinue, nil
		}
		kind := string(code.Info.Segment.Value(src))
		switch kind {
		case bashSetup, bashRun, bashCheck, consoleCheck:
		default:
			return ast.WalkContinue, nil
		}
		var body strings.Builder
		lines := code.Lines()
		for i := range lines.Len() {
			seg := lines.At(i)
			body.Write(seg.Value(src))
		}
		line := bytes.Count(src[:code.Info.Segment.Start], []byte{'\n'}) + 1
		found = append(found, fence{kind: kind, body: body.String(), at: fmt.Sprintf("%s:%d", file, line)})
		return ast.WalkContinue, nil
	})
	return found
}

// buildBms compiles the bms binary into dir and returns dir.
func buildBms(t *testing.T, dir string) string {
	t.Helper()
	build := exec.Command("go", "build", "-o", filepath.Join(dir, "bms"), "../bms/")
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("go build: %v\n%s", err, out)
	}
	return dir
}

// scenario replays the fences of one page. A setup fence starts fresh books
// in a new folder; a console check compares against the last run output.
type scenario struct {
	env  []string
	dir  string
	last string
}

func (s *scenario) play(t *testing.T, f fence) {
	t.Helper()
	if f.kind == consoleCheck {
		want := strings.TrimSpace(f.body)
		got := strings.ReplaceAll(strings.TrimSpace(s.last), "\t", "        ")
		if got != want {
			t.Errorf("%s: output mismatch\ngot:\n%s\nwant:\n%s\n(got %q)", f.at, got, want, got)
		}
		return
	}
	if f.kind == bashSetup {
		s.dir = t.TempDir()
	}
	sh := exec.Command("bash", "-c", "set -e; "+f.body)
	sh.Dir, sh.Env = s.dir, s.env
	out, err := sh.CombinedOutput()
	if f.kind == bashRun {
		s.last = string(out)
	}
	switch {
	case err == nil:
	case f.kind == bashCheck:
		t.Errorf("%s: check failed: %v\n%s", f.at, err, out)
	default:
		t.Fatalf("%s: %s failed: %v\n%s", f.at, f.kind, err, out)
	}
}

func runBlocks(t *testing.T, file string) {
	t.Helper()
	page := fences(t, file)
	if len(page) == 0 {
		return
	}
	bin := buildBms(t, t.TempDir())
	s := scenario{
		dir: t.TempDir(),
		env: append(os.Environ(),
			"PATH="+bin+string(os.PathListSeparator)+os.Getenv("PATH"),
			"BMS_TESTING_NOW=2025-03-02 10:30:00",
			"BMS_DATA_DIR=.",
			"BMS_PLAIN=true",
			"BMS_VAULT=simulated",
		),
	}
	for _, f := range page {
		s.play(t, f)
	}
}
