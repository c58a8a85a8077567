package integrations

import (
	"fmt"
	"html"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-shiori/go-epub"
	"github.com/kerbaras/fictions/pkg/data"
)

type EPubBuilder struct {
	outputDir string
}

func NewEPubBuilder(outputDir string) *EPubBuilder {
	return &EPubBuilder{outputDir: outputDir}
}

// Publish writes every chapter of the fiction into <title>.epub inside the
// output directory. A cover that cannot be processed is skipped.
func (p *EPubBuilder) Publish(fiction *data.Fiction, chapters []*data.Chapter, cover []byte) (string, error) {
	if fiction == nil {
		return "", fmt.Errorf("fiction cannot be nil")
	}
	if len(chapters) == 0 {
		return "", fmt.Errorf("no chapters to compile")
	}

	if err := os.MkdirAll(p.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	e, err := epub.NewEpub(fiction.Title)
	if err != nil {
		return "", fmt.Errorf("failed to create EPub: %w", err)
	}
	if fiction.Author != "" {
		e.SetAuthor(fiction.Author)
	}
	e.SetLang("en")

	if len(cover) > 0 {
		staging, err := os.MkdirTemp("", "fictions-epub-*")
		if err != nil {
			return "", fmt.Errorf("failed to create staging directory: %w", err)
		}
		defer os.RemoveAll(staging)

		if err := p.addCover(e, staging, cover); err != nil {
			log.Printf("Warning: skipping cover for %q: %v", fiction.Title, err)
		}
	}

	for i, chapter := range chapters {
		if chapter == nil {
			return "", fmt.Errorf("chapter %d is missing", i)
		}
		if _, err := e.AddSection(chapterBody(chapter), chapter.Title, "", ""); err != nil {
			return "", fmt.Errorf("failed to add chapter %q: %w", chapter.Title, err)
		}
	}

	name := sanitizeFilename(fiction.Title)
	if name == "" {
		name = fmt.Sprintf("fiction-%d", fiction.ID)
	}
	outputPath := filepath.Join(p.outputDir, name+".epub")

	if err := e.Write(outputPath); err != nil {
		return "", fmt.Errorf("failed to write EPub: %w", err)
	}
	return outputPath, nil
}

// addCover stages the processed cover under dir. go-epub reads images from
// their source path on Write, so dir must outlive the call.
func (p *EPubBuilder) addCover(e *epub.Epub, dir string, raw []byte) error {
	processed, err := ProcessCover(raw)
	if err != nil {
		return err
	}

	src := filepath.Join(dir, "cover.jpg")
	if err := os.WriteFile(src, processed, 0644); err != nil {
		return fmt.Errorf("failed to stage cover: %w", err)
	}

	internalPath, err := e.AddImage(src, "cover.jpg")
	if err != nil {
		return fmt.Errorf("failed to add cover: %w", err)
	}
	e.SetCover(internalPath, "")
	return nil
}

func chapterBody(chapter *data.Chapter) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<h1>%s</h1>\n", html.EscapeString(chapter.Title)))
	for _, p := range chapter.Paragraphs {
		b.WriteString("<p>")
		b.WriteString(html.EscapeString(p))
		b.WriteString("</p>\n")
	}
	return b.String()
}

// sanitizeFilename removes characters that are invalid in filenames
func sanitizeFilename(name string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	result := name
	for _, char := range invalid {
		result = strings.ReplaceAll(result, char, "_")
	}
	result = strings.TrimSpace(result)
	result = strings.Trim(result, ".")
	return result
}
