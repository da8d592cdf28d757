package service

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"magicwriting/internal/library"
	"magicwriting/internal/logger"
	"magicwriting/internal/models"
)

// Export formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ExportData is a snapshot of the content tables
type ExportData struct {
	Version          string                        `json:"version" yaml:"version"`
	ExportedAt       time.Time                     `json:"exported_at" yaml:"exported_at"`
	Theme            models.Theme                  `json:"theme,omitempty" yaml:"theme,omitempty"`
	Vocabulary       []models.VocabularyEntry      `json:"vocabulary" yaml:"vocabulary"`
	Phrases          []models.PhraseEntry          `json:"phrases" yaml:"phrases"`
	SentencePatterns []models.SentencePatternEntry `json:"sentence_patterns" yaml:"sentence_patterns"`
}

// SearchResult is what the web pages show for one topic
type SearchResult struct {
	Topic            string                        `json:"topic" yaml:"topic"`
	Theme            models.Theme                  `json:"theme" yaml:"theme"`
	Vocabulary       []models.VocabularyEntry      `json:"vocabulary" yaml:"vocabulary"`
	Phrases          []models.PhraseEntry          `json:"phrases" yaml:"phrases"`
	SentencePatterns []models.SentencePatternEntry `json:"sentence_patterns" yaml:"sentence_patterns"`
}

// ExportService dumps the content library
type ExportService struct {
	log *logger.Logger
	now func() time.Time
}

// NewExportService creates a new export service
func NewExportService(log *logger.Logger) *ExportService {
	if log == nil {
		log = logger.NewNop()
	}
	return &ExportService{log: log, now: time.Now}
}

// Snapshot collects the tables. An empty theme exports everything; otherwise the
// entries are picked the way the browse pages pick them.
func (s *ExportService) Snapshot(theme models.Theme) *ExportData {
	data := &ExportData{
		Version:    "1.0",
		ExportedAt: s.now().UTC(),
		Theme:      theme,
	}
	if theme == "" {
		data.Vocabulary = library.AllVocabulary()
		data.Phrases = library.AllPhrases()
		data.SentencePatterns = library.AllSentencePatterns()
		return data
	}
	data.Vocabulary = library.VocabularyForTheme(theme)
	data.Phrases = library.PhrasesForTheme(theme)
	data.SentencePatterns = library.SentencePatternsForTheme(theme)
	return data
}

// Search resolves topic and returns the matching content
func (s *ExportService) Search(topic string) *SearchResult {
	return &SearchResult{
		Topic:            topic,
		Theme:            library.ResolveTheme(topic),
		Vocabulary:       library.SearchVocabulary(topic),
		Phrases:          library.SearchPhrases(topic),
		SentencePatterns: library.SearchSentencePatterns(topic),
	}
}

// Export writes a snapshot to a file
func (s *ExportService) Export(outputPath, format string, theme models.Theme) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := s.ExportToWriter(file, format, theme); err != nil {
		return err
	}
	s.log.Info("Content library exported", "path", outputPath, "format", format)
	return nil
}

// ExportToWriter encodes a snapshot to w
func (s *ExportService) ExportToWriter(w io.Writer, format string, theme models.Theme) error {
	data := s.Snapshot(theme)
	if err := Encode(w, format, data); err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	s.log.Debug("Exported",
		"vocabulary", len(data.Vocabulary),
		"phrases", len(data.Phrases),
		"sentence_patterns", len(data.SentencePatterns),
	)
	return nil
}

// Encode writes v as indented JSON or YAML
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case FormatJSON, "":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case FormatYAML, "yml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
