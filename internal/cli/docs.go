package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	builtindocs "github.com/isobus-tools/vtpool/docs"
	"github.com/isobus-tools/vtpool/internal/ui"
)

var (
	docsSearchLimit   int
	docsSearchSection string

	docsDisplayContext = ui.NewDisplayContext
	docsMarkdownRender = ui.RenderMarkdown
)

type docsSectionView struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	TopicCount int    `json:"topic_count"`
}

type docsTopicView struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type docsSearchMatchView struct {
	Section string `json:"section"`
	Topic   string `json:"topic"`
	Line    int    `json:"line"`
	Snippet string `json:"snippet"`
}

type docsTopicRecord struct {
	Section string
	ID      string
	Title   string
	FSPath  string
}

var docsCmd = &cobra.Command{
	Use:   "docs [section] [topic]",
	Short: "Browse long-form Markdown documentation",
	Long: `Browse long-form documentation bundled into the vtp binary.

Use this command for guides and reference material; for command-level
usage, use 'vtp help <command>'.

Examples:
  vtp docs
  vtp docs guide
  vtp docs guide getting-started
  vtp docs search "soft key"`,
	Args: cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sections, err := listDocsSections()
		if err != nil {
			return handleError(ErrInternal, err, "Rebuild vtp so bundled docs are available")
		}

		if len(args) == 0 {
			return outputDocsSections(sections)
		}

		section, ok := findDocsSection(sections, args[0])
		if !ok {
			ids := make([]string, len(sections))
			for i, s := range sections {
				ids[i] = s.ID
			}
			return handleErrorMsg(ErrFileNotFound,
				fmt.Sprintf("no docs section %q", args[0]),
				fmt.Sprintf("Sections: %s", strings.Join(ids, ", ")))
		}

		topics, err := listDocsTopics(section.ID)
		if err != nil {
			return handleError(ErrInternal, err, "")
		}

		if len(args) == 1 {
			return outputDocsTopics(section, topics)
		}

		topic, ok := findDocsTopic(topics, args[1])
		if !ok {
			ids := make([]string, len(topics))
			for i, t := range topics {
				ids[i] = t.ID
			}
			return handleErrorMsg(ErrFileNotFound,
				fmt.Sprintf("no topic %q in section %q", args[1], section.ID),
				fmt.Sprintf("Topics: %s", strings.Join(ids, ", ")))
		}

		return outputDocsTopicContent(topic)
	},
}

var docsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the bundled documentation",
	Long: `Searches every bundled Markdown page for a case-insensitive match.

Examples:
  vtp docs search "object id"
  vtp docs search macro --section reference
  vtp docs search naming --limit 5`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.TrimSpace(strings.Join(args, " "))
		if query == "" {
			return handleErrorMsg(ErrMissingArgument, "specify a search query", "Usage: vtp docs search <query>")
		}
		if docsSearchLimit < 1 {
			return handleErrorMsg(ErrInvalidInput, "--limit must be >= 1", "")
		}

		matches, err := searchDocs(query, docsSearchSection, docsSearchLimit)
		if err != nil {
			return handleError(ErrInvalidInput, err, "Run 'vtp docs' to list sections")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"query":   query,
				"matches": matches,
			}, &Meta{Count: len(matches)})
			return nil
		}

		if len(matches) == 0 {
			fmt.Printf("No docs matched %q.\n", query)
			return nil
		}
		fmt.Printf("Matches for %q (%d):\n", query, len(matches))
		for _, m := range matches {
			fmt.Printf("- %s/%s:%d %s\n", m.Section, m.Topic, m.Line, m.Snippet)
		}
		return nil
	},
}

func outputDocsSections(sections []docsSectionView) error {
	if isJSONOutput() {
		outputSuccess(map[string]interface{}{
			"sections":       sections,
			"command_docs":   "vtp help <command>",
			"navigation_tip": "vtp docs <section> <topic>",
		}, &Meta{Count: len(sections)})
		return nil
	}

	fmt.Println("Documentation sections:")
	for _, s := range sections {
		sectionCommand := fmt.Sprintf("vtp docs %s", s.ID)
		fmt.Printf("  %-24s %s (%d topics)\n", sectionCommand, s.Title, s.TopicCount)
	}
	fmt.Println()
	fmt.Println("General docs commands:")
	fmt.Println("  vtp docs <section>            List topics in a section")
	fmt.Println("  vtp docs <section> <topic>    Open a docs topic")
	fmt.Println("  vtp docs search <query>       Search docs")
	fmt.Println("  vtp help <command>            Command docs")
	return nil
}

func outputDocsTopics(section docsSectionView, topics []docsTopicRecord) error {
	if isJSONOutput() {
		items := make([]docsTopicView, 0, len(topics))
		for _, t := range topics {
			items = append(items, docsTopicView{ID: t.ID, Title: t.Title})
		}
		outputSuccess(map[string]interface{}{
			"section": section.ID,
			"title":   section.Title,
			"topics":  items,
		}, &Meta{Count: len(items)})
		return nil
	}

	fmt.Printf("Topics in %s [%s]:\n", section.Title, section.ID)
	if len(topics) == 0 {
		fmt.Println("  (no topics)")
		return nil
	}
	for _, t := range topics {
		topicCommand := fmt.Sprintf("vtp docs %s %s", section.ID, t.ID)
		fmt.Printf("  %-40s %s\n", topicCommand, t.Title)
	}
	return nil
}

func outputDocsTopicContent(topic docsTopicRecord) error {
	content, err := fs.ReadFile(builtindocs.FS, topic.FSPath)
	if err != nil {
		return handleError(ErrFileReadError, err, "")
	}

	if isJSONOutput() {
		outputSuccess(map[string]interface{}{
			"section": topic.Section,
			"topic":   topic.ID,
			"title":   topic.Title,
			"content": string(content),
		}, nil)
		return nil
	}

	rendered := string(content)
	display := docsDisplayContext()
	if display.IsTTY {
		if out, renderErr := docsMarkdownRender(rendered, display.TermWidth); renderErr == nil {
			rendered = out
		}
	}
	fmt.Print(rendered)
	if !strings.HasSuffix(rendered, "\n") {
		fmt.Println()
	}
	return nil
}

// listDocsSections discovers sections by walking the embedded tree: every
// top-level directory is a section.
func listDocsSections() ([]docsSectionView, error) {
	entries, err := fs.ReadDir(builtindocs.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("read bundled docs: %w", err)
	}

	var sections []docsSectionView
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		topics, err := listDocsTopics(entry.Name())
		if err != nil {
			return nil, err
		}
		sections = append(sections, docsSectionView{
			ID:         entry.Name(),
			Title:      titleFromSlug(entry.Name()),
			TopicCount: len(topics),
		})
	}
	sort.Slice(sections, func(i, j int) bool { return sections[i].ID < sections[j].ID })
	return sections, nil
}

func listDocsTopics(section string) ([]docsTopicRecord, error) {
	entries, err := fs.ReadDir(builtindocs.FS, section)
	if err != nil {
		return nil, fmt.Errorf("read docs section %q: %w", section, err)
	}

	var records []docsTopicRecord
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".md")
		fsPath := path.Join(section, entry.Name())
		records = append(records, docsTopicRecord{
			Section: section,
			ID:      id,
			Title:   extractDocsTitle(fsPath, id),
			FSPath:  fsPath,
		})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

// extractDocsTitle takes the first level-one heading, falling back to a
// title derived from the slug.
func extractDocsTitle(fsPath, slug string) string {
	content, err := fs.ReadFile(builtindocs.FS, fsPath)
	if err != nil {
		return titleFromSlug(slug)
	}
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if after, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(after)
		}
	}
	return titleFromSlug(slug)
}

func titleFromSlug(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func findDocsSection(sections []docsSectionView, raw string) (docsSectionView, bool) {
	want := strings.ToLower(strings.TrimSpace(raw))
	for _, s := range sections {
		if strings.ToLower(s.ID) == want {
			return s, true
		}
	}
	return docsSectionView{}, false
}

func findDocsTopic(topics []docsTopicRecord, raw string) (docsTopicRecord, bool) {
	want := strings.ToLower(strings.TrimSpace(strings.TrimSuffix(raw, ".md")))
	for _, t := range topics {
		if strings.ToLower(t.ID) == want {
			return t, true
		}
	}
	return docsTopicRecord{}, false
}

func searchDocs(query, sectionFilter string, limit int) ([]docsSearchMatchView, error) {
	sections, err := listDocsSections()
	if err != nil {
		return nil, err
	}
	if sectionFilter != "" {
		section, ok := findDocsSection(sections, sectionFilter)
		if !ok {
			return nil, fmt.Errorf("no docs section %q", sectionFilter)
		}
		sections = []docsSectionView{section}
	}

	needle := strings.ToLower(query)
	var matches []docsSearchMatchView
	for _, section := range sections {
		topics, err := listDocsTopics(section.ID)
		if err != nil {
			return nil, err
		}
		for _, topic := range topics {
			content, err := fs.ReadFile(builtindocs.FS, topic.FSPath)
			if err != nil {
				continue
			}
			scanner := bufio.NewScanner(bytes.NewReader(content))
			lineNo := 0
			for scanner.Scan() {
				lineNo++
				line := scanner.Text()
				if !strings.Contains(strings.ToLower(line), needle) {
					continue
				}
				matches = append(matches, docsSearchMatchView{
					Section: section.ID,
					Topic:   topic.ID,
					Line:    lineNo,
					Snippet: strings.TrimSpace(line),
				})
				if len(matches) >= limit {
					return matches, nil
				}
			}
		}
	}
	return matches, nil
}

func init() {
	docsSearchCmd.Flags().IntVar(&docsSearchLimit, "limit", 20, "Maximum matches to return")
	docsSearchCmd.Flags().StringVar(&docsSearchSection, "section", "", "Restrict the search to one section")
	docsCmd.AddCommand(docsSearchCmd)
	rootCmd.AddCommand(docsCmd)
}
