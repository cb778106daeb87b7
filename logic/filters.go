package logic

import (
	"bufio"
	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"os"
	"fedi_relay/shared"
	"strings"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_filters.go -package mocks fedi_relay/logic IFilters

// IFilters holds the boundary predicates that decide whether remote content
// is allowed in at all.
type IFilters interface {
	IsFiltered(text string) bool
	IsBlocked(nickname, domain string) bool
	IsBlockedDomain(domain string) bool
	DangerousMarkup(text string) bool
	InvalidCiphertext(text string) bool
	IsQuestionFiltered(content string, options []string) bool
}

// Elements whose mere presence makes remote markup dangerous.
const dangerousSelector = "script, iframe, object, embed, form, meta, style, canvas"

var ciphertextMarkers = []string{
	"-----BEGIN PGP MESSAGE-----",
	"-----BEGIN MESSAGE-----",
}

type filters struct {
	cfg       *shared.Config
	logger    shared.ILogger
	sanitizer *bluemonday.Policy
}

func NewFilters(cfg *shared.Config, logger shared.ILogger) IFilters {
	return &filters{cfg, logger, bluemonday.StrictPolicy()}
}

// readListFile scans a one-entry-per-line list file. A missing file is an
// empty list, not an error.
func (f *filters) matchInListFile(fileName string, match func(line string) bool) bool {
	if fileName == "" {
		return false
	}
	readFile, err := os.Open(fileName)
	if err != nil {
		return false
	}
	defer readFile.Close()
	fileScanner := bufio.NewScanner(readFile)
	fileScanner.Split(bufio.ScanLines)
	for fileScanner.Scan() {
		line := strings.TrimSpace(fileScanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if match(line) {
			return true
		}
	}
	return false
}

// IsFiltered matches against the text content only, so a filtered word
// cannot hide behind inline markup.
func (f *filters) IsFiltered(text string) bool {
	lower := strings.ToLower(f.plainText(text))
	return f.matchInListFile(f.cfg.FilteredWordsFile, func(line string) bool {
		return strings.Contains(lower, strings.ToLower(line))
	})
}

func (f *filters) IsBlocked(nickname, domain string) bool {
	if f.IsBlockedDomain(domain) {
		return true
	}
	handle := strings.ToLower(nickname + "@" + domain)
	return f.matchInListFile(f.cfg.BlockedActorsFile, func(line string) bool {
		return strings.ToLower(line) == handle
	})
}

func (f *filters) IsBlockedDomain(domain string) bool {
	domain = strings.ToLower(domain)
	return f.matchInListFile(f.cfg.BlockedDomainsFile, func(line string) bool {
		return strings.ToLower(line) == domain
	})
}

func (f *filters) DangerousMarkup(text string) bool {
	if strings.Contains(strings.ToLower(text), "javascript:") {
		return true
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		// Unparseable markup does not get the benefit of the doubt
		return true
	}
	return doc.Find(dangerousSelector).Length() > 0
}

func (f *filters) InvalidCiphertext(text string) bool {
	for _, marker := range ciphertextMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

func (f *filters) IsQuestionFiltered(content string, options []string) bool {
	if f.IsFiltered(content) {
		return true
	}
	for _, opt := range options {
		if f.IsFiltered(opt) {
			return true
		}
	}
	return false
}

// plainText strips all markup; used when only the words matter.
func (f *filters) plainText(text string) string {
	return f.sanitizer.Sanitize(text)
}
