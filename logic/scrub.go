package logic

import (
	"regexp"
	"fedi_relay/dto"
	"strings"
)

const (
	maxWordLength  = 40
	maxWordRepeats = 6
	wordSplitRegex = `[\s]+`
	formattingTags = `</?(b|i|strong|em)>`
)

var (
	reWordSplit  = regexp.MustCompile(wordSplitRegex)
	reFormatting = regexp.MustCompile(formattingTags)
)

// removeLongWords drops words longer than the cap. Markup fragments do not
// count against a word's length.
func removeLongWords(content string) string {
	words := reWordSplit.Split(content, -1)
	var kept []string
	for _, word := range words {
		bare := word
		if ix := strings.IndexByte(bare, '<'); ix != -1 {
			bare = bare[:ix]
		}
		if len(bare) > maxWordLength {
			continue
		}
		kept = append(kept, word)
	}
	return strings.Join(kept, " ")
}

// collapseRepeatedWords caps runs of the same word, a cheap guard against
// repetition spam.
func collapseRepeatedWords(content string) string {
	words := reWordSplit.Split(content, -1)
	var kept []string
	prev := ""
	runLen := 0
	for _, word := range words {
		if word == prev {
			runLen++
		} else {
			prev = word
			runLen = 1
		}
		if runLen <= maxWordRepeats {
			kept = append(kept, word)
		}
	}
	return strings.Join(kept, " ")
}

func stripFormatting(content string) string {
	return reFormatting.ReplaceAllString(content, "")
}

// videoToNote reshapes a Video object into the Note form the rest of the
// pipeline understands. The video page URL becomes the note content.
func videoToNote(obj *dto.RawObject) {
	if obj.MustGetString("type") != "Video" {
		return
	}
	obj.Set("type", "Note")
	if _, ok := obj.GetString("content"); !ok {
		url := obj.MustGetString("url")
		if url == "" {
			url = obj.MustGetString("id")
		}
		name := obj.MustGetString("name")
		content := url
		if name != "" {
			content = name + " " + url
		}
		obj.Set("content", content)
	}
}
