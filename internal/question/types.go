package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Question is the trivia record delivered to clients.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Category groups questions under a display name.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// CategoryMap renders categories as a JSON object of id -> type, keys in id order.
type CategoryMap []Category

func (m CategoryMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(`"` + strconv.Itoa(c.ID) + `":`)
		typ, err := json.Marshal(c.Type)
		if err != nil {
			return nil, err
		}
		buf.Write(typ)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// FlexibleInt decodes a JSON number or a numeric string. The web client sends
// category ids as object keys, so both forms show up. null and "" decode to 0.
type FlexibleInt int

func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*f = 0
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = 0
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid integer %q", s)
		}
		*f = FlexibleInt(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid integer %s", raw)
	}
	*f = FlexibleInt(n)
	return nil
}

// ListRequest selects a page of the id-ordered question list. CategoryID 0 means unfiltered.
type ListRequest struct {
	Page       int
	CategoryID int
}

// QuestionPage is one page of questions plus the listing context.
type QuestionPage struct {
	Questions       []Question
	TotalQuestions  int
	CurrentCategory *Category
	Categories      []Category
}

// CreateRequest is the payload for adding a question.
type CreateRequest struct {
	Question   string      `json:"question"`
	Answer     string      `json:"answer"`
	Category   FlexibleInt `json:"category"`
	Difficulty FlexibleInt `json:"difficulty"`
}

// SearchRequest is the payload for a substring search over question text.
type SearchRequest struct {
	SearchTerm *string `json:"searchTerm"`
}

type SearchResult struct {
	Questions      []Question
	TotalQuestions int
}

type CategoryQuestions struct {
	Category       Category
	Questions      []Question
	TotalQuestions int
}
