package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Question is the wire shape of a stored trivia question.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CreateInput carries a new question. Pointer fields distinguish an absent
// key from a zero value; all four are required.
type CreateInput struct {
	Question   *string  `json:"question" validate:"required"`
	Answer     *string  `json:"answer" validate:"required"`
	Category   *FlexInt `json:"category" validate:"required"`
	Difficulty *FlexInt `json:"difficulty" validate:"required"`
}

// FlexInt decodes a JSON number or a numeric string. Browser forms commonly
// post select values as strings.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("flexint: %q is not an integer", s)
		}
		*f = FlexInt(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexInt(n)
	return nil
}
