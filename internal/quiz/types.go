package quiz

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/gokatarajesh/trivia-api/internal/question"
)

// AllCategories selects questions from every category.
const AllCategories = 0

// CategorySelector is the quiz_category field. Clients send either an object
// such as {"id": 3, "type": "Geography"} or a bare id.
type CategorySelector struct {
	ID   int
	Type string
}

func (c *CategorySelector) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			ID   *question.FlexInt `json:"id"`
			Type string            `json:"type"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if obj.ID == nil {
			return errors.New("quiz_category: id is required")
		}
		c.ID = int(*obj.ID)
		c.Type = obj.Type
		return nil
	}

	var id question.FlexInt
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	c.ID = int(id)
	return nil
}

// Request asks for the next question of a client tracked quiz session.
// Both fields must be present; previous_questions may be an empty list.
type Request struct {
	PreviousQuestions []question.FlexInt `json:"previous_questions" validate:"required"`
	QuizCategory      *CategorySelector  `json:"quiz_category" validate:"required"`
}
