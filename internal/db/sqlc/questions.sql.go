// Queries from db/query/questions.sql.

package sqlcgen

import (
	"context"
)

const deleteQuestion = `-- name: DeleteQuestion :one
DELETE FROM questions
WHERE id = $1
RETURNING id
`

func (q *Queries) DeleteQuestion(ctx context.Context, id int32) (int32, error) {
	row := q.db.QueryRow(ctx, deleteQuestion, id)
	err := row.Scan(&id)
	return id, err
}

const insertQuestion = `-- name: InsertQuestion :one
INSERT INTO questions (question, answer, category, difficulty)
VALUES ($1, $2, $3, $4)
RETURNING id, question, answer, category, difficulty
`

type InsertQuestionParams struct {
	Question   string
	Answer     string
	Category   int32
	Difficulty int32
}

func (q *Queries) InsertQuestion(ctx context.Context, arg InsertQuestionParams) (Question, error) {
	row := q.db.QueryRow(ctx, insertQuestion,
		arg.Question,
		arg.Answer,
		arg.Category,
		arg.Difficulty,
	)
	var i Question
	err := row.Scan(
		&i.ID,
		&i.Question,
		&i.Answer,
		&i.Category,
		&i.Difficulty,
	)
	return i, err
}

const listQuestions = `-- name: ListQuestions :many
SELECT id, question, answer, category, difficulty
FROM questions
ORDER BY id
`

func (q *Queries) ListQuestions(ctx context.Context) ([]Question, error) {
	rows, err := q.db.Query(ctx, listQuestions)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Question
	for rows.Next() {
		var i Question
		if err := rows.Scan(
			&i.ID,
			&i.Question,
			&i.Answer,
			&i.Category,
			&i.Difficulty,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listQuestionsByCategory = `-- name: ListQuestionsByCategory :many
SELECT id, question, answer, category, difficulty
FROM questions
WHERE category = $1
ORDER BY id
`

func (q *Queries) ListQuestionsByCategory(ctx context.Context, category int32) ([]Question, error) {
	rows, err := q.db.Query(ctx, listQuestionsByCategory, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Question
	for rows.Next() {
		var i Question
		if err := rows.Scan(
			&i.ID,
			&i.Question,
			&i.Answer,
			&i.Category,
			&i.Difficulty,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const searchQuestions = `-- name: SearchQuestions :many
SELECT id, question, answer, category, difficulty
FROM questions
WHERE strpos(lower(question), lower($1::text)) > 0
ORDER BY id
`

func (q *Queries) SearchQuestions(ctx context.Context, term string) ([]Question, error) {
	rows, err := q.db.Query(ctx, searchQuestions, term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Question
	for rows.Next() {
		var i Question
		if err := rows.Scan(
			&i.ID,
			&i.Question,
			&i.Answer,
			&i.Category,
			&i.Difficulty,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
