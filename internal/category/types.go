package category

// Category is a read-only question grouping such as "Science" or "Art".
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// Labels maps category ids to their display label.
type Labels map[int]string
