package sqlcgen

type Category struct {
	ID   int32
	Type string
}

type Question struct {
	ID         int32
	Question   string
	Answer     string
	Category   int32
	Difficulty int32
}
