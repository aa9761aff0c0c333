package model

// Problem represents a LeetCode problem as returned by the GraphQL API.
type Problem struct {
	Title            string
	Slug             string
	Difficulty       string
	Likes            int
	Dislikes         int
	ExampleTestcases string
	Link             string
	// Content is the raw HTML statement.
	Content string
}

// Description is the plain-text rendering of a problem handed back to clients.
type Description struct {
	Title       string
	Description string
}
