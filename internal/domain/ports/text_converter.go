package ports

// TextConverter renders problem HTML as plain text.
type TextConverter interface {
	Convert(html string) string
}
