package hexview

// CommentProvider supplies the optional comment column. Any type with a
// single Comment method qualifies; a nil provider disables the column
// silently.
type CommentProvider interface {
	Comment(address uint64, wordSize int) string
}

// CommentFunc adapts a plain function into a CommentProvider.
type CommentFunc func(address uint64, wordSize int) string

func (f CommentFunc) Comment(address uint64, wordSize int) string {
	return f(address, wordSize)
}
