package repository

// ListOptions holds the parameters for listing stored tasks.
type ListOptions struct {
	Limit  int // 0 means no limit
	Offset int // Pagination offset
}
