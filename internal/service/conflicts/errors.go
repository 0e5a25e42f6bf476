package conflicts

import "errors"

var (
	// ErrFetchFailed не удалось прочитать бронирования или исключения
	ErrFetchFailed = errors.New("conflicts: fetch failed")
)
