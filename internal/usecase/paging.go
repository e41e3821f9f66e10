package usecase

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// normalizePage applies the listing defaults: limit 0 means the default
// window, negative values and oversized limits are rejected.
func normalizePage(offset, limit int) (int, int, error) {
	if limit == 0 {
		limit = defaultListLimit
	}
	if limit < 0 || limit > maxListLimit {
		return 0, 0, ErrInvalidInput
	}
	if offset < 0 {
		return 0, 0, ErrInvalidInput
	}
	return offset, limit, nil
}
