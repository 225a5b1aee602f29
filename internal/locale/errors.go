package locale

import "errors"

var (
	ErrNoCatalogs     = errors.New("locale: no catalog files found")
	ErrInvalidCatalog = errors.New("locale: invalid catalog file")
)
