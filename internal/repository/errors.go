package repository

import "errors"

var (
	ErrQueryUser     = errors.New("repository: failed to query user")
	ErrDeleteUser    = errors.New("repository: failed to delete user")
	ErrQueryContent  = errors.New("repository: failed to query content")
	ErrQueryComments = errors.New("repository: failed to query comments")
)
