package domain

import "errors"

var (
	ErrFeedNotFound      = errors.New("feed not found")
	ErrFeedAlreadyExists = errors.New("feed already exists")

	ErrArticleNotFound = errors.New("article not found")

	ErrSyncConfigNotFound = errors.New("sync config not found")
)
