package collection

import "errors"

var (
	ErrCollectionNotFound    = errors.New("collection not found")
	ErrFailedGetCollection   = errors.New("failed to get collection")
	ErrFailedListCollections = errors.New("failed to list collections")
)
