package repository

import (
	"github.com/snackhub/snackshop/internal/adapter/storage"
)

const defaultPageSize = 10

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

func pageBounds(page, size uint64) (limit, offset uint64) {
	if size == 0 {
		size = defaultPageSize
	}
	if page == 0 {
		page = 1
	}
	return size, (page - 1) * size
}
