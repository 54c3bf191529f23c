package repository

import "errors"

// ErrDuplicate 唯一索引冲突
var ErrDuplicate = errors.New("duplicate key")
