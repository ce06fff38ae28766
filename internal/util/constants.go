package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// CategoryAll and DifficultyAll disable the corresponding quiz filter.
const (
	CategoryAll   = "all"
	DifficultyAll = "all"
)
