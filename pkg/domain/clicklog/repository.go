package clicklog

import "context"

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=clicklog_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	CreateBatch(ctx context.Context, entries []*Entry) error
	ListRecent(ctx context.Context, accountRef string, limit int) ([]*Entry, error)
}
