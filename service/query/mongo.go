package query

/*
	Package `query` is a thin layer over https://github.com/mongodb/mongo-go-driver
	covering the calls the auction persister needs.
*/

import (
	"fmt"

	"github.com/x-xyz/gbm/base/ctx"
	"github.com/x-xyz/gbm/domain"
)

var (
	// ErrNotFound is mongo document not found error
	ErrNotFound = fmt.Errorf("document not found")
)

// Mongo abstract the mongo layer.
type Mongo interface {
	// FindOne get data from the table
	FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error

	// Upsert replaces the document matching selector, inserting it when absent.
	Upsert(context ctx.Ctx, table domain.Table, selector, update interface{}) error

	// Search sort order by `sort` argument (ex "timestamp" ascending, or "-timestamp" descending)
	// limit 0 means no limit.
	Search(context ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error

	// RunWithTransaction runs `run` inside a session transaction. Writes made
	// with the ctx handed to run commit or abort together.
	RunWithTransaction(context ctx.Ctx, run func(ctx.Ctx) error) error
}
