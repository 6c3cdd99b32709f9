package repository

import (
	"context"
	"testing"

	"fieldforce/internal/core"

	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// 頁碼對外是從 1 起算，第一頁必須從最新一筆開始
func TestEmployeeListFirstPageStartsAtNewest(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("page 1 issues find with skip 0", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "fieldforce.employees", mtest.FirstBatch))

		repository := &EmployeeRepository{collection: mt.Coll}
		if _, err := repository.List(context.Background(), core.ListOptions{Page: 1, Size: 20}); err != nil {
			mt.Fatalf("list: %v", err)
		}

		started := mt.GetStartedEvent()
		if started == nil || started.CommandName != "find" {
			mt.Fatalf("expected a find command, got %+v", started)
		}
		skip, lookupError := started.Command.LookupErr("skip")
		if lookupError != nil {
			mt.Fatalf("find command carries no skip: %v", lookupError)
		}
		if skip.Int64() != 0 {
			mt.Fatalf("page 1 must not skip documents, got skip=%d", skip.Int64())
		}
		limit, lookupError := started.Command.LookupErr("limit")
		if lookupError != nil || limit.Int64() != 20 {
			mt.Fatalf("expected limit 20, got %v (%v)", limit, lookupError)
		}
	})

	mt.Run("page 2 skips exactly one page", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "fieldforce.employees", mtest.FirstBatch))

		repository := &EmployeeRepository{collection: mt.Coll}
		if _, err := repository.List(context.Background(), core.ListOptions{Page: 2, Size: 20}); err != nil {
			mt.Fatalf("list: %v", err)
		}

		started := mt.GetStartedEvent()
		skip, lookupError := started.Command.LookupErr("skip")
		if lookupError != nil || skip.Int64() != 20 {
			mt.Fatalf("expected skip 20 for page 2, got %v (%v)", skip, lookupError)
		}
	})
}
