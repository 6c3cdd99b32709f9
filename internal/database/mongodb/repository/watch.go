package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// watchFullList 以 change stream 實作「整份列表快照」的訂閱：每次上游變更
// 都重新查詢完整列表並送出，不做增量 diff。ctx 取消時關閉 stream 與 channel。
func watchFullList[T any](
	contextValue context.Context,
	collection *mongo.Collection,
	pipeline mongo.Pipeline,
	requery func(context.Context) ([]T, error),
) (<-chan []T, error) {
	stream, watchError := collection.Watch(contextValue, pipeline,
		options.ChangeStream().SetFullDocument(options.UpdateLookup))
	if watchError != nil {
		return nil, watchError
	}

	initial, queryError := requery(contextValue)
	if queryError != nil {
		_ = stream.Close(context.Background())
		return nil, queryError
	}

	snapshots := make(chan []T, 1)
	snapshots <- initial

	go func() {
		defer close(snapshots)
		defer func() { _ = stream.Close(context.Background()) }()

		for stream.Next(contextValue) {
			snapshot, requeryError := requery(contextValue)
			if requeryError != nil {
				return
			}
			select {
			case snapshots <- snapshot:
			case <-contextValue.Done():
				return
			}
		}
	}()

	return snapshots, nil
}
