package database

import (
	client "fieldforce/internal/database/client"
	fluentdRepo "fieldforce/internal/database/fluentd/repository"
	mongoRepo "fieldforce/internal/database/mongodb/repository"
	redisRepo "fieldforce/internal/database/redis/repository"

	"github.com/google/wire"
)

// ProviderSet 定義所有 DB Client 的依賴
var ProviderSet = wire.NewSet(
	client.NewMongoClient,
	client.NewRedisClient,
	client.NewFluentdClient,
	mongoRepo.ProviderSet,
	redisRepo.ProviderSet,
	fluentdRepo.ProviderSet,
)
