package catalog

import "github.com/m04kA/SMC-BannerCaseService/pkg/dbmetrics"

// DBExecutor интерфейс выполнения запросов
type DBExecutor = dbmetrics.DBExecutor
