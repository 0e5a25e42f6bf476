package booking

import "github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"

// DBExecutor интерфейс чтения из БД. Поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
