package shop

import "github.com/m04kA/SMC-TimeslotService/pkg/dbmetrics"

// DBExecutor интерфейс для чтения из БД
// Поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
