package table

import "github.com/m04kA/SMC-ReservationService/pkg/txmanager"

// DBExecutor интерфейс для выполнения запросов (поддерживает *sql.DB и *sql.Tx)
type DBExecutor = txmanager.Executor
