package availability

import (
	"github.com/m04kA/booking-calendar/pkg/dbmetrics"
)

// DBExecutor интерфейс для выполнения запросов (поддерживает транзакции через контекст)
type DBExecutor = dbmetrics.DBExecutor
