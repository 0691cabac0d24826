package appointment

import (
	"context"
	"database/sql"

	"github.com/m04kA/CTC-ScheduleService/pkg/dbmetrics"
)

// Переиспользуем интерфейсы executor'ов из dbmetrics для доступа к БД
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner начинает транзакции.
// Реализуется и *sql.DB, и *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
