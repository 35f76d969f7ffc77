package events

import "github.com/sudeal/Nokta-sub000/pkg/dbmetrics"

// DBExecutor переиспользуем интерфейс из dbmetrics (подходит *sql.DB и *dbmetrics.DB)
type DBExecutor = dbmetrics.DBExecutor
