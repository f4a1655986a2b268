package bestgram

import (
	"fmt"

	"github.com/go-sql-driver/mysql"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

func NewDBClient(dbConfig *DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open(
		"mysql",
		fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", dbConfig.User, dbConfig.Password, dbConfig.Addr, dbConfig.Port, dbConfig.DB),
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}

type DBConfig struct {
	User     string
	Password string
	Addr     string
	Port     string
	DB       string
}

func NewDBConfig(user, password, addr, port, db string) *DBConfig {
	return &DBConfig{
		User:     user,
		Password: password,
		Addr:     addr,
		Port:     port,
		DB:       db,
	}
}

type StorageRdbImpl struct {
	DB *sqlx.DB
}

func NewStorageRdbImpl(db *sqlx.DB) *StorageRdbImpl {
	return &StorageRdbImpl{
		DB: db,
	}
}

func (s *StorageRdbImpl) AddReport(report Report) error {
	_, err := s.DB.NamedExec(
		`insert into reports (id, gram, distinct_chars, total_symbols, distinct_grams, parse_time, count_time, recorded_at)
		values (:id, :gram, :distinct_chars, :total_symbols, :distinct_grams, :parse_time, :count_time, :recorded_at)`,
		map[string]interface{}{
			"id":             report.ID,
			"gram":           report.Gram,
			"distinct_chars": report.DistinctChars,
			"total_symbols":  report.TotalSymbols,
			"distinct_grams": report.DistinctGrams,
			"parse_time":     int64(report.ParseTime),
			"count_time":     int64(report.CountTime),
			"recorded_at":    report.RecordedAt,
		})
	if err != nil {
		if mysqlErr, ok := err.(*mysql.MySQLError); ok {
			if mysqlErr.Number == 1062 {
				// A report for this run ID is already stored.
				return nil
			}
		}
		return err
	}
	return nil
}

func (s *StorageRdbImpl) GetAllReports() ([]Report, error) {
	var reports []Report
	if err := s.DB.Select(&reports, `select * from reports order by recorded_at`); err != nil {
		return nil, err
	}
	return reports, nil
}
