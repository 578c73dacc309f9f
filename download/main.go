package main

import (
	"database/sql"
	"fmt"
	"github.com/cheggaaa/pb/v3"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/kamstrup/intmap"
	"log"
	"os"
	"path/filepath"
	"slices"
	"time"
)

// Downloads every recorded Binary Tetris playthrough into one folder per
// user. Database credentials come from the environment, or from a .env file
// in the current folder:
//
//	BINARY_TETRIS_DBUSER=...
//	BINARY_TETRIS_DBPASSWORD=...
//	BINARY_TETRIS_DBADDR=host:3306
//	BINARY_TETRIS_DBNAME=...
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file, using the environment as is: %v", err)
	}
	DownloadRecordings()
}

func DownloadRecordings() {
	db := ConnectToDbSql()
	defer func(db *sql.DB) { Check(db.Close()) }(db)

	rows, err := db.Query("SELECT " +
		"start_moment, " +
		"COALESCE(end_moment, start_moment), " +
		"user, " +
		"release_version, " +
		"simulation_version, " +
		"input_version, " +
		"id, " +
		"playthrough " +
		"FROM binary_tetris_playthroughs")
	Check(err)
	defer func(rows *sql.Rows) { Check(rows.Close()) }(rows)

	dbRows := []dbRow{}
	for rows.Next() {
		row := dbRow{}
		err = rows.Scan(&row.startMoment, &row.endMoment, &row.user,
			&row.releaseVersion, &row.simulationVersion, &row.inputVersion,
			&row.id, &row.data)
		Check(err)
		dbRows = append(dbRows, row)
	}
	Check(rows.Err())

	// Count playthroughs per simulation version, so I know how many of them
	// the current build can still replay.
	perVersion := intmap.New[int64, int64](8)
	bar := pb.StartNew(len(dbRows))
	for i := range dbRows {
		r := &dbRows[i]
		if len(r.data) == 0 {
			// The game registers the id before uploading the recording. An
			// upload that never arrived leaves an empty row.
			bar.Increment()
			continue
		}
		Check(os.MkdirAll(r.user, 0755))
		WriteFile(filepath.Join(r.user, r.Filename()), r.data)

		n, _ := perVersion.Get(r.simulationVersion)
		perVersion.Put(r.simulationVersion, n+1)
		bar.Increment()
	}
	bar.Finish()

	var versions []int64
	perVersion.ForEach(func(version int64, _ int64) bool {
		versions = append(versions, version)
		return true
	})
	slices.Sort(versions)
	for _, version := range versions {
		n, _ := perVersion.Get(version)
		log.Printf("simulation version %d: %d playthroughs", version, n)
	}
}

// Filename follows the pattern 20250131-235959.bintetris-<sim>-<input>, so
// a playthrough can be matched with the build that is able to replay it.
func (r *dbRow) Filename() string {
	m := r.startMoment
	return fmt.Sprintf("%d%02d%02d-%02d%02d%02d.bintetris-%d-%d",
		m.Year(), m.Month(), m.Day(), m.Hour(), m.Minute(), m.Second(),
		r.simulationVersion, r.inputVersion)
}

func ConnectToDbSql() *sql.DB {
	cfg := mysql.Config{
		User:                 os.Getenv("BINARY_TETRIS_DBUSER"),
		Passwd:               os.Getenv("BINARY_TETRIS_DBPASSWORD"),
		Net:                  "tcp",
		Addr:                 os.Getenv("BINARY_TETRIS_DBADDR"),
		DBName:               os.Getenv("BINARY_TETRIS_DBNAME"),
		AllowNativePasswords: true,
		ParseTime:            true,
	}

	db, err := sql.Open("mysql", cfg.FormatDSN())
	Check(err)
	err = db.Ping()
	Check(err)
	return db
}

func Check(e error) {
	if e != nil {
		panic(e)
	}
}

type dbRow struct {
	startMoment       time.Time
	endMoment         time.Time
	user              string
	releaseVersion    int64
	simulationVersion int64
	inputVersion      int64
	id                uuid.UUID
	data              []byte
}

func WriteFile(name string, data []byte) {
	err := os.WriteFile(name, data, 0644)
	Check(err)
}
