// Copyright (c) 2020 Siemens AG
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
//
// Author(s): Jonas Plum

package report

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"crawshaw.io/sqlite"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const timelineApplicationID = 1953261668
const timelineVersion = 1

// TimelineFile is the name of the timeline database in TimelineDir.
const TimelineFile = "tl.db"

// Timeline collects one entry per decoded row in a sqlite database that is
// shared by all artifacts of a run. The database is created with the first
// entry, runs without rows leave no file behind.
type Timeline struct {
	name string
	conn *sqlite.Conn
	mu   sync.Mutex
	run  string
}

// NewTimeline returns a timeline for the database at name without opening it.
func NewTimeline(name string) *Timeline {
	return &Timeline{name: name, run: uuid.New().String()}
}

// OpenTimeline opens or creates the timeline database at name.
func OpenTimeline(name string) (*Timeline, error) {
	t := NewTimeline(name)
	if err := t.open(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Timeline) open() error {
	if t.conn != nil {
		return nil
	}
	conn, err := openTimeline(t.name)
	if err != nil {
		return err
	}
	t.conn = conn
	return nil
}

func openTimeline(name string) (*sqlite.Conn, error) {
	exists := true
	if _, err := os.Stat(name); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		exists = false
	}

	if !exists {
		if err := os.MkdirAll(filepath.Dir(name), 0750); err != nil {
			return nil, err
		}
		log.Printf("Creating timeline %s", name)
	}

	conn, err := sqlite.OpenConn(name, sqlite.SQLITE_OPEN_READWRITE|sqlite.SQLITE_OPEN_CREATE|sqlite.SQLITE_OPEN_NOMUTEX)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open timeline %s", name)
	}

	if exists {
		applicationID, err := pragma(conn, "application_id")
		if err != nil {
			conn.Close()
			return nil, err
		}
		if applicationID != 0 && applicationID != timelineApplicationID {
			conn.Close()
			msg := "wrong file format (application_id is %d, requires %d)"
			return nil, errors.Errorf(msg, applicationID, timelineApplicationID)
		}
	} else {
		if err := setPragma(conn, "application_id", timelineApplicationID); err != nil {
			conn.Close()
			return nil, err
		}
		if err := setPragma(conn, "user_version", timelineVersion); err != nil {
			conn.Close()
			return nil, err
		}
	}

	if err := exec(conn, "CREATE TABLE IF NOT EXISTS data (key TEXT, activity TEXT, datalist TEXT, run TEXT)"); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

// Run returns the id that marks the entries of this timeline session.
func (t *Timeline) Run() string {
	return t.run
}

func pragma(conn *sqlite.Conn, name string) (int64, error) {
	stmt, err := conn.Prepare("PRAGMA " + name)
	if err != nil {
		return 0, err
	}
	if _, err = stmt.Step(); err != nil {
		return 0, err
	}
	i := stmt.GetInt64(name)
	return i, stmt.Finalize()
}

func setPragma(conn *sqlite.Conn, name string, i int64) error {
	stmt, err := conn.Prepare("PRAGMA " + name + " = " + fmt.Sprint(i))
	if err != nil {
		return err
	}
	if _, err = stmt.Step(); err != nil {
		return err
	}
	return stmt.Finalize()
}

func exec(conn *sqlite.Conn, query string) error {
	stmt, err := conn.Prepare(query)
	if err != nil {
		return err
	}
	if _, err = stmt.Step(); err != nil {
		return err
	}
	return stmt.Finalize()
}

// Add inserts one entry per row of b. The first column is the entry key,
// all columns together form the data list.
func (t *Timeline) Add(b *Bundle) (err error) {
	if len(b.Rows) == 0 {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.open(); err != nil {
		return err
	}
	if err := exec(t.conn, "BEGIN"); err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = exec(t.conn, "ROLLBACK")
			return
		}
		err = exec(t.conn, "COMMIT")
	}()

	query := "INSERT INTO data (key, activity, datalist, run) VALUES ($key, $activity, $datalist, $run)"
	for _, row := range b.Rows {
		data := make(map[string]string, len(b.Headers))
		for i, header := range b.Headers {
			if i < len(row) {
				data[header] = row[i].String()
			}
		}
		datalist, err := json.Marshal(data)
		if err != nil {
			return err
		}

		stmt, err := t.conn.Prepare(query)
		if err != nil {
			return errors.Wrap(err, fmt.Sprintf("could not prepare statement %s", query))
		}
		key := ""
		if len(row) > 0 {
			key = row[0].String()
		}
		stmt.SetText("$key", key)
		stmt.SetText("$activity", b.Artifact)
		stmt.SetText("$datalist", string(datalist))
		stmt.SetText("$run", t.run)
		if _, err = stmt.Step(); err != nil {
			return errors.Wrap(err, fmt.Sprint("could not exec statement ", query))
		}
	}
	return nil
}

// Count returns the number of entries of an artifact.
func (t *Timeline) Count(activity string) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.conn == nil {
		return 0, nil
	}
	stmt, err := t.conn.Prepare("SELECT COUNT(*) AS count FROM data WHERE activity = $activity")
	if err != nil {
		return 0, err
	}
	stmt.SetText("$activity", activity)
	if _, err := stmt.Step(); err != nil {
		_ = stmt.Finalize()
		return 0, err
	}
	count := stmt.GetInt64("count")
	return count, stmt.Finalize()
}

// Close closes the timeline database.
func (t *Timeline) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.conn == nil {
		return nil
	}
	err := t.conn.Close()
	t.conn = nil
	return err
}
