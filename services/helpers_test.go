package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/enthugo/portfolio-site-backend/database"
)

func newTestDB(t *testing.T) database.Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return database.New(db)
}

// fakeImageStore records stored and deleted paths in memory.
type fakeImageStore struct {
	files    map[string]string
	nextID   int
	storeErr error
	delErr   error
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{files: make(map[string]string)}
}

func (f *fakeImageStore) Store(ctx context.Context, ext string, content io.Reader) (string, error) {
	if f.storeErr != nil {
		return "", f.storeErr
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	f.nextID++
	path := fmt.Sprintf("projects/img-%d%s", f.nextID, ext)
	f.files[path] = string(data)
	return path, nil
}

func (f *fakeImageStore) Delete(ctx context.Context, path string) error {
	if f.delErr != nil {
		return f.delErr
	}
	delete(f.files, path)
	return nil
}

func (f *fakeImageStore) has(path string) bool {
	_, ok := f.files[path]
	return ok
}

// fakeMailer captures sent messages.
type fakeMailer struct {
	subjects   []string
	bodies     []string
	recipients [][]string
	err        error
}

func (f *fakeMailer) Send(subject, html string, recipients []string) error {
	if f.err != nil {
		return f.err
	}
	f.subjects = append(f.subjects, subject)
	f.bodies = append(f.bodies, html)
	f.recipients = append(f.recipients, recipients)
	return nil
}
