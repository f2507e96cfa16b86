package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"hrm/constants"
	"hrm/models"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRecorder(t *testing.T) (*gorm.DB, *Recorder) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Department{}, &models.Employee{}, &models.AuditLog{}))
	return db, NewRecorder(db)
}

func TestCreateRecordsAuditEntryInSameCommit(t *testing.T) {
	db, recorder := setupRecorder(t)

	actorID := uint(7)
	department := &models.Department{Name: "Kỹ thuật", Code: "ENG"}
	err := recorder.WithinTransaction(context.Background(), &actorID, func(cs *Changeset) error {
		return cs.Create(department)
	})
	require.NoError(t, err)
	require.NotZero(t, department.ID)

	var entry models.AuditLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, constants.AuditActionCreated, entry.Action)
	assert.Equal(t, "Department", entry.EntityName)
	assert.Equal(t, department.EntityKey(), entry.EntityKey)
	assert.Equal(t, actorID, entry.ActorID)
	assert.Empty(t, entry.OldValues)

	var snapshot map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(entry.NewValues), &snapshot))
	assert.Equal(t, "Kỹ thuật", snapshot["name"])
}

func TestUpdateRecordsBeforeAndAfter(t *testing.T) {
	db, recorder := setupRecorder(t)

	department := &models.Department{Name: "Kỹ thuật", Code: "ENG"}
	require.NoError(t, db.Create(department).Error)

	before := *department
	department.Name = "Kỹ thuật phần mềm"
	err := recorder.WithinTransaction(context.Background(), nil, func(cs *Changeset) error {
		return cs.Update(&before, department)
	})
	require.NoError(t, err)

	var entry models.AuditLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, constants.AuditActionUpdated, entry.Action)
	assert.Equal(t, constants.AuditActorSystem, entry.ActorName)

	var oldValues, newValues map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(entry.OldValues), &oldValues))
	require.NoError(t, json.Unmarshal([]byte(entry.NewValues), &newValues))
	assert.Equal(t, "Kỹ thuật", oldValues["name"])
	assert.Equal(t, "Kỹ thuật phần mềm", newValues["name"])
}

func TestDeleteRecordsEntryWithoutSnapshots(t *testing.T) {
	db, recorder := setupRecorder(t)

	department := &models.Department{Name: "Tạm", Code: "TMP"}
	require.NoError(t, db.Create(department).Error)
	key := department.EntityKey()

	err := recorder.WithinTransaction(context.Background(), nil, func(cs *Changeset) error {
		return cs.Delete(department)
	})
	require.NoError(t, err)

	var entry models.AuditLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, constants.AuditActionDeleted, entry.Action)
	assert.Equal(t, key, entry.EntityKey)
	assert.Empty(t, entry.OldValues)
	assert.Empty(t, entry.NewValues)
}

func TestRollbackDiscardsMutationAndAuditEntries(t *testing.T) {
	db, recorder := setupRecorder(t)

	boom := errors.New("boom")
	err := recorder.WithinTransaction(context.Background(), nil, func(cs *Changeset) error {
		if err := cs.Create(&models.Department{Name: "Kỹ thuật", Code: "ENG"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var departments, entries int64
	require.NoError(t, db.Model(&models.Department{}).Count(&departments).Error)
	require.NoError(t, db.Model(&models.AuditLog{}).Count(&entries).Error)
	assert.Zero(t, departments)
	assert.Zero(t, entries)
}

func TestMultipleMutationsOneEntryEach(t *testing.T) {
	db, recorder := setupRecorder(t)

	err := recorder.WithinTransaction(context.Background(), nil, func(cs *Changeset) error {
		if err := cs.Create(&models.Department{Name: "Kỹ thuật", Code: "ENG"}); err != nil {
			return err
		}
		return cs.Create(&models.Department{Name: "Nhân sự", Code: "HR"})
	})
	require.NoError(t, err)

	var entries int64
	require.NoError(t, db.Model(&models.AuditLog{}).Count(&entries).Error)
	assert.Equal(t, int64(2), entries)
}

func TestListFiltersAndPagination(t *testing.T) {
	_, recorder := setupRecorder(t)

	actorA := uint(1)
	actorB := uint(2)
	for i := 0; i < 3; i++ {
		err := recorder.WithinTransaction(context.Background(), &actorA, func(cs *Changeset) error {
			return cs.Create(&models.Department{Name: "A" + string(rune('0'+i)), Code: "A" + string(rune('0'+i))})
		})
		require.NoError(t, err)
	}
	err := recorder.WithinTransaction(context.Background(), &actorB, func(cs *Changeset) error {
		return cs.Create(&models.Department{Name: "B", Code: "B"})
	})
	require.NoError(t, err)

	entries, total, err := recorder.List(context.Background(), ListFilters{EntityName: "Department"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, entries, 4)

	entries, total, err = recorder.List(context.Background(), ListFilters{ActorID: &actorB})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, entries, 1)
	assert.Equal(t, actorB, entries[0].ActorID)

	entries, total, err = recorder.List(context.Background(), ListFilters{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, entries, 2)

	future := time.Now().Add(time.Hour)
	entries, total, err = recorder.List(context.Background(), ListFilters{From: &future})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, entries)
}

func TestSnapshotDropsUnserializableFields(t *testing.T) {
	type withChannel struct {
		Name string      `json:"name"`
		Ch   chan int    `json:"ch"`
		Fn   func() bool `json:"-"`
	}

	data := snapshot(&withChannel{Name: "ok", Ch: make(chan int)})
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(data), &out))
	assert.Equal(t, "ok", out["name"])
	_, hasChannel := out["ch"]
	assert.False(t, hasChannel)
}
