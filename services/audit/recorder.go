package audit

import (
	"context"
	"reflect"
	"strconv"
	"strings"

	"hrm/constants"
	"hrm/models"

	json "github.com/goccy/go-json"
	"gorm.io/gorm"
)

// Entity là interface mà mọi model được ghi audit phải implement
type Entity interface {
	EntityName() string
	EntityKey() string
}

type pendingEntry struct {
	action    string
	name      string
	key       string
	oldValues string
	newValues string
}

// Recorder bọc transaction của gorm: mọi mutation đi qua Changeset
// được ghi kèm một AuditLog trong cùng commit, thành công hay thất bại
// cùng nhau
type Recorder struct {
	db *gorm.DB
}

func NewRecorder(db *gorm.DB) *Recorder {
	return &Recorder{db: db}
}

// Changeset gom các mutation và audit entry đang chờ commit
// của một transaction
type Changeset struct {
	tx        *gorm.DB
	actorID   uint
	actorName string
	pending   []pendingEntry
}

// WithinTransaction mở transaction, chạy fn với một Changeset, rồi ghi
// toàn bộ audit entry đã gom trước khi commit. actorID nil nghĩa là
// mutation của hệ thống (cron, seed), ghi với sentinel SYSTEM.
func (r *Recorder) WithinTransaction(ctx context.Context, actorID *uint, fn func(cs *Changeset) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cs := &Changeset{tx: tx, actorName: constants.AuditActorSystem}
		if actorID != nil {
			cs.actorID = *actorID
			cs.actorName = strconv.FormatUint(uint64(*actorID), 10)
		}
		if err := fn(cs); err != nil {
			return err
		}
		return cs.flush()
	})
}

// DB trả về transaction đang mở, dùng cho các câu đọc cần
// cùng snapshot với mutation
func (cs *Changeset) DB() *gorm.DB {
	return cs.tx
}

// Create thực hiện insert và gom audit entry Created kèm snapshot
// giá trị mới
func (cs *Changeset) Create(entity Entity) error {
	if err := cs.tx.Create(entity).Error; err != nil {
		return err
	}
	cs.pending = append(cs.pending, pendingEntry{
		action:    constants.AuditActionCreated,
		name:      entity.EntityName(),
		key:       entity.EntityKey(),
		newValues: snapshot(entity),
	})
	return nil
}

// Update thực hiện save và gom audit entry Updated kèm snapshot
// trước và sau
func (cs *Changeset) Update(before Entity, entity Entity) error {
	oldValues := snapshot(before)
	if err := cs.tx.Save(entity).Error; err != nil {
		return err
	}
	cs.pending = append(cs.pending, pendingEntry{
		action:    constants.AuditActionUpdated,
		name:      entity.EntityName(),
		key:       entity.EntityKey(),
		oldValues: oldValues,
		newValues: snapshot(entity),
	})
	return nil
}

// Delete thực hiện delete và gom audit entry Deleted, không snapshot
func (cs *Changeset) Delete(entity Entity) error {
	key := entity.EntityKey()
	if err := cs.tx.Delete(entity).Error; err != nil {
		return err
	}
	cs.pending = append(cs.pending, pendingEntry{
		action: constants.AuditActionDeleted,
		name:   entity.EntityName(),
		key:    key,
	})
	return nil
}

func (cs *Changeset) flush() error {
	if len(cs.pending) == 0 {
		return nil
	}
	entries := make([]models.AuditLog, 0, len(cs.pending))
	for _, p := range cs.pending {
		entries = append(entries, models.AuditLog{
			ActorID:    cs.actorID,
			ActorName:  cs.actorName,
			Action:     p.action,
			EntityName: p.name,
			EntityKey:  p.key,
			OldValues:  p.oldValues,
			NewValues:  p.newValues,
		})
	}
	return cs.tx.Create(&entries).Error
}

// snapshot serialize entity thành JSON; field nào không serialize được
// thì bỏ qua thay vì làm hỏng cả commit
func snapshot(entity interface{}) string {
	data, err := json.Marshal(entity)
	if err == nil {
		return string(data)
	}

	v := reflect.ValueOf(entity)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return "{}"
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return "{}"
	}

	out := make(map[string]json.RawMessage)
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		}
		name := field.Name
		if tag, ok := field.Tag.Lookup("json"); ok {
			parts := strings.Split(tag, ",")
			if parts[0] == "-" {
				continue
			}
			if parts[0] != "" {
				name = parts[0]
			}
		}
		b, err := json.Marshal(v.Field(i).Interface())
		if err != nil {
			continue
		}
		out[name] = b
	}

	data, err = json.Marshal(out)
	if err != nil {
		return "{}"
	}
	return string(data)
}
