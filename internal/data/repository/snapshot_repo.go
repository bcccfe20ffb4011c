package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"awami-saholat/internal/data/entity"
	"awami-saholat/pkg/database"

	"go.uber.org/zap"
)

// Snapshot keys. Keduanya selalu ditulis atau dihapus bersama.
const (
	snapshotKeyUser     = "user"
	snapshotKeyUserType = "userType"
)

// SnapshotRepository persists the logged-in identity across restarts.
// Hanya identity + role yang durable; bookings tidak pernah disimpan.
type SnapshotRepository interface {
	Save(ctx context.Context, user *entity.User, role entity.UserRole) error
	Load(ctx context.Context) (*entity.User, entity.UserRole, error)
	Clear(ctx context.Context) error
}

type snapshotRepository struct {
	db  database.KVIface
	log *zap.Logger
}

func NewSnapshotRepository(db database.KVIface, log *zap.Logger) SnapshotRepository {
	return &snapshotRepository{
		db:  db,
		log: log.With(zap.String("repository", "snapshot")),
	}
}

func (r *snapshotRepository) Save(ctx context.Context, user *entity.User, role entity.UserRole) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}

	return r.db.SetAll(ctx, map[string]string{
		snapshotKeyUser:     string(raw),
		snapshotKeyUserType: string(role),
	})
}

// Load returns (nil, "", nil) ketika belum ada snapshot tersimpan.
func (r *snapshotRepository) Load(ctx context.Context) (*entity.User, entity.UserRole, error) {
	raw, ok, err := r.db.Get(ctx, snapshotKeyUser)
	if err != nil {
		return nil, "", fmt.Errorf("load identity snapshot: %w", err)
	}
	if !ok {
		return nil, "", nil
	}

	var user entity.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		// Snapshot korup dianggap tidak ada, bukan fatal
		r.log.Warn("Discarding unreadable identity snapshot", zap.Error(err))
		return nil, "", nil
	}

	roleRaw, ok, err := r.db.Get(ctx, snapshotKeyUserType)
	if err != nil {
		return nil, "", fmt.Errorf("load role snapshot: %w", err)
	}
	if !ok {
		return nil, "", nil
	}

	return &user, entity.UserRole(roleRaw), nil
}

func (r *snapshotRepository) Clear(ctx context.Context) error {
	return r.db.DeleteAll(ctx, snapshotKeyUser, snapshotKeyUserType)
}
