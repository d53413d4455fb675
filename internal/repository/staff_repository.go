package repository

import (
    "context"
    "database/sql"
    "errors"
    "sync"

    "github.com/iliyamo/restaurant-table-reservation/internal/model"
    "github.com/iliyamo/restaurant-table-reservation/internal/utils"
)

// StaffStore is the lookup interface the auth layer depends on.  Two
// implementations exist: a MySQL-backed repo for deployments with a
// staff table, and a seeded in-memory roster used when no database is
// configured.
type StaffStore interface {
    GetByUsername(ctx context.Context, username string) (*model.Staff, error)
}

// StaffRepo reads and provisions staff accounts in the `staff` table.
// cost is the bcrypt cost applied when hashing new passwords.
type StaffRepo struct {
    DB   *sql.DB
    cost int
}

func NewStaffRepo(db *sql.DB, cost int) *StaffRepo { return &StaffRepo{DB: db, cost: cost} }

// GetByUsername returns the staff account with the given login name.
func (r *StaffRepo) GetByUsername(ctx context.Context, username string) (*model.Staff, error) {
    var s model.Staff
    err := r.DB.QueryRowContext(ctx,
        "SELECT id, username, password_hash, can_init, created_at FROM staff WHERE username=? LIMIT 1",
        username).Scan(&s.ID, &s.Username, &s.PasswordHash, &s.CanInit, &s.CreatedAt)
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrStaffNotFound
    }
    if err != nil {
        return nil, err
    }
    return &s, nil
}

// Create provisions a staff account, hashing the password at the
// repository's configured bcrypt cost.
func (r *StaffRepo) Create(ctx context.Context, username, password string, canInit bool) (*model.Staff, error) {
    hash, err := utils.HashPassword(password, r.cost)
    if err != nil {
        return nil, err
    }
    res, err := r.DB.ExecContext(ctx,
        "INSERT INTO staff (username, password_hash, can_init) VALUES (?, ?, ?)",
        username, hash, canInit)
    if err != nil {
        return nil, err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return nil, err
    }
    return &model.Staff{ID: uint64(id), Username: username, PasswordHash: hash, CanInit: canInit}, nil
}

// MemoryStaffRepo is a fixed roster held in memory.  It backs local
// development and tests, mirroring how the service degrades when
// Redis is absent.  Both seeded accounts use the password
// "1234567890"; only admin1 may initialize the table pool.
type MemoryStaffRepo struct {
    mu    sync.RWMutex
    staff []model.Staff
    cost  int
}

// NewMemoryStaffRepo returns the seeded roster.  cost is the bcrypt
// cost used when provisioning additional accounts.
func NewMemoryStaffRepo(cost int) *MemoryStaffRepo {
    return &MemoryStaffRepo{cost: cost, staff: []model.Staff{
        {
            ID:           1,
            Username:     "admin1",
            PasswordHash: "$2b$10$EE08QSCiXpkR3Vukoj6gW.zesjXWHiILWlVca1t7LO/ckRjcIBqIS",
            CanInit:      true,
        },
        {
            ID:           2,
            Username:     "admin2",
            PasswordHash: "$2a$08$vN4HjLkngovPHbmMIVdE0uoqbufJQoloO8RTpCM/2of0A7vhdmBSi",
            CanInit:      false,
        },
    }}
}

func (r *MemoryStaffRepo) GetByUsername(_ context.Context, username string) (*model.Staff, error) {
    r.mu.RLock()
    defer r.mu.RUnlock()
    for i := range r.staff {
        if r.staff[i].Username == username {
            s := r.staff[i]
            return &s, nil
        }
    }
    return nil, ErrStaffNotFound
}

// Create adds an account to the roster, hashing the password at the
// configured bcrypt cost.
func (r *MemoryStaffRepo) Create(_ context.Context, username, password string, canInit bool) (*model.Staff, error) {
    hash, err := utils.HashPassword(password, r.cost)
    if err != nil {
        return nil, err
    }
    r.mu.Lock()
    defer r.mu.Unlock()
    for i := range r.staff {
        if r.staff[i].Username == username {
            return nil, ErrStaffExists
        }
    }
    s := model.Staff{
        ID:           uint64(len(r.staff) + 1),
        Username:     username,
        PasswordHash: hash,
        CanInit:      canInit,
    }
    r.staff = append(r.staff, s)
    return &s, nil
}
