package model

import "time"

// Staff represents a restaurant staff account as stored in the
// `staff` table (or the seeded in-memory roster when no database is
// configured).  Staff members authenticate with username/password and
// receive a JWT carrying their permissions.
//
// Fields:
//  ID           – primary key identifier.
//  Username     – unique login name.
//  PasswordHash – bcrypt hashed password.
//  CanInit      – whether this account may initialize the table pool.
//  CreatedAt    – timestamp of creation.
type Staff struct {
    ID           uint64    // staff.id
    Username     string    // staff.username
    PasswordHash string    // staff.password_hash
    CanInit      bool      // staff.can_init
    CreatedAt    time.Time // staff.created_at
}
