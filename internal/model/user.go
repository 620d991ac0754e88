package model

import "time"

// User represents an application user.  Users authenticate with an
// email and password and act as the holder identity for seat locks
// and bookings.
//
// Fields:
//  ID           – primary key identifier.
//  Name         – display name of the user.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  Role         – role name (CUSTOMER or OWNER).
//  CreatedAt    – timestamp of registration.
type User struct {
	ID           uint64    // unique user identifier
	Name         string    // display name
	Email        string    // unique email address
	PasswordHash string    // bcrypt hash of the password
	Role         string    // CUSTOMER or OWNER
	CreatedAt    time.Time // registration timestamp
}
