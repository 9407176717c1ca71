package models

import "time"

// User is a person record shared by students, teachers and admins.
type User struct {
	UserID    string
	LastName  string
	FirstName string
	Email     string
	Role      Role
	Phone     *string
	Address   *string
	Age       *int
	DoB       *time.Time
}

// Account carries the credentials attached to a user.
type Account struct {
	AccountID    int64
	UserID       string
	Email        string
	PasswordHash string
	Role         Role
}
