package api

// User is a user row as served over the wire. Role is the stored,
// authoritative role tag; it is never derived from the identifier.
type User struct {
	UserID    string  `json:"UserID"`
	LastName  string  `json:"LastName"`
	FirstName string  `json:"FirstName"`
	Email     string  `json:"Email"`
	Role      string  `json:"Role"`
	Phone     *string `json:"Phone"`
	Address   *string `json:"Address"`
	Age       *int    `json:"Age"`
	DoB       *string `json:"DoB"`
}

// CreateUserRequest is the payload for POST /user. Role defaults to
// student when omitted.
type CreateUserRequest struct {
	UserID    string  `json:"UserID" binding:"required,max=16"`
	LastName  string  `json:"LastName" binding:"required,max=100"`
	FirstName string  `json:"FirstName" binding:"required,max=100"`
	Email     string  `json:"Email" binding:"required,email"`
	Role      string  `json:"Role"`
	Phone     *string `json:"Phone"`
	Address   *string `json:"Address"`
	Age       *int    `json:"Age"`
	DoB       *string `json:"DoB"`
}

// UpdateUserRequest is the partial payload for PATCH /user/:id.
type UpdateUserRequest struct {
	LastName  *string `json:"LastName"`
	FirstName *string `json:"FirstName"`
	Email     *string `json:"Email"`
	Role      *string `json:"Role"`
	Phone     *string `json:"Phone"`
	Address   *string `json:"Address"`
	Age       *int    `json:"Age"`
	DoB       *string `json:"DoB"`
}
