package client

import (
	"context"

	"github.com/openlms/lms/pkg/api"
)

// UserService reads and writes users through the gateway. Create and
// update take a combined full name and split it according to the
// configured NameOrder.
type UserService struct {
	client    *Client
	nameOrder NameOrder
}

// Users returns the user view service with the default GivenNameLast
// name order.
func (c *Client) Users() *UserService {
	return &UserService{client: c, nameOrder: GivenNameLast}
}

// WithNameOrder returns a copy of the service using the given name
// splitting order.
func (s *UserService) WithNameOrder(order NameOrder) *UserService {
	return &UserService{client: s.client, nameOrder: order}
}

// UserInput is the view-level payload for creating or updating a user.
// FullName is split into first/last according to the service's
// NameOrder before it goes over the wire.
type UserInput struct {
	ID       string
	FullName string
	Email    string
	Role     string
	Phone    string
	Address  string
	Age      *int
	DoB      string
}

func toUserView(w api.User) User {
	return User{
		ID:       w.UserID,
		FullName: JoinName(w.LastName, w.FirstName),
		Email:    w.Email,
		Role:     w.Role,
		Phone:    deref(w.Phone),
		Address:  deref(w.Address),
		Age:      w.Age,
		DoB:      deref(w.DoB),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// List fetches a page of users.
func (s *UserService) List(ctx context.Context, opts ListOptions) ([]User, int64, error) {
	var list api.UserList
	if err := s.client.Get(ctx, "/user"+opts.query(), &list); err != nil {
		return nil, 0, err
	}

	views := make([]User, 0, len(list.Items))
	for _, item := range list.Items {
		views = append(views, toUserView(item))
	}
	return views, list.TotalCount, nil
}

// Get fetches a single user.
func (s *UserService) Get(ctx context.Context, userID string) (User, error) {
	var wire api.User
	if err := s.client.Get(ctx, "/user/"+userID, &wire); err != nil {
		return User{}, err
	}
	return toUserView(wire), nil
}

// Create adds a user, splitting the combined name per the configured
// order.
func (s *UserService) Create(ctx context.Context, input UserInput) (User, error) {
	firstName, lastName := SplitFullName(input.FullName, s.nameOrder)

	req := api.CreateUserRequest{
		UserID:    input.ID,
		LastName:  lastName,
		FirstName: firstName,
		Email:     input.Email,
		Role:      input.Role,
		Phone:     optional(input.Phone),
		Address:   optional(input.Address),
		Age:       input.Age,
		DoB:       optional(input.DoB),
	}

	var wire api.User
	if err := s.client.Post(ctx, "/user", req, &wire); err != nil {
		return User{}, err
	}
	return toUserView(wire), nil
}

// Update applies a partial update. Only the fields set on the input are
// sent; an empty FullName leaves the stored name untouched.
func (s *UserService) Update(ctx context.Context, userID string, input UserInput) (User, error) {
	req := api.UpdateUserRequest{
		Email:   optional(input.Email),
		Role:    optional(input.Role),
		Phone:   optional(input.Phone),
		Address: optional(input.Address),
		Age:     input.Age,
		DoB:     optional(input.DoB),
	}
	if input.FullName != "" {
		firstName, lastName := SplitFullName(input.FullName, s.nameOrder)
		req.FirstName = &firstName
		req.LastName = &lastName
	}

	var wire api.User
	if err := s.client.Patch(ctx, "/user/"+userID, req, &wire); err != nil {
		return User{}, err
	}
	return toUserView(wire), nil
}

// Delete removes a user and returns the server's message.
func (s *UserService) Delete(ctx context.Context, userID string) (string, error) {
	var msg api.MessageResponse
	if err := s.client.Delete(ctx, "/user/"+userID, &msg); err != nil {
		return "", err
	}
	return msg.Message, nil
}
