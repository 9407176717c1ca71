package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlms/lms/pkg/api"
)

func TestCreateUserSplitsNamePerOrder(t *testing.T) {
	var got api.CreateUserRequest
	c := fakeAPI(t, map[string]http.HandlerFunc{
		"/user": func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			writeJSON(t, w, api.User{
				UserID:    got.UserID,
				LastName:  got.LastName,
				FirstName: got.FirstName,
				Email:     got.Email,
				Role:      "student",
			})
		},
	})

	user, err := c.Users().Create(context.Background(), UserInput{
		ID:       "U010",
		FullName: "Nguyen Van An",
		Email:    "an@example.edu",
	})
	require.NoError(t, err)

	assert.Equal(t, "An", got.FirstName)
	assert.Equal(t, "Nguyen Van", got.LastName)
	assert.Equal(t, "Nguyen Van An", user.FullName)
}

func TestCreateUserWesternNameOrder(t *testing.T) {
	var got api.CreateUserRequest
	c := fakeAPI(t, map[string]http.HandlerFunc{
		"/user": func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			writeJSON(t, w, api.User{UserID: got.UserID, LastName: got.LastName, FirstName: got.FirstName})
		},
	})

	_, err := c.Users().WithNameOrder(GivenNameFirst).Create(context.Background(), UserInput{
		ID:       "U011",
		FullName: "Grace Hopper",
		Email:    "grace@example.edu",
	})
	require.NoError(t, err)

	assert.Equal(t, "Grace", got.FirstName)
	assert.Equal(t, "Hopper", got.LastName)
}

func TestUpdateUserOmitsUnsetFields(t *testing.T) {
	var raw map[string]json.RawMessage
	c := fakeAPI(t, map[string]http.HandlerFunc{
		"/user/U010": func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
			writeJSON(t, w, api.User{UserID: "U010"})
		},
	})

	_, err := c.Users().Update(context.Background(), "U010", UserInput{
		Email: "new@example.edu",
	})
	require.NoError(t, err)

	assert.JSONEq(t, `"new@example.edu"`, string(raw["Email"]))
	assert.JSONEq(t, `null`, string(raw["FirstName"]), "untouched name stays null")
	assert.JSONEq(t, `null`, string(raw["Role"]))
}
