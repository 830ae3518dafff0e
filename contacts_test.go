package harvest

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contactFixture = `{"contact": {
	"id": 11, "client_id": 23445, "first_name": "Ada", "last_name": "Wong",
	"email": "ada@umbrella.test"
}}`

func TestGetContacts(t *testing.T) {
	var path string
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Write([]byte(`[` + contactFixture + `]`))
	}))

	contacts, err := api.GetContacts(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "/contacts", path)
	require.Len(t, contacts, 1)
	assert.Equal(t, int64(23445), contacts[0].ClientID)
}

func TestGetClientContacts(t *testing.T) {
	var path string
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Write([]byte(`[` + contactFixture + `]`))
	}))

	contacts, err := api.GetClientContacts(context.Background(), 23445, nil)
	require.NoError(t, err)
	assert.Equal(t, "/clients/23445/contacts", path)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Ada", contacts[0].FirstName)
}

func TestCreateContact(t *testing.T) {
	var body string
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		w.Write([]byte(contactFixture))
	}))

	c, err := api.CreateContact(context.Background(), &ContactParams{
		ClientID:  23445,
		FirstName: "Ada",
		LastName:  "Wong",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"contact":{"client_id":23445,"first_name":"Ada","last_name":"Wong"}}`, body)
	assert.Equal(t, int64(11), c.ID)
}

func TestUpdateContact(t *testing.T) {
	var method, path, body string
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		w.Write([]byte(contactFixture))
	}))

	_, err := api.UpdateContact(context.Background(), 11, &ContactParams{
		ClientID:  23445,
		FirstName: "Ada",
		LastName:  "Wong",
		Title:     String("Procurement"),
	})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/contacts/11", path)
	assert.JSONEq(t, `{"contact":{"client_id":23445,"first_name":"Ada","last_name":"Wong","title":"Procurement"}}`, body)
}

func TestDeleteContact(t *testing.T) {
	var method, path string
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
	}))

	_, err := api.DeleteContact(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/contacts/11", path)
}
