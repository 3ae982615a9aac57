package listctl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/adminboard/internal/listctl"
)

func TestEdit_CommitRoundTrip(t *testing.T) {
	c := newUsers(t)

	c.BeginEdit("2", "name", "Sarah Johnson")
	c.ChangeEditValue("Sarah J.")
	require.NotNil(t, c.Editing())
	assert.Equal(t, listctl.EditBuffer{RecordID: "2", Field: "name", Value: "Sarah J."}, *c.Editing())

	updated, err := c.CommitEdit()
	require.NoError(t, err)
	assert.Equal(t, "Sarah J.", updated.Text("name"))
	assert.Nil(t, c.Editing())

	got, err := c.Get("2")
	require.NoError(t, err)
	assert.Equal(t, "Sarah J.", got.Text("name"))
}

func TestEdit_Cancel(t *testing.T) {
	c := newUsers(t)

	c.BeginEdit("2", "name", "Sarah Johnson")
	c.ChangeEditValue("Sarah J.")
	c.CancelEdit()

	assert.Nil(t, c.Editing())
	got, err := c.Get("2")
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", got.Text("name"))
}

func TestEdit_LastBeginWins(t *testing.T) {
	c := newUsers(t)

	c.BeginEdit("1", "name", "John Doe")
	c.ChangeEditValue("discarded")
	c.BeginEdit("3", "role", "User")
	c.ChangeEditValue("Manager")

	_, err := c.CommitEdit()
	require.NoError(t, err)

	first, _ := c.Get("1")
	third, _ := c.Get("3")
	assert.Equal(t, "John Doe", first.Text("name"))
	assert.Equal(t, "Manager", third.Text("role"))
}

func TestEdit_CommitWithoutEdit(t *testing.T) {
	c := newUsers(t)

	c.ChangeEditValue("ignored")
	assert.Nil(t, c.Editing())

	_, err := c.CommitEdit()
	require.ErrorIs(t, err, listctl.ErrNoActiveEdit)
}

func TestEdit_FailedCommitClearsBuffer(t *testing.T) {
	c, _ := newProducts(t)

	c.BeginEdit("1", "price", "199.99")
	c.ChangeEditValue("lots")
	_, err := c.CommitEdit()
	require.ErrorIs(t, err, listctl.ErrValidation)
	assert.Nil(t, c.Editing())

	c.BeginEdit("404", "name", "")
	_, err = c.CommitEdit()
	require.ErrorIs(t, err, listctl.ErrNotFound)
	assert.Nil(t, c.Editing())
}

func TestEdit_EditingReturnsCopy(t *testing.T) {
	c := newUsers(t)
	c.BeginEdit("1", "name", "John Doe")

	b := c.Editing()
	b.Value = "mutated"

	assert.Equal(t, "John Doe", c.Editing().Value)
}
