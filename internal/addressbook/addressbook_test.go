package addressbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactbook/internal/model"
)

func record(t *testing.T, name, birthday string, phones ...string) *model.Record {
	t.Helper()
	r := model.NewRecord(name)
	for _, p := range phones {
		require.NoError(t, r.AddPhone(p))
	}
	if birthday != "" {
		require.NoError(t, r.AddBirthday(birthday))
	}
	return r
}

func TestAddressBook_AddFindDelete(t *testing.T) {
	b := New()
	b.AddRecord(record(t, "John", "", "1234567890"))

	r, ok := b.Find("John")
	require.True(t, ok)
	assert.Equal(t, "John", r.Name())

	_, ok = b.Find("Jane")
	assert.False(t, ok)

	b.Delete("John")
	_, ok = b.Find("John")
	assert.False(t, ok)
	assert.Zero(t, b.Len())

	b.Delete("John")
	assert.Zero(t, b.Len())
}

func TestAddressBook_AddRecordOverwrites(t *testing.T) {
	b := New()
	first := record(t, "John", "15.03.1990", "1234567890")
	b.AddRecord(first)
	b.AddRecord(record(t, "Jane", ""))

	second := record(t, "John", "", "5555555555")
	b.AddRecord(second)

	r, ok := b.Find("John")
	require.True(t, ok)
	assert.Same(t, second, r)
	assert.Equal(t, []string{"5555555555"}, r.Phones())
	_, hasBirthday := r.Birthday()
	assert.False(t, hasBirthday, "records are replaced, not merged")
	assert.Equal(t, []string{"John", "Jane"}, b.ShowAll())
	assert.Equal(t, 2, b.Len())
}

func TestAddressBook_ShowAllOrder(t *testing.T) {
	b := New()
	assert.Empty(t, b.ShowAll())

	for _, name := range []string{"Carol", "Alice", "Bob"} {
		b.AddRecord(model.NewRecord(name))
	}
	b.Delete("Alice")
	b.AddRecord(model.NewRecord("Alice"))

	assert.Equal(t, []string{"Carol", "Bob", "Alice"}, b.ShowAll())

	names := b.ShowAll()
	names[0] = "Mallory"
	assert.Equal(t, []string{"Carol", "Bob", "Alice"}, b.ShowAll())

	var got []string
	for _, r := range b.Records() {
		got = append(got, r.Name())
	}
	assert.Equal(t, []string{"Carol", "Bob", "Alice"}, got)
}

func TestAddressBook_ShowBirthday(t *testing.T) {
	b := New()
	b.AddRecord(record(t, "Alice", "15.03.1990"))
	b.AddRecord(record(t, "Bob", ""))

	assert.Equal(t, "Name: Alice, Birthday: 15.03.1990", b.ShowBirthday("Alice"))
	assert.Equal(t, "Name: Bob, Birthday: none", b.ShowBirthday("Bob"))
	assert.Equal(t, "Contact doesn't exist", b.ShowBirthday("ghost"))
}
