package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactbook/internal/apperror"
)

func newRecordWithPhones(t *testing.T, name string, phones ...string) *Record {
	t.Helper()
	r := NewRecord(name)
	for _, p := range phones {
		require.NoError(t, r.AddPhone(p))
	}
	return r
}

func TestRecord_AddPhone(t *testing.T) {
	r := newRecordWithPhones(t, "John", "1234567890", "5555555555", "1234567890")
	assert.Equal(t, []string{"1234567890", "5555555555", "1234567890"}, r.Phones())

	err := r.AddPhone("12345")
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Len(t, r.Phones(), 3)
}

func TestRecord_PhonesIsCopy(t *testing.T) {
	r := newRecordWithPhones(t, "John", "1234567890")
	phones := r.Phones()
	phones[0] = "0000000000"
	assert.Equal(t, []string{"1234567890"}, r.Phones())
}

func TestRecord_RemovePhone(t *testing.T) {
	r := newRecordWithPhones(t, "John", "1234567890", "5555555555", "1234567890")

	r.RemovePhone("1234567890")
	assert.Equal(t, []string{"5555555555"}, r.Phones())

	r.RemovePhone("9999999999")
	assert.Equal(t, []string{"5555555555"}, r.Phones())
}

func TestRecord_EditPhone(t *testing.T) {
	tests := []struct {
		name        string
		old, new    string
		wantPhones  []string
		wantEdited  bool
		wantInvalid bool
	}{
		{
			name:       "replaces first match only",
			old:        "1234567890",
			new:        "1112223333",
			wantPhones: []string{"1112223333", "5555555555", "1234567890"},
			wantEdited: true,
		},
		{
			name:       "missing old phone leaves list unchanged",
			old:        "9999999999",
			new:        "1112223333",
			wantPhones: []string{"1234567890", "5555555555", "1234567890"},
		},
		{
			name:        "invalid new phone leaves list unchanged",
			old:         "5555555555",
			new:         "111",
			wantPhones:  []string{"1234567890", "5555555555", "1234567890"},
			wantInvalid: true,
		},
		{
			name:       "invalid new phone ignored when old is missing",
			old:        "9999999999",
			new:        "111",
			wantPhones: []string{"1234567890", "5555555555", "1234567890"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newRecordWithPhones(t, "John", "1234567890", "5555555555", "1234567890")
			edited, err := r.EditPhone(tc.old, tc.new)
			if tc.wantInvalid {
				assert.ErrorIs(t, err, apperror.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantEdited, edited)
			assert.Equal(t, tc.wantPhones, r.Phones())
		})
	}
}

func TestRecord_FindPhone(t *testing.T) {
	r := newRecordWithPhones(t, "John", "1234567890")

	got, ok := r.FindPhone("1234567890")
	assert.True(t, ok)
	assert.Equal(t, "1234567890", got)

	got, ok = r.FindPhone("0000000000")
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestRecord_ReplacePhones(t *testing.T) {
	r := newRecordWithPhones(t, "John", "1234567890", "5555555555")
	require.NoError(t, r.AddBirthday("15.03.1990"))

	require.NoError(t, r.ReplacePhones("1112223333"))
	assert.Equal(t, []string{"1112223333"}, r.Phones())
	_, ok := r.Birthday()
	assert.True(t, ok, "birthday survives a phone replacement")

	assert.ErrorIs(t, r.ReplacePhones("bad"), apperror.ErrValidation)
	assert.Equal(t, []string{"1112223333"}, r.Phones())
}

func TestRecord_AddBirthday(t *testing.T) {
	r := NewRecord("John")
	_, ok := r.Birthday()
	assert.False(t, ok)

	require.NoError(t, r.AddBirthday("15.03.1990"))
	require.NoError(t, r.AddBirthday("16.04.1991"))
	b, ok := r.Birthday()
	require.True(t, ok)
	assert.Equal(t, "16.04.1991", b.String())

	err := r.AddBirthday("1991-04-16")
	assert.ErrorIs(t, err, apperror.ErrValidation)
	b, _ = r.Birthday()
	assert.Equal(t, "16.04.1991", b.String())
}

func TestRecord_String(t *testing.T) {
	assert.Equal(t, "Contact name: John, phones: ", NewRecord("John").String())

	r := newRecordWithPhones(t, "John", "1234567890", "5555555555")
	assert.Equal(t, "Contact name: John, phones: 1234567890; 5555555555", r.String())
	assert.Equal(t, "John", r.Name())
}
