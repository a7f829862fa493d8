package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func messagesOf(t *testing.T, err error) []string {
	t.Helper()

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Msg)
	}
	return msgs
}

func TestValidate_RegisterRequest(t *testing.T) {
	v := NewRequestValidator()

	tests := []struct {
		name string
		req  models.RegisterRequest
		want []string
	}{
		{
			name: "valid",
			req:  models.RegisterRequest{Name: "Al Ice", Email: "al@x.io", Password: "secret"},
		},
		{
			name: "short name",
			req:  models.RegisterRequest{Name: "Al", Email: "al@x.io", Password: "secret"},
			want: []string{"Name must be at least 3 characters"},
		},
		{
			name: "everything wrong",
			req:  models.RegisterRequest{Name: "", Email: "nope", Password: "1234"},
			want: []string{
				"Name must be at least 3 characters",
				"Invalid email",
				"Password must be at least 5 characters",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, messagesOf(t, err))
		})
	}
}

func TestValidate_FieldErrorShape(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(context.Background(), &models.RegisterRequest{Name: "Al Ice", Email: "bad", Password: "123"})

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 2)

	assert.Equal(t, models.FieldError{
		Type:     "field",
		Value:    "bad",
		Msg:      "Invalid email",
		Path:     "email",
		Location: "body",
	}, verrs[0])

	assert.Equal(t, "password", verrs[1].Path)
	assert.Empty(t, verrs[1].Value, "password must not be echoed")
}

func TestValidate_LoginRequest(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(context.Background(), models.LoginRequest{Email: "", Password: ""})
	assert.Equal(t, []string{"Enter a valid email", "Password cannot be blank"}, messagesOf(t, err))

	assert.NoError(t, v.Validate(context.Background(), models.LoginRequest{Email: "a@x.io", Password: "x"}))
}

func TestValidate_CreateNoteRequest(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(context.Background(), &models.CreateNoteRequest{})
	assert.Equal(t, []string{"Title is required", "Description is required"}, messagesOf(t, err))

	assert.NoError(t, v.Validate(context.Background(), models.CreateNoteRequest{Title: "T", Description: "D"}))
}

func TestValidate_Partial(t *testing.T) {
	v := NewRequestValidator()
	req := models.RegisterRequest{Name: "Al", Email: "ok@x.io", Password: "1"}

	err := v.Validate(context.Background(), req, "Email")
	assert.NoError(t, err)

	err = v.Validate(context.Background(), req, "Name")
	assert.Equal(t, []string{"Name must be at least 3 characters"}, messagesOf(t, err))

	err = v.Validate(context.Background(), req, "Nickname")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidationErrors_Error(t *testing.T) {
	err := ValidationErrors{{Path: "title", Msg: "Title is required"}}
	assert.Equal(t, "validation failed: title: Title is required", err.Error())
}
