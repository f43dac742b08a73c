package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid numeric ID",
			id:      "1",
			wantErr: false,
		},
		{
			name:    "valid ID with hyphens",
			id:      "express-1_a.b",
			wantErr: false,
		},
		{
			name:    "empty ID",
			id:      "",
			wantErr: true,
			errMsg:  "id cannot be empty",
		},
		{
			name:    "ID too long",
			id:      strings.Repeat("1", 101),
			wantErr: true,
			errMsg:  "id too long (max 100 characters)",
		},
		{
			name:    "ID with invalid characters",
			id:      "1<script>",
			wantErr: true,
			errMsg:  "id contains invalid characters",
		},
		{
			name:    "ID with SQL injection attempt",
			id:      "1'; DROP TABLE trains; --",
			wantErr: true,
			errMsg:  "id contains invalid characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateID(tt.id)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.errMsg, err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseTrainID(t *testing.T) {
	choice, err := ParseTrainID("2")
	require.NoError(t, err)
	assert.Equal(t, 2, choice)

	_, err = ParseTrainID("express")
	assert.EqualError(t, err, "id must be a number")

	_, err = ParseTrainID("")
	assert.EqualError(t, err, "id cannot be empty")
}
