package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommitCountValidator(t *testing.T) {
	validate := commitCountValidator(49)

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "lower bound", input: "1"},
		{name: "upper bound", input: "49"},
		{name: "padded input", input: " 5 "},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-3", wantErr: true},
		{name: "above max", input: "50", wantErr: true},
		{name: "not a number", input: "five", wantErr: true},
		{name: "float", input: "3.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCommitCount(t *testing.T) {
	assert.NoError(t, ValidateCommitCount(1, 49))
	assert.NoError(t, ValidateCommitCount(49, 49))
	assert.Error(t, ValidateCommitCount(0, 49))
	assert.Error(t, ValidateCommitCount(50, 49))
}
