package paths

import (
	"strings"
	"testing"

	"github.com/arthur-debert/dotin/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		wantErr     bool
		errContains string
	}{
		{
			name:        "empty path",
			path:        "",
			wantErr:     true,
			errContains: "cannot be empty",
		},
		{
			name:    "valid path",
			path:    "/home/user/.vimrc",
			wantErr: false,
		},
		{
			name:        "path with null bytes",
			path:        "/home/user\x00/file.txt",
			wantErr:     true,
			errContains: "NUL byte",
		},
		{
			name:        "excessively long path",
			path:        "/" + strings.Repeat("a", 4097),
			wantErr:     true,
			errContains: "longer than 4096 bytes",
		},
		{
			name:    "path at max length",
			path:    "/" + strings.Repeat("a", 4095),
			wantErr: false,
		},
		{
			name:    "relative path",
			path:    ".config/nvim/init.lua",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				assert.Contains(t, err.Error(), tt.errContains)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateGroupName(t *testing.T) {
	tests := []struct {
		name        string
		group       string
		errContains string
	}{
		{name: "simple", group: "vim"},
		{name: "dotted", group: "git.config"},
		{name: "dashes and digits", group: "shell-2024"},
		{name: "empty", group: "", errContains: "cannot be empty"},
		{name: "slash", group: "vim/plugins", errContains: "path separators"},
		{name: "backslash", group: `vim\plugins`, errContains: "path separators"},
		{name: "dot", group: ".", errContains: "'.' or '..'"},
		{name: "dotdot", group: "..", errContains: "'.' or '..'"},
		{name: "colon", group: "a:b", errContains: "invalid characters"},
		{name: "control char", group: "a\tb", errContains: "control characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGroupName(tt.group)
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrGroupInvalid))
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}
