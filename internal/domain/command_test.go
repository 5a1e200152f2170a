package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecCommand_String(t *testing.T) {
	tests := []struct {
		name string
		cmd  ExecCommand
		want string
	}{
		{"program only", ExecCommand{Program: "check-manifest"}, "check-manifest"},
		{"with args", ExecCommand{Program: "flake8", Args: []string{"skbio", "setup.py"}}, "flake8 skbio setup.py"},
		{"with dir", ExecCommand{Program: "python", Args: []string{"setup.py", "test"}, Dir: "ci"}, "cd ci && python setup.py test"},
		{"quotes spaces", ExecCommand{Program: "echo", Args: []string{"a b"}}, "echo 'a b'"},
		{"quotes single quote", ExecCommand{Program: "echo", Args: []string{"it's"}}, `echo 'it'\''s'`},
		{"empty arg", ExecCommand{Program: "echo", Args: []string{""}}, "echo ''"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cmd.String())
		})
	}
}

func TestNewCommand(t *testing.T) {
	args := []string{"skbio"}
	cmd := NewCommand("flake8", args, "/repo")
	assert.Equal(t, "flake8", cmd.Program)
	assert.Equal(t, []string{"skbio"}, cmd.Args)
	assert.Equal(t, "/repo", cmd.Dir)

	args[0] = "changed"
	assert.Equal(t, []string{"skbio"}, cmd.Args)

	assert.Nil(t, NewCommand("check-manifest", nil, "").Args)
}
