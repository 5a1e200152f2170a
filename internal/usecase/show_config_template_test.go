package usecase

import (
	"context"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/pkgcheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowConfigTemplate_Execute(t *testing.T) {
	custom := domain.NewDefaultConfig()
	custom.Lint.Args = []string{"--max-line-length", "100"}
	custom.Project.Package = "mypkg"

	tests := []struct {
		input          ShowConfigTemplateInput
		name           string
		wantContains   []string
		wantNotContain []string
	}{
		{
			name:  "defaults",
			input: ShowConfigTemplateInput{Config: domain.NewDefaultConfig()},
			wantContains: []string{
				"[test]",
				`python = "python"`,
				`dir = "ci"`,
				`args = ["setup.py", "test"]`,
				`command = "check-manifest"`,
			},
			wantNotContain: []string{"--max-line-length"},
		},
		{
			name:  "custom values",
			input: ShowConfigTemplateInput{Config: custom},
			wantContains: []string{
				`package = "mypkg"`,
				`args = ["--max-line-length", "100"]`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := NewShowConfigTemplate().Execute(context.Background(), tt.input)

			require.NoError(t, err)
			require.NotNil(t, out)
			for _, want := range tt.wantContains {
				assert.Contains(t, out.Template, want)
			}
			for _, notWant := range tt.wantNotContain {
				assert.NotContains(t, out.Template, notWant)
			}

			var parsed domain.Config
			require.NoError(t, toml.Unmarshal([]byte(out.Template), &parsed))
			assert.Equal(t, tt.input.Config.Project, parsed.Project)
		})
	}
}

func TestShowConfigTemplate_Execute_NilConfig(t *testing.T) {
	_, err := NewShowConfigTemplate().Execute(context.Background(), ShowConfigTemplateInput{})

	assert.ErrorIs(t, err, domain.ErrConfigNil)
}
